package command

import (
	"context"
	"fmbot/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockTextSender struct {
	err      error
	Message  string
	HTML     string
	Notified error
	calls    int
}

func (m *MockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, message string) (int, error) {
	m.calls++
	m.Message = message
	return 0, m.err
}

func (m *MockTextSender) SendHTMLReply(_ context.Context, _ *domain.Message, message string) (int, error) {
	m.calls++
	m.HTML = message
	return 0, m.err
}

func (m *MockTextSender) NotifyAndReturnError(_ context.Context, err error, _ *domain.Message) error {
	m.calls++
	m.Notified = err
	return err
}

type MockResolver struct {
	user string
	ok   bool
}

func (m *MockResolver) Resolve(_ context.Context, _ *domain.Message) (string, bool) {
	return m.user, m.ok
}

type MockScrobbler struct {
	mock.Mock
}

func (m *MockScrobbler) RecentTracks(ctx context.Context, user string, limit int) ([]domain.Track, error) {
	args := m.Called(ctx, user, limit)
	tracks, _ := args.Get(0).([]domain.Track)
	return tracks, args.Error(1)
}

func (m *MockScrobbler) Recommendations(ctx context.Context, user string) ([]domain.Track, error) {
	args := m.Called(ctx, user)
	tracks, _ := args.Get(0).([]domain.Track)
	return tracks, args.Error(1)
}

type MockStore struct {
	bindings map[string]string
	err      error
}

func (m *MockStore) Get(_ context.Context, chatUsername string) (string, error) {
	user, ok := m.bindings[chatUsername]
	if !ok {
		return "", domain.ErrNotBound
	}
	return user, nil
}

func (m *MockStore) Set(_ context.Context, chatUsername, externalUsername string) error {
	if m.err != nil {
		return m.err
	}
	m.bindings[chatUsername] = externalUsername
	return nil
}

type MockWeatherProvider struct {
	weather  domain.Weather
	err      error
	location string
}

func (m *MockWeatherProvider) Current(_ context.Context, location string) (domain.Weather, error) {
	m.location = location
	return m.weather, m.err
}

type MockGlyphs map[string]string

func (m MockGlyphs) Glyph(icon string) string {
	return m[icon]
}
