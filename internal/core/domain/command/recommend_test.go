package command

import (
	"errors"
	"fmbot/internal/core/domain"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func playlist(n int) []domain.Track {
	tracks := make([]domain.Track, n)
	for i := range tracks {
		tracks[i] = domain.Track{Artist: "Artist " + string(rune('A'+i)), Title: "Song " + string(rune('A'+i))}
	}
	return tracks
}

func TestNewRecommendClampsCount(t *testing.T) {
	r := NewRecommend(new(MockScrobbler), &MockResolver{}, &MockTextSender{}, 0, "/recommend")

	assert.Equal(t, 1, r.count)
	assert.Equal(t, "/recommend", r.GetCommand())
}

func TestRecommendSamplesWithoutRepeats(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		count    int
		wantRows int
	}{
		{name: "larger playlist", size: 20, count: 5, wantRows: 5},
		{name: "playlist smaller than count", size: 3, count: 5, wantRows: 3},
		{name: "single pick", size: 10, count: 1, wantRows: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tracks := playlist(tc.size)
			sc := new(MockScrobbler)
			sc.On("Recommendations", mock.Anything, "juanfm").Return(tracks, nil)
			ts := &MockTextSender{}

			r := NewRecommend(sc, &MockResolver{user: "juanfm", ok: true}, ts, tc.count, "/recommend")
			r.perm = rand.New(rand.NewPCG(1, 2)).Perm

			err := r.Respond(t.Context(), time.Minute, &domain.Message{ID: 1, ChatID: 1, Text: "/recommend"})
			require.NoError(t, err)

			lines := strings.Split(ts.Message, "\n")
			assert.Len(t, lines, tc.wantRows)

			seen := map[string]bool{}
			for _, line := range lines {
				assert.False(t, seen[line], "track repeated: %s", line)
				seen[line] = true
				assert.Regexp(t, `^Artist [A-Z] - Song [A-Z]$`, line)
			}
		})
	}
}

func TestRecommendKeepsArtistTitleOrder(t *testing.T) {
	sc := new(MockScrobbler)
	sc.On("Recommendations", mock.Anything, "juanfm").
		Return([]domain.Track{{Artist: "Charly García", Title: "Demoliendo Hoteles"}}, nil)
	ts := &MockTextSender{}

	r := NewRecommend(sc, &MockResolver{user: "juanfm", ok: true}, ts, 5, "/recommend")
	err := r.Respond(t.Context(), time.Minute, &domain.Message{ID: 1, ChatID: 1, Text: "/recommend"})
	require.NoError(t, err)

	assert.Equal(t, "Charly García - Demoliendo Hoteles", ts.Message)
}

func TestRecommendEmptyPlaylist(t *testing.T) {
	sc := new(MockScrobbler)
	sc.On("Recommendations", mock.Anything, "juanfm").Return([]domain.Track{}, nil)
	ts := &MockTextSender{}

	r := NewRecommend(sc, &MockResolver{user: "juanfm", ok: true}, ts, 5, "/recommend")
	err := r.Respond(t.Context(), time.Minute, &domain.Message{ID: 1, ChatID: 1, Text: "/recommend"})
	require.NoError(t, err)

	assert.Equal(t, noRecommendations, ts.Message)
}

func TestRecommendNotBound(t *testing.T) {
	sc := new(MockScrobbler)
	ts := &MockTextSender{}

	r := NewRecommend(sc, &MockResolver{}, ts, 5, "/recommend")
	err := r.Respond(t.Context(), time.Minute, &domain.Message{ID: 1, ChatID: 1, Text: "/recommend"})
	require.NoError(t, err)

	sc.AssertNotCalled(t, "Recommendations", mock.Anything, mock.Anything)
	assert.Zero(t, ts.calls)
}

func TestRecommendAPIFailure(t *testing.T) {
	sc := new(MockScrobbler)
	sc.On("Recommendations", mock.Anything, "juanfm").Return(nil, errors.New("mock error"))
	ts := &MockTextSender{}

	r := NewRecommend(sc, &MockResolver{user: "juanfm", ok: true}, ts, 5, "/recommend")
	err := r.Respond(t.Context(), time.Minute, &domain.Message{ID: 1, ChatID: 1, Text: "/recommend"})

	require.EqualError(t, err, "error fetching recommendations: mock error")
	require.EqualError(t, ts.Notified, "error fetching recommendations: mock error")
}
