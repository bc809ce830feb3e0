package command

import (
	"context"
	"errors"
	"fmt"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

// Weather reports the current conditions for the given location, or the default one.
type Weather struct {
	provider        port.WeatherProvider
	glyphs          port.GlyphLookup
	textSender      port.TextSender
	defaultLocation string
	command         string
}

func NewWeather(provider port.WeatherProvider,
	glyphs port.GlyphLookup,
	textSender port.TextSender,
	defaultLocation string,
	command string) *Weather {
	return &Weather{
		provider:        provider,
		glyphs:          glyphs,
		textSender:      textSender,
		defaultLocation: defaultLocation,
		command:         command,
	}
}

func (w *Weather) GetCommand() string {
	return w.command
}

const locationNotFound = "No encontré esa ubicación."

func (w *Weather) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	location := ParseCommandArgs(message.Text)
	if location == "" {
		location = w.defaultLocation
	}

	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("location", location).
		Str("command", w.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reading, err := w.provider.Current(ctx, location)
	switch {
	case errors.Is(err, domain.ErrLocationNotFound):
		return sendReply(ctx, w.textSender, message, locationNotFound)
	case err != nil:
		err = fmt.Errorf("error fetching weather: %w", err)
		return w.textSender.NotifyAndReturnError(ctx, err, message)
	}

	glyph := w.glyphs.Glyph(reading.Icon)
	if glyph == "" {
		l.Debug().Str("icon", reading.Icon).Msg("no glyph for icon")
	}

	return sendReply(ctx, w.textSender, message, domain.FormatWeather(location, glyph, reading))
}
