package port

import (
	"context"
	"fmbot/internal/core/domain"
)

type WeatherProvider interface {
	// Current returns the current conditions for a free-form location string.
	Current(ctx context.Context, location string) (domain.Weather, error)
}

type GlyphLookup interface {
	// Glyph maps a provider icon code to an emoji; unknown codes return an empty string.
	Glyph(icon string) string
}
