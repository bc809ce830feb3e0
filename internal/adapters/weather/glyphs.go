package weather

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"fmbot/internal/adapters/file"
)

//go:embed emojis.json
var defaultGlyphs []byte

// Glyphs maps OpenWeatherMap icon codes to emoji.
type Glyphs map[string]string

// LoadGlyphs reads the icon table from path, or the built-in table when path is empty.
func LoadGlyphs(path string) (Glyphs, error) {
	g := Glyphs{}

	if path == "" {
		if err := json.Unmarshal(defaultGlyphs, &g); err != nil {
			return nil, fmt.Errorf("error decoding built-in glyphs: %w", err)
		}
		return g, nil
	}

	if err := file.ReadJSON(path, &g); err != nil {
		return nil, fmt.Errorf("error loading glyphs: %w", err)
	}

	return g, nil
}

func (g Glyphs) Glyph(icon string) string {
	return g[icon]
}
