package domain

import (
	"fmt"
	"html"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	listeningNow  = "%s está escuchando:"
	listeningLast = "%s escuchó por última vez:"
)

const nowPlayingTemplate = `
%s
🎵 %s
💿 %s
👤 %s
<a href="%s">&#8205;</a>
`

// FormatNowPlaying renders a track as an HTML message. The artwork is attached as a
// zero-width link so clients that render link previews show the cover without any
// visible link text.
func FormatNowPlaying(name string, track Track) string {
	heading := listeningLast
	if track.NowPlaying {
		heading = listeningNow
	}

	artwork := track.ArtworkURL
	if artwork == "" {
		artwork = PlaceholderArtwork
	}

	return fmt.Sprintf(nowPlayingTemplate,
		fmt.Sprintf(heading, html.EscapeString(name)),
		html.EscapeString(track.Title),
		html.EscapeString(track.Album),
		html.EscapeString(track.Artist),
		html.EscapeString(artwork))
}

// FormatWeather renders a weather reading. An empty glyph is left out entirely.
func FormatWeather(location, glyph string, weather Weather) string {
	if glyph != "" {
		glyph += " "
	}

	return fmt.Sprintf("%s: %s%d°, %s",
		TitleCase(location), glyph, int(math.RoundToEven(weather.Temperature)), weather.Description)
}

// FormatRecommendations lists one track per line as "artist - title".
func FormatRecommendations(tracks []Track) string {
	lines := make([]string, 0, len(tracks))
	for _, t := range tracks {
		if t.Artist == "" {
			lines = append(lines, t.Title)
			continue
		}
		lines = append(lines, t.Artist+" - "+t.Title)
	}

	return strings.Join(lines, "\n")
}

// Shout upper-cases text and puts a single space between every character,
// including the spaces already in it.
func Shout(text string) string {
	upper := cases.Upper(language.Und).String(text)

	runes := []rune(upper)
	chars := make([]string, len(runes))
	for i, r := range runes {
		chars[i] = string(r)
	}

	return strings.Join(chars, " ")
}

// TitleCase capitalizes the first letter of every word and lower-cases the rest.
func TitleCase(text string) string {
	return cases.Title(language.Und).String(text)
}
