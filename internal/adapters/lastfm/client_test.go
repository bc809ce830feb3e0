package lastfm

import (
	"fmbot/internal/core/domain"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nowPlayingResponse = `<?xml version="1.0" encoding="UTF-8"?>
<lfm status="ok">
  <recenttracks user="juanfm" page="1" perPage="1" totalPages="200" total="200">
    <track nowplaying="true">
      <artist mbid="">Gustavo Cerati</artist>
      <name>Crimen</name>
      <streamable>0</streamable>
      <mbid></mbid>
      <album mbid="">Ahí Vamos</album>
      <url>https://www.last.fm/music/Gustavo+Cerati/_/Crimen</url>
      <image size="small">https://lastfm.freetls.fastly.net/i/u/34s/ahi.png</image>
      <image size="medium">https://lastfm.freetls.fastly.net/i/u/64s/ahi.png</image>
      <image size="large">https://lastfm.freetls.fastly.net/i/u/174s/ahi.png</image>
      <image size="extralarge">https://lastfm.freetls.fastly.net/i/u/300x300/ahi.png</image>
    </track>
    <track>
      <artist mbid="">Soda Stereo</artist>
      <name>Té para tres</name>
      <streamable>0</streamable>
      <mbid></mbid>
      <album mbid="">Canción Animal</album>
      <url>https://www.last.fm/music/Soda+Stereo/_/T%C3%A9+para+tres</url>
      <image size="small"></image>
      <date uts="1700000000">14 Nov 2023, 22:13</date>
    </track>
  </recenttracks>
</lfm>`

const lastPlayedResponse = `<?xml version="1.0" encoding="UTF-8"?>
<lfm status="ok">
  <recenttracks user="juanfm" page="1" perPage="1" totalPages="200" total="200">
    <track>
      <artist mbid="">Soda Stereo</artist>
      <name>Té para tres</name>
      <album mbid="">Canción Animal</album>
      <image size="small">https://lastfm.freetls.fastly.net/i/u/34s/2a96cbd8b46e442fc41c2b86b821562f.png</image>
      <image size="extralarge">https://lastfm.freetls.fastly.net/i/u/300x300/2a96cbd8b46e442fc41c2b86b821562f.png</image>
      <date uts="1700000000">14 Nov 2023, 22:13</date>
    </track>
  </recenttracks>
</lfm>`

const emptyResponse = `<?xml version="1.0" encoding="UTF-8"?>
<lfm status="ok">
  <recenttracks user="juanfm" page="0" perPage="1" totalPages="0" total="0"></recenttracks>
</lfm>`

const userNotFoundResponse = `<?xml version="1.0" encoding="UTF-8"?>
<lfm status="failed">
  <error code="6">User not found</error>
</lfm>`

const invalidKeyResponse = `<?xml version="1.0" encoding="UTF-8"?>
<lfm status="failed">
  <error code="10">Invalid API key - You must be granted a valid key by last.fm</error>
</lfm>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClientCustom(srv.Client(), "apiKey1", srv.URL+"/2.0/", srv.URL+"/player/station/")
}

func TestRecentTracksRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/2.0/", r.URL.Path)
		require.Equal(t, url.Values{
			"method":  []string{"user.getRecentTracks"},
			"api_key": []string{"apiKey1"},
			"user":    []string{"juanfm"},
			"limit":   []string{"1"},
		}, r.URL.Query())

		_, _ = w.Write([]byte(nowPlayingResponse))
	})

	tracks, err := client.RecentTracks(t.Context(), "juanfm", 1)
	require.NoError(t, err)
	require.Equal(t, []domain.Track{
		{
			Title:      "Crimen",
			Album:      "Ahí Vamos",
			Artist:     "Gustavo Cerati",
			ArtworkURL: "https://lastfm.freetls.fastly.net/i/u/300x300/ahi.png",
			NowPlaying: true,
		},
	}, tracks)
}

func TestRecentTracksKeepsOlderTracks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(nowPlayingResponse))
	})

	tracks, err := client.RecentTracks(t.Context(), "juanfm", 5)
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	assert.True(t, tracks[0].NowPlaying)
	assert.False(t, tracks[1].NowPlaying)
	assert.Equal(t, "Té para tres", tracks[1].Title)
	assert.Empty(t, tracks[1].ArtworkURL)
}

func TestRecentTracksResponses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      []domain.Track
		wantErrIs error
		wantErr   bool
	}{
		{
			name:   "currently playing",
			status: http.StatusOK,
			body:   nowPlayingResponse,
			want: []domain.Track{{
				Title:      "Crimen",
				Album:      "Ahí Vamos",
				Artist:     "Gustavo Cerati",
				ArtworkURL: "https://lastfm.freetls.fastly.net/i/u/300x300/ahi.png",
				NowPlaying: true,
			}},
		},
		{
			name:   "nothing playing returns last scrobble",
			status: http.StatusOK,
			body:   lastPlayedResponse,
			want: []domain.Track{{
				Title:  "Té para tres",
				Album:  "Canción Animal",
				Artist: "Soda Stereo",
			}},
		},
		{
			name:   "no scrobbles",
			status: http.StatusOK,
			body:   emptyResponse,
			want:   []domain.Track{},
		},
		{
			name:      "unknown user",
			status:    http.StatusNotFound,
			body:      userNotFoundResponse,
			wantErrIs: domain.ErrUnknownUser,
		},
		{
			name:      "api error",
			status:    http.StatusForbidden,
			body:      invalidKeyResponse,
			wantErrIs: ErrLastFM,
		},
		{
			name:      "gateway error without xml",
			status:    http.StatusBadGateway,
			body:      "<html>bad gateway",
			wantErrIs: ErrLastFM,
		},
		{
			name:    "malformed xml",
			status:  http.StatusOK,
			body:    "<lfm",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := client.RecentTracks(t.Context(), "juanfm", 1)
			switch {
			case tc.wantErrIs != nil:
				require.ErrorIs(t, err, tc.wantErrIs)
			case tc.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestLastPlayedSkipsPlaceholderArtwork(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(lastPlayedResponse))
	})

	tracks, err := client.RecentTracks(t.Context(), "juanfm", 1)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Empty(t, tracks[0].ArtworkURL)
	assert.False(t, tracks[0].NowPlaying)
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      []domain.Track
		wantErrIs error
		wantErr   bool
	}{
		{
			name:   "playlist",
			status: http.StatusOK,
			body: `{"playlist": [
				{"name": "Muchacha", "url": "https://www.last.fm/music/x", "artists": [{"name": "Almendra"}, {"name": "Spinetta"}]},
				{"name": "Untitled", "artists": []}
			]}`,
			want: []domain.Track{
				{Artist: "Almendra", Title: "Muchacha"},
				{Title: "Untitled"},
			},
		},
		{
			name:   "empty playlist",
			status: http.StatusOK,
			body:   `{"playlist": []}`,
			want:   []domain.Track{},
		},
		{
			name:      "unknown user",
			status:    http.StatusNotFound,
			body:      `{}`,
			wantErrIs: domain.ErrUnknownUser,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    `{"playlist": [`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/player/station/user/juan%20fm/recommended", r.URL.EscapedPath())
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := client.Recommendations(t.Context(), "juan fm")
			switch {
			case tc.wantErrIs != nil:
				require.ErrorIs(t, err, tc.wantErrIs)
			case tc.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestLargestImage(t *testing.T) {
	assert.Equal(t, "l", largestImage([]Image{{Size: "small", Text: "s"}, {Size: "large", Text: "l"}}))
	assert.Equal(t, "xl", largestImage([]Image{{Size: "extralarge", Text: "xl"}, {Size: "mega", Text: "m"}}))
	assert.Empty(t, largestImage(nil))
}
