package lastfm

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"fmbot/internal/adapters/file"
	"fmbot/internal/core/domain"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrLastFM = errors.New("last.fm error")

const (
	BaseURL    = "https://ws.audioscrobbler.com/2.0/"
	StationURL = "https://www.last.fm/player/station"
)

// last.fm error code for a user or resource that does not exist
const errCodeInvalidParameters = 6

// last.fm serves this image for albums without cover art.
const missingImageHash = "2a96cbd8b46e442fc41c2b86b821562f"

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	stationURL string
}

func NewClientCustom(httpClient *http.Client, apiKey, baseURL, stationURL string) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
		stationURL: strings.TrimSuffix(stationURL, "/"),
	}
}

// RecentTracks returns at most limit tracks. A track being played right now is
// included first and flagged as NowPlaying.
func (c *Client) RecentTracks(ctx context.Context, user string, limit int) ([]domain.Track, error) {
	params := url.Values{}
	params.Add("method", "user.getRecentTracks")
	params.Add("api_key", c.apiKey)
	params.Add("user", user)
	params.Add("limit", strconv.Itoa(limit))

	resp, err := c.makeRequest(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("make request: %w", err)
	}

	recent := resp.RecentTracks.Tracks
	if len(recent) > limit {
		recent = recent[:limit]
	}

	tracks := make([]domain.Track, 0, len(recent))
	for _, t := range recent {
		tracks = append(tracks, domain.Track{
			Title:      t.Name,
			Album:      t.Album.Text,
			Artist:     t.Artist.Text,
			ArtworkURL: largestImage(t.Image),
			NowPlaying: t.NowPlaying,
		})
	}

	return tracks, nil
}

func (c *Client) Recommendations(ctx context.Context, user string) ([]domain.Track, error) {
	stationURL := fmt.Sprintf("%s/user/%s/recommended", c.stationURL, url.PathEscape(user))

	var station Station
	err := file.DownloadJSON(ctx, c.httpClient, stationURL, &station)

	var statusErr *file.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		return nil, fmt.Errorf("station for %q: %w", user, domain.ErrUnknownUser)
	}
	if err != nil {
		return nil, fmt.Errorf("get station: %w", err)
	}

	tracks := make([]domain.Track, 0, len(station.Playlist))
	for _, t := range station.Playlist {
		track := domain.Track{Title: t.Name}
		if len(t.Artists) > 0 {
			track.Artist = t.Artists[0].Name
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

func (c *Client) makeRequest(ctx context.Context, params url.Values) (LastFM, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return LastFM{}, fmt.Errorf("create request: %w", err)
	}
	req.URL.RawQuery = params.Encode()

	log.Debug().Str("method", params.Get("method")).Msg("last.fm request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LastFM{}, fmt.Errorf("get: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return LastFM{}, fmt.Errorf("read body: %w", err)
	}

	var lastfm LastFM
	if err = xml.Unmarshal(body, &lastfm); err != nil {
		if resp.StatusCode != http.StatusOK {
			return LastFM{}, fmt.Errorf("status %d: %w", resp.StatusCode, ErrLastFM)
		}
		return LastFM{}, fmt.Errorf("decoding: %w", err)
	}

	if lastfm.Error.Code == errCodeInvalidParameters {
		return LastFM{}, fmt.Errorf("%v: %w", lastfm.Error.Value, domain.ErrUnknownUser)
	}
	if lastfm.Error.Code != 0 {
		return LastFM{}, fmt.Errorf("%v: %w", lastfm.Error.Value, ErrLastFM)
	}
	if resp.StatusCode != http.StatusOK {
		return LastFM{}, fmt.Errorf("status %d: %w", resp.StatusCode, ErrLastFM)
	}

	return lastfm, nil
}

// largestImage picks the biggest cover art, ignoring last.fm's blank placeholder.
func largestImage(images []Image) string {
	var best string
	for _, img := range images {
		if img.Text == "" || strings.Contains(img.Text, missingImageHash) {
			continue
		}
		best = img.Text
		if img.Size == "extralarge" {
			break
		}
	}

	return best
}
