package port

import (
	"context"
	"fmbot/internal/core/domain"
)

type Scrobbler interface {
	// RecentTracks returns up to limit of the user's most recently scrobbled tracks, newest first.
	// A track being played right now comes first and has NowPlaying set.
	RecentTracks(ctx context.Context, user string, limit int) ([]domain.Track, error)
	// Recommendations returns the user's recommendation station playlist.
	Recommendations(ctx context.Context, user string) ([]domain.Track, error)
}
