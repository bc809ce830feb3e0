package command

import (
	"context"
	"errors"
	"fmt"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"
	"fmbot/internal/core/service"
	"time"

	"github.com/rs/zerolog/log"
)

// NowPlaying shows the caller's current track, or the last one they scrobbled.
type NowPlaying struct {
	scrobbler  port.Scrobbler
	resolver   service.Resolver
	textSender port.TextSender
	command    string
}

func NewNowPlaying(scrobbler port.Scrobbler,
	resolver service.Resolver,
	textSender port.TextSender,
	command string) *NowPlaying {
	return &NowPlaying{
		scrobbler:  scrobbler,
		resolver:   resolver,
		textSender: textSender,
		command:    command,
	}
}

func (n *NowPlaying) GetCommand() string {
	return n.command
}

const (
	noScrobbles = "No hay temas scrobbleados todavía."
	unknownUser = "El usuario de last.fm %q no existe. Cambialo con /setlastfm <username>"
)

func (n *NowPlaying) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", n.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	user, ok := n.resolver.Resolve(ctx, message)
	if !ok {
		return nil
	}

	track, err := n.currentOrLast(ctx, user)
	switch {
	case errors.Is(err, domain.ErrNoTracks):
		return sendReply(ctx, n.textSender, message, noScrobbles)
	case errors.Is(err, domain.ErrUnknownUser):
		return sendReply(ctx, n.textSender, message, fmt.Sprintf(unknownUser, user))
	case err != nil:
		err = fmt.Errorf("error fetching track: %w", err)
		return n.textSender.NotifyAndReturnError(ctx, err, message)
	}

	l.Debug().Str("track", track.Title).Bool("nowPlaying", track.NowPlaying).Msg("got track")

	_, err = n.textSender.SendHTMLReply(ctx, message, domain.FormatNowPlaying(message.DisplayName(), track))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

// currentOrLast returns the track being played, or the last one scrobbled, from
// a single recent-tracks request.
func (n *NowPlaying) currentOrLast(ctx context.Context, user string) (domain.Track, error) {
	tracks, err := n.scrobbler.RecentTracks(ctx, user, 1)
	if err != nil {
		return domain.Track{}, err
	}

	if len(tracks) == 0 {
		return domain.Track{}, domain.ErrNoTracks
	}

	return tracks[0], nil
}
