package command

import (
	"context"
	"errors"
	"fmt"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"
	"fmbot/internal/core/service"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
)

// Recommend picks a few random tracks from the caller's Last.fm recommendation station.
type Recommend struct {
	scrobbler  port.Scrobbler
	resolver   service.Resolver
	textSender port.TextSender
	count      int
	perm       func(n int) []int
	command    string
}

func NewRecommend(scrobbler port.Scrobbler,
	resolver service.Resolver,
	textSender port.TextSender,
	count int,
	command string) *Recommend {
	if count < 1 {
		count = 1
	}

	return &Recommend{
		scrobbler:  scrobbler,
		resolver:   resolver,
		textSender: textSender,
		count:      count,
		perm:       rand.Perm,
		command:    command,
	}
}

func (r *Recommend) GetCommand() string {
	return r.command
}

const noRecommendations = "No encontré recomendaciones."

func (r *Recommend) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", r.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	user, ok := r.resolver.Resolve(ctx, message)
	if !ok {
		return nil
	}

	playlist, err := r.scrobbler.Recommendations(ctx, user)
	switch {
	case errors.Is(err, domain.ErrUnknownUser):
		return sendReply(ctx, r.textSender, message, fmt.Sprintf(unknownUser, user))
	case err != nil:
		err = fmt.Errorf("error fetching recommendations: %w", err)
		return r.textSender.NotifyAndReturnError(ctx, err, message)
	}

	if len(playlist) == 0 {
		return sendReply(ctx, r.textSender, message, noRecommendations)
	}

	picked := r.sample(playlist)
	l.Debug().Int("playlist", len(playlist)).Int("picked", len(picked)).Msg("sampled recommendations")

	return sendReply(ctx, r.textSender, message, domain.FormatRecommendations(picked))
}

// sample returns up to r.count distinct tracks in random order.
func (r *Recommend) sample(tracks []domain.Track) []domain.Track {
	n := min(r.count, len(tracks))

	picked := make([]domain.Track, 0, n)
	for _, i := range r.perm(len(tracks))[:n] {
		picked = append(picked, tracks[i])
	}

	return picked
}
