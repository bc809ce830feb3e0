package service

import (
	"context"
	"errors"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Resolver interface {
	Resolve(ctx context.Context, message *domain.Message) (string, bool)
}

// IdentityResolver looks up the Last.fm username bound to the author of a message.
type IdentityResolver struct {
	store  port.BindingStore
	sender port.TextSender
}

func NewIdentityResolver(store port.BindingStore, sender port.TextSender) *IdentityResolver {
	return &IdentityResolver{
		store:  store,
		sender: sender,
	}
}

const notBound = "Establecé tu nombre de usuario de last.fm usando /setlastfm <username>"

// Resolve returns the caller's Last.fm username. When there is none, or the store
// fails, the caller has already been told and false is returned.
func (r *IdentityResolver) Resolve(ctx context.Context, message *domain.Message) (string, bool) {
	key := message.IdentityKey()

	user, err := r.store.Get(ctx, key)
	if err == nil {
		return user, true
	}

	if !errors.Is(err, domain.ErrNotBound) {
		_ = r.sender.NotifyAndReturnError(ctx, err, message)
		return "", false
	}

	log.Debug().Str("identity", key).Msg("no binding for caller")

	_, err = r.sender.SendMessageReply(ctx, message, notBound)
	if err != nil {
		log.Err(err).Msg("failed to send bind prompt")
	}

	return "", false
}
