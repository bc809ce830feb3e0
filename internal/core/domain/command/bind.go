package command

import (
	"context"
	"fmt"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

// Bind stores the Last.fm username given as argument for the caller.
type Bind struct {
	store      port.BindingStore
	textSender port.TextSender
	command    string
}

func NewBind(store port.BindingStore, textSender port.TextSender, command string) *Bind {
	return &Bind{store: store, textSender: textSender, command: command}
}

func (b *Bind) GetCommand() string {
	return b.command
}

const (
	bindUsage = "Ingresá nombre de usuario de last.fm"
	bindDone  = "Nombre de usuario establecido."
)

func (b *Bind) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", b.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	user := ParseCommandArgs(message.Text)
	if user == "" {
		l.Debug().Err(domain.ErrMissingArgument).Msg("replying with usage")
		return sendReply(ctx, b.textSender, message, bindUsage)
	}

	err := b.store.Set(ctx, message.IdentityKey(), user)
	if err != nil {
		err = fmt.Errorf("error storing binding: %w", err)
		return b.textSender.NotifyAndReturnError(ctx, err, message)
	}

	l.Info().Str("identity", message.IdentityKey()).Str("lastfm", user).Msg("binding stored")

	return sendReply(ctx, b.textSender, message, bindDone)
}
