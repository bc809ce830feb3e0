package command

import (
	"context"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type Shout struct {
	textSender port.TextSender
	command    string
}

func NewShout(textSender port.TextSender, command string) *Shout {
	return &Shout{textSender: textSender, command: command}
}

func (s *Shout) GetCommand() string {
	return s.command
}

const shoutUsage = "Escribí algo para gritar."

func (s *Shout) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", s.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	text := ParseCommandArgs(message.Text)
	if text == "" {
		l.Debug().Err(domain.ErrMissingArgument).Msg("replying with usage")
		return sendReply(ctx, s.textSender, message, shoutUsage)
	}

	return sendReply(ctx, s.textSender, message, domain.Shout(text))
}
