package handler

import (
	"context"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/domain/command"
	"fmbot/internal/core/port"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type Command struct {
	commandRegistry port.CommandRegistry
	timeout         time.Duration
	botUsername     string
}

// NewCommand builds a dispatcher for the bot named botUsername. Commands
// addressed to any other bot are ignored.
func NewCommand(commandRegistry port.CommandRegistry, timeout time.Duration, botUsername string) *Command {
	return &Command{commandRegistry: commandRegistry, timeout: timeout, botUsername: botUsername}
}

// Match reports whether an update carries a command, in a new or an edited message.
func (c *Command) Match(update *models.Update) bool {
	msg := commandMessage(update)
	return msg != nil && strings.HasPrefix(msg.Text, "/")
}

// Handle dispatches a Telegram update to the handler registered for its verb.
// Unknown verbs are ignored without a reply.
func (c *Command) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg := commandMessage(update)
	if msg == nil {
		log.Debug().Msg("update without message")
		return
	}

	log.Debug().Str("message", msg.Text).Msg("received command")

	target := command.ParseCommandTarget(msg.Text)
	if target != "" && !strings.EqualFold(target, c.botUsername) {
		log.Debug().Str("target", target).Msg("command addressed to another bot")
		return
	}

	cmd := command.ParseCommand(msg.Text)
	commandHandler, err := c.commandRegistry.Get(cmd)
	if err != nil {
		log.Debug().Str("command", cmd).Msg("no handler for command")
		return
	}

	message := &domain.Message{
		ID:     msg.ID,
		ChatID: msg.Chat.ID,
		Text:   msg.Text,
	}

	if msg.From != nil {
		message.UserID = msg.From.ID
		message.Username = msg.From.Username
		message.FullName = fullName(msg.From)
	}

	err = commandHandler.Respond(ctx, c.timeout, message)
	if err != nil {
		log.Err(err).Str("command", cmd).Msg("failed to respond to command")
	}
}

func commandMessage(update *models.Update) *models.Message {
	if update.Message != nil {
		return update.Message
	}

	return update.EditedMessage
}

func fullName(user *models.User) string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}
