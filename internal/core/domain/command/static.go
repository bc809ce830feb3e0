package command

import (
	"context"
	"fmbot/internal/core/domain"
	"fmbot/internal/core/port"
	"strings"
	"time"
)

// Static always replies with the same text.
type Static struct {
	text       string
	textSender port.TextSender
	command    string
}

func NewStatic(text string, textSender port.TextSender, command string) *Static {
	return &Static{text: text, textSender: textSender, command: command}
}

func (s *Static) GetCommand() string {
	return s.command
}

func (s *Static) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	return sendReply(ctx, s.textSender, message, s.text)
}

// Help replies with a fixed text followed by the list of known commands.
type Help struct {
	text       string
	registry   port.CommandRegistry
	textSender port.TextSender
	command    string
}

func NewHelp(text string, registry port.CommandRegistry, textSender port.TextSender, command string) *Help {
	return &Help{text: text, registry: registry, textSender: textSender, command: command}
}

func (h *Help) GetCommand() string {
	return h.command
}

func (h *Help) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	sb := &strings.Builder{}
	sb.WriteString(h.text)

	commands := h.registry.ListCommands()
	if len(commands) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(commands, "\n"))
	}

	return sendReply(ctx, h.textSender, message, sb.String())
}
