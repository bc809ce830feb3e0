package command

import (
	"errors"
	"fmbot/internal/core/port"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[string]port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	log.Info().Str("handler", handler.GetCommand()).Msg("adding command handler to registry")
	r.commands[handler.GetCommand()] = handler
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Interface("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

// ListCommands returns the registered verbs in alphabetical order.
func (r *Registry) ListCommands() []string {
	keys := make([]string, 0, len(r.commands))
	for k := range r.commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// ParseCommandArgs returns everything after the verb, trimmed.
func ParseCommandArgs(text string) string {
	text = strings.TrimSpace(text)

	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return ""
	}

	return strings.TrimSpace(text[i:])
}

// ParseCommand returns the lower-cased verb of a message, without any @botname suffix.
func ParseCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	verb, _, _ := strings.Cut(fields[0], "@")
	return strings.ToLower(verb)
}

// ParseCommandTarget returns the bot username a command is addressed to, as in
// "/np@fm_bot", or "" when the command carries no @suffix.
func ParseCommandTarget(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	_, target, _ := strings.Cut(fields[0], "@")
	return target
}
