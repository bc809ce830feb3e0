package store

import (
	"context"
	"errors"
	"fmt"
	"fmbot/internal/adapters/file"
	"fmbot/internal/core/domain"
	"io/fs"
	"sync"

	"github.com/rs/zerolog/log"
)

// JSON keeps bindings in a flat JSON object on disk. The file is read on every Get
// and fully rewritten on every Set.
type JSON struct {
	path  string
	mutex sync.Mutex
}

func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

func (s *JSON) Get(ctx context.Context, chatUsername string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	bindings, err := s.load()
	if err != nil {
		return "", err
	}

	user, ok := bindings[chatUsername]
	if !ok {
		return "", domain.ErrNotBound
	}

	return user, nil
}

func (s *JSON) Set(ctx context.Context, chatUsername, externalUsername string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	bindings, err := s.load()
	if err != nil {
		return err
	}

	bindings[chatUsername] = externalUsername

	if err := file.WriteJSON(s.path, bindings); err != nil {
		return fmt.Errorf("error saving bindings: %w", err)
	}

	log.Debug().Str("path", s.path).Int("bindings", len(bindings)).Msg("bindings saved")

	return nil
}

func (s *JSON) load() (map[string]string, error) {
	bindings := make(map[string]string)

	err := file.ReadJSON(s.path, &bindings)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading bindings: %w", err)
	}

	// a file containing null decodes into a nil map
	if bindings == nil {
		bindings = make(map[string]string)
	}

	return bindings, nil
}
