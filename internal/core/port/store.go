package port

import "context"

type BindingStore interface {
	// Get returns the Last.fm username bound to a chat identity, or domain.ErrNotBound.
	Get(ctx context.Context, chatUsername string) (string, error)
	// Set binds a chat identity to a Last.fm username, replacing any previous binding.
	Set(ctx context.Context, chatUsername, externalUsername string) error
}
