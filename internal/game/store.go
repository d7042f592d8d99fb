package game

import (
	"context"
	"errors"
)

// Store errors surfaced to the orchestrator.
var (
	// ErrNotFound means the session id does not exist. Not retryable.
	ErrNotFound = errors.New("session not found")

	// ErrConflict means the session changed since it was loaded. The whole
	// command must be discarded as if never attempted.
	ErrConflict = errors.New("session version conflict")
)

// Store is the persistence collaborator contract. Save must detect concurrent
// writes via Session.Version and return ErrConflict instead of overwriting.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
}
