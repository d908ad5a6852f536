package driven

import (
	"context"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// CredentialsCache persists the most recent authenticated identity so
// later calls can skip the network login. It is a single slot: Save
// overwrites the previous identity wholesale, last write wins, and no
// locking is promised across concurrent processes.
type CredentialsCache interface {
	// Load returns the cached identity, or domain.ErrNotFound when the
	// slot is empty or unreadable.
	Load(ctx context.Context) (*domain.User, error)

	// Save overwrites the slot with the given identity.
	Save(ctx context.Context, user *domain.User) error

	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
