package driving

import (
	"context"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// AuthService produces authenticated identities.
type AuthService interface {
	// Authenticate resolves the given credentials (falling back to
	// configured defaults), logs in, and returns a verified identity.
	// When autoCreate is true a missing account is created first; a
	// username is synthesized if none was supplied.
	Authenticate(ctx context.Context, creds domain.Credentials, autoCreate bool) (*domain.User, error)

	// Login performs a direct login. With empty credentials and
	// force=false, a cached identity short-circuits the network call.
	// force=true bypasses and rewrites the cache, for expired tokens.
	Login(ctx context.Context, email, password string, force bool) (*domain.User, error)

	// Logout clears the local credentials cache.
	Logout(ctx context.Context) error
}
