// Package auth provides the local credentials cache: a single JSON
// file holding the most recently authenticated identity, so repeat
// invocations skip the network login until the token expires.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// Ensure CredsFile implements the interface.
var _ driven.CredentialsCache = (*CredsFile)(nil)

// cachedUser is the on-disk shape. Only the fields needed to resume a
// session are persisted; msg and timestamps are session noise.
type cachedUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	State    int    `json:"state"`
	Verified int    `json:"verified"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// CredsFile is a file-backed single-slot credentials cache. Writes
// replace the slot wholesale; concurrent processes race on it with
// last-write-wins semantics, which is accepted for a per-user CLI.
type CredsFile struct {
	mu   sync.Mutex
	path string
}

// NewCredsFile creates a cache at the given path.
// An empty path defaults to ~/.redten/creds.json.
func NewCredsFile(path string) *CredsFile {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, ".redten", "creds.json")
	}
	return &CredsFile{path: path}
}

// Path returns the cache file location.
func (c *CredsFile) Path() string {
	return c.path
}

// Load reads the cached identity. A missing or unparseable file is
// domain.ErrNotFound: the caller falls through to a network login.
func (c *CredsFile) Load(_ context.Context) (*domain.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("creds cache %s: %w", c.path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading creds cache %s: %w", c.path, err)
	}

	var cached cachedUser
	if err := json.Unmarshal(data, &cached); err != nil {
		logger.Warn("creds cache %s is unparseable, ignoring it", c.path)
		return nil, fmt.Errorf("creds cache %s: %w", c.path, domain.ErrNotFound)
	}

	logger.Debug("using existing creds: %s", c.path)
	return &domain.User{
		ID:       cached.ID,
		Email:    cached.Email,
		State:    cached.State,
		Verified: cached.Verified,
		Role:     cached.Role,
		Token:    cached.Token,
	}, nil
}

// Save overwrites the slot with the given identity. The parent
// directory is created on first use; the file is user-only.
func (c *CredsFile) Save(_ context.Context, user *domain.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating creds dir: %w", err)
	}

	data, err := json.MarshalIndent(cachedUser{
		ID:       user.ID,
		Email:    user.Email,
		State:    user.State,
		Verified: user.Verified,
		Role:     user.Role,
		Token:    user.Token,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding creds: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing creds cache %s: %w", c.path, err)
	}
	logger.Debug("saved creds to: %s", c.path)
	return nil
}

// Clear removes the cache file.
func (c *CredsFile) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing creds cache %s: %w", c.path, err)
	}
	return nil
}
