package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
	"github.com/redten-labs/redten-cli/internal/core/ports/driving"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// usernamePrefix namespaces auto-created accounts so they are easy to
// spot and clean up server-side.
const usernamePrefix = "rt.2023."

// AuthService produces authenticated identities against the redten
// API, caching the bearer token locally between invocations.
type AuthService struct {
	gateway  driven.Gateway
	cache    driven.CredentialsCache // nil disables caching
	defaults domain.Credentials
}

// NewAuthService creates an auth service. cache may be nil to force a
// fresh login on every call; defaults are the configured fallback
// credentials used when a call supplies none.
func NewAuthService(gateway driven.Gateway, cache driven.CredentialsCache, defaults domain.Credentials) *AuthService {
	return &AuthService{
		gateway:  gateway,
		cache:    cache,
		defaults: defaults,
	}
}

// resolve merges explicit credentials over the configured defaults.
func (s *AuthService) resolve(creds domain.Credentials) domain.Credentials {
	if creds.Username == "" {
		creds.Username = s.defaults.Username
	}
	if creds.Email == "" {
		creds.Email = s.defaults.Email
	}
	if creds.Password == "" {
		creds.Password = s.defaults.Password
	}
	return creds
}

// Authenticate resolves credentials, logs in, and returns a verified
// identity. A missing account is created when autoCreate is true; a
// wrong password is fatal and never triggers account creation.
func (s *AuthService) Authenticate(ctx context.Context, creds domain.Credentials, autoCreate bool) (*domain.User, error) {
	creds = s.resolve(creds)

	user, err := s.Login(ctx, creds.Email, creds.Password, false)
	if err == nil {
		return user, nil
	}
	if errors.Is(err, domain.ErrInvalidPassword) {
		// The account exists; creating another one would be wrong.
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
	}
	if !autoCreate || !errors.Is(err, domain.ErrUserNotFound) {
		logger.Error("failed to login as %s: %v", creds.Email, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
	}

	username := creds.Username
	if username == "" {
		username = usernamePrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	logger.Debug("creating user email=%s", creds.Email)
	if _, cerr := s.gateway.CreateUser(ctx, username, creds.Email, creds.Password); cerr != nil {
		// The forced login below settles whether the account is
		// actually usable, so creation failures are not yet fatal.
		logger.Warn("create user %s: %v", creds.Email, cerr)
	}

	logger.Debug("trying forced login for email=%s", creds.Email)
	user, err = s.Login(ctx, creds.Email, creds.Password, true)
	if err != nil {
		logger.Error("forced login failed for %s: %v", creds.Email, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
	}

	// A token that authenticates but cannot read its own account is
	// useless for everything that follows, so verify with a
	// self-lookup before handing it out.
	logger.Debug("validating access with token")
	if _, err := s.gateway.GetUser(ctx, user, user.ID); err != nil {
		logger.Error("failed to get user.id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: self-verification: %w", domain.ErrAuthFailed, err)
	}

	return user, nil
}

// Login performs one login. Empty credentials with force=false try the
// local cache before touching the network; a successful network login
// rewrites the cache (when caching is enabled).
func (s *AuthService) Login(ctx context.Context, email, password string, force bool) (*domain.User, error) {
	if email == "" && password == "" {
		if !force && s.cache != nil {
			if user, err := s.cache.Load(ctx); err == nil {
				return user, nil
			}
		}
		return nil, fmt.Errorf("login: %w", domain.ErrMissingCredentials)
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("login: %w", domain.ErrMissingCredentials)
	}

	user, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, user); err != nil {
			// Cache trouble never fails a successful login.
			logger.Warn("saving creds cache: %v", err)
		}
	}
	return user, nil
}

// Logout clears the local credentials cache.
func (s *AuthService) Logout(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Clear(ctx)
}
