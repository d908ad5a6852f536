package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// loginRequest is the POST /login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the POST /login success body. The account id comes
// back as user_id here, unlike every other user-shaped response.
type loginResponse struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	State    int    `json:"state"`
	Verified int    `json:"verified"`
	Role     string `json:"role"`
	Token    string `json:"token"`
	Msg      string `json:"msg"`
}

// createUserRequest is the POST /user body.
type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// isInvalidPassword reports whether the login rejection is a wrong
// password for an existing account.
//
// The service has no structured error codes; the body substring is
// the only signal it gives. Keep the fragility contained here.
func isInvalidPassword(body string) bool {
	return strings.Contains(body, "invalid password")
}

// isUnknownUser reports whether the login rejection means no account
// exists for the email. See isInvalidPassword about the substring.
func isUnknownUser(body string) bool {
	return strings.Contains(body, "user does not exist")
}

// isAlreadyRegistered reports whether a create-user rejection means
// the account already exists, which callers treat as success.
// See isInvalidPassword about the substring.
func isAlreadyRegistered(body string) bool {
	return strings.Contains(body, "already registered")
}

// Login exchanges email+password for a bearer-token identity.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	_, raw, err := c.do(ctx, request{
		method:     http.MethodPost,
		path:       "/login",
		body:       loginRequest{Email: email, Password: password},
		timeout:    timeoutLong,
		wantStatus: http.StatusCreated,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			switch {
			case isInvalidPassword(serr.Body):
				logger.Error("invalid password for %s", email)
				return nil, fmt.Errorf("login %s: %w", email, domain.ErrInvalidPassword)
			case isUnknownUser(serr.Body):
				// Likely not an error; authenticate may create the
				// account next.
				logger.Debug("no user email=%s", email)
				return nil, fmt.Errorf("login %s: %w", email, domain.ErrUserNotFound)
			}
			c.logStatusError("login", serr)
		}
		return nil, err
	}

	var lr loginResponse
	if err := decode(raw, &lr); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	logger.Debug("login success for %s", email)
	return &domain.User{
		ID:       lr.UserID,
		Email:    lr.Email,
		State:    lr.State,
		Verified: lr.Verified,
		Role:     lr.Role,
		Token:    lr.Token,
		Msg:      lr.Msg,
	}, nil
}

// CreateUser creates an account. An "already registered" rejection is
// success: the existing account rides back in the rejection body.
func (c *Client) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	_, raw, err := c.do(ctx, request{
		method:     http.MethodPost,
		path:       "/user",
		body:       createUserRequest{Username: username, Email: email, Password: password},
		wantStatus: http.StatusCreated,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) && isAlreadyRegistered(serr.Body) {
			logger.Debug("found existing user=%s email=%s", username, email)
			var existing domain.User
			if derr := decode([]byte(serr.Body), &existing); derr != nil {
				return nil, fmt.Errorf("create user: %w", derr)
			}
			return &existing, nil
		}
		if serr != nil {
			c.logStatusError("create user", serr)
		}
		return nil, err
	}

	var user domain.User
	if err := decode(raw, &user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	logger.Debug("created user=%s email=%s", username, email)
	return &user, nil
}

// GetUser fetches an account by id through the authenticated session.
func (c *Client) GetUser(ctx context.Context, user *domain.User, id int64) (*domain.User, error) {
	_, raw, err := c.do(ctx, request{
		method:     http.MethodGet,
		path:       fmt.Sprintf("/user/%d", id),
		user:       user,
		wantStatus: http.StatusOK,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			if serr.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
			}
			c.logStatusError("get user", serr)
		}
		return nil, err
	}

	var found domain.User
	if err := decode(raw, &found); err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &found, nil
}
