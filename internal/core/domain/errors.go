package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed caller input, such as a question
	// shorter than the minimum length or a non-positive job id.
	// Detected before any network call; never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCredentials indicates no email or password could be
	// resolved from the call arguments or the configuration.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrAuthFailed indicates login, account creation, or the post-login
	// self-verification failed. Dependent steps are skipped.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrInvalidPassword indicates the server rejected the password for
	// an existing account. Auto-create must NOT trigger on this.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserNotFound indicates no account exists for the email.
	// This is the one login failure auto-create is allowed to act on.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStatusPending indicates the job status snapshot is not yet
	// available. This is an expected transient absence, not a failure;
	// the orchestrator retries it at the configured poll interval.
	ErrStatusPending = errors.New("job status not yet available")

	// ErrJobMismatch indicates the fetched answer's job id does not match
	// the status snapshot's job id. The server broke the correlation
	// contract; the partial outcome is still returned for diagnosis.
	ErrJobMismatch = errors.New("answer job id does not match status job id")
)
