package driven

import (
	"context"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// Gateway maps one logical redten REST operation to one HTTPS request.
// Implementations are stateless per call: the bearer token rides on the
// user argument, never on the client. Retries are the caller's
// responsibility; the gateway reports each outcome exactly once.
//
// Absence is reported through typed errors: domain.ErrNotFound for
// missing records, domain.ErrStatusPending for a job status that the
// server has not materialized yet, domain.ErrInvalidPassword and
// domain.ErrUserNotFound for the two negative login outcomes.
type Gateway interface {
	// Login exchanges email+password for an identity with a bearer
	// token. Unauthenticated; expects 201.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// CreateUser creates an account. Unauthenticated; expects 201.
	// An "already registered" rejection is treated as success and
	// returns the existing account.
	CreateUser(ctx context.Context, username, email, password string) (*domain.User, error)

	// GetUser fetches an account by id. Expects 200.
	GetUser(ctx context.Context, user *domain.User, id int64) (*domain.User, error)

	// SubmitJob submits an ask job. Expects 201.
	SubmitJob(ctx context.Context, user *domain.User, sub domain.JobSubmission) (*domain.Job, error)

	// GetJobStatus polls job progress by job id. Expects 200;
	// a missing snapshot is domain.ErrStatusPending.
	GetJobStatus(ctx context.Context, user *domain.User, jobID int64) (*domain.JobStatus, error)

	// GetAnswer fetches the answer record by job id. Expects 200.
	GetAnswer(ctx context.Context, user *domain.User, jobID int64) (*domain.Answer, error)

	// CreateAnswer creates an answer record. Used by remote workers
	// streaming results in, not by the ask flow. Expects 201.
	CreateAnswer(ctx context.Context, user *domain.User, answer domain.Answer) (*domain.Answer, error)

	// UpdateAnswer updates an answer's review fields. Expects 200.
	UpdateAnswer(ctx context.Context, user *domain.User, answer domain.Answer) (*domain.Answer, error)

	// SearchAnswers queries answer records. Expects 200.
	SearchAnswers(ctx context.Context, user *domain.User, q domain.AnswerSearch) (*domain.AnswerSearchResult, error)
}
