package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
	"github.com/redten-labs/redten-cli/internal/core/ports/driving"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService drives the submit → poll → fetch workflow.
type AskService struct {
	auth     driving.AuthService
	gateway  driven.Gateway
	history  driven.HistoryStore // nil disables history
	defaults domain.Credentials
}

// NewAskService creates the ask orchestrator. history may be nil.
func NewAskService(auth driving.AuthService, gateway driven.Gateway, history driven.HistoryStore, defaults domain.Credentials) *AskService {
	return &AskService{
		auth:     auth,
		gateway:  gateway,
		history:  history,
		defaults: defaults,
	}
}

// Ask converts a question plus a RAG collection id into an answer.
// The outcome is returned even on error: a nil User means
// authentication failed, a nil Status means submission or polling
// failed, and a nil Answer with a present Status means the status
// poll succeeded but the answer fetch did not.
//
// With opts.NoWait the call returns right after submission with a
// synthesized status snapshot; the caller polls separately using
// Status.JobID. Otherwise the call blocks, polling at
// opts.PollInterval until ctx is cancelled or a status appears.
// There is no internal retry cap: callers impose deadlines through
// the context.
func (s *AskService) Ask(ctx context.Context, question, collectionID string, opts domain.AskOptions) (*domain.AskOutcome, error) {
	outcome := &domain.AskOutcome{}

	// Validation happens strictly before any network call.
	if len(question) < domain.MinQuestionLength {
		logger.Error("please ask a question of at least %d characters", domain.MinQuestionLength)
		return outcome, fmt.Errorf("question too short: %w", domain.ErrInvalidInput)
	}

	creds := opts.Credentials
	if creds.Email == "" {
		creds.Email = s.defaults.Email
	}
	if creds.Password == "" {
		creds.Password = s.defaults.Password
	}
	var missing []string
	if creds.Email == "" {
		missing = append(missing, "AI_EMAIL")
	}
	if creds.Password == "" {
		missing = append(missing, "AI_PASSWORD")
	}
	if len(missing) > 0 {
		logger.Error("please set these environment variables and retry: %s", strings.Join(missing, ", "))
		return outcome, fmt.Errorf("%w: %s", domain.ErrMissingCredentials, strings.Join(missing, ", "))
	}

	logger.Section("Ask Workflow")
	user, err := s.auth.Authenticate(ctx, creds, true)
	if err != nil {
		logger.Error("failed to login as user: %s", creds.Email)
		return outcome, err
	}
	outcome.User = user

	params := opts.Params
	if collectionID != "" {
		params.CollectionID = collectionID
	}
	params.ApplyDefaults()
	if params.SessionID == "" {
		params.SessionID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	logger.Info("user=%d asking=%q collection_id=%s", user.ID, question, collectionID)
	job, err := s.gateway.SubmitJob(ctx, user, domain.NewJobSubmission(question, user.ID, params))
	if err != nil {
		logger.Error("failed to start job: %v", err)
		return outcome, err
	}

	if opts.NoWait {
		logger.Debug("not waiting for job_id=%d", job.ID)
		outcome.Status = &domain.JobStatus{
			JobID:  job.ID,
			UserID: user.ID,
			State:  job.State,
		}
		s.record(ctx, question, params.CollectionID, nil, job.ID)
		return outcome, nil
	}

	status, answer, err := s.waitForAnswer(ctx, user, job.ID, opts.PollInterval)
	outcome.Status = status
	outcome.Answer = answer
	if err != nil {
		return outcome, err
	}

	s.record(ctx, question, params.CollectionID, answer, job.ID)
	return outcome, nil
}

// waitForAnswer polls the job status until it exists, then fetches the
// answer by the status snapshot's job id - that lookup through the
// snapshot, not the submission id, is the binding correlation step.
func (s *AskService) waitForAnswer(ctx context.Context, user *domain.User, jobID int64, interval time.Duration) (*domain.JobStatus, *domain.Answer, error) {
	if jobID < 1 {
		logger.Error("please use a positive integer job_id=%d value", jobID)
		return nil, nil, fmt.Errorf("job id %d: %w", jobID, domain.ErrInvalidInput)
	}

	if interval <= 0 {
		interval = domain.DefaultPollInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	logger.Debug("waiting for job_id=%d polling every %s", jobID, interval)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("polling job %d: %w", jobID, err)
		}

		status, err := s.gateway.GetJobStatus(ctx, user, jobID)
		if err != nil {
			if errors.Is(err, domain.ErrStatusPending) {
				logger.Debug("waiting job_id=%d %s", jobID, interval)
				continue
			}
			return nil, nil, err
		}

		answer, err := s.gateway.GetAnswer(ctx, user, status.JobID)
		if err != nil {
			logger.Error("failed getting ai result: job_id=%d", status.JobID)
			return status, nil, err
		}

		if answer.JobID != status.JobID {
			logger.Error("answer job_id=%d does not match status job_id=%d", answer.JobID, status.JobID)
			return status, answer, fmt.Errorf("job %d: %w", jobID, domain.ErrJobMismatch)
		}

		logger.Debug("answer for user=%d job_id=%d ai_result_id=%d", user.ID, status.JobID, answer.ID)
		return status, answer, nil
	}
}

// record appends to the local ask history. History is best-effort
// bookkeeping and never fails the ask.
func (s *AskService) record(ctx context.Context, question, collection string, answer *domain.Answer, jobID int64) {
	if s.history == nil {
		return
	}

	rec := driven.HistoryRecord{
		JobID:      jobID,
		Question:   question,
		Collection: collection,
		AskedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if answer != nil {
		rec.Answer = answer.Answer
		rec.Score = answer.Score
		rec.Latency = answer.Latency
	}

	if _, err := s.history.Add(ctx, rec); err != nil {
		logger.Warn("recording ask history: %v", err)
	}
}
