package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// SubmitJob submits an ask job and returns the server's handle.
func (c *Client) SubmitJob(ctx context.Context, user *domain.User, sub domain.JobSubmission) (*domain.Job, error) {
	logger.Debug("run job ask: %s/job question=%q", c.baseURL, sub.Ask.Msg)

	_, raw, err := c.do(ctx, request{
		method:     http.MethodPost,
		path:       "/job",
		body:       sub,
		user:       user,
		wantStatus: http.StatusCreated,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			c.logStatusError("submit job", serr)
		}
		return nil, err
	}

	var job domain.Job
	if err := decode(raw, &job); err != nil {
		return nil, fmt.Errorf("submit job: %w", err)
	}
	return &job, nil
}

// GetJobStatus polls the status snapshot for a job id. A snapshot not
// yet materialized by the scheduler is reported as
// domain.ErrStatusPending, the one error the ask workflow retries.
func (c *Client) GetJobStatus(ctx context.Context, user *domain.User, jobID int64) (*domain.JobStatus, error) {
	_, raw, err := c.do(ctx, request{
		method:     http.MethodGet,
		path:       fmt.Sprintf("/job/result/%d", jobID),
		user:       user,
		timeout:    timeoutLong,
		wantStatus: http.StatusOK,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			if serr.StatusCode == http.StatusNotFound {
				logger.Debug("job_id=%d status not ready", jobID)
				return nil, fmt.Errorf("job %d: %w", jobID, domain.ErrStatusPending)
			}
			if c.debug {
				c.logStatusError("get job status", serr)
			}
		}
		return nil, err
	}

	var status domain.JobStatus
	if err := decode(raw, &status); err != nil {
		return nil, fmt.Errorf("get job status %d: %w", jobID, err)
	}
	return &status, nil
}
