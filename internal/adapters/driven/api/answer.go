package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// GetAnswer fetches the answer record produced by a job.
func (c *Client) GetAnswer(ctx context.Context, user *domain.User, jobID int64) (*domain.Answer, error) {
	_, raw, err := c.do(ctx, request{
		method:     http.MethodGet,
		path:       fmt.Sprintf("/ai/result/%d", jobID),
		user:       user,
		wantStatus: http.StatusOK,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			if serr.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("answer for job %d: %w", jobID, domain.ErrNotFound)
			}
			c.logStatusError("get answer", serr)
		}
		return nil, err
	}

	var answer domain.Answer
	if err := decode(raw, &answer); err != nil {
		return nil, fmt.Errorf("get answer %d: %w", jobID, err)
	}
	logger.Debug("got answer id=%d job_id=%d", answer.ID, answer.JobID)
	return &answer, nil
}

// CreateAnswer creates an answer record. Remote workers use this to
// stream results in over HTTPS; the interactive ask flow never does.
// The server assigns the id, so a caller-set one is dropped.
func (c *Client) CreateAnswer(ctx context.Context, user *domain.User, answer domain.Answer) (*domain.Answer, error) {
	answer.ID = 0

	_, raw, err := c.do(ctx, request{
		method:     http.MethodPost,
		path:       "/ai/result",
		body:       answer,
		user:       user,
		wantStatus: http.StatusCreated,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			c.logStatusError("create answer", serr)
		}
		return nil, err
	}

	var created domain.Answer
	if err := decode(raw, &created); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	return &created, nil
}

// UpdateAnswer pushes an answer's review fields. The server preserves
// the system-generated fields; the full record is sent for context.
func (c *Client) UpdateAnswer(ctx context.Context, user *domain.User, answer domain.Answer) (*domain.Answer, error) {
	_, raw, err := c.do(ctx, request{
		method:     http.MethodPut,
		path:       "/ai/result",
		body:       answer,
		user:       user,
		wantStatus: http.StatusOK,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			c.logStatusError("update answer", serr)
		}
		return nil, err
	}

	var updated domain.Answer
	if err := decode(raw, &updated); err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}
	return &updated, nil
}

// SearchAnswers queries answer records.
func (c *Client) SearchAnswers(ctx context.Context, user *domain.User, q domain.AnswerSearch) (*domain.AnswerSearchResult, error) {
	_, raw, err := c.do(ctx, request{
		method:     http.MethodPost,
		path:       "/ai/result/search",
		body:       q,
		user:       user,
		wantStatus: http.StatusOK,
	})
	if err != nil {
		var serr *StatusError
		if errors.As(err, &serr) {
			c.logStatusError("search answers", serr)
		}
		return nil, err
	}

	var result domain.AnswerSearchResult
	if err := decode(raw, &result); err != nil {
		return nil, fmt.Errorf("search answers: %w", err)
	}
	logger.Debug("search matched %d answer(s)", len(result.Recs))
	return &result, nil
}
