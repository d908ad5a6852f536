package services

import (
	"context"
	"fmt"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
	"github.com/redten-labs/redten-cli/internal/core/ports/driving"
	"github.com/redten-labs/redten-cli/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// AnswerService exposes finished answers for retrieval, expert review
// and search.
type AnswerService struct {
	gateway driven.Gateway
}

// NewAnswerService creates the answer service.
func NewAnswerService(gateway driven.Gateway) *AnswerService {
	return &AnswerService{gateway: gateway}
}

// Get fetches the answer for a job id.
func (s *AnswerService) Get(ctx context.Context, user *domain.User, jobID int64) (*domain.Answer, error) {
	if jobID < 1 {
		return nil, fmt.Errorf("job id %d: %w", jobID, domain.ErrInvalidInput)
	}
	return s.gateway.GetAnswer(ctx, user, jobID)
}

// Review runs the read-modify-write review cycle: fetch the current
// record, overwrite only the review fields, push the whole record
// back. Everything the server generated rides along unchanged.
func (s *AnswerService) Review(ctx context.Context, user *domain.User, jobID int64, answer string, score float64, notes string) (*domain.Answer, error) {
	rec, err := s.Get(ctx, user, jobID)
	if err != nil {
		logger.Error("cannot review job_id=%d without an existing answer", jobID)
		return nil, err
	}

	rec.Review(answer, score, notes)
	updated, err := s.gateway.UpdateAnswer(ctx, user, *rec)
	if err != nil {
		return nil, err
	}

	logger.Info("reviewed job_id=%d ai_result_id=%d score=%.2f", jobID, updated.ID, score)
	return updated, nil
}

// Search queries answer records server-side.
func (s *AnswerService) Search(ctx context.Context, user *domain.User, q domain.AnswerSearch) (*domain.AnswerSearchResult, error) {
	res, err := s.gateway.SearchAnswers(ctx, user, q)
	if err != nil {
		return nil, err
	}
	logger.Debug("search matched %d records", len(res.Recs))
	return res, nil
}
