package driving

import (
	"context"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// AnswerService retrieves, reviews and searches finished answers.
type AnswerService interface {
	// Get fetches the answer for a job id.
	Get(ctx context.Context, user *domain.User, jobID int64) (*domain.Answer, error)

	// Review fetches the answer for a job id, applies the expert
	// review fields, and pushes the update. System-generated fields
	// are preserved.
	Review(ctx context.Context, user *domain.User, jobID int64, answer string, score float64, notes string) (*domain.Answer, error)

	// Search queries answer records.
	Search(ctx context.Context, user *domain.User, q domain.AnswerSearch) (*domain.AnswerSearchResult, error)
}
