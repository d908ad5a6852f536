package driving

import (
	"context"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// AskService runs the submit → poll → fetch workflow that turns a
// question into an answer.
type AskService interface {
	// Ask submits the question against the given RAG collection and,
	// unless opts.NoWait is set, blocks until the answer is available
	// or ctx is cancelled. The outcome is returned even on error so
	// callers can inspect partial progress.
	Ask(ctx context.Context, question, collectionID string, opts domain.AskOptions) (*domain.AskOutcome, error)
}
