package driven

import "context"

// HistoryRecord is one completed (or submitted) ask, kept locally so
// users can find their job ids and answers again without the server.
type HistoryRecord struct {
	// ID is the local record id.
	ID int64

	// JobID is the server-side job id.
	JobID int64

	// Question and Answer are the exchanged texts. Answer is empty
	// for no-wait submissions.
	Question string
	Answer   string

	// Collection is the RAG collection the question ran against.
	Collection string

	// Score is the answer confidence, when an answer was fetched.
	Score float64

	// Latency is the server-side processing time in seconds.
	Latency float64

	// AskedAt is the local submission time, RFC 3339.
	AskedAt string
}

// HistoryStore records asks locally. Optional: a nil store disables
// history without affecting the ask flow.
type HistoryStore interface {
	// Add appends a record and returns it with ID set.
	Add(ctx context.Context, rec HistoryRecord) (*HistoryRecord, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]HistoryRecord, error)

	// Close releases the underlying storage.
	Close() error
}
