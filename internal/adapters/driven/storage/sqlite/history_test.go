package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
)

// setupTestStore creates a temporary history store for testing.
func setupTestStore(t *testing.T) (*HistoryStore, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "redten-test-*")
	require.NoError(t, err)

	store, err := NewHistoryStore(filepath.Join(tempDir, "history.db"))
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		assert.NoError(t, store.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return store, cleanup
}

func TestHistoryStore_AddAssignsID(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	rec, err := store.Add(ctx, driven.HistoryRecord{
		JobID:    42,
		Question: "what is 2+2?",
		Answer:   "4",
		AskedAt:  "2026-08-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Positive(t, rec.ID)
	assert.Equal(t, int64(42), rec.JobID)
}

func TestHistoryStore_RecentNewestFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		_, err := store.Add(ctx, driven.HistoryRecord{
			JobID:    i,
			Question: "q",
			AskedAt:  "2026-08-01T00:00:00Z",
		})
		require.NoError(t, err)
	}

	recs, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, int64(5), recs[0].JobID)
	assert.Equal(t, int64(4), recs[1].JobID)
	assert.Equal(t, int64(3), recs[2].JobID)
}

func TestHistoryStore_RecentEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	recs, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestHistoryStore_RoundTripFields(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.Add(ctx, driven.HistoryRecord{
		JobID:      7,
		Question:   "what color is the sky?",
		Answer:     "blue",
		Collection: "science",
		Score:      0.91,
		Latency:    2.5,
		AskedAt:    "2026-08-01T12:30:00Z",
	})
	require.NoError(t, err)

	recs, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.Equal(t, int64(7), rec.JobID)
	assert.Equal(t, "what color is the sky?", rec.Question)
	assert.Equal(t, "blue", rec.Answer)
	assert.Equal(t, "science", rec.Collection)
	assert.Equal(t, 0.91, rec.Score)
	assert.Equal(t, 2.5, rec.Latency)
	assert.Equal(t, "2026-08-01T12:30:00Z", rec.AskedAt)
}

func TestHistoryStore_ReopenKeepsRecords(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "redten-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "history.db")
	ctx := context.Background()

	store, err := NewHistoryStore(path)
	require.NoError(t, err)
	_, err = store.Add(ctx, driven.HistoryRecord{JobID: 1, Question: "q", AskedAt: "2026-08-01T00:00:00Z"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening runs migrations again; they must be no-ops.
	store, err = NewHistoryStore(path)
	require.NoError(t, err)
	defer store.Close()

	recs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
