package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobParams_ApplyDefaults_ZeroValue(t *testing.T) {
	p := JobParams{}
	p.ApplyDefaults()

	assert.Equal(t, DefaultModelName, p.ModelName)
	assert.Equal(t, DefaultEmbedModelName, p.EmbedModelName)
	assert.Equal(t, DefaultMaxTokens, p.MaxTokens)
	assert.Equal(t, DefaultNCtx, p.NCtx)
	assert.Equal(t, DefaultNBatch, p.NBatch)
	assert.Equal(t, DefaultMatchDocs, p.MatchDocs)
	assert.Equal(t, DefaultMaxDocScores, p.MaxDocScores)
	assert.Equal(t, DefaultMinQScore, p.MinQScore)
	assert.Equal(t, DefaultMinAScore, p.MinAScore)
}

func TestJobParams_ApplyDefaults_KeepsOverrides(t *testing.T) {
	p := JobParams{
		ModelName: "llama-3-8b-instruct.Q5_K_M.gguf",
		MaxTokens: 1024,
		MinQScore: 0.7,
	}
	p.ApplyDefaults()

	assert.Equal(t, "llama-3-8b-instruct.Q5_K_M.gguf", p.ModelName)
	assert.Equal(t, 1024, p.MaxTokens)
	assert.Equal(t, 0.7, p.MinQScore)
	// Untouched fields still get defaults.
	assert.Equal(t, DefaultEmbedModelName, p.EmbedModelName)
	assert.Equal(t, DefaultMinAScore, p.MinAScore)
}

func TestNewJobSubmission(t *testing.T) {
	p := JobParams{
		CollectionID: "embed-security",
		Tags:         "demo,qa",
		SessionID:    "abc123",
	}
	p.ApplyDefaults()

	sub := NewJobSubmission("What is 2+2?", 42, p)

	assert.Equal(t, int64(42), sub.UserID)
	assert.Equal(t, AskWorkerID, sub.WorkerID)
	assert.Equal(t, JobStateReady, sub.State)
	assert.Equal(t, JobTypeAsk, sub.JobType)

	assert.Equal(t, "What is 2+2?", sub.Ask.Msg)
	assert.Equal(t, "embed-security", sub.Ask.CollectionID)
	assert.Equal(t, "demo,qa", sub.Ask.Tags)
	assert.Equal(t, "abc123", sub.Ask.SessionID)
	assert.Equal(t, DefaultModelName, sub.Ask.ModelName)

	// The ingestion lists ride along empty, never nil, so they
	// serialize as [] rather than null.
	require.NotNil(t, sub.Ask.RAG.Dirs)
	require.NotNil(t, sub.Ask.RAG.S3)
	require.NotNil(t, sub.Ask.RAG.Caches)
	require.NotNil(t, sub.Ask.RAG.RSS)
	assert.Equal(t, DefaultMatchDocs, sub.Ask.RAG.MatchDocs)
}
