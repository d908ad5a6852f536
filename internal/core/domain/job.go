package domain

// Worker and job type selectors understood by the job scheduler.
// Ask jobs answer a question; generate jobs build synthetic datasets.
const (
	AskWorkerID = 1
	GenWorkerID = 2

	JobTypeAsk      = 1
	JobTypeGenerate = 2

	// JobStateReady marks a submission as ready for work.
	JobStateReady = 1
)

// Default generation parameters applied when the caller does not
// override them.
const (
	DefaultModelName      = "mistral-7b-instruct-v0.1.Q4_K_M.gguf"
	DefaultEmbedModelName = "sentence-transformers/all-MiniLM-L6-v2"

	DefaultMaxTokens = 512
	DefaultNCtx      = 2048
	DefaultNBatch    = 10

	DefaultMatchDocs    = 3
	DefaultMaxDocScores = 3
	DefaultMinQScore    = 0.3
	DefaultMinAScore    = 0.3
)

// JobParams are caller overrides for a job submission. The zero value
// means "use the default" for every field; merged defaults are applied
// by ApplyDefaults before the submission is built.
type JobParams struct {
	// ModelName selects the LLM model.
	ModelName string

	// EmbedModelName selects the embedding model for RAG search.
	EmbedModelName string

	// CollectionID selects the RAG collection by id.
	CollectionID string

	// CollectionName selects the RAG collection by name.
	CollectionName string

	// MaxTokens caps the generated token count.
	MaxTokens int

	// NCtx is the context window size. The deployed model usually
	// pins this; override with care.
	NCtx int

	// NBatch is the batch count for the question.
	NBatch int

	// MatchDocs is how many RAG documents may match before the
	// question proceeds to the LLM.
	MatchDocs int

	// MaxDocScores is how many document scores are required.
	MaxDocScores int

	// MinQScore is the minimum RAG source confidence for the question.
	MinQScore float64

	// MinAScore is the minimum RAG source confidence for the answer.
	MinAScore float64

	// Tags are free-form comma-delimited tags for the question.
	Tags string

	// SessionID correlates questions within a user session.
	// Synthesized when empty.
	SessionID string

	// DerivedSessionID is a sub-tracking id for granular context.
	DerivedSessionID string
}

// ApplyDefaults fills every unset field with the fixed default.
// Caller-supplied values always win.
func (p *JobParams) ApplyDefaults() {
	if p.ModelName == "" {
		p.ModelName = DefaultModelName
	}
	if p.EmbedModelName == "" {
		p.EmbedModelName = DefaultEmbedModelName
	}
	if p.MaxTokens == 0 {
		p.MaxTokens = DefaultMaxTokens
	}
	if p.NCtx == 0 {
		p.NCtx = DefaultNCtx
	}
	if p.NBatch == 0 {
		p.NBatch = DefaultNBatch
	}
	if p.MatchDocs == 0 {
		p.MatchDocs = DefaultMatchDocs
	}
	if p.MaxDocScores == 0 {
		p.MaxDocScores = DefaultMaxDocScores
	}
	if p.MinQScore == 0 {
		p.MinQScore = DefaultMinQScore
	}
	if p.MinAScore == 0 {
		p.MinAScore = DefaultMinAScore
	}
}

// RAGRequest is the nested retrieval block of a job submission.
// The list fields are reserved for server-side ingestion sources and
// are always sent empty by this client.
type RAGRequest struct {
	Dirs         []string `json:"dirs"`
	S3           []string `json:"s3"`
	Caches       []string `json:"caches"`
	RSS          []string `json:"rss"`
	MatchDocs    int      `json:"match_docs"`
	MaxDocScores int      `json:"max_doc_scores"`
	MinQScore    float64  `json:"min_q_score"`
	MinAScore    float64  `json:"min_a_score"`
}

// AskRequest is the nested question block of a job submission.
type AskRequest struct {
	Msg              string         `json:"msg"`
	ModelName        string         `json:"model_name"`
	EmbedModelName   string         `json:"embed_model_name"`
	CollectionID     string         `json:"collection_id,omitempty"`
	CollectionName   string         `json:"collection_name,omitempty"`
	MaxTokens        int            `json:"max_tokens"`
	NCtx             int            `json:"n_ctx"`
	NBatch           int            `json:"n_batch"`
	RAG              RAGRequest     `json:"rag"`
	Data             map[string]any `json:"data"`
	Tags             string         `json:"tags,omitempty"`
	SessionID        string         `json:"session_id,omitempty"`
	DerivedSessionID string         `json:"derived_session_id,omitempty"`
}

// JobSubmission is the immutable request payload for POST /job.
// Built once per ask call and sent verbatim as the request body.
type JobSubmission struct {
	UserID   int64      `json:"user_id"`
	WorkerID int        `json:"worker_id"`
	State    int        `json:"state"`
	JobType  int        `json:"job_type"`
	Ask      AskRequest `json:"ask"`
}

// NewJobSubmission builds an ask-type submission for the given
// question and user. Params must already have defaults applied.
func NewJobSubmission(question string, userID int64, p JobParams) JobSubmission {
	return JobSubmission{
		UserID:   userID,
		WorkerID: AskWorkerID,
		State:    JobStateReady,
		JobType:  JobTypeAsk,
		Ask: AskRequest{
			Msg:            question,
			ModelName:      p.ModelName,
			EmbedModelName: p.EmbedModelName,
			CollectionID:   p.CollectionID,
			CollectionName: p.CollectionName,
			MaxTokens:      p.MaxTokens,
			NCtx:           p.NCtx,
			NBatch:         p.NBatch,
			RAG: RAGRequest{
				Dirs:         []string{},
				S3:           []string{},
				Caches:       []string{},
				RSS:          []string{},
				MatchDocs:    p.MatchDocs,
				MaxDocScores: p.MaxDocScores,
				MinQScore:    p.MinQScore,
				MinAScore:    p.MinAScore,
			},
			Data:             map[string]any{},
			Tags:             p.Tags,
			SessionID:        p.SessionID,
			DerivedSessionID: p.DerivedSessionID,
		},
	}
}

// Job is the server's acknowledgment of a submission. Immutable once
// received; ID is the sole correlation key for all later polling.
type Job struct {
	// ID is the numeric job identifier.
	ID int64 `json:"id"`

	// UserID is the owning account.
	UserID int64 `json:"user_id"`

	// WorkerID is the worker pool assigned to the job.
	WorkerID int `json:"worker_id"`

	// JobType distinguishes ask from generate jobs.
	JobType int `json:"job_type"`

	// State is the lifecycle state.
	State int `json:"state"`

	// Status is the human-readable status.
	Status string `json:"status,omitempty"`

	// Data is free-form job metadata.
	Data map[string]any `json:"data,omitempty"`

	// Msg is a free-form server message.
	Msg string `json:"msg,omitempty"`

	// CreatedAt and UpdatedAt are server-formatted timestamps.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// JobStatus is a point-in-time read of job progress. It is keyed by
// JobID and correlates 1:1 with the Job that produced it. Absence is
// a valid transient state until the server schedules the job.
type JobStatus struct {
	// ID is the status record's own identifier.
	ID int64 `json:"id"`

	// JobID is the job this snapshot describes.
	JobID int64 `json:"job_id"`

	// WorkerID is the worker processing the job.
	WorkerID int `json:"worker_id"`

	// JobType distinguishes ask from generate jobs.
	JobType int `json:"job_type"`

	// UserID is the owning account.
	UserID int64 `json:"user_id"`

	// State is the lifecycle state.
	State int `json:"state"`

	// Data is free-form progress metadata.
	Data map[string]any `json:"data,omitempty"`

	// Msg is a free-form server message.
	Msg string `json:"msg,omitempty"`

	// CreatedAt and UpdatedAt are server-formatted timestamps.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
