package domain

// Answer is the finished artifact produced by an ask job. One answer
// exists per job in this workflow, keyed by JobID. System-generated
// fields (ID, JobID, CreatedAt) never change after creation; only the
// reviewed fields are mutable, through an explicit update.
type Answer struct {
	// ID is the answer record's identifier.
	ID int64 `json:"id"`

	// UserID is the owning account.
	UserID int64 `json:"user_id"`

	// JobID is the job that produced this answer.
	JobID int64 `json:"job_id"`

	// WorkerID is the worker that generated the answer.
	WorkerID int `json:"worker_id"`

	// State is the record lifecycle state.
	State int `json:"state"`

	// Question is the question as the worker received it.
	Question string `json:"question"`

	// Answer is the generated answer text.
	Answer string `json:"answer"`

	// ModelName is the LLM that produced the answer.
	ModelName string `json:"model_name,omitempty"`

	// Score is the overall confidence score.
	Score float64 `json:"score"`

	// QuestionScore and AnswerScore are the RAG confidence scores.
	QuestionScore float64 `json:"question_score"`
	AnswerScore   float64 `json:"answer_score"`

	// MatchSource, MatchPage and MatchContent describe the RAG
	// document match that grounded the answer.
	MatchSource  string `json:"match_source,omitempty"`
	MatchPage    int    `json:"match_page,omitempty"`
	MatchContent string `json:"match_content,omitempty"`

	// Summarized fields hold condensed forms for session history.
	SummarizedQuestion string  `json:"summarized_question,omitempty"`
	SummarizedAnswer   string  `json:"summarized_answer,omitempty"`
	SummarizedScore    float64 `json:"summarized_score,omitempty"`

	// Reviewed fields are the human-feedback channel: an expert's
	// corrected answer, score and notes. These are the only fields an
	// update is expected to change.
	ReviewedAnswer        string  `json:"reviewed_answer,omitempty"`
	ReviewedScore         float64 `json:"reviewed_score,omitempty"`
	ReviewedComputedScore float64 `json:"reviewed_computed_score,omitempty"`
	ReviewedNotes         string  `json:"reviewed_notes,omitempty"`

	// Collection identifies the RAG collection searched.
	Collection      string `json:"collection,omitempty"`
	CollectionNotes string `json:"collection_notes,omitempty"`

	// SessionID and DerivedSessionID correlate the answer to a
	// user session.
	SessionID        string `json:"session_id,omitempty"`
	DerivedSessionID string `json:"derived_session_id,omitempty"`

	// EmbedModelName is the embedding model used for RAG search.
	EmbedModelName string `json:"embed_model_name,omitempty"`

	// Category and Tags are free-form categorization.
	Category string `json:"category,omitempty"`
	Tags     string `json:"tags,omitempty"`

	// Latency is the server-side processing time in seconds.
	Latency float64 `json:"latency,omitempty"`

	// Data is free-form record metadata.
	Data map[string]any `json:"data,omitempty"`

	// CreatedAt and UpdatedAt are server-formatted timestamps.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Review applies an expert review to the answer, touching only the
// mutable reviewed fields.
func (a *Answer) Review(answer string, score float64, notes string) {
	a.ReviewedAnswer = answer
	a.ReviewedScore = score
	a.ReviewedNotes = notes
}

// AnswerSearch is the request body for an answer search. The server
// treats every field as an optional filter.
type AnswerSearch struct {
	UserID       int64  `json:"user_id,omitempty"`
	JobID        int64  `json:"job_id,omitempty"`
	Question     string `json:"question,omitempty"`
	Collection   string `json:"collection,omitempty"`
	Category     string `json:"category,omitempty"`
	Tags         string `json:"tags,omitempty"`
	SessionID    string `json:"session_id,omitempty"`
	OnlyReviewed bool   `json:"only_reviewed,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// AnswerSearchResult is the response of an answer search.
type AnswerSearchResult struct {
	// Query is the logical name of the query the server ran.
	Query string `json:"query,omitempty"`

	// SQLQuery is a server debugging value tracking the statement
	// used to find the matches.
	SQLQuery string `json:"sql_query,omitempty"`

	// Msg is a free-form server message.
	Msg string `json:"msg,omitempty"`

	// Recs are the matching answer records.
	Recs []Answer `json:"recs"`
}
