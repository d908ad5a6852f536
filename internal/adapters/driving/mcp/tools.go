package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// AskInput is the input schema for the ask_question tool.
type AskInput struct {
	Question     string `json:"question" jsonschema:"the question to submit to the AI service"`
	CollectionID string `json:"collection_id,omitempty" jsonschema:"RAG collection id to search for supporting documents"`
	SessionID    string `json:"session_id,omitempty" jsonschema:"session id correlating related questions"`
}

// AskOutput is the output schema for the ask_question tool.
type AskOutput struct {
	JobID  int64   `json:"job_id"`
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// GetAnswerInput is the input schema for the get_answer tool.
type GetAnswerInput struct {
	JobID int64 `json:"job_id" jsonschema:"the job id returned by a previous ask"`
}

// AnswerOutput represents one answer record.
type AnswerOutput struct {
	JobID          int64   `json:"job_id"`
	Question       string  `json:"question"`
	Answer         string  `json:"answer"`
	Score          float64 `json:"score"`
	ModelName      string  `json:"model_name,omitempty"`
	ReviewedAnswer string  `json:"reviewed_answer,omitempty"`
	ReviewedScore  float64 `json:"reviewed_score,omitempty"`
}

// SearchInput is the input schema for the search_answers tool.
type SearchInput struct {
	Question   string `json:"question,omitempty" jsonschema:"filter by question text"`
	Collection string `json:"collection,omitempty" jsonschema:"filter by RAG collection"`
	Tags       string `json:"tags,omitempty" jsonschema:"filter by tags"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search_answers tool.
type SearchOutput struct {
	Results []AnswerOutput `json:"results"`
	Count   int            `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_question",
		Description: "Submit a question to the AI service and wait for the answer",
	}, s.handleAsk)

	if s.ports.Answer != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_answer",
			Description: "Fetch the answer for a previously submitted job",
		}, s.handleGetAnswer)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_answers",
			Description: "Search previously answered questions",
		}, s.handleSearch)
	}
}

// handleAsk handles the ask_question tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	opts := domain.AskOptions{
		Params: domain.JobParams{SessionID: input.SessionID},
	}

	outcome, err := s.ports.Ask.Ask(ctx, input.Question, input.CollectionID, opts)
	if err != nil {
		return nil, AskOutput{}, err
	}
	if outcome.Answer == nil {
		return nil, AskOutput{}, domain.ErrNotFound
	}

	return nil, AskOutput{
		JobID:  outcome.Answer.JobID,
		Answer: outcome.Answer.Answer,
		Score:  outcome.Answer.Score,
	}, nil
}

// handleGetAnswer handles the get_answer tool invocation.
func (s *Server) handleGetAnswer(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetAnswerInput,
) (*mcp.CallToolResult, AnswerOutput, error) {
	user, err := s.ports.Auth.Authenticate(ctx, domain.Credentials{}, false)
	if err != nil {
		return nil, AnswerOutput{}, err
	}

	answer, err := s.ports.Answer.Get(ctx, user, input.JobID)
	if err != nil {
		return nil, AnswerOutput{}, err
	}

	return nil, answerOutput(answer), nil
}

// handleSearch handles the search_answers tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	user, err := s.ports.Auth.Authenticate(ctx, domain.Credentials{}, false)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	q := domain.AnswerSearch{
		Question:   input.Question,
		Collection: input.Collection,
		Tags:       input.Tags,
		Limit:      limit,
	}
	res, err := s.ports.Answer.Search(ctx, user, q)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]AnswerOutput, len(res.Recs)),
		Count:   len(res.Recs),
	}
	for i := range res.Recs {
		output.Results[i] = answerOutput(&res.Recs[i])
	}

	return nil, output, nil
}

func answerOutput(a *domain.Answer) AnswerOutput {
	return AnswerOutput{
		JobID:          a.JobID,
		Question:       a.Question,
		Answer:         a.Answer,
		Score:          a.Score,
		ModelName:      a.ModelName,
		ReviewedAnswer: a.ReviewedAnswer,
		ReviewedScore:  a.ReviewedScore,
	}
}
