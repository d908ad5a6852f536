package cli

import (
	"context"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	outcome *domain.AskOutcome
	err     error

	lastQuestion string
	lastOpts     domain.AskOptions
}

func (m *mockAskService) Ask(_ context.Context, question, _ string, opts domain.AskOptions) (*domain.AskOutcome, error) {
	m.lastQuestion = question
	m.lastOpts = opts
	return m.outcome, m.err
}

// mockAuthService is a mock implementation of driving.AuthService.
type mockAuthService struct {
	user       *domain.User
	loginErr   error
	authErr    error
	logoutErr  error
	loginCalls int
}

func (m *mockAuthService) Authenticate(_ context.Context, _ domain.Credentials, _ bool) (*domain.User, error) {
	return m.user, m.authErr
}

func (m *mockAuthService) Login(_ context.Context, _, _ string, _ bool) (*domain.User, error) {
	m.loginCalls++
	return m.user, m.loginErr
}

func (m *mockAuthService) Logout(_ context.Context) error {
	return m.logoutErr
}

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer *domain.Answer
	result *domain.AnswerSearchResult
	err    error
}

func (m *mockAnswerService) Get(_ context.Context, _ *domain.User, _ int64) (*domain.Answer, error) {
	return m.answer, m.err
}

func (m *mockAnswerService) Review(_ context.Context, _ *domain.User, _ int64, _ string, _ float64, _ string) (*domain.Answer, error) {
	return m.answer, m.err
}

func (m *mockAnswerService) Search(_ context.Context, _ *domain.User, _ domain.AnswerSearch) (*domain.AnswerSearchResult, error) {
	return m.result, m.err
}

// mockHistoryStore is a mock implementation of driven.HistoryStore.
type mockHistoryStore struct {
	recs []driven.HistoryRecord
	err  error
}

func (m *mockHistoryStore) Add(_ context.Context, rec driven.HistoryRecord) (*driven.HistoryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.recs = append(m.recs, rec)
	return &rec, nil
}

func (m *mockHistoryStore) Recent(_ context.Context, limit int) ([]driven.HistoryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.recs) > limit {
		return m.recs[:limit], nil
	}
	return m.recs, nil
}

func (m *mockHistoryStore) Close() error { return nil }

func mockHistoryRecord(jobID int64, question, answer string) driven.HistoryRecord {
	return driven.HistoryRecord{
		JobID:    jobID,
		Question: question,
		Answer:   answer,
		AskedAt:  "2026-08-01T00:00:00Z",
	}
}

func statusForJob(id int64) *domain.JobStatus {
	return &domain.JobStatus{JobID: id, State: domain.JobStateReady}
}

// setupTestServices wires mock services into the package-level slots
// and returns a cleanup restoring the previous state.
func setupTestServices() func() {
	prevAsk, prevAuth, prevAnswer, prevHistory := askService, authService, answerService, historyStore

	askService = &mockAskService{
		outcome: &domain.AskOutcome{
			Answer: &domain.Answer{JobID: 42, Question: "what is 2+2?", Answer: "4", Score: 0.9},
		},
	}
	authService = &mockAuthService{
		user: &domain.User{ID: 1, Email: "user@example.com", Token: "tok", Role: "user"},
	}
	answerService = &mockAnswerService{
		answer: &domain.Answer{JobID: 42, Question: "what is 2+2?", Answer: "4", Score: 0.9},
		result: &domain.AnswerSearchResult{Recs: []domain.Answer{{JobID: 42, Question: "what is 2+2?", Answer: "4"}}},
	}
	historyStore = &mockHistoryStore{}

	return func() {
		askService, authService, answerService, historyStore = prevAsk, prevAuth, prevAnswer, prevHistory
	}
}
