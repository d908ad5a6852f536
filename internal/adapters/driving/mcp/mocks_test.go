package mcp

import (
	"context"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	outcome *domain.AskOutcome
	err     error

	lastQuestion   string
	lastCollection string
}

func (m *mockAskService) Ask(
	_ context.Context,
	question, collectionID string,
	_ domain.AskOptions,
) (*domain.AskOutcome, error) {
	m.lastQuestion = question
	m.lastCollection = collectionID
	return m.outcome, m.err
}

// mockAuthService is a mock implementation of driving.AuthService.
type mockAuthService struct {
	user *domain.User
	err  error
}

func (m *mockAuthService) Authenticate(_ context.Context, _ domain.Credentials, _ bool) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockAuthService) Login(_ context.Context, _, _ string, _ bool) (*domain.User, error) {
	return m.user, m.err
}

func (m *mockAuthService) Logout(_ context.Context) error {
	return m.err
}

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer *domain.Answer
	result *domain.AnswerSearchResult
	err    error

	lastQuery domain.AnswerSearch
}

func (m *mockAnswerService) Get(_ context.Context, _ *domain.User, _ int64) (*domain.Answer, error) {
	return m.answer, m.err
}

func (m *mockAnswerService) Review(_ context.Context, _ *domain.User, _ int64, _ string, _ float64, _ string) (*domain.Answer, error) {
	return m.answer, m.err
}

func (m *mockAnswerService) Search(_ context.Context, _ *domain.User, q domain.AnswerSearch) (*domain.AnswerSearchResult, error) {
	m.lastQuery = q
	return m.result, m.err
}
