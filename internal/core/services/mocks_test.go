package services

import (
	"context"
	"sync"

	"github.com/redten-labs/redten-cli/internal/core/domain"
	"github.com/redten-labs/redten-cli/internal/core/ports/driven"
)

// mockGateway implements driven.Gateway for testing. Each method
// delegates to an optional function field and counts its calls.
type mockGateway struct {
	mu sync.Mutex

	loginFn        func(email, password string) (*domain.User, error)
	createUserFn   func(username, email, password string) (*domain.User, error)
	getUserFn      func(id int64) (*domain.User, error)
	submitJobFn    func(sub domain.JobSubmission) (*domain.Job, error)
	getJobStatusFn func(jobID int64) (*domain.JobStatus, error)
	getAnswerFn    func(jobID int64) (*domain.Answer, error)
	createAnswerFn func(answer domain.Answer) (*domain.Answer, error)
	updateAnswerFn func(answer domain.Answer) (*domain.Answer, error)
	searchFn       func(q domain.AnswerSearch) (*domain.AnswerSearchResult, error)

	loginCalls        int
	createUserCalls   int
	getUserCalls      int
	submitJobCalls    int
	getJobStatusCalls int
	getAnswerCalls    int
	createAnswerCalls int
	updateAnswerCalls int
	searchCalls       int
}

var _ driven.Gateway = (*mockGateway)(nil)

func (m *mockGateway) Login(_ context.Context, email, password string) (*domain.User, error) {
	m.mu.Lock()
	m.loginCalls++
	m.mu.Unlock()
	if m.loginFn == nil {
		return &domain.User{ID: 1, Email: email, Token: "tok"}, nil
	}
	return m.loginFn(email, password)
}

func (m *mockGateway) CreateUser(_ context.Context, username, email, password string) (*domain.User, error) {
	m.mu.Lock()
	m.createUserCalls++
	m.mu.Unlock()
	if m.createUserFn == nil {
		return &domain.User{ID: 1, Email: email}, nil
	}
	return m.createUserFn(username, email, password)
}

func (m *mockGateway) GetUser(_ context.Context, _ *domain.User, id int64) (*domain.User, error) {
	m.mu.Lock()
	m.getUserCalls++
	m.mu.Unlock()
	if m.getUserFn == nil {
		return &domain.User{ID: id}, nil
	}
	return m.getUserFn(id)
}

func (m *mockGateway) SubmitJob(_ context.Context, _ *domain.User, sub domain.JobSubmission) (*domain.Job, error) {
	m.mu.Lock()
	m.submitJobCalls++
	m.mu.Unlock()
	if m.submitJobFn == nil {
		return &domain.Job{ID: 100, UserID: sub.UserID, State: domain.JobStateReady}, nil
	}
	return m.submitJobFn(sub)
}

func (m *mockGateway) GetJobStatus(_ context.Context, _ *domain.User, jobID int64) (*domain.JobStatus, error) {
	m.mu.Lock()
	m.getJobStatusCalls++
	m.mu.Unlock()
	if m.getJobStatusFn == nil {
		return &domain.JobStatus{JobID: jobID}, nil
	}
	return m.getJobStatusFn(jobID)
}

func (m *mockGateway) GetAnswer(_ context.Context, _ *domain.User, jobID int64) (*domain.Answer, error) {
	m.mu.Lock()
	m.getAnswerCalls++
	m.mu.Unlock()
	if m.getAnswerFn == nil {
		return &domain.Answer{JobID: jobID}, nil
	}
	return m.getAnswerFn(jobID)
}

func (m *mockGateway) CreateAnswer(_ context.Context, _ *domain.User, answer domain.Answer) (*domain.Answer, error) {
	m.mu.Lock()
	m.createAnswerCalls++
	m.mu.Unlock()
	if m.createAnswerFn == nil {
		return &answer, nil
	}
	return m.createAnswerFn(answer)
}

func (m *mockGateway) UpdateAnswer(_ context.Context, _ *domain.User, answer domain.Answer) (*domain.Answer, error) {
	m.mu.Lock()
	m.updateAnswerCalls++
	m.mu.Unlock()
	if m.updateAnswerFn == nil {
		return &answer, nil
	}
	return m.updateAnswerFn(answer)
}

func (m *mockGateway) SearchAnswers(_ context.Context, _ *domain.User, q domain.AnswerSearch) (*domain.AnswerSearchResult, error) {
	m.mu.Lock()
	m.searchCalls++
	m.mu.Unlock()
	if m.searchFn == nil {
		return &domain.AnswerSearchResult{}, nil
	}
	return m.searchFn(q)
}

// mockCache implements driven.CredentialsCache with an in-memory slot.
type mockCache struct {
	user *domain.User

	loadCalls  int
	saveCalls  int
	clearCalls int
}

var _ driven.CredentialsCache = (*mockCache)(nil)

func (m *mockCache) Load(_ context.Context) (*domain.User, error) {
	m.loadCalls++
	if m.user == nil {
		return nil, domain.ErrNotFound
	}
	return m.user, nil
}

func (m *mockCache) Save(_ context.Context, user *domain.User) error {
	m.saveCalls++
	m.user = user
	return nil
}

func (m *mockCache) Clear(_ context.Context) error {
	m.clearCalls++
	m.user = nil
	return nil
}

// mockHistory implements driven.HistoryStore in memory.
type mockHistory struct {
	recs   []driven.HistoryRecord
	addErr error
}

var _ driven.HistoryStore = (*mockHistory)(nil)

func (m *mockHistory) Add(_ context.Context, rec driven.HistoryRecord) (*driven.HistoryRecord, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	rec.ID = int64(len(m.recs) + 1)
	m.recs = append(m.recs, rec)
	return &rec, nil
}

func (m *mockHistory) Recent(_ context.Context, limit int) ([]driven.HistoryRecord, error) {
	out := make([]driven.HistoryRecord, 0, limit)
	for i := len(m.recs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.recs[i])
	}
	return out, nil
}

func (m *mockHistory) Close() error { return nil }
