package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

func noopRun(context.Context) (*domain.AskOutcome, error) {
	return &domain.AskOutcome{}, nil
}

func TestNewModel(t *testing.T) {
	m := NewModel("what is 2+2?", noopRun)
	assert.Equal(t, "what is 2+2?", m.question)
	assert.NotNil(t, m.ctx)
	assert.False(t, m.done)
}

func TestModel_ViewWhileWaiting(t *testing.T) {
	m := NewModel("what is 2+2?", noopRun)
	view := m.View()
	assert.Contains(t, view, "what is 2+2?")
	assert.Contains(t, view, "waiting for answer")
}

func TestModel_DoneMessageQuits(t *testing.T) {
	m := NewModel("what is 2+2?", noopRun)

	outcome := &domain.AskOutcome{
		Answer: &domain.Answer{
			JobID:    42,
			Question: "what is 2+2?",
			Answer:   "4",
			Score:    0.9,
		},
	}
	updated, cmd := m.Update(askDoneMsg{outcome: outcome})
	require.NotNil(t, cmd)

	got, ok := updated.(Model)
	require.True(t, ok)
	assert.True(t, got.done)

	view := got.View()
	assert.Contains(t, view, "4")
	assert.Contains(t, view, "what is 2+2?")
	assert.Contains(t, view, "42")
}

func TestModel_ErrorView(t *testing.T) {
	m := NewModel("what is 2+2?", noopRun)

	updated, _ := m.Update(askDoneMsg{err: domain.ErrAuthFailed})
	got := updated.(Model)

	view := got.View()
	assert.Contains(t, view, "ask failed")
}

func TestModel_CtrlCCancels(t *testing.T) {
	m := NewModel("what is 2+2?", noopRun)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)

	got := updated.(Model)
	assert.True(t, got.done)
	_, err := got.Outcome()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Error(t, got.ctx.Err())
}

func TestModel_NoAnswerOutcome(t *testing.T) {
	m := NewModel("what is 2+2?", noopRun)

	updated, _ := m.Update(askDoneMsg{outcome: &domain.AskOutcome{}})
	got := updated.(Model)

	view := got.View()
	assert.True(t, strings.Contains(view, "no answer yet"), view)
}
