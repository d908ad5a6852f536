// Package tui renders the interactive ask view: a spinner while the
// job runs, then the answer in a styled panel. It implements tea.Model
// for use with Bubbletea.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/redten-labs/redten-cli/internal/core/domain"
)

// RunFunc executes the ask workflow. It is called once, on its own
// goroutine, and may block until the answer arrives or ctx ends.
type RunFunc func(ctx context.Context) (*domain.AskOutcome, error)

// askDoneMsg carries the workflow result back into the update loop.
type askDoneMsg struct {
	outcome *domain.AskOutcome
	err     error
}

// tickMsg drives the elapsed-time readout.
type tickMsg time.Time

// Model is the ask view state.
type Model struct {
	question string
	run      RunFunc

	spinner spinner.Model
	start   time.Time
	elapsed time.Duration

	outcome *domain.AskOutcome
	err     error
	done    bool

	ctx    context.Context
	cancel context.CancelFunc

	styles askStyles
}

type askStyles struct {
	question lipgloss.Style
	status   lipgloss.Style
	panel    lipgloss.Style
	label    lipgloss.Style
	errText  lipgloss.Style
}

func newAskStyles() askStyles {
	return askStyles{
		question: lipgloss.NewStyle().Bold(true),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}

// NewModel creates the ask view for one question.
func NewModel(question string, run RunFunc) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		question: question,
		run:      run,
		spinner:  sp,
		start:    time.Now(),
		ctx:      ctx,
		cancel:   cancel,
		styles:   newAskStyles(),
	}
}

// Init starts the workflow goroutine, the spinner and the clock.
func (m Model) Init() tea.Cmd {
	runCmd := func() tea.Msg {
		outcome, err := m.run(m.ctx)
		return askDoneMsg{outcome: outcome, err: err}
	}
	return tea.Batch(m.spinner.Tick, runCmd, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages following the Elm architecture.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			m.err = context.Canceled
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case askDoneMsg:
		m.outcome = msg.outcome
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case tickMsg:
		m.elapsed = time.Since(m.start)
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	if !m.done {
		return fmt.Sprintf("%s %s\n%s\n",
			m.spinner.View(),
			m.styles.question.Render(m.question),
			m.styles.status.Render(fmt.Sprintf("waiting for answer... %ds", int(m.elapsed.Seconds()))),
		)
	}

	if m.err != nil {
		return m.styles.errText.Render(fmt.Sprintf("ask failed: %v", m.err)) + "\n"
	}
	return m.renderOutcome() + "\n"
}

// renderOutcome formats a finished ask for the terminal.
func (m Model) renderOutcome() string {
	if m.outcome == nil || m.outcome.Answer == nil {
		return m.styles.status.Render("no answer yet")
	}

	a := m.outcome.Answer
	body := m.styles.question.Render(a.Question) + "\n\n" + a.Answer
	meta := fmt.Sprintf("%s %d   %s %.2f",
		m.styles.label.Render("job"), a.JobID,
		m.styles.label.Render("score"), a.Score,
	)
	if a.Latency > 0 {
		meta += fmt.Sprintf("   %s %.1fs", m.styles.label.Render("latency"), a.Latency)
	}
	return m.styles.panel.Render(body) + "\n" + meta
}

// Outcome returns the finished workflow result, nil error included.
func (m Model) Outcome() (*domain.AskOutcome, error) {
	return m.outcome, m.err
}

// Run drives the full interactive ask: spinner while the workflow
// runs, answer panel after. Returns the workflow outcome.
func Run(question string, run RunFunc) (*domain.AskOutcome, error) {
	p := tea.NewProgram(NewModel(question, run))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("ask view: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("ask view: unexpected model type %T", final)
	}
	return m.Outcome()
}
