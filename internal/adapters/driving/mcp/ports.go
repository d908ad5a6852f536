package mcp

import (
	"github.com/redten-labs/redten-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Ask runs the submit-poll-fetch workflow.
	Ask driving.AskService

	// Auth produces authenticated identities for answer lookups.
	Auth driving.AuthService

	// Answer retrieves and searches finished answers.
	Answer driving.AnswerService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.Auth == nil {
		return ErrMissingAuthService
	}
	// Answer is optional: without it only ask_question is registered.
	return nil
}
