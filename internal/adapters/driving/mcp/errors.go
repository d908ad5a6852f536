// Package mcp provides an MCP (Model Context Protocol) server adapter
// for redten. It lets AI assistants ask questions through the job
// service and browse past answers.
package mcp

import "errors"

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")

// ErrMissingAuthService is returned when the auth service is not provided.
var ErrMissingAuthService = errors.New("mcp: auth service is required")
