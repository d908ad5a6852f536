// Package domain defines the core business entities for the redten client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - User: An authenticated principal with a bearer token
//   - JobSubmission: An immutable ask-job request payload
//   - Job: The server's acknowledgment of a submission
//   - JobStatus: A point-in-time snapshot of job progress
//   - Answer: The finished question/answer artifact
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
