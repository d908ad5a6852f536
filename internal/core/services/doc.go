// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The ask orchestrator lives here: it turns a question into a job,
// waits for completion, and fetches the answer, hiding the
// asynchronous server-side processing behind a blocking or
// non-blocking contract.
package services
