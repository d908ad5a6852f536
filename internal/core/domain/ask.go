package domain

import "time"

// DefaultPollInterval is how long the ask workflow waits between job
// status polls when the caller does not override it.
const DefaultPollInterval = 2 * time.Second

// MinQuestionLength is the shortest question accepted by Ask.
const MinQuestionLength = 4

// AskOptions tune a single ask call. The zero value asks with
// configured credentials, default job parameters, and blocks until
// the answer arrives.
type AskOptions struct {
	// Credentials override the configured login identity.
	Credentials Credentials

	// Params override the default generation parameters.
	Params JobParams

	// NoWait returns right after submission with a synthesized status
	// snapshot and no answer; the caller polls separately by job id.
	NoWait bool

	// PollInterval is the wait between status polls.
	// Zero means DefaultPollInterval.
	PollInterval time.Duration
}

// AskOutcome is the composite result of one ask workflow. Any field
// may be nil: a nil User means authentication failed, a nil Status
// means submission or polling failed, and a nil Answer with a present
// Status means the answer fetch failed after a successful poll.
type AskOutcome struct {
	User   *User
	Status *JobStatus
	Answer *Answer
}
