package domain

import "time"

type Outcome int

const (
	Failure Outcome = iota
	Success
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Result is the classification of one probe. Err is informational only:
// transport faults are already folded into Failure.
type Result struct {
	URL        string
	Outcome    Outcome
	StatusCode int
	Err        error
	Elapsed    time.Duration
}

func (r Result) IsAlive() bool {
	return r.Outcome == Success
}
