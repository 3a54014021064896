package mdb

import (
	"fmt"
	"strings"

	"github.com/theIDinside/mdb/subject"
)

// Outcome is what a launched subject produced.
type Outcome struct {
	Stdout string
	Stderr string
	// ExitStatus is -1 when the subject did not exit normally.
	ExitStatus int
	Cancelled  bool
}

// Exited returns true when the subject terminated through exit rather than a signal.
func (o Outcome) Exited() bool {
	return o.ExitStatus >= 0 && !o.Cancelled
}

// Expectation is compared byte-for-byte against an outcome.
type Expectation struct {
	Stdout     string
	ExitStatus int
}

// HelloWorldExitStatus1 returns the expectation for helloworld_exit_status_1
// launched with args.
func HelloWorldExitStatus1(args ...string) Expectation {
	return Expectation{
		Stdout:     subject.Greeting(args) + subject.Checkout,
		ExitStatus: subject.ExitStatus,
	}
}

// MismatchError lists how an outcome differs from its expectation.
type MismatchError struct {
	Expected Expectation
	Actual   Outcome
	Stdout   bool
	Status   bool
}

func (e *MismatchError) Error() string {
	var diffs []string
	if e.Stdout {
		diffs = append(diffs, fmt.Sprintf("stdout: expected %q, got %q", e.Expected.Stdout, e.Actual.Stdout))
	}
	if e.Status {
		diffs = append(diffs, fmt.Sprintf("exit status: expected %d, got %d", e.Expected.ExitStatus, e.Actual.ExitStatus))
	}
	return "outcome mismatch: " + strings.Join(diffs, "; ")
}

// Check returns a *MismatchError when o does not meet exp.
func (o Outcome) Check(exp Expectation) error {
	e := &MismatchError{
		Expected: exp,
		Actual:   o,
		Stdout:   o.Stdout != exp.Stdout,
		Status:   !o.Exited() || o.ExitStatus != exp.ExitStatus,
	}

	if !e.Stdout && !e.Status {
		return nil
	}

	return e
}
