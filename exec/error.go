package exec

import "errors"

type execErr struct {
	msg      string
	stderr   string
	exitCode int
}

func (e execErr) Error() string {
	return e.msg
}

func (e execErr) Stderr() string {
	return e.stderr
}

func (e execErr) ExitCode() int {
	return e.exitCode
}

// NewExecErr returns nil when exitCode is zero.
func NewExecErr(message string, stderr string, exitCode int) error {
	if exitCode == 0 {
		return nil
	}

	return execErr{message, stderr, exitCode}
}

type ExecErr interface {
	Error() string
	Stderr() string
	ExitCode() int
}

// GetStderr returns the stderr of the command that caused err, if any.
func GetStderr(err error) (string, bool) {
	var eErr ExecErr
	if errors.As(err, &eErr) {
		return eErr.Stderr(), true
	}

	return "", false
}

// GetExitCode returns the exit code of the command that caused err, if any.
func GetExitCode(err error) (int, bool) {
	var eErr ExecErr
	if errors.As(err, &eErr) {
		return eErr.ExitCode(), true
	}

	return 0, false
}
