package require

import (
	"strings"

	"github.com/stretchr/testify/require"
	"github.com/theIDinside/mdb/exec"
)

type tHelper = interface {
	Helper()
}

// ArgEqual asserts that the argument at position i in args is equal to expected.
func ArgEqual(t require.TestingT, expected any, args []string, i int, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.Greater(t, len(args), i, "not enough arguments to compare")
	require.Equal(t, expected, args[i], msgAndArgs...)
}

// StdoutExact asserts that stdout of res is byte-for-byte equal to expected. A
// difference limited to a trailing newline is reported as such.
func StdoutExact(t require.TestingT, expected string, res exec.Result, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	actual := res.Stdout()
	switch {
	case actual == expected:
		return
	case actual == expected+"\n":
		require.Fail(t, "unexpected trailing newline in stdout", msgAndArgs...)
	case actual+"\n" == expected:
		require.Fail(t, "missing trailing newline in stdout", msgAndArgs...)
	case strings.TrimSpace(actual) == strings.TrimSpace(expected):
		require.Fail(t, "stdout differs only in surrounding whitespace", msgAndArgs...)
	}

	require.Equal(t, expected, actual, msgAndArgs...)
}

// ExitCode asserts the exit code of res.
func ExitCode(t require.TestingT, expected int, res exec.Result, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	require.Equal(t, expected, res.ExitCode(), msgAndArgs...)
}
