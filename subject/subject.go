// Package subject renders the output of the helloworld_exit_status_1 test subject.
package subject

import (
	"fmt"
	"io"
)

// Checkout is written after the greeting, without a trailing newline.
const Checkout = "checking out..."

// ExitStatus is returned on every invocation regardless of the arguments.
const ExitStatus = 1

// Greeting returns the newline terminated greeting line. Only the first
// argument is consulted.
func Greeting(args []string) string {
	if len(args) > 0 {
		return fmt.Sprintf("Hello world: '%s'\n", args[0])
	}

	return "Hello world!\n"
}

// Run writes the greeting followed by the checkout text to w and returns the
// status the process must exit with.
func Run(w io.Writer, args []string) int {
	_, _ = io.WriteString(w, Greeting(args))
	_, _ = io.WriteString(w, Checkout)

	return ExitStatus
}
