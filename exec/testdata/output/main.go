package main

import (
	"os"
	"strconv"
)

// Usage: output [exit code]. Writes to both streams without trailing newlines.
func main() {
	os.Stdout.WriteString("stdout")
	os.Stderr.WriteString("stderr")

	if len(os.Args) > 1 {
		code, err := strconv.Atoi(os.Args[1])
		if err != nil {
			os.Exit(100)
		}
		os.Exit(code)
	}
}
