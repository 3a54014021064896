package main

// This subject greets, prints a checkout line without a trailing newline and
// always exits with status 1.

import (
	"os"

	"github.com/theIDinside/mdb/subject"
)

func main() {
	os.Exit(subject.Run(os.Stdout, os.Args[1:]))
}
