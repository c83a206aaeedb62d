package cmd

import (
	"flag"
	"fmt"
	"os"
)

// Exit statuses shared by the mc-* commands.
const (
	ExitInputError    = 1
	ExitInternalError = 2
)

// DieWithUsage is a utility that assumes usage of the flag library. It
// prints the usage text and exits with the input-error status.
func DieWithUsage() {
	flag.Usage()
	os.Exit(ExitInputError)
}

// Die reports an error on stderr and exits with the given status.
func Die(status int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(status)
}

// CorpusUsage returns a flag.Usage implementation for the corpus
// generating commands, documenting the record format they share.
func CorpusUsage(args string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] %s\n", os.Args[0], args)
		fmt.Fprintf(os.Stderr, `
One record is written to stdout per generated point:
    <number-of-aliases> <lat-deg> <lon-deg> [<x> <y> <z>]
    <territory> <mapcode>      (repeated number-of-aliases times)
    (empty line)

Ranges: lat-deg [-90..90], lon-deg [-180..180], x/y/z [-1..1] on the
unit sphere (only with -xyz). Progress and statistics go to stderr, so
stdout can be redirected to a corpus file.

Exit status is 0 on success, %d on an input error and %d on a
self-check failure.

Flags:
`, ExitInputError, ExitInternalError)
		flag.PrintDefaults()
	}
}
