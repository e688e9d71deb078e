package config

import (
	"fmt"
	"io"
	"os"
)

// exit and stderr are swapped in tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	ExitCodef(1, format, args...)
}

// ExitCodef writes a formatted error message to stderr and exits with code.
// Command entry points use code 2 for usage errors.
func ExitCodef(code int, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(code)
}
