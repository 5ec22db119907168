package cli

import "errors"

// Sentinel errors, each mapped to its own exit code by [ExitCode].
var (
	ErrConfig        = errors.New("invalid configuration")
	ErrInputNotFound = errors.New("input file not found")
	ErrInputRead     = errors.New("error reading input")
	ErrOutputWrite   = errors.New("error writing output")
)

// Exit codes returned by [Execute].
const (
	ExitOK = iota
	ExitUsage
	ExitInputNotFound
	ExitInputRead
	ExitOutputWrite
)

// ExitCode maps an error returned by a conversion to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrInputRead):
		return ExitInputRead
	case errors.Is(err, ErrOutputWrite):
		return ExitOutputWrite
	default:
		return ExitUsage
	}
}
