// Package exitcode defines the process exit statuses used by stof and the
// mapping from errors onto them.
package exitcode

import (
	"os/exec"

	"github.com/cockroachdb/errors"
)

const (
	OK         = 0
	Err        = 1
	BrokenPipe = 11
	Usage      = 64
	Interrupt  = 130
)

// Error attaches an explicit exit status to an error.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Wrap marks err so the process terminates with the given status.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Code: code, Err: err}
}

// From derives the process exit status for err. An explicit exitcode.Error
// wins; otherwise a tool's own exec exit status is surfaced unchanged, so
// diagnostic meaning encoded in specific non-zero codes is preserved.
// Anything else maps to Err.
func From(err error) int {
	if err == nil {
		return OK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return Err
}
