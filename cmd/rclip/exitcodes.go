package main

import (
	"errors"

	"github.com/matsen/rclip/internal/clipboard"
)

// Exit codes. Not-found results exit with ExitSuccess.
const (
	ExitSuccess              = 0 // Success, including not-found results
	ExitError                = 1 // General error (invalid arguments, failed save)
	ExitConfigError          = 2 // Database path could not be resolved
	ExitClipboardUnavailable = 3 // No clipboard tool on this host
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCode maps an error returned from a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, clipboard.ErrClipboardUnavailable) {
		return ExitClipboardUnavailable
	}
	return ExitError
}
