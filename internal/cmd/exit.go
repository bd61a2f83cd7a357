// Package cmd provides the command line interface of pdef-example.
package cmd

import (
	"github.com/cockroachdb/errors"

	"pdef-example-generator/internal/config"
	"pdef-example-generator/internal/diagnostic"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates generation or I/O failed.
	ExitGeneralError = 1

	// ExitInvalidInput indicates the package or the configuration is invalid.
	ExitInvalidInput = 2
)

// ExitError carries the exit code of a failed command.
type ExitError struct {
	Err  error
	Code int
	// Printed is set when the command already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, diagnostic.ErrInvalid) || errors.Is(err, config.ErrInvalid) {
		return ExitInvalidInput
	}

	return ExitGeneralError
}
