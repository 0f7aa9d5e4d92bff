// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// Process exit codes. Zero is success; everything the tool can fail
// with is either a usage/validation error or a user interruption.
const (
	// CodeUsage is returned for any usage or validation error.
	CodeUsage = 2

	// CodeInterrupt is returned when the user interrupts an
	// interactive prompt (SIGINT).
	CodeInterrupt = 130
)

// ExitError carries a process exit code alongside an error. The main
// function checks for the ExitCode method on returned errors to select
// the process exit status; the error text is printed as a one-line
// diagnostic on stderr.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error so errors.Is and errors.As walk
// the full chain through the ExitError wrapper.
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code.
func (e *ExitError) ExitCode() int { return e.Code }

// Usagef creates a usage error (exit code 2) from a format string.
func Usagef(format string, args ...any) *ExitError {
	return &ExitError{Code: CodeUsage, Err: fmt.Errorf(format, args...)}
}

// Usage wraps an existing error as a usage error (exit code 2). Used
// at the boundary where the derivation core's validation taxonomy
// becomes process exit policy.
func Usage(err error) *ExitError {
	return &ExitError{Code: CodeUsage, Err: err}
}
