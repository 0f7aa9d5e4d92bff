// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Source supplies secret strings on request. Commands depend on this
// interface rather than on a terminal, so collection loops (pools,
// pepper) are testable with a scripted implementation.
type Source interface {
	// ReadSecret displays prompt and returns the entered secret. The
	// returned buffer is never empty: implementations signal a
	// zero-character entry with a nil buffer and no error. Callers own
	// the buffer and must Close it.
	ReadSecret(prompt string) (*Buffer, error)
}

// Terminal reads secrets from an interactive terminal with echo
// disabled. The prompt is written to Output (stderr by default) so
// that stdout stays reserved for the derived password.
type Terminal struct {
	// Input is the terminal input; defaults to os.Stdin.
	Input *os.File

	// Output receives prompts; defaults to os.Stderr.
	Output io.Writer
}

// ReadSecret prompts on the terminal and reads one line without echo.
// Returns an error when Input is not a terminal: interactive flags
// require one, and falling back to echoing input would leak the secret
// into scrollback.
func (t *Terminal) ReadSecret(prompt string) (*Buffer, error) {
	input := t.Input
	if input == nil {
		input = os.Stdin
	}
	output := t.Output
	if output == nil {
		output = os.Stderr
	}

	fileDescriptor := int(input.Fd())
	if !term.IsTerminal(fileDescriptor) {
		return nil, fmt.Errorf("no terminal available for interactive secret prompt")
	}

	fmt.Fprint(output, prompt)
	entered, err := term.ReadPassword(fileDescriptor)
	fmt.Fprintln(output)
	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}
	if len(entered) == 0 {
		return nil, nil
	}

	buffer, err := NewFromBytes(entered)
	if err != nil {
		Zero(entered)
		return nil, err
	}
	return buffer, nil
}
