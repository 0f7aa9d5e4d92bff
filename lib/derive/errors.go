// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import "errors"

// Every failure the package can produce is one of these validation
// kinds, detected before any derivation arithmetic runs. A derivation
// never partially computes a password and then fails, and re-running
// with the same inputs reproduces the same error. Callers match with
// errors.Is; the CLI maps all of them to its usage exit code.
var (
	// ErrInvalidYear reports a year that is not 2 to 4 decimal digits.
	ErrInvalidYear = errors.New("year must be 2 to 4 decimal digits")

	// ErrPoolSizeOutOfRange reports a pool size outside [3, 8].
	ErrPoolSizeOutOfRange = errors.New("pool size out of range")

	// ErrPoolUnderfilled reports a pool with fewer entries than the
	// configured pool size.
	ErrPoolUnderfilled = errors.New("pool underfilled")

	// ErrEmptyPepper reports a pepper that resolved to the empty string.
	ErrEmptyPepper = errors.New("pepper must not be empty")

	// ErrSecretTooShort reports a pool entry below its minimum length:
	// raw bases must be at least MinRawBaseLength characters,
	// interactively collected strengthened bases at least
	// MinStrengthenedLength.
	ErrSecretTooShort = errors.New("secret too short")

	// ErrSequenceTooShort reports a Q or P character sequence too short
	// to serve its role: Q must be non-empty, P must supply at least 10
	// symbols so every symbol index is addressable.
	ErrSequenceTooShort = errors.New("character sequence too short")

	// ErrUnknownMode reports an assembly mode that is neither classic
	// nor interleaved.
	ErrUnknownMode = errors.New("unknown assembly mode")
)
