// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"fmt"
	"regexp"
)

// Mode selects the password assembly grammar.
type Mode string

const (
	// ModeInterleaved weaves the base segments between the derived
	// tags. This is the default grammar.
	ModeInterleaved Mode = "interleaved"

	// ModeClassic appends the derived tags after the whole base.
	ModeClassic Mode = "classic"
)

// ParseMode converts a mode name to a Mode. The empty string resolves
// to the default (interleaved).
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case "":
		return ModeInterleaved, nil
	case ModeInterleaved, ModeClassic:
		return Mode(name), nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownMode, name, ModeInterleaved, ModeClassic)
}

// Pool and length limits. The pool bounds come from the derivation
// scheme itself; the minimum lengths guard interactively collected
// secrets against entries too short to carry the interleave cuts.
const (
	MinPoolSize = 3
	MaxPoolSize = 8

	// MinRawBaseLength is the minimum length of a raw base S0.
	MinRawBaseLength = 6

	// MinStrengthenedLength is the minimum length of an interactively
	// entered strengthened base S*.
	MinStrengthenedLength = 10
)

// yearPattern matches a 2-to-4-digit year or version string.
var yearPattern = regexp.MustCompile(`^[0-9]{2,4}$`)

// Request carries the five logical inputs of one derivation plus the
// configured character sequences and mode. All fields are read-only;
// Derive never mutates or retains them.
type Request struct {
	// Domain is the site domain (e.g. "yandex.ru" or a full URL).
	Domain string

	// Login is the account login; only the part before the first @
	// participates in the derivation.
	Login string

	// Year is the 2-to-4-digit year or version string.
	Year string

	// Pool is the ordered pool of base strings. Exactly PoolSize
	// entries participate in selection; fewer is an error, extras are
	// unreachable (the pool index is reduced mod PoolSize) and ignored.
	Pool []string

	// PoolRaw marks the pool entries as raw bases S0 that must be
	// strengthened with QSequence before selection. When false the
	// entries are used as-is (pre-strengthened S*).
	PoolRaw bool

	// PoolSize is the configured pool size, in [MinPoolSize, MaxPoolSize].
	PoolSize int

	// Pepper is the secret word driving the rotation shift.
	Pepper string

	// QSequence supplies the insertion characters for strengthening.
	// Only consulted when PoolRaw is set; must be non-empty then.
	QSequence string

	// PSequence is the symbol alphabet; at least 10 characters.
	PSequence string

	// Mode selects the assembly grammar.
	Mode Mode
}

// validate checks every input shape before any derivation arithmetic.
// Validation is total and upfront: a Request either fails here or
// derives completely.
func (r Request) validate() error {
	if r.PoolSize < MinPoolSize || r.PoolSize > MaxPoolSize {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrPoolSizeOutOfRange, r.PoolSize, MinPoolSize, MaxPoolSize)
	}
	if !yearPattern.MatchString(r.Year) {
		return fmt.Errorf("%w: %q", ErrInvalidYear, r.Year)
	}
	if len(r.Pool) < r.PoolSize {
		return fmt.Errorf("%w: have %d entries, want %d", ErrPoolUnderfilled, len(r.Pool), r.PoolSize)
	}
	if r.Pepper == "" {
		return ErrEmptyPepper
	}
	if len([]rune(r.PSequence)) < symbolChoices {
		return fmt.Errorf("%w: P sequence has %d symbols, want at least %d",
			ErrSequenceTooShort, len([]rune(r.PSequence)), symbolChoices)
	}
	switch r.Mode {
	case ModeClassic, ModeInterleaved, "":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, r.Mode)
	}
	if r.PoolRaw {
		if r.QSequence == "" {
			return fmt.Errorf("%w: Q sequence must not be empty when strengthening raw bases", ErrSequenceTooShort)
		}
		for i, base := range r.Pool[:r.PoolSize] {
			if len(base) < MinRawBaseLength {
				return fmt.Errorf("%w: raw base %d has %d characters, want at least %d",
					ErrSecretTooShort, i, len(base), MinRawBaseLength)
			}
		}
	}
	return nil
}

// Derive computes the password for the request. The computation is
// deterministic and side-effect free: identical requests always yield
// identical passwords, and every failure is a validation error raised
// before any arithmetic runs.
func Derive(request Request) (string, error) {
	if err := request.validate(); err != nil {
		return "", err
	}

	yearCode := request.Year[len(request.Year)-2:]
	yearDigitSum := SumDigits(request.Year)

	key := SiteKey(request.Domain)
	keyLetters := LettersOnly(key)
	siteTag := Tag4(key)

	local := LocalPart(request.Login)
	loginLetters := LettersOnly(local)
	userTag := Tag4(local)

	pool := request.Pool[:request.PoolSize]
	if request.PoolRaw {
		strengthened := make([]string, len(pool))
		for i, base := range pool {
			strengthened[i] = StrengthenBase(base, request.QSequence)
		}
		pool = strengthened
	}

	shift := PepperShift(request.Pepper, request.PoolSize)
	poolIndex := PoolIndex(keyLetters, loginLetters, shift, request.PoolSize)
	symbolIndex := SymbolIndex(siteTag, userTag, request.Year, shift)

	fragments := Fragments{
		Base:       pool[poolIndex],
		Symbol:     string([]rune(request.PSequence)[symbolIndex]),
		SiteTag:    CapitalizeFirstThird(siteTag),
		UserTag:    CapitalizeFirstThird(userTag),
		LengthCode: LengthCode(key),
		YearCode:   yearCode,
	}

	if request.Mode == ModeClassic {
		return AssembleClassic(fragments), nil
	}
	return AssembleInterleaved(fragments, symbolIndex, yearDigitSum), nil
}
