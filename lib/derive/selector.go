// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

// The selector turns the secret pepper word and the public identifiers
// into two small indices: which pool entry to use and which symbol to
// append. Both are pure modular sums of letter positions; the pepper
// contributes only through the rotation shift, so rotating the pepper
// re-keys every site without touching the pool.

// PepperShift returns the rotation shift r = sum of letter positions
// of pepper, mod poolSize. poolSize must be positive.
func PepperShift(pepper string, poolSize int) int {
	return SumLetterPositions(pepper) % poolSize
}

// PoolIndex selects the pool entry:
//
//	i = (Σpos(keyLetters) + Σpos(loginLetters) + shift) mod poolSize
//
// keyLetters is the letter-only site key; loginLetters is the full
// letter-only local part of the login (not the 4-character tag).
func PoolIndex(keyLetters, loginLetters string, shift, poolSize int) int {
	return (SumLetterPositions(keyLetters) + SumLetterPositions(loginLetters) + shift) % poolSize
}

// SymbolIndex selects the symbol position in the P sequence:
//
//	idx = (Σpos(siteTag) + Σpos(userTag) + Σdigits(year) + shift) mod 10
//
// The result is always in [0, 10); callers must supply a P sequence of
// at least symbolChoices characters for every index to be addressable.
func SymbolIndex(siteTag, userTag, year string, shift int) int {
	return (SumLetterPositions(siteTag) + SumLetterPositions(userTag) + SumDigits(year) + shift) % symbolChoices
}

// symbolChoices is the size of the symbol index space. The symbol
// index is reduced mod 10 regardless of the P sequence length, so the
// P sequence must supply at least this many characters.
const symbolChoices = 10
