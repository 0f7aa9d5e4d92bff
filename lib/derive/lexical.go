// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import "strings"

// Letter classification is ASCII-only by design: the derivation is
// specified over the 26-letter Latin alphabet, and locale-dependent
// case rules would make the same inputs produce different passwords
// on different systems.

// isLetter reports whether c is an ASCII letter (A-Z or a-z).
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isUpper reports whether c is an ASCII uppercase letter.
func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// LettersOnly returns s lowercased with every character outside a-z
// removed. The result may be empty.
func LettersOnly(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			out.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			out.WriteByte(c + ('a' - 'A'))
		}
	}
	return out.String()
}

// SumLetterPositions returns the case-insensitive sum of 1-based
// alphabet positions over s (a=1 … z=26). Non-letter characters
// contribute zero. Total over all strings, including the empty one.
func SumLetterPositions(s string) int {
	total := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c >= 'a' && c <= 'z' {
			total += int(c-'a') + 1
		}
	}
	return total
}

// SumDigits returns the sum of the integer values of every decimal
// digit in s. Non-digit characters contribute zero.
func SumDigits(s string) int {
	total := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			total += int(c - '0')
		}
	}
	return total
}
