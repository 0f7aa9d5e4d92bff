// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import "strings"

// StrengthenBase transforms a raw base S0 into a strengthened base S*
// by weaving characters from qSequence into it. The rule, applied in a
// single left-to-right pass: immediately before emitting a letter,
// insert the next unused character of qSequence (cycling) if and only
// if the previous character was not a letter, or was a letter of the
// opposite case. Runs of same-case letters receive a single insertion
// at their start; digits and symbols are copied through untouched.
//
// The output is never shorter than the input, and strictly longer
// whenever s0 contains at least one qualifying letter. An empty
// qSequence leaves s0 unchanged; callers that accept user-supplied
// sequences validate non-emptiness before reaching this point.
func StrengthenBase(s0, qSequence string) string {
	if qSequence == "" {
		return s0
	}
	q := []rune(qSequence)

	var out strings.Builder
	out.Grow(len(s0) + len(s0)/2)

	inserted := 0
	var previous byte
	for i := 0; i < len(s0); i++ {
		c := s0[i]
		if isLetter(c) {
			if !isLetter(previous) || isUpper(previous) != isUpper(c) {
				out.WriteRune(q[inserted%len(q)])
				inserted++
			}
		}
		out.WriteByte(c)
		previous = c
	}
	return out.String()
}
