// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

// Fragments holds the source pieces every password is assembled from.
// Both grammars use exactly this multiset; the interleaved grammar
// only splits and reorders the base, it never adds or drops material.
type Fragments struct {
	// Base is the selected strengthened pool entry S*.
	Base string
	// Symbol is the single symbol chosen from the P sequence.
	Symbol string
	// SiteTag and UserTag are the capitalized forms T^ and U^.
	SiteTag string
	UserTag string
	// LengthCode is the 2-digit site key length code L2.
	LengthCode string
	// YearCode is the last two characters of the year, Y2.
	YearCode string
}

// AssembleClassic concatenates the fragments in the classic grammar:
//
//	S* ‖ SYM ‖ T^ ‖ L2 ‖ Y2 ‖ U^
//
// The base is used whole and unmodified.
func AssembleClassic(f Fragments) string {
	return f.Base + f.Symbol + f.SiteTag + f.LengthCode + f.YearCode + f.UserTag
}

// AssembleInterleaved cuts the base into three segments and weaves the
// remaining fragments between them:
//
//	SYM ‖ S1 ‖ T^ ‖ S2 ‖ L2 ‖ S3 ‖ Y2 ‖ U^
//
// symbolIndex and yearDigitSum determine the cut widths; see
// SplitForInterleave.
func AssembleInterleaved(f Fragments, symbolIndex, yearDigitSum int) string {
	s1, s2, s3 := SplitForInterleave(f.Base, symbolIndex, yearDigitSum)
	return f.Symbol + s1 + f.SiteTag + s2 + f.LengthCode + s3 + f.YearCode + f.UserTag
}

// SplitForInterleave cuts base into the three interleave segments:
//
//	d1 = (symbolIndex mod 4) + 2   // 2..5
//	d2 = (yearDigitSum mod 3) + 2  // 2..4
//	S1 = base[:d1], S2 = base[d1:d1+d2], S3 = base[d1+d2:]
//
// S1 ‖ S2 ‖ S3 always reconstructs base exactly. When base is shorter
// than a cut boundary the affected segments truncate, possibly to
// empty. Short bases degrade silently rather than erroring; the
// interactive collection path enforces a minimum entry length that
// keeps prompted pools clear of this.
func SplitForInterleave(base string, symbolIndex, yearDigitSum int) (s1, s2, s3 string) {
	d1 := (symbolIndex % 4) + 2
	d2 := (yearDigitSum % 3) + 2

	first := min(d1, len(base))
	second := min(d1+d2, len(base))
	return base[:first], base[first:second], base[second:]
}
