// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import (
	"fmt"
	"strings"
)

// SiteKey extracts the canonical short name K from a domain: the input
// is trimmed, lowercased, stripped of a leading http:// or https://
// scheme and of everything after the first slash, then reduced to the
// second-to-last dot-separated label (gmail.com -> gmail,
// yandex.ru -> yandex). A domain with a single label yields that label.
// Malformed domains degrade gracefully rather than erroring.
func SiteKey(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d, _, _ = strings.Cut(d, "/")
	parts := strings.Split(d, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return parts[0]
}

// LocalPart returns the part of login before the first @, or login
// itself when there is no @.
func LocalPart(login string) string {
	local, _, _ := strings.Cut(login, "@")
	return local
}

// Tag4 builds a 4-character tag from s: the letter-only form's first
// two letters concatenated with its last two, or, when fewer than
// four letters exist, the letters right-padded with 'x' to width 4.
// The result is always exactly 4 characters.
func Tag4(s string) string {
	letters := LettersOnly(s)
	if len(letters) >= 4 {
		return letters[:2] + letters[len(letters)-2:]
	}
	return (letters + "xxxx")[:4]
}

// LengthCode returns the 2-digit decimal length code for key:
// len(key) mod 100, zero-padded (length 6 -> "06", length 103 -> "03").
func LengthCode(key string) string {
	return fmt.Sprintf("%02d", len(key)%100)
}

// CapitalizeFirstThird uppercases the characters at positions 0 and 2
// when they are letters, lowercases every other letter, and passes
// non-letter characters through unchanged.
func CapitalizeFirstThird(s string) string {
	out := []byte(s)
	for i := 0; i < len(out); i++ {
		c := out[i]
		if !isLetter(c) {
			continue
		}
		if i == 0 || i == 2 {
			if c >= 'a' && c <= 'z' {
				out[i] = c - ('a' - 'A')
			}
		} else if isUpper(c) {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}
