// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package derive

import "testing"

func TestPepperShift(t *testing.T) {
	tests := []struct {
		name     string
		pepper   string
		poolSize int
		want     int
	}{
		{"reference pepper", "pepper", 3, 1}, // 76 mod 3
		{"pool of four", "pepper", 4, 0},     // 76 mod 4
		{"empty contributes zero", "", 5, 0},
		{"non-letters ignored", "p3pp3r!", 8, (16 + 16 + 18) % 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := PepperShift(test.pepper, test.poolSize); got != test.want {
				t.Errorf("PepperShift(%q, %d) = %d, want %d", test.pepper, test.poolSize, got, test.want)
			}
		})
	}
}

func TestPoolIndex(t *testing.T) {
	// Reference scenario: Σpos("yandex")=73, Σpos("user")=63, shift 1.
	got := PoolIndex("yandex", "user", 1, 3)
	if got != 2 {
		t.Errorf("PoolIndex = %d, want 2", got)
	}
}

func TestPoolIndexBounds(t *testing.T) {
	keys := []string{"", "a", "yandex", "zzzzzzzzzz"}
	logins := []string{"", "user", "a.very.long.login.name"}
	for poolSize := MinPoolSize; poolSize <= MaxPoolSize; poolSize++ {
		for _, key := range keys {
			for _, login := range logins {
				for shift := 0; shift < poolSize; shift++ {
					index := PoolIndex(key, login, shift, poolSize)
					if index < 0 || index >= poolSize {
						t.Fatalf("PoolIndex(%q, %q, %d, %d) = %d, out of [0,%d)",
							key, login, shift, poolSize, index, poolSize)
					}
				}
			}
		}
	}
}

func TestSymbolIndex(t *testing.T) {
	// Reference scenario: Σpos("yaex")=55, Σpos("user")=63, Σdigits("2005")=7,
	// shift 1 → (55+63+7+1) mod 10 = 6.
	got := SymbolIndex("yaex", "user", "2005", 1)
	if got != 6 {
		t.Errorf("SymbolIndex = %d, want 6", got)
	}
}

func TestSymbolIndexBounds(t *testing.T) {
	tags := []string{"xxxx", "yaex", "user", "zzzz"}
	years := []string{"05", "1999", "2026"}
	for _, siteTag := range tags {
		for _, userTag := range tags {
			for _, year := range years {
				for shift := 0; shift < MaxPoolSize; shift++ {
					index := SymbolIndex(siteTag, userTag, year, shift)
					if index < 0 || index >= 10 {
						t.Fatalf("SymbolIndex(%q, %q, %q, %d) = %d, out of [0,10)",
							siteTag, userTag, year, shift, index)
					}
				}
			}
		}
	}
}
