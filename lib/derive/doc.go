// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package derive implements deterministic per-site password derivation.
//
// A password is computed from five logical inputs: the site domain, the
// login, a year (or version) string, an ordered pool of strengthened
// base strings, and a secret pepper word. The same inputs always
// produce the same password: there is no randomness, no hashing, and
// no external state anywhere in the computation.
//
// The derivation proceeds in fixed stages: lexical normalization of the
// public identifiers, tag building (a 4-letter site tag, a 4-letter
// user tag, and a 2-digit length code), pepper-driven modular selection
// of one pool entry and one symbol, and final assembly under one of two
// grammars (classic concatenation or the default interleaved weave).
//
// This is not a key-derivation function. There is no computational
// hardening; the security of the output rests entirely on the secrecy
// of the pool and the pepper. The package is UI-agnostic and performs
// no I/O: prompting, environment resolution, and exit-code policy live
// in the callers.
package derive
