// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

// Passgen derives per-site passwords deterministically from a
// memorized scheme: public identifiers (domain, login, year) combined
// with a secret pool of strengthened base strings and a pepper word.
// Secrets are collected with no-echo prompts, the derived password is
// the only stdout output, and nothing is ever stored.
package main
