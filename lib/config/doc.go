// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package config resolves the non-secret derivation settings (the Q
// and P character sequences, the pool size, and the assembly mode)
// into a single immutable Config.
//
// Resolution happens exactly once, in the command layer, and the
// resulting Config is passed into the derivation core. The core never
// performs ambient lookups: the environment, flags, and the optional
// YAML defaults file are all read here and nowhere else.
//
// Precedence, highest first: environment variable, command-line flag,
// YAML defaults file, built-in default. Secrets (the pool and the
// pepper) are deliberately not part of Config; they travel separately
// through lib/secret.
package config
