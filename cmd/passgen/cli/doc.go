// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the small command framework for the passgen
// binary: a Command tree dispatched on subcommand names, pflag flag
// sets built by reflection over tagged params structs, structured help
// output, and exit-code-carrying errors.
//
// The framework owns process-boundary policy (usage errors exit with
// code 2, interactive interruption with 130) so that the derivation
// core can stay free of exit-code knowledge.
package cli
