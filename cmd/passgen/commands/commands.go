// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the passgen command tree: the root generate
// command plus the version subcommand. The root command is a thin
// collaborator around lib/derive: it resolves configuration, collects
// the secret pool and pepper, and prints exactly one password on
// stdout.
package commands

import (
	"fmt"

	"github.com/xolinar/passgen/cmd/passgen/cli"
	"github.com/xolinar/passgen/lib/version"
)

// Root builds the complete passgen command tree.
func Root() *cli.Command {
	root := generateCommand()
	root.Subcommands = []*cli.Command{
		{
			Name:    "version",
			Summary: "Print version information",
			Run: func(args []string) error {
				fmt.Printf("passgen %s\n", version.Full())
				return nil
			},
		},
	}
	return root
}
