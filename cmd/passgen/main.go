// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/xolinar/passgen/cmd/passgen/cli"
	"github.com/xolinar/passgen/cmd/passgen/commands"
)

func main() {
	exitOnInterrupt()

	if err := commands.Root().Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		// Everything the tool can fail with is a usage-class error:
		// the derivation itself is total once its inputs validate.
		os.Exit(cli.CodeUsage)
	}
}

// exitOnInterrupt terminates with the conventional interrupt status
// when the user aborts an interactive prompt with Ctrl+C.
func exitOnInterrupt() {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Fprintln(os.Stderr, "\ninterrupted")
		os.Exit(cli.CodeInterrupt)
	}()
}
