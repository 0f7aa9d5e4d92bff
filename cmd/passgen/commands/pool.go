// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/xolinar/passgen/lib/secret"
)

// collectSecrets prompts for count secret strings of at least minimum
// characters each. Entries below the minimum are rejected with a
// diagnostic and re-prompted; the loop only ends when the entry is
// acceptable or the source fails (end of input, no terminal, user
// abort). Secrets move through locked buffers and are converted to
// strings only for the derivation request.
func collectSecrets(source secret.Source, diagnostics io.Writer, count, minimum int, label string) ([]string, error) {
	entries := make([]string, 0, count)
	for i := 0; i < count; i++ {
		for {
			prompt := fmt.Sprintf("Enter %s[%d] (minimum %d characters): ", label, i, minimum)
			buffer, err := source.ReadSecret(prompt)
			if err != nil {
				return nil, fmt.Errorf("reading %s[%d]: %w", label, i, err)
			}

			length := 0
			if buffer != nil {
				length = buffer.Len()
			}
			if length < minimum {
				if buffer != nil {
					buffer.Close()
				}
				fmt.Fprintf(diagnostics, "%s too short, need at least %d characters\n", label, minimum)
				continue
			}

			entries = append(entries, buffer.String())
			buffer.Close()
			break
		}
	}
	return entries, nil
}
