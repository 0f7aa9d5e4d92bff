// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xolinar/passgen/lib/derive"
	"github.com/xolinar/passgen/lib/secret"
)

// scriptedSource plays back a fixed sequence of secret entries. An
// empty string in the script models the user pressing enter on an
// empty line; running past the script is an error, standing in for
// end of input.
type scriptedSource struct {
	entries []string
	next    int
	prompts []string
}

func (s *scriptedSource) ReadSecret(prompt string) (*secret.Buffer, error) {
	s.prompts = append(s.prompts, prompt)
	if s.next >= len(s.entries) {
		return nil, errors.New("end of scripted input")
	}
	entry := s.entries[s.next]
	s.next++
	if entry == "" {
		return nil, nil
	}
	return secret.NewFromBytes([]byte(entry))
}

// newTestGenerator builds a generator wired to fakes. environment may
// be nil for an empty environment.
func newTestGenerator(params generateParams, source secret.Source, environment map[string]string) (*generator, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &generator{
		params: params,
		source: source,
		environment: func(name string) string {
			return environment[name]
		},
		stdout: stdout,
		stderr: stderr,
	}, stdout, stderr
}

// referenceParams are the worked reference scenario's public inputs.
func referenceParams() generateParams {
	return generateParams{
		Domain:   "yandex.ru",
		Login:    "user@gmail.com",
		Year:     "2005",
		PoolSize: 3,
		Pool:     "Alpha12345;Beta678901;Gamma23456",
		Pepper:   "pepper",
	}
}

func TestGenerateReferenceScenario(t *testing.T) {
	tests := []struct {
		name    string
		classic bool
		want    string
	}{
		{"interleaved", false, "&GammYaExa230645605UsEr\n"},
		{"classic", true, "Gamma23456&YaEx0605UsEr\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := referenceParams()
			params.Classic = test.classic
			g, stdout, _ := newTestGenerator(params, &scriptedSource{}, nil)

			if err := g.run(nil); err != nil {
				t.Fatalf("run() error: %v", err)
			}
			if stdout.String() != test.want {
				t.Errorf("stdout = %q, want %q", stdout.String(), test.want)
			}
		})
	}
}

func TestGenerateAskPoolRetriesShortEntries(t *testing.T) {
	params := referenceParams()
	params.Pool = ""
	params.AskPool = true
	source := &scriptedSource{entries: []string{
		"short", // rejected: below the 10-character minimum for S*
		"Alpha12345",
		"Beta678901",
		"Gamma23456",
	}}
	g, stdout, stderr := newTestGenerator(params, source, nil)

	if err := g.run(nil); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if got, want := stdout.String(), "&GammYaExa230645605UsEr\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if !strings.Contains(stderr.String(), "too short") {
		t.Errorf("stderr = %q, want a too-short diagnostic", stderr.String())
	}
	if len(source.prompts) != 4 {
		t.Errorf("prompt count = %d, want 4 (one retry)", len(source.prompts))
	}
}

func TestGenerateAskRawPoolStrengthens(t *testing.T) {
	params := referenceParams()
	params.Pool = ""
	params.AskRawPool = true
	params.Classic = true
	source := &scriptedSource{entries: []string{
		"alpha12345",
		"beta678901",
		"gamma23456",
	}}
	g, stdout, _ := newTestGenerator(params, source, nil)

	if err := g.run(nil); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	// Pool index 2 selects gamma23456, strengthened to !gamma23456.
	if got, want := stdout.String(), "!gamma23456&YaEx0605UsEr\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestGeneratePoolAndPepperFromEnvironment(t *testing.T) {
	params := referenceParams()
	params.Pool = ""
	params.Pepper = ""
	environment := map[string]string{
		"PASSGEN_SSTAR_POOL": "Alpha12345;Beta678901;Gamma23456",
		"PASSGEN_PEPPER":     "pepper",
	}
	g, stdout, _ := newTestGenerator(params, &scriptedSource{}, environment)

	if err := g.run(nil); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if got, want := stdout.String(), "&GammYaExa230645605UsEr\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestGenerateEnvironmentOverridesSymbolSequence(t *testing.T) {
	// PASSGEN_P_SEQ takes precedence over the built-in alphabet: with
	// digits as the P sequence, symbol index 6 yields '6'.
	params := referenceParams()
	environment := map[string]string{"PASSGEN_P_SEQ": "0123456789"}
	g, stdout, _ := newTestGenerator(params, &scriptedSource{}, environment)

	if err := g.run(nil); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if got, want := stdout.String(), "6GammYaExa230645605UsEr\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestGenerateConfigFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passgen.yaml")
	content := "pool_size: 3\nmode: classic\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	params := referenceParams()
	params.PoolSize = 0 // unset: the file supplies it
	params.ConfigPath = path
	g, stdout, _ := newTestGenerator(params, &scriptedSource{}, nil)

	if err := g.run(nil); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if got, want := stdout.String(), "Gamma23456&YaEx0605UsEr\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestGenerateUsageErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*generateParams)
		want   string
	}{
		{
			name:   "missing identifiers",
			mutate: func(p *generateParams) { p.Domain = "" },
			want:   "required",
		},
		{
			name:   "missing pool",
			mutate: func(p *generateParams) { p.Pool = "" },
			want:   "no pool supplied",
		},
		{
			name:   "missing pepper",
			mutate: func(p *generateParams) { p.Pepper = "" },
			want:   "no pepper supplied",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := referenceParams()
			test.mutate(&params)
			g, stdout, _ := newTestGenerator(params, &scriptedSource{}, nil)

			err := g.run(nil)
			if err == nil {
				t.Fatal("run() should return a usage error")
			}
			var coder interface{ ExitCode() int }
			if !errors.As(err, &coder) || coder.ExitCode() != 2 {
				t.Errorf("run() error = %v, want exit code 2", err)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("run() error = %q, want it to mention %q", err.Error(), test.want)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty on error", stdout.String())
			}
		})
	}
}

func TestGenerateCoreValidationBecomesUsageError(t *testing.T) {
	params := referenceParams()
	params.Year = "20055"
	g, stdout, _ := newTestGenerator(params, &scriptedSource{}, nil)

	err := g.run(nil)
	if !errors.Is(err, derive.ErrInvalidYear) {
		t.Fatalf("run() error = %v, want %v", err, derive.ErrInvalidYear)
	}
	var coder interface{ ExitCode() int }
	if !errors.As(err, &coder) || coder.ExitCode() != 2 {
		t.Errorf("run() error = %v, want exit code 2", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty on error", stdout.String())
	}
}

func TestGenerateRejectsPositionalArguments(t *testing.T) {
	g, _, _ := newTestGenerator(referenceParams(), &scriptedSource{}, nil)
	err := g.run([]string{"stray"})
	if err == nil || !strings.Contains(err.Error(), "unexpected argument") {
		t.Errorf("run() error = %v, want an unexpected-argument diagnostic", err)
	}
}

func TestRootCommandTree(t *testing.T) {
	root := Root()
	if root.Name != "passgen" {
		t.Errorf("root name = %q, want %q", root.Name, "passgen")
	}
	if root.Run == nil {
		t.Error("root command has no Run")
	}

	found := false
	for _, sub := range root.Subcommands {
		if sub.Name == "version" {
			found = true
		}
	}
	if !found {
		t.Error("command tree is missing the version subcommand")
	}
}
