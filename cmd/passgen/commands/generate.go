// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/xolinar/passgen/cmd/passgen/cli"
	"github.com/xolinar/passgen/lib/config"
	"github.com/xolinar/passgen/lib/derive"
	"github.com/xolinar/passgen/lib/secret"
)

// generateParams holds the root command's flags. The secret-bearing
// flags (--pool, --pepper) exist for scripting and are marked UNSAFE
// in their help text: command lines are visible in process listings
// and shell history, so the --ask variants are the recommended path.
type generateParams struct {
	Login      string `flag:"login"        desc:"login, email or local part (required)"`
	Domain     string `flag:"domain"       desc:"site domain, e.g. yandex.ru (required)"`
	Year       string `flag:"year"         desc:"year or version, 2 to 4 digits (required)"`
	Classic    bool   `flag:"classic"      desc:"classic assembly without interleaving"`
	PoolSize   int    `flag:"pool-size"    desc:"size of the base pool, 3..8 (default 4)"`
	AskPool    bool   `flag:"ask-pool"     desc:"prompt for the strengthened pool S* without echo"`
	AskRawPool bool   `flag:"ask-raw-pool" desc:"prompt for raw bases S0 without echo and strengthen them"`
	Pool       string `flag:"pool"         desc:"UNSAFE: semicolon-separated S* pool"`
	PepperAsk  bool   `flag:"pepper-ask"   desc:"prompt for the pepper word without echo"`
	Pepper     string `flag:"pepper"       desc:"UNSAFE: pepper word"`
	QSequence  string `flag:"q-seq"        desc:"insertion sequence Q for strengthening"`
	PSequence  string `flag:"p-seq"        desc:"symbol sequence P, at least 10 characters"`
	ConfigPath string `flag:"config"       desc:"path to a YAML defaults file"`
	Verbose    bool   `flag:"verbose,v"    desc:"log resolved non-secret settings to stderr"`
}

// generator is the generate command with its collaborators made
// explicit, so tests can substitute a scripted secret source, a fake
// environment, and an output buffer.
type generator struct {
	params      generateParams
	source      secret.Source
	environment func(string) string
	stdout      io.Writer
	stderr      io.Writer
}

// generateCommand wires the generator against the real process
// environment and terminal.
func generateCommand() *cli.Command {
	g := &generator{
		source:      &secret.Terminal{},
		environment: os.Getenv,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}

	return &cli.Command{
		Name:    "passgen",
		Summary: "Derive a per-site password from a memorized scheme",
		Description: `Passgen derives a per-site password deterministically from the site
domain, the login, a year or version string, a small pool of
strengthened base strings, and a secret pepper word. The same inputs
always produce the same password; nothing is stored anywhere.

Supply the pool and pepper interactively (--ask-pool or --ask-raw-pool,
--pepper-ask) so they never touch the command line or the environment.`,
		Usage: "passgen --domain <domain> --login <login> --year <year> [flags]",
		Examples: []cli.Example{
			{
				Description: "Recommended: secrets prompted, never on the command line",
				Command:     "passgen --domain yandex.ru --login user@gmail.com --year 2005 --ask-pool --pepper-ask",
			},
			{
				Description: "Enter raw bases and let passgen strengthen them",
				Command:     "passgen --domain yandex.ru --login user --year 25 --ask-raw-pool --pepper-ask",
			},
			{
				Description: "Classic assembly instead of the interleaved weave",
				Command:     "passgen --domain gmail.com --login user --year 2026 --classic --ask-pool --pepper-ask",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("passgen", &g.params)
		},
		Run: g.run,
	}
}

func (g *generator) run(args []string) error {
	if len(args) > 0 {
		return cli.Usagef("unexpected argument: %q", args[0])
	}
	if g.params.Domain == "" || g.params.Login == "" || g.params.Year == "" {
		return cli.Usagef("--domain, --login, and --year are required")
	}

	settings, err := g.resolveSettings()
	if err != nil {
		return err
	}

	mode, err := derive.ParseMode(settings.Mode)
	if err != nil {
		return cli.Usage(err)
	}
	if g.params.Classic {
		mode = derive.ModeClassic
	}

	logLevel := slog.LevelWarn
	if g.params.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(g.stderr, &slog.HandlerOptions{Level: logLevel}))
	logger.Debug("resolved settings",
		"pool_size", settings.PoolSize,
		"mode", string(mode),
		"q_sequence_length", len(settings.QSequence),
		"p_sequence_length", len(settings.PSequence))

	pool, poolRaw, err := g.resolvePool(settings)
	if err != nil {
		return err
	}

	pepper, err := g.resolvePepper()
	if err != nil {
		return err
	}

	password, err := derive.Derive(derive.Request{
		Domain:    g.params.Domain,
		Login:     g.params.Login,
		Year:      g.params.Year,
		Pool:      pool,
		PoolRaw:   poolRaw,
		PoolSize:  settings.PoolSize,
		Pepper:    pepper,
		QSequence: settings.QSequence,
		PSequence: settings.PSequence,
		Mode:      mode,
	})
	if err != nil {
		return cli.Usage(err)
	}

	// The password is the only stdout output, with no trailing
	// metadata, so the result can be piped directly.
	_, err = io.WriteString(g.stdout, password+"\n")
	return err
}

// resolveSettings merges the non-secret settings: environment over
// flags over the optional YAML defaults file over built-ins.
func (g *generator) resolveSettings() (config.Config, error) {
	flagLayer := config.Layer{
		QSequence: g.params.QSequence,
		PSequence: g.params.PSequence,
		PoolSize:  g.params.PoolSize,
	}

	fileLayer := config.Layer{}
	configPath := g.params.ConfigPath
	if configPath == "" {
		configPath = g.environment(config.EnvConfigPath)
	}
	if configPath != "" {
		loaded, err := config.FromFile(configPath)
		if err != nil {
			return config.Config{}, cli.Usage(err)
		}
		fileLayer = loaded
	}

	resolved := config.Resolve(
		config.FromEnvironment(g.environment),
		flagLayer,
		fileLayer,
		config.Builtin(),
	)
	return resolved, nil
}

// resolvePool produces the pool entries and whether they are raw bases
// needing strengthening. Sources in order: interactive S* prompts,
// interactive S0 prompts, the --pool flag, the environment. No source
// at all is a usage error; there is no default pool.
func (g *generator) resolvePool(settings config.Config) ([]string, bool, error) {
	switch {
	case g.params.AskPool:
		pool, err := collectSecrets(g.source, g.stderr, settings.PoolSize, derive.MinStrengthenedLength, "S*")
		return pool, false, err

	case g.params.AskRawPool:
		pool, err := collectSecrets(g.source, g.stderr, settings.PoolSize, derive.MinRawBaseLength, "S0")
		return pool, true, err

	case g.params.Pool != "":
		return splitPool(g.params.Pool), false, nil
	}

	if fromEnvironment := g.environment(config.EnvPool); fromEnvironment != "" {
		return splitPool(fromEnvironment), false, nil
	}
	return nil, false, cli.Usagef("no pool supplied: use --ask-pool or --ask-raw-pool (recommended), --pool, or %s", config.EnvPool)
}

// resolvePepper produces the pepper word: interactive prompt, the
// --pepper flag, or the environment. Absence is a usage error; an
// empty interactive entry is caught by the core's validation.
func (g *generator) resolvePepper() (string, error) {
	if g.params.PepperAsk {
		buffer, err := g.source.ReadSecret("Enter the pepper word W (never stored): ")
		if err != nil {
			return "", cli.Usagef("reading pepper: %v", err)
		}
		if buffer == nil {
			return "", nil
		}
		defer buffer.Close()
		return buffer.String(), nil
	}

	if g.params.Pepper != "" {
		return g.params.Pepper, nil
	}
	if fromEnvironment := g.environment(config.EnvPepper); fromEnvironment != "" {
		return fromEnvironment, nil
	}
	return "", cli.Usagef("no pepper supplied: use --pepper-ask (recommended), --pepper, or %s", config.EnvPepper)
}

// splitPool splits a semicolon-separated pool string, dropping empty
// entries (a trailing semicolon is common in quoted shell arguments).
func splitPool(joined string) []string {
	parts := strings.Split(joined, ";")
	pool := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			pool = append(pool, part)
		}
	}
	return pool
}
