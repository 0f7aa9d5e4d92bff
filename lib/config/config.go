// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variable names. The secret-bearing variables
// (EnvPool, EnvPepper) are read by the command layer, not here:
// config carries only non-secret settings.
const (
	// EnvQSequence overrides the insertion sequence Q.
	EnvQSequence = "PASSGEN_Q_SEQ"

	// EnvPSequence overrides the symbol sequence P.
	EnvPSequence = "PASSGEN_P_SEQ"

	// EnvPool supplies the strengthened pool, semicolon-separated.
	// Unsafe: environment variables are visible to the process tree.
	EnvPool = "PASSGEN_SSTAR_POOL"

	// EnvPepper supplies the pepper word. Unsafe, like EnvPool.
	EnvPepper = "PASSGEN_PEPPER"

	// EnvConfigPath points at the YAML defaults file.
	EnvConfigPath = "PASSGEN_CONFIG"
)

// Built-in defaults.
const (
	// DefaultSequence is the symbol alphabet used for both Q and P
	// when nothing overrides them.
	DefaultSequence = "!@#$%^&*+?"

	// DefaultPoolSize is the pool size used when nothing overrides it.
	DefaultPoolSize = 4
)

// Config is the resolved, immutable runtime configuration handed to
// the derivation core.
type Config struct {
	// QSequence supplies insertion characters for base strengthening.
	QSequence string

	// PSequence is the symbol alphabet indexed by the symbol index.
	PSequence string

	// PoolSize is the configured pool size.
	PoolSize int

	// Mode names the assembly grammar ("interleaved" or "classic").
	Mode string
}

// Layer is one source of configuration values. Zero-valued fields mean
// "this source does not set the value".
type Layer struct {
	QSequence string
	PSequence string
	PoolSize  int
	Mode      string
}

// Resolve merges layers into a Config. Layers are ordered highest
// precedence first; for each field the first layer that sets it wins.
// Range and shape validation is left to the derivation core so that
// every invalid value is diagnosed through one taxonomy.
func Resolve(layers ...Layer) Config {
	var resolved Config
	for _, layer := range layers {
		if resolved.QSequence == "" {
			resolved.QSequence = layer.QSequence
		}
		if resolved.PSequence == "" {
			resolved.PSequence = layer.PSequence
		}
		if resolved.PoolSize == 0 {
			resolved.PoolSize = layer.PoolSize
		}
		if resolved.Mode == "" {
			resolved.Mode = layer.Mode
		}
	}
	return resolved
}

// Builtin returns the built-in default layer.
func Builtin() Layer {
	return Layer{
		QSequence: DefaultSequence,
		PSequence: DefaultSequence,
		PoolSize:  DefaultPoolSize,
	}
}

// FromEnvironment builds a layer from the process environment via
// lookup (normally os.Getenv; tests substitute a map). A PASSGEN_POOL_SIZE
// variable is intentionally absent; the pool size is structural enough
// that it must be visible on the command line or in the defaults file.
func FromEnvironment(lookup func(string) string) Layer {
	return Layer{
		QSequence: lookup(EnvQSequence),
		PSequence: lookup(EnvPSequence),
	}
}

// fileSettings is the YAML shape of the defaults file.
type fileSettings struct {
	PoolSize  int    `yaml:"pool_size"`
	Mode      string `yaml:"mode"`
	QSequence string `yaml:"q_sequence"`
	PSequence string `yaml:"p_sequence"`
}

// FromFile loads a layer from the YAML defaults file at path. There is
// no automatic discovery: the path comes from the --config flag or the
// PASSGEN_CONFIG environment variable, and a missing or malformed file
// is an error rather than a silent fallback.
func FromFile(path string) (Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layer{}, fmt.Errorf("reading config file: %w", err)
	}

	var settings fileSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Layer{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return Layer{
		QSequence: settings.QSequence,
		PSequence: settings.PSequence,
		PoolSize:  settings.PoolSize,
		Mode:      settings.Mode,
	}, nil
}
