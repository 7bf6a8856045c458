// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level settings container of the confbuild
// command. It is populated by merging an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Source describes where the configuration tree lives and how it is
	// built.
	Source Source `envPrefix:"CONFBUILD_"`

	// Output controls how a built configuration is printed.
	Output Output `envPrefix:"CONFBUILD_"`

	// Log holds logging settings.
	Log Log `envPrefix:"CONFBUILD_LOG_"`

	// JSONFilePath is the optional path to a JSON settings file for the
	// command itself. Values from the file have the lowest priority.
	// Env: CONFBUILD_SETTINGS
	JSONFilePath string `env:"CONFBUILD_SETTINGS"`
}

// Source points the builder at a configuration root.
type Source struct {
	// Path is the configuration root holding .env and envs/.
	// Env: CONFBUILD_PATH
	Path string `env:"PATH"`

	// Defaults names the defaults directory under envs/.
	// Env: CONFBUILD_DEFAULTS
	Defaults string `env:"DEFAULTS"`

	// NoFreeze returns a mutable configuration.
	// Env: CONFBUILD_NO_FREEZE
	NoFreeze bool `env:"NO_FREEZE"`
}

// Output controls rendering of a built configuration.
type Output struct {
	// Format is "json" or "yaml".
	// Env: CONFBUILD_OUTPUT
	Format OutputFormat `env:"OUTPUT"`

	// Copy also places the rendered output on the system clipboard.
	// Env: CONFBUILD_COPY
	Copy bool `env:"COPY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: CONFBUILD_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the command settings
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags bound with [BindFlags]
//
// Unset fields fall back to [Defaults].
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

// Defaults returns the settings used when no source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Source: Source{Path: "./config"},
		Output: Output{Format: FormatJSON},
		Log:    Log{Level: "info"},
	}
}
