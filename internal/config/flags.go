// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Output formats accepted by --output.
const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputFormat is the rendering format of a built configuration.
// It implements the pflag.Value and encoding.TextUnmarshaler interfaces.
type OutputFormat string

// String returns the format name.
func (f *OutputFormat) String() string {
	return string(*f)
}

// Set validates s and stores it. Matching is case-insensitive and "yml" is
// accepted as an alias of "yaml".
func (f *OutputFormat) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		*f = FormatJSON
	case "yaml", "yml":
		*f = FormatYAML
	default:
		return fmt.Errorf("%w: %q (want json or yaml)", ErrInvalidOutputConfigs, s)
	}
	return nil
}

// Type names the value kind in flag help output.
func (f *OutputFormat) Type() string {
	return "format"
}

// UnmarshalText lets caarlos0/env and encoding/json validate formats too.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// BindFlags registers the command flags on fs and returns the config they
// write into once fs is parsed.
//
// Flags:
//
//	-p/--path       configuration root
//	--defaults      defaults directory name under envs/
//	--no-freeze     return a mutable configuration
//	-o/--output     json or yaml
//	--copy          also copy the output to the clipboard
//	--log-level     zerolog level
//	--settings      JSON file with command settings
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Source.Path, "path", "p", "", "Configuration root directory")
	fs.StringVar(&cfg.Source.Defaults, "defaults", "", "Name of the defaults directory under envs/")
	fs.BoolVar(&cfg.Source.NoFreeze, "no-freeze", false, "Do not freeze the built configuration")
	fs.VarP(&cfg.Output.Format, "output", "o", "Output format: json or yaml")
	fs.BoolVar(&cfg.Output.Copy, "copy", false, "Also copy the output to the clipboard")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.JSONFilePath, "settings", "", "JSON file with confbuild settings")

	return cfg
}
