// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can drive a
// build. Returns nil if the configuration is valid, or one of the
// ErrInvalid* errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Source.Path) == "" {
		return ErrInvalidPathConfigs
	}

	switch cfg.Output.Format {
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutputConfigs, cfg.Output.Format)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
