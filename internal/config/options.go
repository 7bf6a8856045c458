// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-env-config/builder"
)

// BuilderOptions maps the command settings to [builder.Options]. The
// command builds one configuration per run, so caching is left at its
// default.
func (cfg *StructuredConfig) BuilderOptions(log *zerolog.Logger) builder.Options {
	return builder.Options{
		Path:     cfg.Source.Path,
		Defaults: cfg.Source.Defaults,
		Freeze:   builder.Bool(!cfg.Source.NoFreeze),
		Logger:   log,
	}
}
