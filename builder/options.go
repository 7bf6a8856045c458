// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"github.com/rs/zerolog"
)

// Options configures a [ConfigBuilder]. Only Path is required.
type Options struct {
	// Path is the configuration root holding .env and the envs directory.
	Path string

	// Defaults names the directory under envs/ applied before every
	// environment. Default: [DefaultEnvironment].
	Defaults string

	// Freeze makes built configurations read-only. Default: true.
	Freeze *bool

	// Cache memoizes built configurations per environment. Default: true.
	// With Freeze disabled, every cached build hands out its own copy.
	Cache *bool

	// Store is the cache used when Cache is enabled. Default: a fresh
	// cache owned by the builder.
	Store *Cache

	// FS reads the configuration tree. Default: [OSFileSystem].
	FS FileSystem

	// Env resolves interpolation tokens and receives .env variables.
	// Default: [OSEnv].
	Env EnvProvider

	// Logger receives debug output. Default: discard.
	Logger *zerolog.Logger
}

// Bool returns a pointer to v, for the Freeze and Cache options.
func Bool(v bool) *bool {
	return &v
}

func (o Options) freeze() bool {
	return o.Freeze == nil || *o.Freeze
}

func (o Options) cache() bool {
	return o.Cache == nil || *o.Cache
}

func (o Options) withDefaults() Options {
	if o.Defaults == "" {
		o.Defaults = DefaultEnvironment
	}
	if o.Store == nil {
		o.Store = NewCache()
	}
	if o.FS == nil {
		o.FS = OSFileSystem{}
	}
	if o.Env == nil {
		o.Env = OSEnv{}
	}
	return o
}
