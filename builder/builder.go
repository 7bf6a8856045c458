// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-env-config/document"
	"github.com/MKhiriev/go-env-config/internal/logger"
)

// ConfigBuilder builds [Configuration] values from one configuration root.
type ConfigBuilder struct {
	path     string
	defaults string
	freeze   bool
	cache    bool

	store *Cache
	fs    FileSystem
	env   EnvProvider
	log   *logger.Logger
}

// New returns a builder for opts.Path. It does not touch the file system.
func New(opts Options) (*ConfigBuilder, error) {
	if opts.Path == "" {
		return nil, ErrMissingPath
	}
	opts = opts.withDefaults()

	log := logger.Wrap(opts.Logger).GetChildLogger()
	log.Logger = log.With().Str("component", "builder").Str("path", opts.Path).Logger()

	return &ConfigBuilder{
		path:     filepath.Clean(opts.Path),
		defaults: opts.Defaults,
		freeze:   opts.freeze(),
		cache:    opts.cache(),
		store:    opts.Store,
		fs:       opts.FS,
		env:      opts.Env,
		log:      log,
	}, nil
}

// Build returns the configuration for env.
//
// With caching enabled a configuration already built for env is returned
// without reading anything. Otherwise Build applies <path>/.env to the
// EnvProvider, merges the defaults directory and then env's directory, and
// freezes the result when freezing is enabled. A failed build returns no
// configuration and caches nothing.
func (b *ConfigBuilder) Build(env string) (*Configuration, error) {
	if !b.cache {
		return b.build(env)
	}

	cfg, hit, err := b.store.getOrBuild(env, func() (*Configuration, error) {
		return b.build(env)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		b.log.Debug().Str("env", env).Msg("configuration served from cache")
	}

	return b.handOut(cfg), nil
}

// handOut applies the builder's freeze setting to a cached entry. A store
// shared with builders of the other setting may hold either kind. Unfrozen
// results are always private copies.
func (b *ConfigBuilder) handOut(cfg *Configuration) *Configuration {
	switch {
	case !b.freeze:
		return cfg.clone()
	case cfg.Frozen():
		return cfg
	default:
		frozen := cfg.clone()
		document.Freeze(frozen.root)
		return frozen
	}
}

func (b *ConfigBuilder) build(env string) (*Configuration, error) {
	log := b.log.With().Str("env", env).Str("build_id", newBuildID()).Logger()

	count, err := b.loadDotEnv()
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", DotEnvFile, err)
	}
	if count > 0 {
		log.Debug().Int("variables", count).Msg("dotenv applied")
	}

	root := document.NewObject()
	if err := root.Set(EnvKey, document.String(env)); err != nil {
		return nil, err
	}

	if err := b.loadSettings(root, b.defaults, true); err != nil {
		return nil, err
	}
	if err := b.loadSettings(root, env, false); err != nil {
		return nil, err
	}

	cfg := &Configuration{
		env:      env,
		root:     root,
		accessor: b.newFileAccessor(env),
	}

	if b.freeze {
		document.Freeze(cfg.root)
	}

	log.Debug().Int("keys", root.Len()).Bool("frozen", b.freeze).Msg("configuration built")
	return cfg, nil
}

// newBuildID returns a time-ordered id, falling back to a random one.
func newBuildID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
