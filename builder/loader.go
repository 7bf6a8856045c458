// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-env-config/document"
)

const (
	// DefaultEnvironment is the directory holding the defaults when
	// Options.Defaults is empty.
	DefaultEnvironment = "__defaults__"
	// SettingsExtension marks a directory entry as a settings document.
	SettingsExtension = "json"

	envsDir = "envs"
)

func (b *ConfigBuilder) envDir(env string) string {
	return filepath.Join(b.path, envsDir, env)
}

// splitName splits a file name at its first dot: "other.json" -> ("other", "json").
func splitName(file string) (base, ext string) {
	base, ext, _ = strings.Cut(file, ".")
	return base, ext
}

// isEnvName reports whether env names a single directory directly under
// envs/.
func isEnvName(env string) bool {
	return env != "" && env != "." && filepath.IsLocal(env) && !strings.ContainsAny(env, `/\`)
}

// loadSettings merges every settings document of env into dst.
func (b *ConfigBuilder) loadSettings(dst *document.Object, env string, isDefault bool) error {
	if !isEnvName(env) {
		return fmt.Errorf("%w '%s'", ErrUnknownEnvironment, env)
	}

	dir := b.envDir(env)
	info, err := b.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w '%s'", ErrUnknownEnvironment, env)
		}
		return fmt.Errorf("%w: '%s': %w", ErrDirectoryRead, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w '%s'", ErrUnknownEnvironment, env)
	}

	entries, err := b.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: '%s': %w", ErrDirectoryRead, dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name, ext := splitName(entry.Name())
		if ext != SettingsExtension || name == "" {
			continue
		}

		file := filepath.Join(dir, entry.Name())
		doc, err := b.parseSettingsFile(file)
		if err != nil {
			return err
		}

		if err := b.applySection(dst, name, doc, env, isDefault); err != nil {
			return err
		}
		b.log.Debug().Str("env", env).Str("file", file).Msg("settings merged")
	}

	return nil
}

func (b *ConfigBuilder) parseSettingsFile(file string) (document.Value, error) {
	data, err := b.fs.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s is %w: %w", file, ErrInvalidSettingsDocument, err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s is %w: %w", file, ErrInvalidSettingsDocument, err)
	}
	return doc, nil
}
