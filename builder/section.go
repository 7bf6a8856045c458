// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"fmt"

	"github.com/MKhiriev/go-env-config/document"
)

const (
	// RootDocument is the base name of the settings document whose keys go
	// to the root of the configuration.
	RootDocument = "config"
	// SectionSuffix is appended to a document's base name to form its
	// section key: "database" -> "databaseConfig".
	SectionSuffix = "Config"
	// EnvKey is the reserved root key holding the environment name.
	EnvKey = "ENV"
)

// SectionKey returns the configuration key of the section fed by the
// settings document called name.
func SectionKey(name string) string {
	return name + SectionSuffix
}

// applySection interpolates doc and merges its top-level keys into dst,
// either at the root (name == RootDocument) or into the name's section.
// Only the defaults pass may create a section.
func (b *ConfigBuilder) applySection(dst *document.Object, name string, doc document.Value, env string, isDefault bool) error {
	fields, ok := interpolateAll(doc, b.env).(*document.Object)
	if !ok {
		return fmt.Errorf("%w: document %q in environment %q must be an object, got %s",
			ErrInvalidSettingsDocument, name, env, doc.Kind())
	}

	if name == RootDocument {
		if fields.Has(EnvKey) {
			b.log.Warn().Str("env", env).Msgf("settings key %q is reserved and was ignored", EnvKey)
			if err := fields.Delete(EnvKey); err != nil {
				return err
			}
		}
		return dst.Assign(fields)
	}

	key := SectionKey(name)
	current, exists := dst.Get(key)
	if !exists {
		if !isDefault {
			return fmt.Errorf("%w '%s' in environment '%s'", ErrUnknownSection, name, env)
		}
		current = document.NewObject()
		if err := dst.Set(key, current); err != nil {
			return err
		}
	}

	section, ok := current.(*document.Object)
	if !ok {
		return fmt.Errorf("%w '%s' in environment '%s': %s holds a %s, not an object",
			ErrUnknownSection, name, env, key, current.Kind())
	}
	return section.Assign(fields)
}
