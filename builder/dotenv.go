// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-env-config/document"
)

// DotEnvFile is the optional variables file at the configuration root.
const DotEnvFile = ".env"

// loadDotEnv writes every variable of <path>/.env into the builder's
// EnvProvider, overwriting existing values. A missing file is not an error.
// It returns the number of variables written.
func (b *ConfigBuilder) loadDotEnv() (int, error) {
	file := filepath.Join(b.path, DotEnvFile)

	data, err := b.fs.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("error reading %s: %w", file, err)
	}

	vars, err := parseDotEnv(data)
	if err != nil {
		return 0, fmt.Errorf("%s is %w: %w", file, ErrInvalidSettingsDocument, err)
	}

	for k, v := range vars {
		if err := b.env.Setenv(k, v); err != nil {
			return 0, fmt.Errorf("error setting variable %s: %w", k, err)
		}
	}
	return len(vars), nil
}

// parseDotEnv accepts either a flat JSON object or KEY=VALUE lines.
func parseDotEnv(data []byte) (map[string]string, error) {
	trimmed := bytes.TrimSpace(data)
	if !bytes.HasPrefix(trimmed, []byte("{")) {
		return godotenv.UnmarshalBytes(trimmed)
	}

	doc, err := document.Parse(trimmed)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(*document.Object)
	if !ok {
		return nil, fmt.Errorf("expected an object, got %s", doc.Kind())
	}

	vars := make(map[string]string, obj.Len())
	var rangeErr error
	obj.Range(func(key string, v document.Value) bool {
		if !document.IsScalar(v) {
			rangeErr = fmt.Errorf("variable %s must be a scalar, got %s", key, v.Kind())
			return false
		}

		switch s := v.(type) {
		case document.String:
			vars[key] = string(s)
		case document.Number:
			vars[key] = string(s)
		case document.Bool:
			vars[key] = fmt.Sprint(bool(s))
		case document.Null:
			vars[key] = "null"
		}
		return true
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return vars, nil
}
