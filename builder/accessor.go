// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// fileAccessor reads data files that live next to the settings documents.
// Its fields are set once at build time.
type fileAccessor struct {
	fs       FileSystem
	envDir   string
	defaults string
}

func (b *ConfigBuilder) newFileAccessor(env string) *fileAccessor {
	return &fileAccessor{
		fs:       b.fs,
		envDir:   b.envDir(env),
		defaults: b.envDir(b.defaults),
	}
}

// read returns the file from the environment directory, falling back to the
// defaults directory when the environment has no such file.
func (a *fileAccessor) read(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: '%s': %w", ErrFileAccess, name, fs.ErrInvalid)
	}

	path := filepath.Join(a.envDir, name)
	if _, err := a.fs.Stat(path); errors.Is(err, fs.ErrNotExist) {
		path = filepath.Join(a.defaults, name)
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: '%s': %w", ErrFileAccess, name, err)
	}
	return string(data), nil
}
