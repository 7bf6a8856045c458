// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"os"
	"sync"
)

//go:generate mockgen -source=env.go -destination=../internal/mock/env_provider_mock.go -package=mock

// EnvProvider is the variable table used for interpolation and written by
// the dotenv loader.
type EnvProvider interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnv reads and writes the process environment. Writes are visible to
// the whole process and are not synchronized with other builders.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnv is an in-memory [EnvProvider], safe for concurrent use.
type MapEnv struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapEnv returns a MapEnv seeded with a copy of vars.
func NewMapEnv(vars map[string]string) *MapEnv {
	m := &MapEnv{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		m.vars[k] = v
	}
	return m
}

func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vars[key]
	return v, ok
}

func (m *MapEnv) Setenv(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vars[key] = value
	return nil
}
