// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-env-config/document"
)

// Configuration is the result of [ConfigBuilder.Build]: a root object holding
// the reserved ENV key, root keys from config.json and one XConfig section
// per declared settings document, plus an environment-bound file reader.
type Configuration struct {
	env      string
	root     *document.Object
	accessor *fileAccessor
}

// Env returns the environment the configuration was built for.
func (c *Configuration) Env() string {
	return c.env
}

// Root returns the root object. When the configuration is frozen the
// object and everything below it reject writes.
func (c *Configuration) Root() *document.Object {
	return c.root
}

// Get returns the root value stored under key.
func (c *Configuration) Get(key string) (document.Value, bool) {
	return c.root.Get(key)
}

// Section returns the section fed by the settings document called name,
// so Section("other") reads the "otherConfig" key.
func (c *Configuration) Section(name string) (*document.Object, bool) {
	v, ok := c.root.Get(SectionKey(name))
	if !ok {
		return nil, false
	}
	section, ok := v.(*document.Object)
	return section, ok
}

// Lookup walks object keys from the root: Lookup("otherConfig", "nest", "x").
func (c *Configuration) Lookup(path ...string) (document.Value, bool) {
	var cur document.Value = c.root
	for _, key := range path {
		obj, ok := cur.(*document.Object)
		if !ok {
			return nil, false
		}
		if cur, ok = obj.Get(key); !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set stores a root key. It fails with [document.ErrFrozen] when the
// configuration is frozen.
func (c *Configuration) Set(key string, v document.Value) error {
	return c.root.Set(key, v)
}

// Frozen reports whether the configuration rejects writes.
func (c *Configuration) Frozen() bool {
	return document.IsFrozen(c.root)
}

// ReadEnvFile returns the content of a non-settings file from the
// environment's directory, or from the defaults directory when the
// environment does not have it.
func (c *Configuration) ReadEnvFile(name string) (string, error) {
	return c.accessor.read(name)
}

// AsMap returns the configuration as plain Go values.
func (c *Configuration) AsMap() map[string]any {
	return document.ToAny(c.root).(map[string]any)
}

// MarshalJSON encodes the configuration as a JSON object.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.root)
}

// Decode copies the configuration into out, which is typically a pointer
// to a struct with json tags.
func (c *Configuration) Decode(out any) error {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("error encoding configuration: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error decoding configuration: %w", err)
	}
	return nil
}

// clone returns an unfrozen deep copy sharing the accessor.
func (c *Configuration) clone() *Configuration {
	return &Configuration{
		env:      c.env,
		root:     document.Clone(c.root).(*document.Object),
		accessor: c.accessor,
	}
}
