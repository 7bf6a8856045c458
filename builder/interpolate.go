// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"strings"

	"github.com/MKhiriev/go-env-config/document"
)

// EnvTokenPrefix starts an interpolation token: "$env:HOME".
const EnvTokenPrefix = "$env:"

// Interpolate resolves a single scalar. A [document.String] of the form
// "$env:NAME" becomes the value of NAME, or [document.Null] when NAME is
// not set. Every other value is returned unchanged.
func Interpolate(v document.Value, env EnvProvider) document.Value {
	s, ok := v.(document.String)
	if !ok {
		return v
	}

	name, found := strings.CutPrefix(string(s), EnvTokenPrefix)
	if !found || name == "" {
		return v
	}

	value, set := env.LookupEnv(name)
	if !set {
		return document.Null{}
	}
	return document.String(value)
}

// interpolateAll returns a copy of doc with every scalar leaf interpolated.
func interpolateAll(doc document.Value, env EnvProvider) document.Value {
	return document.Map(doc, func(v document.Value) document.Value {
		return Interpolate(v, env)
	})
}
