// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-env-config/document"
)

func TestInterpolate(t *testing.T) {
	env := NewMapEnv(map[string]string{"HOME": testHome, "EMPTY": ""})

	tests := []struct {
		name string
		in   document.Value
		want document.Value
	}{
		{name: "token", in: document.String("$env:HOME"), want: document.String(testHome)},
		{name: "empty variable", in: document.String("$env:EMPTY"), want: document.String("")},
		{name: "unset variable", in: document.String("$env:MISSING"), want: document.Null{}},
		{name: "no name", in: document.String("$env:"), want: document.String("$env:")},
		{name: "embedded token", in: document.String("x $env:HOME"), want: document.String("x $env:HOME")},
		{name: "other prefix", in: document.String("$ENV:HOME"), want: document.String("$ENV:HOME")},
		{name: "plain string", in: document.String("plain"), want: document.String("plain")},
		{name: "number", in: document.Number("3"), want: document.Number("3")},
		{name: "bool", in: document.Bool(true), want: document.Bool(true)},
		{name: "null", in: document.Null{}, want: document.Null{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.in, env))
		})
	}
}

func TestInterpolateAll_PreservesShape(t *testing.T) {
	in := `[{"foo":"bar"},{"baz":["foo","bar"]},[[1,2,3]]]`
	doc, err := document.Parse([]byte(in))
	require.NoError(t, err)

	out := interpolateAll(doc, newTestEnv())
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(data))
}

func TestInterpolateAll_DeepArrays(t *testing.T) {
	doc, err := document.Parse([]byte(`{"a":[[["$env:HOME"]]],"b":{"c":{"d":"$env:HOME"}}}`))
	require.NoError(t, err)

	out := interpolateAll(doc, newTestEnv())
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[[["/home/tester"]]],"b":{"c":{"d":"/home/tester"}}}`, string(data))

	// the input is left untouched
	orig, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(orig), "$env:HOME")
}
