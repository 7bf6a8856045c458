// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package builder

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const testHome = "/home/tester"

// fixtureFiles is the configuration tree shared by the builder tests.
var fixtureFiles = map[string]string{
	".env": `{"TEST":"testing","TESTPASSWORD":"secret"}`,

	"envs/__defaults__/config.json": `{
		"settingA": "default_value_for_A",
		"settingB": "default_value_for_B",
		"settingC": "default_value_for_C",
		"settingEnv": "$env:HOME",
		"testingenv": "$env:TEST"
	}`,
	"envs/__defaults__/other.json": `{
		"settingOtherA": "value for settingOtherA",
		"settingOtherB": "value for settingOtherB",
		"settingOtherEnv": "$env:HOME",
		"nest": {"settingOtherNestedEnv": "$env:HOME"}
	}`,
	"envs/__defaults__/data.txt": "default_data",
	"envs/__defaults__/notes.md": "ignored by settings loading",

	"envs/E1/config.json": `{"settingA": "new_value_for_A_on_E1"}`,
	"envs/E1/other.json":  `{"settingOtherA": "value for settingOtherA in E1"}`,

	"envs/E2/config.json": `{"settingB": "new_value_for_B_on_E2"}`,
	"envs/E2/data.txt":    "E2_data",

	"envs/E_Nested/config.json": `{
		"nested": [{"foo": "bar"}, {"baz": ["foo", "bar"]}, [[1, 2, 3]]],
		"nestedAndInterpolated": [["$env:HOME"], {"deep": [["$env:HOME"]]}]
	}`,

	"envs/E_Unknown/config.json":  `{}`,
	"envs/E_Unknown/missing.json": `{"x": 1}`,

	"envs/E_Broken/config.json": `{"settingA": `,

	"envs/E_Array/config.json": `["not", "an", "object"]`,
}

// writeTree materializes files under a temporary directory and returns it.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// mapTree returns files as an in-memory FileSystem rooted at "cfg".
func mapTree(files map[string]string) fstest.MapFS {
	m := fstest.MapFS{}
	for name, content := range files {
		m["cfg/"+name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func newTestEnv() *MapEnv {
	return NewMapEnv(map[string]string{"HOME": testHome})
}

// newTestBuilder returns a builder over a fresh on-disk fixture tree.
func newTestBuilder(t *testing.T, opts Options) *ConfigBuilder {
	t.Helper()
	if opts.Path == "" {
		opts.Path = writeTree(t, fixtureFiles)
	}
	if opts.Env == nil {
		opts.Env = newTestEnv()
	}

	b, err := New(opts)
	require.NoError(t, err)
	return b
}
