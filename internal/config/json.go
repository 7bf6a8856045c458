// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of the --settings file.
type StructuredJSONConfig struct {
	Source struct {
		Path     string `json:"path"`
		Defaults string `json:"defaults"`
		NoFreeze bool   `json:"no_freeze"`
	} `json:"source,omitempty"`

	Output struct {
		Format OutputFormat `json:"format"`
		Copy   bool         `json:"copy"`
	} `json:"output,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Source: Source{
			Path:     jsonCfg.Source.Path,
			Defaults: jsonCfg.Source.Defaults,
			NoFreeze: jsonCfg.Source.NoFreeze,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
			Copy:   jsonCfg.Output.Copy,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
