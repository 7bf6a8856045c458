// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-env-config/builder"
	"github.com/MKhiriev/go-env-config/document"
	"github.com/MKhiriev/go-env-config/internal/config"
	"github.com/MKhiriev/go-env-config/internal/logger"
)

func (a *app) newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <environment>",
		Short: "Print the configuration of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.build(cmd, args[0])
			if err != nil {
				return err
			}

			text, err := render(cfg, a.settings.Output.Format)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprint(a.out, text); err != nil {
				return err
			}

			if a.settings.Output.Copy {
				if err := a.copyText(text); err != nil {
					return fmt.Errorf("error copying to clipboard: %w", err)
				}
				logger.FromContext(cmd.Context()).Info().Msg("configuration copied to clipboard")
			}
			return nil
		},
	}
}

func render(cfg *builder.Configuration, format config.OutputFormat) (string, error) {
	switch format {
	case config.FormatYAML:
		data, err := yaml.Marshal(yamlValue(cfg.Root()))
		if err != nil {
			return "", fmt.Errorf("error encoding yaml: %w", err)
		}
		return string(data), nil
	default:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error encoding json: %w", err)
		}
		return string(data) + "\n", nil
	}
}

// yamlValue converts v to values yaml.v3 encodes naturally; numbers become
// int64 or float64 so they are not quoted.
func yamlValue(v document.Value) any {
	switch c := v.(type) {
	case *document.Object:
		out := make(map[string]any, c.Len())
		c.Range(func(key string, child document.Value) bool {
			out[key] = yamlValue(child)
			return true
		})
		return out
	case *document.Array:
		items := c.Items()
		out := make([]any, len(items))
		for i, child := range items {
			out[i] = yamlValue(child)
		}
		return out
	case document.Number:
		if n, err := c.Int64(); err == nil {
			return n
		}
		if f, err := c.Float64(); err == nil {
			return f
		}
		return string(c)
	case document.String:
		return string(c)
	case document.Bool:
		return bool(c)
	default:
		return nil
	}
}
