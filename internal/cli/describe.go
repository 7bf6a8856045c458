// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-env-config/builder"
	"github.com/MKhiriev/go-env-config/document"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	kindStyle    = lipgloss.NewStyle().Faint(true)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func (a *app) newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <environment>",
		Short: "Summarize root keys and sections of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.build(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, describe(cfg))
			return err
		},
	}
}

// describe lists root keys and sections with the kind of each value.
func describe(cfg *builder.Configuration) string {
	var rootKeys, sections []string
	cfg.Root().Range(func(key string, v document.Value) bool {
		if key == builder.EnvKey {
			return true
		}
		if obj, ok := v.(*document.Object); ok && strings.HasSuffix(key, builder.SectionSuffix) {
			sections = append(sections, fmt.Sprintf("%s %s",
				keyStyle.Render(key), kindStyle.Render(fmt.Sprintf("(%d keys)", obj.Len()))))
			return true
		}
		rootKeys = append(rootKeys, fmt.Sprintf("%s %s", keyStyle.Render(key), kindStyle.Render(v.Kind().String())))
		return true
	})

	frozen := "mutable"
	if cfg.Frozen() {
		frozen = "frozen"
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("environment %s", cfg.Env())) + " " + kindStyle.Render(frozen),
		"",
		headingStyle.Render("Root keys"),
	}
	lines = append(lines, orNone(rootKeys)...)
	lines = append(lines, "", headingStyle.Render("Sections"))
	lines = append(lines, orNone(sections)...)

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func orNone(items []string) []string {
	if len(items) == 0 {
		return []string{kindStyle.Render("none")}
	}
	return items
}
