// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the confbuild command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-env-config/builder"
	"github.com/MKhiriev/go-env-config/internal/config"
	"github.com/MKhiriev/go-env-config/internal/logger"
)

// BuildInfo is printed by the version command.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type app struct {
	out    io.Writer
	errOut io.Writer
	info   BuildInfo

	flags    *config.StructuredConfig
	settings *config.StructuredConfig
	log      *logger.Logger

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error
}

// NewRootCommand returns the confbuild command writing results to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer, info BuildInfo) *cobra.Command {
	return newApp(out, errOut, info).rootCommand()
}

func newApp(out, errOut io.Writer, info BuildInfo) *app {
	return &app{
		out:      out,
		errOut:   errOut,
		info:     info,
		log:      logger.Nop(),
		copyText: clipboard.WriteAll,
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "confbuild",
		Short:         "Assemble layered environment configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.newBuildCommand(),
		a.newReadCommand(),
		a.newDescribeCommand(),
		a.newVersionCommand(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	a.settings = settings

	a.log = logger.New(a.errOut, "confbuild")
	if err := a.log.SetLevel(settings.Log.Level); err != nil {
		return err
	}
	cmd.SetContext(a.log.WithContext(cmd.Context()))

	a.log.Debug().Any("settings", settings).Msg("received settings")
	return nil
}

// build assembles the configuration for env from the merged settings.
func (a *app) build(cmd *cobra.Command, env string) (*builder.Configuration, error) {
	log := logger.FromContext(cmd.Context())

	b, err := builder.New(a.settings.BuilderOptions(&log.Logger))
	if err != nil {
		return nil, err
	}
	return b.Build(env)
}
