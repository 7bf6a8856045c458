// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <environment> <file>",
		Short: "Print a data file of an environment, falling back to the defaults",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.build(cmd, args[0])
			if err != nil {
				return err
			}

			text, err := cfg.ReadEnvFile(args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, text)
			return err
		},
	}
}
