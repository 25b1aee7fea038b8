// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSectionCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "section SECTION",
		Short: "Print every resolved option of a section",
		Args:  cobra.ExactArgs(1),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			r, err := root.resolver(cmd)
			if err != nil {
				return err
			}

			section := r.Section(args[0])
			for _, option := range section.Options() {
				v, err := section.Value(option)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", option, v)
				if err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
