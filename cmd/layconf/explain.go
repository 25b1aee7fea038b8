// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/z5labs/layconf"

	"github.com/spf13/cobra"
)

func newExplainCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain SECTION OPTION",
		Short: "Show which layer a value is resolved from",
		Args:  cobra.ExactArgs(2),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			r, err := root.resolver(cmd)
			if err != nil {
				return err
			}

			section, option := args[0], args[1]
			v, origin, found := r.Lookup(section, option)
			if !found {
				return layconf.NotFoundError{Section: section, Option: option}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			fmt.Fprintf(tw, "section:\t%s\n", section)
			fmt.Fprintf(tw, "option:\t%s\n", option)
			fmt.Fprintf(tw, "value:\t%s\n", v)
			fmt.Fprintf(tw, "origin:\t%s\n", origin)
			fmt.Fprintf(tw, "env key:\t%s\n", r.EnvKey(section, option))
			return tw.Flush()
		}),
	}
}
