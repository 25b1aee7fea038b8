// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"log/slog"

	"github.com/z5labs/layconf"
	"github.com/z5labs/layconf/internal/try"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	defaultPath string
	customPath  string
	envPrefix   string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "layconf",
		Short: "Resolve layered configuration values",
		Long: `layconf resolves configuration options from the environment, an
optional custom file and a default file, first match wins.

Environment variables are named PREFIX_SECTION_option, or SECTION_option
when no prefix is given.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.defaultPath, "default", "cfg/default.ini", "path of the default config file")
	pf.StringVar(&flags.customPath, "custom", "", "path of the optional custom config file")
	pf.StringVar(&flags.envPrefix, "prefix", "", "prefix of the environment variable names")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log how values are resolved")

	cmd.AddCommand(
		newGetCmd(flags),
		newExplainCmd(flags),
		newSectionCmd(flags),
	)
	return cmd
}

func (f *rootFlags) resolver(cmd *cobra.Command) (*layconf.Resolver, error) {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return layconf.New(
		f.defaultPath,
		layconf.WithCustomFile(f.customPath),
		layconf.WithEnvPrefix(f.envPrefix),
		layconf.WithLogger(logger),
	)
}

// runE turns the panics raised for blank arguments into command errors.
func runE(f func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer try.Recover(&err)
		return f(cmd, args)
	}
}
