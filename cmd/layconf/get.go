// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"fmt"

	"github.com/z5labs/layconf"

	"github.com/spf13/cobra"
)

type valueType string

const (
	typeString   valueType = "string"
	typeInt      valueType = "int"
	typeFloat    valueType = "float"
	typeBool     valueType = "bool"
	typeDuration valueType = "duration"
)

// UnknownTypeError occurs when --type names an unsupported value type.
type UnknownTypeError struct {
	Type string
}

// Error implements the error interface.
func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown value type: %s", e.Type)
}

func newGetCmd(root *rootFlags) *cobra.Command {
	var (
		typ      string
		fallback string
	)

	cmd := &cobra.Command{
		Use:   "get SECTION OPTION",
		Short: "Print a resolved value",
		Long: `Print the resolved value of an option, coerced to --type.

When the option can not be resolved and --fallback is given, the
fallback is printed exactly as passed.

Examples:
  layconf get DATABASE env_name
  layconf get LOG file_rotation_size_mb --type int
  layconf get FOO foo --fallback bar`,
		Args: cobra.ExactArgs(2),
		RunE: runE(func(cmd *cobra.Command, args []string) error {
			r, err := root.resolver(cmd)
			if err != nil {
				return err
			}

			v, err := getTyped(r, valueType(typ), args[0], args[1])
			var nerr layconf.NotFoundError
			if errors.As(err, &nerr) && cmd.Flags().Changed("fallback") {
				v, err = fallback, nil
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		}),
	}

	cmd.Flags().StringVarP(&typ, "type", "t", string(typeString), "value type: string, int, float, bool or duration")
	cmd.Flags().StringVar(&fallback, "fallback", "", "value to print if the option can not be resolved")
	return cmd
}

func getTyped(r *layconf.Resolver, typ valueType, section, option string) (any, error) {
	switch typ {
	case typeString:
		return r.Get(section, option)
	case typeInt:
		n, err := r.GetInt(section, option)
		return n, err
	case typeFloat:
		f, err := r.GetFloat(section, option)
		return f, err
	case typeBool:
		b, err := r.GetBool(section, option)
		return b, err
	case typeDuration:
		d, err := r.GetDuration(section, option)
		return d, err
	default:
		return nil, UnknownTypeError{Type: string(typ)}
	}
}
