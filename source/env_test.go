// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookupMap(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestEnv_Lookup(t *testing.T) {
	t.Run("will return the variable", func(t *testing.T) {
		t.Run("if the prefixed variable is set", func(t *testing.T) {
			env := FromEnvLookup("example", lookupMap(map[string]string{
				"example_DATABASE_env_name": "staging",
			}))

			v, found := env.Lookup("DATABASE", "env_name")
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, "staging", v) {
				return
			}
		})

		t.Run("if the variable is set to the empty string", func(t *testing.T) {
			env := FromEnvLookup("", lookupMap(map[string]string{
				"LOG_console_enabled": "",
			}))

			v, found := env.Lookup("LOG", "console_enabled")
			if !assert.True(t, found) {
				return
			}
			if !assert.Empty(t, v) {
				return
			}
		})
	})

	t.Run("will report not found", func(t *testing.T) {
		t.Run("if only the unprefixed variable is set", func(t *testing.T) {
			env := FromEnvLookup("example", lookupMap(map[string]string{
				"LOG_console_enabled": "yes",
			}))

			_, found := env.Lookup("LOG", "console_enabled")
			if !assert.False(t, found) {
				return
			}
		})
	})

	t.Run("will reflect the live environment", func(t *testing.T) {
		t.Run("if the variable is set after the source was created", func(t *testing.T) {
			env := FromEnv("layconf_test")

			_, found := env.Lookup("LOG", "level")
			if !assert.False(t, found) {
				return
			}

			t.Setenv("layconf_test_LOG_level", "debug")

			v, found := env.Lookup("LOG", "level")
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, "debug", v) {
				return
			}
		})
	})
}

func TestEnv_Key(t *testing.T) {
	t.Run("will omit the prefix", func(t *testing.T) {
		t.Run("if it is empty", func(t *testing.T) {
			env := FromEnv("")
			if !assert.Equal(t, "LOG_console_enabled", env.Key("LOG", "console_enabled")) {
				return
			}
		})
	})
}
