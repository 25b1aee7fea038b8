// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJson(t *testing.T) {
	t.Run("will keep numbers verbatim", func(t *testing.T) {
		t.Run("if the number is a large integer", func(t *testing.T) {
			m, err := parseJson([]byte(`{"LOG": {"max_bytes": 9007199254740993}}`))
			if !assert.Nil(t, err) {
				return
			}

			v, found := m.Lookup("LOG", "max_bytes")
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, "9007199254740993", v) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the json is invalid", func(t *testing.T) {
			_, err := parseJson([]byte(`{"LOG": `))

			var jerr InvalidJsonError
			if !assert.ErrorAs(t, err, &jerr) {
				return
			}
			if !assert.NotEmpty(t, jerr.Error()) {
				return
			}
		})

		t.Run("if a top-level value is a list", func(t *testing.T) {
			_, err := parseJson([]byte(`{"hosts": ["a", "b"]}`))

			var uerr UnsupportedValueError
			if !assert.ErrorAs(t, err, &uerr) {
				return
			}
			if !assert.Equal(t, "hosts", uerr.Key) {
				return
			}
		})
	})
}
