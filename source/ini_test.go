// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIni(t *testing.T) {
	t.Run("will parse options", func(t *testing.T) {
		testCases := []struct {
			name     string
			content  string
			section  string
			option   string
			expected string
		}{
			{
				name:     "equals delimiter",
				content:  "[LOG]\nlevel = info\n",
				section:  "LOG",
				option:   "level",
				expected: "info",
			},
			{
				name:     "colon delimiter",
				content:  "[LOG]\nlevel: info\n",
				section:  "LOG",
				option:   "level",
				expected: "info",
			},
			{
				name:     "mixed case option names",
				content:  "[LOG]\nFile_Enabled = no\n",
				section:  "LOG",
				option:   "file_enabled",
				expected: "no",
			},
			{
				name:     "inline comment markers are kept",
				content:  "[LOG]\nlevel = info # verbose\n",
				section:  "LOG",
				option:   "level",
				expected: "info # verbose",
			},
			{
				name:     "full line comments are skipped",
				content:  "[LOG]\n# level = debug\n; level = trace\nlevel = info\n",
				section:  "LOG",
				option:   "level",
				expected: "info",
			},
			{
				name:     "surrounding quotes are kept",
				content:  "[DATABASE]\nname = \"orders\"\n",
				section:  "DATABASE",
				option:   "name",
				expected: "\"orders\"",
			},
			{
				name:     "interpolation from DEFAULT",
				content:  "[DEFAULT]\nhome = /srv\n\n[PATHS]\nlogs = %(home)s/logs\n",
				section:  "PATHS",
				option:   "logs",
				expected: "/srv/logs",
			},
			{
				name:     "interpolation within the section",
				content:  "[PATHS]\nhome = /opt\nlogs = %(home)s/logs\n",
				section:  "PATHS",
				option:   "logs",
				expected: "/opt/logs",
			},
			{
				name:     "escaped percent signs",
				content:  "[LIMITS]\ncpu = 100%%\n",
				section:  "LIMITS",
				option:   "cpu",
				expected: "100%",
			},
			{
				name:     "interpolation in a dotted section",
				content:  "[DEFAULT]\nh = /srv\n\n[A.b]\np = %(h)s/x\n",
				section:  "A.b",
				option:   "p",
				expected: "/srv/x",
			},
			{
				name:     "nested interpolation",
				content:  "[DEFAULT]\nroot = /srv\nhome = %(root)s/app\n\n[PATHS]\nlogs = %(home)s/logs\n",
				section:  "PATHS",
				option:   "logs",
				expected: "/srv/app/logs",
			},
			{
				name:     "DEFAULT references read through the section",
				content:  "[DEFAULT]\nlogs = %(home)s/logs\nhome = /srv\n\n[PATHS]\nhome = /opt\n",
				section:  "PATHS",
				option:   "logs",
				expected: "/opt/logs",
			},
			{
				name:     "DEFAULT references read through DEFAULT",
				content:  "[DEFAULT]\nlogs = %(home)s/logs\nhome = /srv\n\n[PATHS]\nhome = /opt\n",
				section:  DefaultSection,
				option:   "logs",
				expected: "/srv/logs",
			},
			{
				name:     "upper case references",
				content:  "[PATHS]\nhome = /opt\nlogs = %(HOME)s/logs\n",
				section:  "PATHS",
				option:   "logs",
				expected: "/opt/logs",
			},
			{
				name:     "trailing backslashes",
				content:  "[RUN]\ncmd = echo \\\nlevel = info\n",
				section:  "RUN",
				option:   "cmd",
				expected: "echo \\",
			},
			{
				name:     "backtick quoted values which are unwrapped",
				content:  "[RUN]\ncmd = `q`\n",
				section:  "RUN",
				option:   "cmd",
				expected: "q",
			},
			{
				name:     "triple quoted values which are unwrapped",
				content:  "[RUN]\ncmd = \"\"\"tri\"\"\"\n",
				section:  "RUN",
				option:   "cmd",
				expected: "tri",
			},
		}

		for _, tc := range testCases {
			t.Run("if the file has "+tc.name, func(t *testing.T) {
				m, err := parseIni([]byte(tc.content))
				if !assert.Nil(t, err) {
					return
				}

				v, found := m.Lookup(tc.section, tc.option)
				if !assert.True(t, found) {
					return
				}
				if !assert.Equal(t, tc.expected, v) {
					return
				}
			})
		}
	})

	t.Run("will join continuation lines", func(t *testing.T) {
		t.Run("if a value spans indented lines", func(t *testing.T) {
			m, err := parseIni([]byte("[LOG]\nformat = first\n  second\nlevel = info\n"))
			if !assert.Nil(t, err) {
				return
			}

			v, found := m.Lookup("LOG", "format")
			if !assert.True(t, found) {
				return
			}
			if !assert.Contains(t, v, "first") {
				return
			}
			if !assert.Contains(t, v, "second") {
				return
			}
		})
	})

	t.Run("will keep empty sections", func(t *testing.T) {
		t.Run("if the section has no options", func(t *testing.T) {
			m, err := parseIni([]byte("[DEFAULT]\ntimeout = 30\n\n[EMPTY]\n"))
			if !assert.Nil(t, err) {
				return
			}

			v, found := m.Lookup("EMPTY", "timeout")
			if !assert.True(t, found) {
				return
			}
			if !assert.Equal(t, "30", v) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a section header is not closed", func(t *testing.T) {
			_, err := parseIni([]byte("[LOG\nlevel = info\n"))

			var ierr InvalidIniError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.NotEmpty(t, ierr.Error()) {
				return
			}
			if !assert.NotNil(t, ierr.Unwrap()) {
				return
			}
		})

		t.Run("if a line has no delimiter", func(t *testing.T) {
			_, err := parseIni([]byte("[LOG]\njust some words\n"))

			var ierr InvalidIniError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
		})

		t.Run("if a reference names an unknown option", func(t *testing.T) {
			_, err := parseIni([]byte("[PATHS]\nlogs = %(home)s/logs\n"))

			var ierr InterpolationError
			if !assert.ErrorAs(t, err, &ierr) {
				return
			}
			if !assert.Equal(t, "PATHS", ierr.Section) {
				return
			}
			if !assert.Equal(t, "logs", ierr.Option) {
				return
			}

			var rerr UnknownReferenceError
			if !assert.ErrorAs(t, err, &rerr) {
				return
			}
			if !assert.Equal(t, "home", rerr.Name) {
				return
			}
		})

		t.Run("if a percent sign is not escaped", func(t *testing.T) {
			_, err := parseIni([]byte("[LIMITS]\ncpu = 100%\n"))
			if !assert.ErrorIs(t, err, ErrBadInterpolation) {
				return
			}
		})

		t.Run("if a reference is not closed", func(t *testing.T) {
			_, err := parseIni([]byte("[PATHS]\nlogs = %(home/logs\n"))
			if !assert.ErrorIs(t, err, ErrBadInterpolation) {
				return
			}
		})

		t.Run("if references form a cycle", func(t *testing.T) {
			_, err := parseIni([]byte("[PATHS]\na = %(b)s\nb = %(a)s\n"))
			if !assert.ErrorIs(t, err, ErrInterpolationDepth) {
				return
			}
		})
	})
}
