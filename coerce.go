// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package layconf

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var booleanStates = map[string]bool{
	"1":     true,
	"yes":   true,
	"true":  true,
	"on":    true,
	"0":     false,
	"no":    false,
	"false": false,
	"off":   false,
}

// ErrNotBoolean is the cause of a [MalformedValueError] for
// values outside of the boolean vocabulary.
var ErrNotBoolean = errors.New("not a boolean")

func parseString(s string) (string, error) {
	return s, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(numeric(s), 10, 0)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(numeric(s), 64)
}

// numeric trims s and drops every underscore which sits between two
// decimal digits, so "1_000" reads as 1000. Other underscores are left
// in place for the parser to reject.
func numeric(s string) string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "_") {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i > 0 && i < len(s)-1 && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// parseBool accepts exactly 1/yes/true/on and 0/no/false/off, ignoring case.
func parseBool(s string) (bool, error) {
	b, ok := booleanStates[strings.ToLower(s)]
	if !ok {
		return false, ErrNotBoolean
	}
	return b, nil
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(s))
}
