// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// InvalidJsonError occurs if a config file contains invalid JSON.
type InvalidJsonError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

func parseJson(b []byte) (Map, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	// numbers are kept verbatim instead of round tripping through float64
	dec.UseNumber()

	tree := make(map[string]any)
	err := dec.Decode(&tree)
	if err != nil {
		return nil, InvalidJsonError{Cause: err}
	}
	return fromTree(tree)
}
