// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package layconf

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

func decode(values map[string]any, v any) error {
	// mapstructure flattens hook errors into strings, so the first
	// coercion failure is kept aside to preserve its type.
	var coerceErr error
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook: composeDecodeHooks(
			&coerceErr,
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
			boolHookFunc(),
			intHookFunc(),
			floatHookFunc(),
		),
	})
	if err != nil {
		return err
	}

	err = dec.Decode(values)
	if coerceErr != nil {
		return coerceErr
	}
	return err
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to decode a config
// value to a struct field whose type does not match the config
// value type, up to, coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type(), e.to.Type(), e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(firstErr *error, hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			cerr := TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
			if *firstErr == nil {
				*firstErr = cerr
			}
			return nil, cerr
		}
		return f.Interface(), nil
	}
}

// stringHookFunc only runs h for string values.
func stringHookFunc(h func(t reflect.Type, s string) (any, error)) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		return h(t, reflect.ValueOf(data).String())
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return stringHookFunc(func(t reflect.Type, s string) (any, error) {
		result := reflect.New(t)
		u, ok := result.Interface().(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(s))
		if err != nil {
			return nil, err
		}
		return result.Elem().Interface(), nil
	})
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return stringHookFunc(func(t reflect.Type, s string) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}
		return parseDuration(s)
	})
}

func boolHookFunc() mapstructure.DecodeHookFuncType {
	return stringHookFunc(func(t reflect.Type, s string) (any, error) {
		if t.Kind() != reflect.Bool {
			return nil, errInvalidDecodeCondition
		}
		return parseBool(s)
	})
}

func intHookFunc() mapstructure.DecodeHookFuncType {
	return stringHookFunc(func(t reflect.Type, s string) (any, error) {
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return nil, errInvalidDecodeCondition
		}
		n, err := strconv.ParseInt(numeric(s), 10, t.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(t).Interface(), nil
	})
}

func floatHookFunc() mapstructure.DecodeHookFuncType {
	return stringHookFunc(func(t reflect.Type, s string) (any, error) {
		if t.Kind() != reflect.Float32 && t.Kind() != reflect.Float64 {
			return nil, errInvalidDecodeCondition
		}
		return parseFloat(s)
	})
}
