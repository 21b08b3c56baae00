// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package layeredconfig

import (
	"fmt"
	"math"
	"time"
)

// Kind tags the shape of a configuration node.
type Kind int

const (
	// KindScalar is a leaf value: string, number, bool or null.
	KindScalar Kind = iota
	// KindMapping is a nested key-value mapping.
	KindMapping
	// KindSequence is a YAML sequence.
	KindSequence
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "scalar"
	}
}

// Value is one node of the merged configuration tree: either a scalar leaf,
// a sequence, or a nested mapping. Typed accessors convert the underlying
// YAML value and return a descriptive error when the shapes do not match.
type Value struct {
	raw any
}

// Kind reports whether the value is a scalar, mapping or sequence.
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case map[string]any:
		return KindMapping
	case []any:
		return KindSequence
	default:
		return KindScalar
	}
}

// IsZero reports whether the value is empty: nil, an empty string, a zero
// number, false, or an empty mapping/sequence. Mirrors the emptiness rule
// the merge step uses when deciding that a local slot falls back to the
// default value.
func (v Value) IsZero() bool {
	switch typed := v.raw.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case bool:
		return !typed
	case int:
		return typed == 0
	case int64:
		return typed == 0
	case uint64:
		return typed == 0
	case float64:
		return typed == 0
	case map[string]any:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	default:
		return false
	}
}

// Raw returns the underlying decoded YAML value.
func (v Value) Raw() any {
	return v.raw
}

// String returns the value as a string.
func (v Value) String() (string, error) {
	s, ok := v.raw.(string)
	if !ok {
		return "", fmt.Errorf("value is %s, not a string", v.Kind())
	}

	return s, nil
}

// Int returns the value as an int. YAML integers decode as int, int64 or
// uint64 depending on magnitude; all three are accepted as long as the
// value fits the platform int range.
func (v Value) Int() (int, error) {
	switch typed := v.raw.(type) {
	case int:
		return typed, nil
	case int64:
		if typed < math.MinInt || typed > math.MaxInt {
			return 0, fmt.Errorf("value %d overflows int", typed)
		}
		return int(typed), nil
	case uint64:
		if typed > math.MaxInt {
			return 0, fmt.Errorf("value %d overflows int", typed)
		}
		return int(typed), nil
	default:
		return 0, fmt.Errorf("value is %s, not an integer", v.Kind())
	}
}

// Float returns the value as a float64. Integer values are widened.
func (v Value) Float() (float64, error) {
	switch typed := v.raw.(type) {
	case float64:
		return typed, nil
	case int:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	case uint64:
		return float64(typed), nil
	default:
		return 0, fmt.Errorf("value is %s, not a number", v.Kind())
	}
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.raw.(bool)
	if !ok {
		return false, fmt.Errorf("value is %s, not a bool", v.Kind())
	}

	return b, nil
}

// Duration returns the value as a time.Duration. Strings are parsed with
// time.ParseDuration ("1h", "30s"); numeric values are taken as nanoseconds.
func (v Value) Duration() (time.Duration, error) {
	switch typed := v.raw.(type) {
	case string:
		d, err := time.ParseDuration(typed)
		if err != nil {
			return 0, fmt.Errorf("error parsing duration: %w", err)
		}
		return d, nil
	case int:
		return time.Duration(typed), nil
	case int64:
		return time.Duration(typed), nil
	case float64:
		return time.Duration(typed), nil
	default:
		return 0, fmt.Errorf("value is %s, not a duration", v.Kind())
	}
}

// StringSlice returns the value as a slice of strings. Every sequence
// element must be a string.
func (v Value) StringSlice() ([]string, error) {
	items, ok := v.raw.([]any)
	if !ok {
		return nil, fmt.Errorf("value is %s, not a sequence", v.Kind())
	}

	result := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("sequence element %d is not a string", i)
		}
		result = append(result, s)
	}

	return result, nil
}

// Map returns the value as a nested mapping.
func (v Value) Map() (map[string]any, error) {
	m, ok := v.raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("value is %s, not a mapping", v.Kind())
	}

	return m, nil
}
