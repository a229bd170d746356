package params

import (
	"fmt"
	"time"
)

// Set is a caller-constructed mapping from semantic parameter name to a
// typed value. Supported value types are float64 (and other numeric types,
// which are coerced), string, bool, and time.Time for the "time" parameter.
// Keys are case-sensitive and carry no ordering semantics.
type Set map[string]any

// Merge returns a new Set containing the receiver's entries overlaid with
// the entries of override. Override values take precedence. Neither input
// is modified.
func (s Set) Merge(override Set) Set {
	merged := make(Set, len(s)+len(override))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// asFloat coerces a parameter value to float64. JSON decoding produces
// float64, YAML decoding produces int for whole numbers, and Go callers
// may supply any numeric type, so all common widths are accepted.
func asFloat(name string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("parameter %q: expected a number, got %T", name, v)
}

// asString coerces a parameter value to string.
func asString(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q: expected a string, got %T", name, v)
	}
	return s, nil
}

// asBool coerces a parameter value to bool.
func asBool(name string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("parameter %q: expected a bool, got %T", name, v)
	}
	return b, nil
}

// asTime coerces a parameter value to time.Time. String values are parsed
// as RFC 3339 timestamps, which is the form used in parameter files.
func asTime(name string, v any) (time.Time, error) {
	switch tv := v.(type) {
	case time.Time:
		return tv, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, tv)
		if err != nil {
			return time.Time{}, fmt.Errorf("parameter %q: %w", name, err)
		}
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("parameter %q: expected a time, got %T", name, v)
}
