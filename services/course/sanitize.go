package courseService

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Primitive sanitizers. Every function is total: any input value, including
// nil or a value of the wrong type, yields a well-typed result. Malformed
// input is absorbed into the supplied default, never reported as an error.

// SafeString coerces v into a trimmed string. Scalars are converted, nil and
// composite values fall back to the default.
func SafeString(v interface{}, def string) string {
	switch s := v.(type) {
	case nil:
		return strings.TrimSpace(def)
	case string:
		return strings.TrimSpace(s)
	case float64:
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return strings.TrimSpace(def)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(def)
	}
}

// SafeNumber coerces v into a float64. Strings are parsed; NaN, infinities
// and everything non-numeric fall back to the default.
func SafeNumber(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return def
		}
		return parsed
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return def
	}
}

// SafeBool coerces v into a bool. Strings compare case-insensitively against
// "true"; numbers are truthy when non-zero.
func SafeBool(v interface{}, def bool) bool {
	switch b := v.(type) {
	case nil:
		return def
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	case float64:
		return b != 0
	case int:
		return b != 0
	case int64:
		return b != 0
	default:
		return def
	}
}

// SafeArray returns v if it is literally an array, otherwise an empty slice.
// Objects are never wrapped into single-element arrays: a malformed nested
// object must not silently survive as content.
func SafeArray(v interface{}) []interface{} {
	if arr, ok := v.([]interface{}); ok {
		return arr
	}
	return []interface{}{}
}

// SafeObject returns v if it is a plain object, otherwise an empty map.
// Arrays are excluded.
func SafeObject(v interface{}) map[string]interface{} {
	if obj, ok := v.(map[string]interface{}); ok {
		return obj
	}
	return map[string]interface{}{}
}

// SafeStringSlice sanitizes v elementwise into strings and drops entries
// that normalize to the empty string, so lists like tags and learning
// outcomes never store blanks.
func SafeStringSlice(v interface{}) []string {
	arr := SafeArray(v)
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s := SafeString(item, "")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SafeTime parses v as an RFC3339 timestamp. Anything unparseable is nil.
func SafeTime(v interface{}) *time.Time {
	s := SafeString(v, "")
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
