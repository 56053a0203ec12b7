// ABOUTME: Safe coercion helpers for arbitrary decoded JSON values
// ABOUTME: Every coercion substitutes a caller-supplied fallback instead of propagating bad values

package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// String coerces a decoded JSON value to a trimmed string. Values that
// have no sensible string form (objects, arrays, null) become "".
func String(v interface{}) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return ""
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	default:
		return ""
	}
}

// StringList coerces a decoded JSON value to a string slice, dropping
// elements that coerce to the empty string. A non-sequence source is
// treated as absent and yields nil.
func StringList(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := String(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Number attempts numeric conversion of a decoded JSON value. Results
// that are not finite (NaN, ±Inf, or conversion failure) are replaced
// by the fallback, so callers never see an invalid number.
func Number(v interface{}, fallback float64) float64 {
	var n float64
	switch num := v.(type) {
	case float64:
		n = num
	case int:
		n = float64(num)
	case int64:
		n = float64(num)
	case json.Number:
		parsed, err := num.Float64()
		if err != nil {
			return fallback
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return fallback
		}
		n = parsed
	default:
		return fallback
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return n
}

// Int is Number truncated to an integer.
func Int(v interface{}, fallback int) int {
	return int(Number(v, float64(fallback)))
}
