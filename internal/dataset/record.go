package dataset

import (
	"math"
	"strconv"
)

// Record is one loosely typed JSON object from a data file. Field types are
// not trusted: numeric fields may arrive as strings, null, or be missing
// entirely, so every arithmetic read goes through Coerce.
type Record map[string]any

// Float returns the named field coerced to a finite float64, or 0.
func (r Record) Float(key string) float64 {
	v, _ := Coerce(r[key])
	return v
}

// Str returns the named field as a string, or "" when absent or not a string.
func (r Record) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Coerce converts a JSON value to a finite float64 and reports whether the
// value actually held a finite number. Numeric strings count; null, booleans,
// objects, NaN and infinities do not.
func Coerce(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
