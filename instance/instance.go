// Package instance classifies and compares the generic value trees produced
// by decoding data under validation: nil, bool, string, numeric scalars,
// []any sequences and map[string]any mappings. Values are never mutated.
package instance

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// Kind is the runtime category of a decoded value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// KindOf classifies a decoded value. JSON decoding yields json.Number when
// UseNumber is on; YAML decoding yields int and float64. All are numbers.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
	return KindInvalid
}

// Float converts any numeric value to float64. The second result is false
// for non-numbers.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// IsIntegral reports whether a numeric value has no fractional component,
// independent of its storage representation: 1, 1.0 and json.Number("1e2")
// are integral; 1.5 is not.
func IsIntegral(v any) bool {
	if n, ok := v.(json.Number); ok {
		// Exact for values wider than float64.
		if _, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return true
		}
	}
	f, ok := Float(v)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return f == math.Trunc(f)
}
