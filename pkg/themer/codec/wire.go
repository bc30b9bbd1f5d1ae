// Package codec converts engine value types and themed element descriptions
// to and from a generic wire tree (maps, slices, numbers, strings, bools and
// nil) that any of the theme file formats can marshal.
package codec

import (
	"encoding/json"
	"math"
	"strconv"
)

// wireFloat widens a float32 through its shortest decimal form so files
// read 0.8 rather than 0.800000011920929.
func wireFloat(f float32) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(float64(f), 'g', -1, 32), 64)
	if err != nil {
		return float64(f)
	}
	return v
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
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
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt(v any) (int64, bool) {
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

func asArray(v any) ([]any, bool) {
	switch a := v.(type) {
	case []any:
		return a, true
	case []float64:
		out := make([]any, len(a))
		for i, f := range a {
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// floats decodes an array of exactly n numbers.
func floats(field string, v any, n int) ([]float32, error) {
	want := strconv.Itoa(n) + " numbers"
	arr, ok := asArray(v)
	if !ok || len(arr) != n {
		return nil, malformed(field, want, v)
	}
	out := make([]float32, n)
	for i, e := range arr {
		f, ok := toFloat(e)
		if !ok {
			return nil, malformed(field, want, v)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// ints decodes an array of exactly n integers.
func ints(field string, v any, n int) ([]int32, error) {
	want := strconv.Itoa(n) + " integers"
	arr, ok := asArray(v)
	if !ok || len(arr) != n {
		return nil, malformed(field, want, v)
	}
	out := make([]int32, n)
	for i, e := range arr {
		k, ok := toInt(e)
		if !ok || k < math.MinInt32 || k > math.MaxInt32 {
			return nil, malformed(field, want, v)
		}
		out[i] = int32(k)
	}
	return out, nil
}

func object(field string, v any) (map[string]any, error) {
	m, ok := asObject(v)
	if !ok {
		return nil, malformed(field, "object", v)
	}
	return m, nil
}

func requireKey(field string, obj map[string]any, key string) (any, error) {
	v, ok := obj[key]
	if !ok {
		return nil, &ValueError{Field: field + "." + key, Want: "a value", Got: nil, Err: ErrMalformedValue}
	}
	return v, nil
}

func requireFloat(field string, obj map[string]any, key string) (float32, error) {
	v, err := requireKey(field, obj, key)
	if err != nil {
		return 0, err
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, malformed(field+"."+key, "number", v)
	}
	return float32(f), nil
}

func requireBool(field string, obj map[string]any, key string) (bool, error) {
	v, err := requireKey(field, obj, key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, malformed(field+"."+key, "bool", v)
	}
	return b, nil
}

// optionalString returns nil when key is absent or null.
func optionalString(field string, obj map[string]any, key string) (*string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, malformed(field+"."+key, "string or null", v)
	}
	return &s, nil
}
