package store

import (
	"fmt"
	"strconv"
)

// Sanitize prepares a write payload: keys holding nil or empty-string values
// are dropped rather than written, the id key is removed (ids are
// store-assigned), and known fields get coerced (priceValue to a number,
// priceCurrency to a string). Nested maps and slices are cleaned the same
// way. Running it twice yields the same result as running it once.
func Sanitize(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if k == "id" {
			continue
		}
		v, keep := sanitizeValue(k, v)
		if keep {
			out[k] = v
		}
	}
	return out
}

func sanitizeValue(key string, v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil, false
		}
	case map[string]any:
		return Sanitize(t), true
	case []any:
		cleaned := make([]any, 0, len(t))
		for _, e := range t {
			if ev, keep := sanitizeValue("", e); keep {
				cleaned = append(cleaned, ev)
			}
		}
		return cleaned, true
	}

	switch key {
	case "priceValue":
		return coerceNumber(v)
	case "priceCurrency":
		if s, ok := v.(string); ok {
			return s, true
		}
		return fmt.Sprint(v), true
	}
	return v, true
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
