package parser

import (
	"math"
	"strconv"
	"strings"
)

// AsNumber converts a cell value to an amount. Strings may carry a '$'
// symbol and ',' thousands separators. Blank, unparsable, NaN and infinite
// values report ok=false.
func AsNumber(v any) (n float64, ok bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int64:
		n = float64(val)
	case int:
		n = float64(val)
	case bool:
		if val {
			n = 1
		}
	case string:
		s := strings.ReplaceAll(val, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// AsFraction converts a cell value to a fraction. Values above 1 are taken
// as percentages ("7" means 7%) and divided by 100.
func AsFraction(v any) (float64, bool) {
	n, ok := AsNumber(v)
	if !ok {
		return 0, false
	}
	if n > 1 {
		return n / 100.0, true
	}
	return n, true
}

func optional(n float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &n
}
