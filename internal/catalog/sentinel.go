package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Evenly is the reserved selection value meaning "distribute the remaining
// quantity evenly; true weight is unknown until fulfillment". Pricing treats
// it as one per-lot charge of the option's flat price.
const Evenly = "Evenly"

// NormalizeValue collapses every legacy encoding of "not selected" and
// returns the canonical string form of the value. The document store has
// accumulated empty strings, "false", false, 0, "0" and nulls over the
// years; this is the single predicate through which all of them pass.
func NormalizeValue(v interface{}) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(val)
		if s == "" || s == "false" || s == "0" {
			return "", false
		}
		return s, true
	case bool:
		if !val {
			return "", false
		}
		return "true", true
	case int:
		return normalizeFloat(float64(val))
	case int32:
		return normalizeFloat(float64(val))
	case int64:
		return normalizeFloat(float64(val))
	case float32:
		return normalizeFloat(float64(val))
	case float64:
		return normalizeFloat(val)
	default:
		// Unknown shapes are kept selected with their string form so that
		// normalization never drops data it does not understand.
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" || s == "false" || s == "0" {
			return "", false
		}
		return s, true
	}
}

// IsSelected reports whether a raw selection value represents an actual
// customer choice.
func IsSelected(v interface{}) bool {
	_, selected := NormalizeValue(v)
	return selected
}

// IsEvenly reports whether a raw selection value is the Evenly sentinel.
func IsEvenly(v interface{}) bool {
	s, selected := NormalizeValue(v)
	return selected && strings.EqualFold(s, Evenly)
}

// Quantity parses a selection value as a numeric quantity (pounds). The
// Evenly sentinel and non-numeric values report false.
func Quantity(v interface{}) (float64, bool) {
	s, selected := NormalizeValue(v)
	if !selected {
		return 0, false
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil || q <= 0 {
		return 0, false
	}
	return q, true
}

func normalizeFloat(f float64) (string, bool) {
	if f == 0 {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
