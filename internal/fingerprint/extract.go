package fingerprint

import (
	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/domain/model"
)

// ExtractReorderPreferences returns the portion of an order a customer can
// reuse on a new one: every selection except customer-identity and
// deer-specific fields. System fields (ids, dates, frozen prices) live
// outside the selection map and are excluded by construction.
func ExtractReorderPreferences(order *model.Order) map[string]interface{} {
	if order == nil || order.Selections == nil {
		return map[string]interface{}{}
	}

	identity := identityAndDeerKeys()
	prefs := make(map[string]interface{})
	for key, value := range order.Selections {
		if identity[key] {
			continue
		}
		prefs[key] = value
	}
	return prefs
}
