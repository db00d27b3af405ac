// Package fingerprint canonicalizes the preference subset of an order into a
// comparable signature, so a customer's history can be collapsed into
// distinct reusable preference sets.
//
// Fingerprints are derived on demand and never persisted.
package fingerprint

import (
	"strings"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/catalog"
)

// delimiter separates normalized field values in a fingerprint. It is a
// control character, and normalization strips control characters from every
// value, so no normalized value can ever produce it.
const delimiter = "\x1f"

// PreferenceFields returns the fixed, ordered list of fields that define a
// preference set. Identity fields (name, phone, address), deer-specific
// fields (tag number, date harvested) and system fields are excluded on
// purpose: two orders from different hunts with the same cut choices are the
// same preference set.
func PreferenceFields(c *catalog.Catalog) []string {
	identity := identityAndDeerKeys()
	var keys []string
	for _, key := range c.AllFieldKeys() {
		if identity[key] {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// Build computes the fingerprint of a selection map over the given
// preference-field list. Every value passes through sentinel normalization,
// so any input shape produces a signature and two legacy encodings of "not
// selected" collapse to the same token. Fields outside the list are ignored,
// which keeps fingerprints stable as the schema grows.
func Build(selections map[string]interface{}, preferenceFields []string) string {
	parts := make([]string, len(preferenceFields))
	for i, key := range preferenceFields {
		parts[i] = normalizeToken(selections[key])
	}
	return strings.Join(parts, delimiter)
}

// normalizeToken maps a raw selection value to its canonical comparison
// form: the empty token for any "not selected" encoding, otherwise the
// lower-cased, trimmed string with control characters removed.
func normalizeToken(v interface{}) string {
	s, selected := catalog.NormalizeValue(v)
	if !selected {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

func identityAndDeerKeys() map[string]bool {
	return map[string]bool{
		catalog.KeyName:          true,
		catalog.KeyPhone:         true,
		catalog.KeyAddress:       true,
		catalog.KeyCity:          true,
		catalog.KeyState:         true,
		catalog.KeyZip:           true,
		catalog.KeyCommunication: true,

		catalog.KeyTagNumber:      true,
		catalog.KeyStateHarvested: true,
		catalog.KeyBuckOrDoe:      true,
		catalog.KeyDateHarvested:  true,
	}
}
