package model

import "strings"

// NormalizePhone reduces a phone number to its digits, dropping a leading US
// country code. Customer lookup and dedup match on this form so "(330)
// 555-0199" and "330.555.0199" are the same customer.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		digits = digits[1:]
	}
	return digits
}
