package validation

import (
	"strings"

	domainErrors "sotrapay/internal/errors"
)

// NormalizePhone reduces a phone number to its digits so that numbers entered
// with spacing, dashes or a leading + compare equal.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone checks that a normalized phone number has enough digits to be
// worth a lookup.
func ValidatePhone(phone string, minDigits int) error {
	if len(NormalizePhone(phone)) < minDigits {
		return domainErrors.ErrPhoneTooShort
	}
	return nil
}

// SamePhone reports whether two raw phone numbers refer to the same line,
// comparing normalized forms and tolerating a country prefix on one side.
func SamePhone(a, b string) bool {
	na, nb := NormalizePhone(a), NormalizePhone(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return strings.HasSuffix(na, nb) || strings.HasSuffix(nb, na)
}
