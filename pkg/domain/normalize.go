package domain

import (
	"strings"
	"unicode"
)

// NormalizePlate returns the canonical form of a license plate: upper case
// with spaces, dashes and dots removed ("1234-abc" -> "1234ABC").
func NormalizePlate(plate string) string {
	return stripSeparators(plate)
}

// NormalizeNationalID returns the canonical form of a DNI/NIE/CIF.
func NormalizeNationalID(id string) string {
	return stripSeparators(id)
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' || r == '.' || r == '/' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}
