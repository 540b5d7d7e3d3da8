package phone

import "strings"

// Normalize canonicalizes a raw phone string for identity comparison. Every
// non-digit is stripped; when at least 9 digits remain only the last 9 are
// kept, which tolerates country-code prefixes like +351 or 00351. Shorter
// digit strings are returned as-is.
func Normalize(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) >= 9 {
		return s[len(s)-9:]
	}
	return s
}

// Equal reports whether two raw phone strings identify the same number.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// IsAdmin reports whether raw matches the configured administrator number.
func IsAdmin(raw, adminPhone string) bool {
	return Equal(raw, adminPhone)
}

// Mask obscures the middle of a phone number for display: first 4 and last 2
// characters survive. The asterisk run is clamped at zero so 5 and 6
// character inputs never produce a negative repeat count.
func Mask(raw string) string {
	if len(raw) < 5 {
		return "****"
	}
	middle := len(raw) - 6
	if middle < 0 {
		middle = 0
	}
	return raw[:4] + strings.Repeat("*", middle) + raw[len(raw)-2:]
}
