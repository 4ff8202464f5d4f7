package model

import (
	"regexp"
	"strings"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	panRe      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// NormalizeMobile strips every non-digit character from a raw mobile input.
// When more than ten digits remain, only the last ten are kept, so an optional
// country-code prefix is dropped without being inspected. Empty input yields
// an empty string; the result may still be too short to be a valid number.
func NormalizeMobile(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// NormalizePAN trims surrounding whitespace and upper-cases a raw PAN input.
// No validation happens here; see IsValidPAN.
func NormalizePAN(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// IsValidPAN reports whether the input, once normalized, matches the PAN
// format: five letters, four digits, one letter (e.g. ABCDE1234F).
func IsValidPAN(raw string) bool {
	return panRe.MatchString(NormalizePAN(raw))
}
