package utils

import (
	"strings"
	"unicode"
)

// NormalizeName trims the input and capitalizes the first letter of each
// word, lowering the rest ("  aNA maría " -> "Ana María").
func NormalizeName(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(strings.ToLower(f))
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
