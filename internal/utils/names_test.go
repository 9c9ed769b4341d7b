package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ana", "Ana"},
		{"  aNA maría ", "Ana María"},
		{"LEE", "Lee"},
		{"", ""},
		{"ñora", "Ñora"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}
