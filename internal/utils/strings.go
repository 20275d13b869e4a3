package utils

import (
	"strings"
)

// SplitList splits comma/semicolon separated config values into cleaned slices.
func SplitList(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MaskSecret keeps only the first and last five characters of a credential.
func MaskSecret(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= 10 {
		return strings.Repeat("*", len(s))
	}
	return s[:5] + "..." + s[len(s)-5:]
}
