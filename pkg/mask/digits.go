package mask

import "strings"

// Digits returns the ASCII digits of s in their original order. Every other
// character, including non-ASCII digits, is dropped.
func Digits(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
