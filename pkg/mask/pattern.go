package mask

import "strings"

// Placeholder marks a digit slot in a custom mask pattern.
const Placeholder = 'X'

// ApplyPattern interleaves digits with the literal characters of pattern.
// Each `X` consumes the next digit; any other rune is copied as-is. Scanning
// stops as soon as either the pattern or the digits are exhausted, so literals
// that follow the last consumed digit are never emitted:
//
//	ApplyPattern("555", "(XXX) XXX-XXXX") // "(555"
//	ApplyPattern("", "(XXX) XXX-XXXX")    // ""
//
// Digits beyond the number of placeholders are dropped.
func ApplyPattern(digits, pattern string) string {
	if digits == "" || pattern == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(pattern))

	next := 0
	for _, r := range pattern {
		if next >= len(digits) {
			break
		}
		if r == Placeholder {
			b.WriteByte(digits[next])
			next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PlaceholderCount reports how many digits pattern can consume.
func PlaceholderCount(pattern string) int {
	return strings.Count(pattern, string(Placeholder))
}
