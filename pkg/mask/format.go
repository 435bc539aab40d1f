package mask

import "strings"

// FormatPhone progressively formats up to ten digits as (DDD) DDD-DDDD.
// Unlike the Phone preset it punctuates partial input:
//
//	FormatPhone("5551")       // "(555) 1"
//	FormatPhone("5551234567") // "(555) 123-4567"
func FormatPhone(value string) string {
	digits := Digits(value)
	switch n := len(digits); {
	case n < 4:
		return digits
	case n < 7:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:min(n, 10)]
	}
}

// FormatSSN progressively formats up to nine digits as DDD-DD-DDDD.
func FormatSSN(value string) string {
	digits := Digits(value)
	switch n := len(digits); {
	case n < 4:
		return digits
	case n < 6:
		return digits[:3] + "-" + digits[3:]
	default:
		return digits[:3] + "-" + digits[3:5] + "-" + digits[5:min(n, 9)]
	}
}

// FormatBankAccount groups account digits in blocks of four separated by
// dashes. A dash is only written when another digit follows.
func FormatBankAccount(value string) string {
	digits := Digits(value)
	if len(digits) <= 4 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
