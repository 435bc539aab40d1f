package validation

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-onboarding/pkg/mask"
	"github.com/goliatone/go-onboarding/pkg/reference"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	phonePattern   = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	ssnPattern     = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	npnPattern     = regexp.MustCompile(`^\d{8,10}$`)
	zipPattern     = regexp.MustCompile(`^\d{5}$`)
	routingPattern = regexp.MustCompile(`^\d{9}$`)
)

// ValidateEmail checks for a local@domain.tld shape. Whitespace includes the
// vertical tab, every Unicode space separator and the byte order mark.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone accepts exactly "(DDD) DDD-DDDD".
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateSSN accepts exactly "DDD-DD-DDDD".
func ValidateSSN(ssn string) bool {
	return ssnPattern.MatchString(ssn)
}

// ValidateNPN strips non-digits and accepts 8 to 10 remaining digits.
func ValidateNPN(npn string) bool {
	return npnPattern.MatchString(mask.Digits(npn))
}

// ValidateZipCode accepts exactly five digits.
func ValidateZipCode(zip string) bool {
	return zipPattern.MatchString(zip)
}

// ValidateRoutingNumber accepts a nine digit ABA routing number whose
// weighted checksum (3, 7, 1) is divisible by ten.
func ValidateRoutingNumber(routing string) bool {
	if !routingPattern.MatchString(routing) {
		return false
	}
	weights := [3]int{3, 7, 1}
	sum := 0
	for i := 0; i < len(routing); i++ {
		sum += int(routing[i]-'0') * weights[i%3]
	}
	return sum%10 == 0
}

// ValidateState accepts a known two-letter US state code.
func ValidateState(code string) bool {
	_, ok := reference.StateByCode(strings.TrimSpace(code))
	return ok
}
