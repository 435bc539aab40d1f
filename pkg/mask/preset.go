package mask

import "regexp"

// Spec names a mask. The preset values are matched exactly; any other value
// is treated as a custom `X` pattern.
type Spec string

const (
	Phone   Spec = "phone"
	SSN     Spec = "ssn"
	Zipcode Spec = "zipcode"
)

const zipcodeDigits = 5

var (
	phoneGroups = regexp.MustCompile(`(\d{3})(\d{3})(\d{4})`)
	ssnGroups   = regexp.MustCompile(`(\d{3})(\d{2})(\d{4})`)
)

// Preset reports whether s is one of the named presets.
func (s Spec) Preset() bool {
	switch s {
	case Phone, SSN, Zipcode:
		return true
	default:
		return false
	}
}

// Capacity returns how many digits the mask formats. For presets this is the
// size of the complete group set; for patterns it is the placeholder count.
func (s Spec) Capacity() int {
	switch s {
	case Phone:
		return 10
	case SSN:
		return 9
	case Zipcode:
		return zipcodeDigits
	default:
		return PlaceholderCount(string(s))
	}
}

// Apply normalises raw to its digits and formats them according to spec.
//
// Phone and SSN presets substitute only once all digit groups are present;
// until then the digit string is returned unchanged. Digits past the last
// group stay appended after the punctuated prefix. Zipcode keeps the first
// five digits. Every other spec is a progressive `X` pattern (see
// ApplyPattern).
func Apply(spec Spec, raw string) string {
	digits := Digits(raw)
	switch spec {
	case Phone:
		return replaceFirst(phoneGroups, digits, "($1) $2-$3")
	case SSN:
		return replaceFirst(ssnGroups, digits, "$1-$2-$3")
	case Zipcode:
		if len(digits) > zipcodeDigits {
			return digits[:zipcodeDigits]
		}
		return digits
	default:
		return ApplyPattern(digits, string(spec))
	}
}

// replaceFirst rewrites the leftmost match of re only, leaving the rest of
// src in place.
func replaceFirst(re *regexp.Regexp, src, template string) string {
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src
	}
	out := make([]byte, 0, len(src)+len(template))
	out = append(out, src[:loc[0]]...)
	out = re.ExpandString(out, template, src, loc)
	out = append(out, src[loc[1]:]...)
	return string(out)
}
