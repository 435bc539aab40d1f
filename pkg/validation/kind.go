package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKind is returned by Validate for validator names it does not
// know.
var ErrUnknownKind = errors.New("validation: unknown validator")

// Kind names a single-field validator.
type Kind string

const (
	KindEmail   Kind = "email"
	KindPhone   Kind = "phone"
	KindSSN     Kind = "ssn"
	KindNPN     Kind = "npn"
	KindZipCode Kind = "zipcode"
	KindRouting Kind = "routing"
	KindState   Kind = "state"
)

var validators = map[Kind]func(string) bool{
	KindEmail:   ValidateEmail,
	KindPhone:   ValidatePhone,
	KindSSN:     ValidateSSN,
	KindNPN:     ValidateNPN,
	KindZipCode: ValidateZipCode,
	KindRouting: ValidateRoutingNumber,
	KindState:   ValidateState,
}

// Validate runs the validator registered for kind. Only an unknown kind
// produces an error; an invalid value is reported as false.
func Validate(kind Kind, value string) (bool, error) {
	fn, ok := validators[Kind(strings.ToLower(strings.TrimSpace(string(kind))))]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return fn(value), nil
}

// Kinds lists the registered validator names in sorted order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(validators))
	for kind := range validators {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
