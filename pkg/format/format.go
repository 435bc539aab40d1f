// Package format carries the small display helpers shared by the onboarding
// pages: currency, dates, progress percentages and name derived values.
package format

import (
	"context"
	"encoding/binary"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EmailDomain is the company domain used for generated agent addresses.
const EmailDomain = "healthinsurancebureau.com"

// DateLayout renders dates as "January 2, 2006".
const DateLayout = "January 2, 2006"

const idLength = 9

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount as US dollars with thousands grouping and two
// decimals, e.g. $1,234.56 or -$12.00.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + printer.Sprintf("%.2f", amount)
}

// FormatDate renders t in long US form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CalculateProgress returns current/total as a percentage rounded half up.
func CalculateProgress(current, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(current)/float64(total)*100 + 0.5))
}

// GenerateEmailFromName builds first.last@healthinsurancebureau.com keeping
// only the ASCII letters of each name.
func GenerateEmailFromName(firstName, lastName string) string {
	return lettersOnly(firstName) + "." + lettersOnly(lastName) + "@" + EmailDomain
}

func lettersOnly(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// CapitalizeFirst upper-cases the first character and lower-cases the rest.
func CapitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// GetInitials returns the upper-cased first letters of both names.
func GetInitials(firstName, lastName string) string {
	return strings.ToUpper(firstRune(firstName) + firstRune(lastName))
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

// GenerateID returns a short random lowercase base36 identifier. It is meant
// for client-side keys, not for anything that must be unguessable.
func GenerateID() string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8])
	encoded := strconv.FormatUint(n, 36)
	if len(encoded) < idLength {
		encoded = strings.Repeat("0", idLength-len(encoded)) + encoded
	}
	return encoded[len(encoded)-idLength:]
}

// Delay blocks for d or until ctx is done, whichever comes first.
func Delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
