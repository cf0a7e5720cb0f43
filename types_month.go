package mymoney

import (
	"strings"
	"time"
)

// monthIndex maps lower-cased full month names to their calendar month.
var monthIndex = func() map[string]time.Month {
	index := make(map[string]time.Month, 12)
	for m := time.January; m <= time.December; m++ {
		index[strings.ToLower(m.String())] = m
	}
	return index
}()

// IsMonthName reports whether token is a full English month name. The match
// is case-insensitive; abbreviations are not accepted.
func IsMonthName(token string) bool {
	_, ok := monthIndex[strings.ToLower(token)]
	return ok
}

// ParseMonth resolves a full month name ("January", "MARCH", "jUnE") to its
// calendar month.
func ParseMonth(name string) (time.Month, error) {
	m, ok := monthIndex[strings.ToLower(name)]
	if !ok {
		return 0, &ParseError{Token: name, Reason: "not a month name"}
	}
	return m, nil
}

// monthName is like time.Month.String but tolerates the zero value, which
// the parser uses for "no month given".
func monthName(m time.Month) string {
	if m >= time.January && m <= time.December {
		return m.String()
	}
	return "(no month)"
}
