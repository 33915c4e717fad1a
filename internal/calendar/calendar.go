// Package calendar converts dates between the Ethiopian and Gregorian
// calendars.
//
// Every conversion goes through a Julian Day Number (JDN), an absolute day
// count that carries no calendar-specific fields. The Ethiopian side uses
// the Beyene-Kudlek formulation of the 4-year cycle; the Gregorian side is
// proleptic, so there is no special handling of the 1582 reform.
//
// All functions in this package are pure integer arithmetic and are safe
// for concurrent use.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// JDN is a Julian Day Number. JDN 0 is Monday, November 24, 4714 BC in the
// proleptic Gregorian calendar (year -4713 in astronomical numbering).
type JDN int64

// Era is an epoch offset that aligns an Ethiopian year count with the JDN
// epoch. Only AmeteAlem and AmeteMihret are meaningful values.
type Era int64

// Epoch offsets.
const (
	// AmeteAlem is the "Year of the World" era used for ancient dates.
	AmeteAlem Era = -285019

	// AmeteMihret is the "Year of Mercy" era, the modern default.
	AmeteMihret Era = 1723856

	// GregorianEpoch is the JDN of January 1, year 1 (proleptic Gregorian).
	GregorianEpoch JDN = 1721426
)

// eraThreshold is the JDN of Meskerem 1, 1 AM (Meskerem 1, 5501 AA).
// Dates on or after it are labelled Amete Mihret.
const eraThreshold = JDN(AmeteMihret) + 365

// GuessEra picks the era a reader would expect for a date with the given
// JDN: AmeteMihret from 1 AM onward, AmeteAlem before that.
//
// The threshold is inclusive: Meskerem 1, 1 AM is already Amete Mihret.
func GuessEra(jdn JDN) Era {
	if jdn >= eraThreshold {
		return AmeteMihret
	}
	return AmeteAlem
}

// String returns the conventional abbreviation of the era ("AA" or "AM").
// Offsets that are not one of the two known eras print as a number.
func (e Era) String() string {
	switch e {
	case AmeteAlem:
		return "AA"
	case AmeteMihret:
		return "AM"
	default:
		return strconv.FormatInt(int64(e), 10)
	}
}

// Name returns the long transliterated name of the era.
func (e Era) Name() string {
	switch e {
	case AmeteAlem:
		return "Amete Alem"
	case AmeteMihret:
		return "Amete Mihret"
	default:
		return e.String()
	}
}

// ParseEra parses an era given as an abbreviation ("AA", "AM"), a long name
// ("amete-alem", "Amete Mihret", ...) or one of the two numeric offsets.
func ParseEra(s string) (Era, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	switch norm {
	case "aa", "ametealem":
		return AmeteAlem, nil
	case "am", "ametemihret":
		return AmeteMihret, nil
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		switch Era(n) {
		case AmeteAlem, AmeteMihret:
			return Era(n), nil
		}
	}
	return 0, fmt.Errorf("unknown era %q: use AA or AM", s)
}

// floorDiv divides rounding toward negative infinity, so the calendar
// formulas stay valid for negative years and day numbers.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the modulo that pairs with floorDiv; the result has the sign
// of b.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// MarshalText encodes the era as its abbreviation.
func (e Era) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText accepts anything ParseEra does.
func (e *Era) UnmarshalText(text []byte) error {
	era, err := ParseEra(string(text))
	if err != nil {
		return err
	}
	*e = era
	return nil
}
