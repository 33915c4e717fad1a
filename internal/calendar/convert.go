package calendar

import (
	"strconv"
	"time"
)

// EthiopicToGregorian converts an Ethiopian date, choosing the era with
// GuessEra: years from 1 onward are read as Amete Mihret, earlier ones as
// Amete Alem. Callers should check the input with IsValidEthiopicDate first.
func EthiopicToGregorian(year, month, day int) GregorianDate {
	return EthiopicToGregorianInEra(year, month, day, ResolveEra(year, month, day))
}

// ResolveEra returns the era EthiopicToGregorian reads an Ethiopian date in.
func ResolveEra(year, month, day int) Era {
	return GuessEra(EthiopicToJDN(year, month, day, AmeteMihret))
}

// EthiopicToGregorianInEra converts an Ethiopian date counted from era.
func EthiopicToGregorianInEra(year, month, day int, era Era) GregorianDate {
	return JDNToGregorian(EthiopicToJDN(year, month, day, era))
}

// GregorianToEthiopic converts a Gregorian date, labelling the result with
// the era GuessEra picks for it.
func GregorianToEthiopic(year, month, day int) EthiopicDate {
	jdn := GregorianToJDN(year, month, day)
	return JDNToEthiopic(jdn, GuessEra(jdn))
}

// ToGregorian validates d and converts it with an auto-detected era.
func ToGregorian(d EthiopicDate) (GregorianDate, error) {
	if err := d.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return EthiopicToGregorian(d.Year, d.Month, d.Day), nil
}

// ToGregorianInEra validates d and converts it counting from era.
func ToGregorianInEra(d EthiopicDate, era Era) (GregorianDate, error) {
	if err := d.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return EthiopicToGregorianInEra(d.Year, d.Month, d.Day, era), nil
}

// ToEthiopic validates g and converts it.
func ToEthiopic(g GregorianDate) (EthiopicDate, error) {
	if err := g.Validate(); err != nil {
		return EthiopicDate{}, err
	}
	return GregorianToEthiopic(g.Year, g.Month, g.Day), nil
}

// Weekday is a day of the week counted from Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// String returns the English name of the day.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}

// TimeWeekday converts to the time package's Sunday-based numbering.
func (w Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(w) + 1) % 7)
}

// DayOfWeek returns the weekday of a JDN, 0 (Monday) through 6 (Sunday).
// JDN 0 fell on a Monday.
func DayOfWeek(jdn JDN) Weekday {
	return Weekday(floorMod(int64(jdn), 7))
}
