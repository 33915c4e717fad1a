package calendar

import "time"

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// GregorianDate is a year, month and day in the proleptic Gregorian
// calendar, using astronomical year numbering (year 0 is 1 BC).
type GregorianDate struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// NewGregorianDate returns the date after checking it with
// IsValidGregorianDate.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	d := GregorianDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return GregorianDate{}, err
	}
	return d, nil
}

// GregorianDateOf returns the calendar date of t in t's location.
func GregorianDateOf(t time.Time) GregorianDate {
	y, m, d := t.Date()
	return GregorianDate{Year: y, Month: int(m), Day: d}
}

// IsGregorianLeap reports whether year is divisible by 4 and either not
// divisible by 100 or divisible by 400.
func IsGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInGregorianMonth returns the length of the month, or 0 when month is
// outside [1,12].
func DaysInGregorianMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsGregorianLeap(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}

// IsValidGregorianDate reports whether (year, month, day) names a day in the
// proleptic Gregorian calendar. It is defined for every integer input.
func IsValidGregorianDate(year, month, day int) bool {
	n := DaysInGregorianMonth(year, month)
	return n > 0 && day >= 1 && day <= n
}

// fixedDay counts days so that January 1 of year 1 is day 1.
func fixedDay(year, month, day int64) int64 {
	y1 := year - 1
	n := 365*y1 + floorDiv(y1, 4) - floorDiv(y1, 100) + floorDiv(y1, 400) +
		floorDiv(367*month-362, 12) + day
	switch {
	case month <= 2:
	case IsGregorianLeap(int(year)):
		n--
	default:
		n -= 2
	}
	return n
}

// GregorianToJDN returns the JDN of a proleptic Gregorian date. The input is
// not checked; invalid dates give meaningless results.
func GregorianToJDN(year, month, day int) JDN {
	return GregorianEpoch - 1 + JDN(fixedDay(int64(year), int64(month), int64(day)))
}

// JDNToGregorian is the inverse of GregorianToJDN.
func JDNToGregorian(jdn JDN) GregorianDate {
	fixed := int64(jdn-GregorianEpoch) + 1

	d0 := fixed - 1
	n400, d1 := floorDiv(d0, 146097), floorMod(d0, 146097)
	n100, d2 := floorDiv(d1, 36524), floorMod(d1, 36524)
	n4, d3 := floorDiv(d2, 1461), floorMod(d2, 1461)
	n1 := floorDiv(d3, 365)
	year := 400*n400 + 100*n100 + 4*n4 + n1
	// The last day of a 4- or 400-year cycle belongs to the year just counted.
	if n100 != 4 && n1 != 4 {
		year++
	}

	prior := fixed - fixedDay(year, 1, 1)
	var correction int64
	switch {
	case fixed < fixedDay(year, 3, 1):
	case IsGregorianLeap(int(year)):
		correction = 1
	default:
		correction = 2
	}
	month := floorDiv(12*(prior+correction)+373, 367)
	day := fixed - fixedDay(year, month, 1) + 1

	return GregorianDate{Year: int(year), Month: int(month), Day: int(day)}
}

// IsValid reports whether the date exists in the Gregorian calendar.
func (d GregorianDate) IsValid() bool {
	return IsValidGregorianDate(d.Year, d.Month, d.Day)
}

// Validate returns an *InvalidDateError naming the first field that is out
// of range, or nil.
func (d GregorianDate) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return &InvalidDateError{Calendar: Gregorian, Year: d.Year, Month: d.Month, Day: d.Day,
			Field: "month", Min: 1, Max: 12}
	}
	if n := DaysInGregorianMonth(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return &InvalidDateError{Calendar: Gregorian, Year: d.Year, Month: d.Month, Day: d.Day,
			Field: "day", Min: 1, Max: n}
	}
	return nil
}

// JDN returns the day number of the date.
func (d GregorianDate) JDN() JDN {
	return GregorianToJDN(d.Year, d.Month, d.Day)
}

// Time returns midnight UTC on the date.
func (d GregorianDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d GregorianDate) String() string {
	return formatYMD(d.Year, d.Month, d.Day)
}
