package calendar

// Pagume is the short thirteenth month of the Ethiopian year.
const Pagume = 13

// EthiopicDate is a year, month and day in the Ethiopian calendar. Month is
// in [1,13]; the first twelve months have 30 days and Pagume has 5, or 6 in
// a leap year. The zero value is not a valid date.
type EthiopicDate struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// NewEthiopicDate returns the date after checking it with IsValidEthiopicDate.
func NewEthiopicDate(year, month, day int) (EthiopicDate, error) {
	d := EthiopicDate{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return EthiopicDate{}, err
	}
	return d, nil
}

// IsEthiopicLeap reports whether the Ethiopian year has a sixth day of
// Pagume. Leap years are those with year mod 4 == 3 (floor modulo, so the
// rule extends to negative years).
func IsEthiopicLeap(year int) bool {
	return floorMod(int64(year), 4) == 3
}

// DaysInEthiopicMonth returns the length of the month, or 0 when month is
// outside [1,13].
func DaysInEthiopicMonth(year, month int) int {
	switch {
	case month >= 1 && month < Pagume:
		return 30
	case month == Pagume && IsEthiopicLeap(year):
		return 6
	case month == Pagume:
		return 5
	default:
		return 0
	}
}

// IsValidEthiopicDate reports whether (year, month, day) names a day in the
// Ethiopian calendar. It is defined for every integer input.
func IsValidEthiopicDate(year, month, day int) bool {
	n := DaysInEthiopicMonth(year, month)
	return n > 0 && day >= 1 && day <= n
}

// EthiopicToJDN returns the JDN of an Ethiopian date counted from the given
// era. The input is not checked; invalid dates give meaningless results.
func EthiopicToJDN(year, month, day int, era Era) JDN {
	y, m, d := int64(year), int64(month), int64(day)
	return JDN(int64(era) + 365 + 365*(y-1) + floorDiv(y, 4) + 30*m + d - 31)
}

// JDNToEthiopic is the inverse of EthiopicToJDN for the same era.
func JDNToEthiopic(jdn JDN, era Era) EthiopicDate {
	days := int64(jdn) - int64(era)
	r := floorMod(days, 1461)
	n := floorMod(r, 365) + 365*floorDiv(r, 1460)
	year := 4*floorDiv(days, 1461) + floorDiv(r, 365) - floorDiv(r, 1460)
	return EthiopicDate{
		Year:  int(year),
		Month: int(floorDiv(n, 30) + 1),
		Day:   int(floorMod(n, 30) + 1),
	}
}

// IsValid reports whether the date exists in the Ethiopian calendar.
func (d EthiopicDate) IsValid() bool {
	return IsValidEthiopicDate(d.Year, d.Month, d.Day)
}

// Validate returns an *InvalidDateError naming the first field that is out
// of range, or nil.
func (d EthiopicDate) Validate() error {
	if d.Month < 1 || d.Month > Pagume {
		return &InvalidDateError{Calendar: Ethiopic, Year: d.Year, Month: d.Month, Day: d.Day,
			Field: "month", Min: 1, Max: Pagume}
	}
	if n := DaysInEthiopicMonth(d.Year, d.Month); d.Day < 1 || d.Day > n {
		return &InvalidDateError{Calendar: Ethiopic, Year: d.Year, Month: d.Month, Day: d.Day,
			Field: "day", Min: 1, Max: n}
	}
	return nil
}

// JDN returns the day number of the date counted from era.
func (d EthiopicDate) JDN(era Era) JDN {
	return EthiopicToJDN(d.Year, d.Month, d.Day, era)
}

// String formats the date as YYYY-MM-DD.
func (d EthiopicDate) String() string {
	return formatYMD(d.Year, d.Month, d.Day)
}
