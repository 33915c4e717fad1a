package calendar

import (
	"fmt"
	"regexp"
	"strconv"
)

var ymdRe = regexp.MustCompile(`^([+-]?[0-9]{1,7})-([0-9]{1,2})-([0-9]{1,2})$`)

// ParseEthiopicDate parses an Ethiopian date in YYYY-MM-DD form and
// validates it. The year may carry a sign.
func ParseEthiopicDate(s string) (EthiopicDate, error) {
	y, m, d, err := parseYMD(s)
	if err != nil {
		return EthiopicDate{}, err
	}
	return NewEthiopicDate(y, m, d)
}

// ParseGregorianDate parses a Gregorian date in YYYY-MM-DD form and
// validates it. The year may carry a sign.
func ParseGregorianDate(s string) (GregorianDate, error) {
	y, m, d, err := parseYMD(s)
	if err != nil {
		return GregorianDate{}, err
	}
	return NewGregorianDate(y, m, d)
}

func parseYMD(s string) (year, month, day int, err error) {
	matches := ymdRe.FindStringSubmatch(s)
	if len(matches) != 4 {
		return 0, 0, 0, fmt.Errorf("%w: %q is not in YYYY-MM-DD form", ErrInvalidDate, s)
	}
	// The pattern bounds every field, so Atoi cannot fail or overflow.
	year, _ = strconv.Atoi(matches[1])
	month, _ = strconv.Atoi(matches[2])
	day, _ = strconv.Atoi(matches[3])
	return year, month, day, nil
}

func formatYMD(year, month, day int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -year, month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
