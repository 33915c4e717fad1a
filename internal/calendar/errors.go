package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is returned when a conversion or lookup is attempted on a
// structurally invalid date. Use errors.Is to test for it and errors.As with
// *InvalidDateError to get the offending field.
var ErrInvalidDate = errors.New("invalid date")

// Kind identifies the calendar system a date belongs to.
type Kind string

const (
	Ethiopic  Kind = "ethiopic"
	Gregorian Kind = "gregorian"
)

// InvalidDateError describes which field of a date is out of range.
type InvalidDateError struct {
	Calendar Kind
	Year     int
	Month    int
	Day      int

	// Field is "month" or "day".
	Field string
	// Min and Max are the inclusive bounds Field had to fall within.
	Min, Max int
}

func (e *InvalidDateError) Error() string {
	value := e.Day
	if e.Field == "month" {
		value = e.Month
	}
	return fmt.Sprintf("invalid %s date %s: %s %d out of range [%d,%d]",
		e.Calendar, formatYMD(e.Year, e.Month, e.Day), e.Field, value, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrInvalidDate.
func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

// IsInvalidDate reports whether err is, or wraps, an invalid date error.
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}
