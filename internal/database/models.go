package database

import (
	"time"
)

// CalendarDay is one row of the day table: a JDN with its Gregorian and
// Ethiopian dates.
type CalendarDay struct {
	JDN int64 `db:"jdn" json:"jdn"`

	GregorianYear  int    `db:"gregorian_year" json:"gregorian_year"`
	GregorianMonth int    `db:"gregorian_month" json:"gregorian_month"`
	GregorianDay   int    `db:"gregorian_day" json:"gregorian_day"`
	GregorianDate  string `db:"gregorian_date" json:"gregorian_date"` // YYYY-MM-DD

	EthiopicYear  int    `db:"ethiopic_year" json:"ethiopic_year"`
	EthiopicMonth int    `db:"ethiopic_month" json:"ethiopic_month"`
	EthiopicDay   int    `db:"ethiopic_day" json:"ethiopic_day"`
	EthiopicDate  string `db:"ethiopic_date" json:"ethiopic_date"` // YYYY-MM-DD

	Era     string `db:"era" json:"era"`         // "AA" or "AM"
	Weekday int    `db:"weekday" json:"weekday"` // 0=Monday through 6=Sunday

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DayStats summarises the contents of the day table.
type DayStats struct {
	TotalDays      int    `db:"total_days" json:"total_days"`
	FirstJDN       int64  `db:"first_jdn" json:"first_jdn"`
	LastJDN        int64  `db:"last_jdn" json:"last_jdn"`
	FirstGregorian string `db:"first_gregorian" json:"first_gregorian"`
	LastGregorian  string `db:"last_gregorian" json:"last_gregorian"`
	ImportRuns     int    `db:"import_runs" json:"import_runs"`
}

// ImportRun records one population of the day table.
type ImportRun struct {
	ID          int64     `db:"id" json:"id"`
	StartJDN    int64     `db:"start_jdn" json:"start_jdn"`
	EndJDN      int64     `db:"end_jdn" json:"end_jdn"`
	DaysWritten int       `db:"days_written" json:"days_written"`
	DurationMs  int64     `db:"duration_ms" json:"duration_ms"`
	Source      string    `db:"source" json:"source"` // "api", "cli"
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
