// Package daytable connects the calendar kernel to the precomputed day
// table: it turns calendar days into rows, imports ranges of them and
// resolves dates from the table, falling back to computation when a day
// has not been imported.
package daytable

import (
	"context"
	"errors"
	"fmt"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/database"
)

// Source reports where a resolved day came from.
type Source string

const (
	SourceTable    Source = "table"
	SourceComputed Source = "computed"
)

var (
	// ErrReversedRange is returned when a range starts after it ends.
	ErrReversedRange = errors.New("range start is after range end")

	// ErrRangeTooLarge is returned when a range spans more days than allowed.
	ErrRangeTooLarge = errors.New("range too large")
)

// Queryable is the read side of the day table.
// *database.DB satisfies it; tests substitute fakes.
type Queryable interface {
	GetDayByJDN(ctx context.Context, jdn int64) (*database.CalendarDay, error)
	GetDayByGregorian(ctx context.Context, date string) (*database.CalendarDay, error)
	GetDayByEthiopic(ctx context.Context, era, date string) (*database.CalendarDay, error)
	CountDaysInRange(ctx context.Context, start, end int64) (int, error)
	GetDaysByJDNRange(ctx context.Context, start, end int64) ([]database.CalendarDay, error)
}

// Resolver resolves dates to calendar days.
type Resolver struct {
	db Queryable
}

// NewResolver creates a resolver. A nil db makes every lookup computed.
func NewResolver(db Queryable) *Resolver {
	return &Resolver{db: db}
}

// Resolve returns the day for the given Gregorian date.
//
// The day table is consulted first; a day that has not been imported is
// computed. Invalid dates return an error wrapping calendar.ErrInvalidDate.
func (r *Resolver) Resolve(ctx context.Context, date calendar.GregorianDate) (calendar.Day, Source, error) {
	if err := date.Validate(); err != nil {
		return calendar.Day{}, "", err
	}

	day, found, err := r.lookup(ctx, date.String(), func(q Queryable) (*database.CalendarDay, error) {
		return q.GetDayByGregorian(ctx, date.String())
	})
	if err != nil {
		return calendar.Day{}, "", err
	}
	if found {
		return day, SourceTable, nil
	}
	return calendar.DayOf(date.JDN()), SourceComputed, nil
}

// ResolveEthiopic returns the day for an Ethiopian date counted from era.
// Only rows stored under the same era label match; anything else is
// computed.
func (r *Resolver) ResolveEthiopic(ctx context.Context, date calendar.EthiopicDate, era calendar.Era) (calendar.Day, Source, error) {
	if err := date.Validate(); err != nil {
		return calendar.Day{}, "", err
	}

	key := era.String() + " " + date.String()
	day, found, err := r.lookup(ctx, key, func(q Queryable) (*database.CalendarDay, error) {
		return q.GetDayByEthiopic(ctx, era.String(), date.String())
	})
	if err != nil {
		return calendar.Day{}, "", err
	}
	if found {
		return day, SourceTable, nil
	}
	return calendar.DayInEra(date.JDN(era), era), SourceComputed, nil
}

// ResolveJDN returns the day with the given JDN, labelled with GuessEra.
func (r *Resolver) ResolveJDN(ctx context.Context, jdn calendar.JDN) (calendar.Day, Source, error) {
	day, found, err := r.lookup(ctx, fmt.Sprintf("JDN %d", jdn), func(q Queryable) (*database.CalendarDay, error) {
		return q.GetDayByJDN(ctx, int64(jdn))
	})
	if err != nil {
		return calendar.Day{}, "", err
	}
	if found {
		return day, SourceTable, nil
	}
	return calendar.DayOf(jdn), SourceComputed, nil
}

// lookup runs fetch against the table. found is false when there is no
// table or the day has not been imported.
func (r *Resolver) lookup(ctx context.Context, key string, fetch func(Queryable) (*database.CalendarDay, error)) (calendar.Day, bool, error) {
	if r.db == nil {
		return calendar.Day{}, false, nil
	}

	row, err := fetch(r.db)
	switch {
	case database.IsNotFound(err):
		return calendar.Day{}, false, nil
	case err != nil:
		return calendar.Day{}, false, fmt.Errorf("lookup day %s: %w", key, err)
	}

	day, err := FromRow(*row)
	if err != nil {
		return calendar.Day{}, false, err
	}
	return day, true, nil
}

// ResolveRange returns every day from start to end inclusive.
//
// The range is served from the table only when every day in it has been
// imported; otherwise the whole range is computed. limit caps the number
// of days (0 means no cap).
func (r *Resolver) ResolveRange(ctx context.Context, start, end calendar.GregorianDate, limit int) ([]calendar.Day, Source, error) {
	first, last, err := Span(start, end, limit)
	if err != nil {
		return nil, "", err
	}
	n := int(last-first) + 1

	if r.db != nil {
		stored, err := r.db.CountDaysInRange(ctx, int64(first), int64(last))
		if err != nil {
			return nil, "", fmt.Errorf("count days %d-%d: %w", first, last, err)
		}
		if stored == n {
			rows, err := r.db.GetDaysByJDNRange(ctx, int64(first), int64(last))
			if err != nil {
				return nil, "", fmt.Errorf("lookup days %d-%d: %w", first, last, err)
			}
			days := make([]calendar.Day, 0, n)
			for _, row := range rows {
				day, err := FromRow(row)
				if err != nil {
					return nil, "", err
				}
				days = append(days, day)
			}
			return days, SourceTable, nil
		}
	}

	days := make([]calendar.Day, 0, n)
	for jdn := first; jdn <= last; jdn++ {
		days = append(days, calendar.DayOf(jdn))
	}
	return days, SourceComputed, nil
}

// Span validates a Gregorian range and returns its JDN bounds.
func Span(start, end calendar.GregorianDate, limit int) (calendar.JDN, calendar.JDN, error) {
	if err := start.Validate(); err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return 0, 0, fmt.Errorf("end: %w", err)
	}

	first, last := start.JDN(), end.JDN()
	if first > last {
		return 0, 0, fmt.Errorf("%w: %s > %s", ErrReversedRange, start, end)
	}
	if days := int64(last-first) + 1; limit > 0 && days > int64(limit) {
		return 0, 0, fmt.Errorf("%w: %d days exceeds limit of %d", ErrRangeTooLarge, days, limit)
	}
	return first, last, nil
}

// =============================================================================
// Row Mapping
// =============================================================================

// Row converts a calendar day into a day-table row.
func Row(d calendar.Day) database.CalendarDay {
	return database.CalendarDay{
		JDN:            int64(d.JDN),
		GregorianYear:  d.Gregorian.Year,
		GregorianMonth: d.Gregorian.Month,
		GregorianDay:   d.Gregorian.Day,
		GregorianDate:  d.Gregorian.String(),
		EthiopicYear:   d.Ethiopic.Year,
		EthiopicMonth:  d.Ethiopic.Month,
		EthiopicDay:    d.Ethiopic.Day,
		EthiopicDate:   d.Ethiopic.String(),
		Era:            d.Era.String(),
		Weekday:        int(d.Weekday),
	}
}

// FromRow converts a day-table row back into a calendar day.
func FromRow(row database.CalendarDay) (calendar.Day, error) {
	era, err := calendar.ParseEra(row.Era)
	if err != nil {
		return calendar.Day{}, fmt.Errorf("day %d: %w", row.JDN, err)
	}
	return calendar.Day{
		JDN:       calendar.JDN(row.JDN),
		Gregorian: calendar.GregorianDate{Year: row.GregorianYear, Month: row.GregorianMonth, Day: row.GregorianDay},
		Ethiopic:  calendar.EthiopicDate{Year: row.EthiopicYear, Month: row.EthiopicMonth, Day: row.EthiopicDay},
		Era:       era,
		Weekday:   calendar.Weekday(row.Weekday),
	}, nil
}
