package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const dayColumns = `
	jdn,
	gregorian_year, gregorian_month, gregorian_day, gregorian_date,
	ethiopic_year, ethiopic_month, ethiopic_day, ethiopic_date,
	era, weekday, created_at, updated_at`

// =============================================================================
// Day Queries
// =============================================================================

// UpsertDays inserts or updates the given days in a single transaction.
//
// This is IDEMPOTENT - re-importing a range rewrites the same rows.
// Returns the number of rows written.
func (db *DB) UpsertDays(ctx context.Context, days []CalendarDay) (int, error) {
	if len(days) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO calendar_days (
			jdn,
			gregorian_year, gregorian_month, gregorian_day, gregorian_date,
			ethiopic_year, ethiopic_month, ethiopic_day, ethiopic_date,
			era, weekday
		) VALUES (
			:jdn,
			:gregorian_year, :gregorian_month, :gregorian_day, :gregorian_date,
			:ethiopic_year, :ethiopic_month, :ethiopic_day, :ethiopic_date,
			:era, :weekday
		)
		ON CONFLICT(jdn) DO UPDATE SET
			gregorian_year = excluded.gregorian_year,
			gregorian_month = excluded.gregorian_month,
			gregorian_day = excluded.gregorian_day,
			gregorian_date = excluded.gregorian_date,
			ethiopic_year = excluded.ethiopic_year,
			ethiopic_month = excluded.ethiopic_month,
			ethiopic_day = excluded.ethiopic_day,
			ethiopic_date = excluded.ethiopic_date,
			era = excluded.era,
			weekday = excluded.weekday,
			updated_at = CURRENT_TIMESTAMP
	`

	written := 0
	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, query)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for i := range days {
			if _, err := stmt.ExecContext(ctx, &days[i]); err != nil {
				return fmt.Errorf("upsert day %d: %w", days[i].JDN, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// GetDayByJDN retrieves the day with the given Julian Day Number.
// Returns ErrNotFound if the day has not been imported.
func (db *DB) GetDayByJDN(ctx context.Context, jdn int64) (*CalendarDay, error) {
	return db.getDay(ctx, `SELECT `+dayColumns+` FROM calendar_days WHERE jdn = ?`, jdn)
}

// GetDayByGregorian retrieves a day by its Gregorian date (YYYY-MM-DD).
// Returns ErrNotFound if the day has not been imported.
func (db *DB) GetDayByGregorian(ctx context.Context, date string) (*CalendarDay, error) {
	return db.getDay(ctx, `SELECT `+dayColumns+` FROM calendar_days WHERE gregorian_date = ?`, date)
}

// GetDayByEthiopic retrieves a day by its Ethiopian date (YYYY-MM-DD) in
// the given era ("AA" or "AM").
// Returns ErrNotFound if the day has not been imported.
func (db *DB) GetDayByEthiopic(ctx context.Context, era, date string) (*CalendarDay, error) {
	return db.getDay(ctx, `SELECT `+dayColumns+` FROM calendar_days WHERE era = ? AND ethiopic_date = ?`, era, date)
}

func (db *DB) getDay(ctx context.Context, query string, args ...any) (*CalendarDay, error) {
	var day CalendarDay
	if err := db.GetContext(ctx, &day, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query day: %w", err)
	}
	return &day, nil
}

// GetDaysByJDNRange retrieves all imported days with start <= jdn <= end,
// ordered by JDN. Returns an empty slice if none are found.
func (db *DB) GetDaysByJDNRange(ctx context.Context, start, end int64) ([]CalendarDay, error) {
	query := `SELECT ` + dayColumns + `
		FROM calendar_days
		WHERE jdn >= ? AND jdn <= ?
		ORDER BY jdn ASC`

	days := []CalendarDay{}
	if err := db.SelectContext(ctx, &days, query, start, end); err != nil {
		return nil, fmt.Errorf("query days by range: %w", err)
	}
	return days, nil
}

// DeleteDaysByJDNRange removes imported days with start <= jdn <= end.
// Returns the number of rows removed.
func (db *DB) DeleteDaysByJDNRange(ctx context.Context, start, end int64) (int64, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM calendar_days WHERE jdn >= ? AND jdn <= ?`, start, end)
	if err != nil {
		return 0, fmt.Errorf("delete days: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("check rows affected: %w", err)
	}
	return rows, nil
}

// GetDayStats returns statistics about the day table.
//
// Useful for:
// - Verifying import coverage
// - Deciding whether a range can be served from the table
func (db *DB) GetDayStats(ctx context.Context) (*DayStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM calendar_days) AS total_days,
			(SELECT COALESCE(MIN(jdn), 0) FROM calendar_days) AS first_jdn,
			(SELECT COALESCE(MAX(jdn), 0) FROM calendar_days) AS last_jdn,
			COALESCE((SELECT gregorian_date FROM calendar_days ORDER BY jdn ASC LIMIT 1), '') AS first_gregorian,
			COALESCE((SELECT gregorian_date FROM calendar_days ORDER BY jdn DESC LIMIT 1), '') AS last_gregorian,
			(SELECT COUNT(*) FROM import_runs) AS import_runs
	`

	var stats DayStats
	if err := db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("query day stats: %w", err)
	}
	return &stats, nil
}

// CountDaysInRange returns how many days with start <= jdn <= end are
// present in the table.
func (db *DB) CountDaysInRange(ctx context.Context, start, end int64) (int, error) {
	var n int
	err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM calendar_days WHERE jdn >= ? AND jdn <= ?`, start, end)
	if err != nil {
		return 0, fmt.Errorf("count days: %w", err)
	}
	return n, nil
}

// =============================================================================
// Import Run Queries
// =============================================================================

// LogImportRun records an import in the import_runs table and sets run.ID.
func (db *DB) LogImportRun(ctx context.Context, run *ImportRun) error {
	query := `
		INSERT INTO import_runs (start_jdn, end_jdn, days_written, duration_ms, source)
		VALUES (:start_jdn, :end_jdn, :days_written, :duration_ms, :source)
	`

	result, err := db.NamedExecContext(ctx, query, run)
	if err != nil {
		return fmt.Errorf("log import run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get import run id: %w", err)
	}
	run.ID = id

	return nil
}

// GetRecentImportRuns retrieves the most recent import runs, newest first.
func (db *DB) GetRecentImportRuns(ctx context.Context, limit int) ([]ImportRun, error) {
	query := `
		SELECT id, start_jdn, end_jdn, days_written, duration_ms, source, created_at
		FROM import_runs
		ORDER BY id DESC
		LIMIT ?
	`

	runs := []ImportRun{}
	if err := db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("query import runs: %w", err)
	}
	return runs, nil
}
