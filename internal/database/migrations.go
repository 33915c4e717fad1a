package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1CalendarDays,
	2: migrationV2ImportRuns,
}

// migrationV1CalendarDays creates the day table.
//
// One row per Julian Day Number. The Gregorian and Ethiopian columns are
// derived from the JDN when the row is imported; they are stored both as
// numbers (for range filters) and as ISO strings (for lookups and display).
const migrationV1CalendarDays = `
-- ============================================================================
-- Table: calendar_days
-- ============================================================================
CREATE TABLE IF NOT EXISTS calendar_days (
    -- Julian Day Number, the calendar-agnostic key
    jdn INTEGER PRIMARY KEY,

    gregorian_year  INTEGER NOT NULL,
    gregorian_month INTEGER NOT NULL CHECK (gregorian_month BETWEEN 1 AND 12),
    gregorian_day   INTEGER NOT NULL CHECK (gregorian_day BETWEEN 1 AND 31),
    gregorian_date  TEXT NOT NULL,

    ethiopic_year  INTEGER NOT NULL,
    ethiopic_month INTEGER NOT NULL CHECK (ethiopic_month BETWEEN 1 AND 13),
    ethiopic_day   INTEGER NOT NULL CHECK (ethiopic_day BETWEEN 1 AND 30),
    ethiopic_date  TEXT NOT NULL,

    -- Era the Ethiopian columns are counted from: 'AA' or 'AM'
    era TEXT NOT NULL CHECK (era IN ('AA', 'AM')),

    -- 0=Monday through 6=Sunday
    weekday INTEGER NOT NULL CHECK (weekday BETWEEN 0 AND 6),

    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_calendar_days_gregorian
    ON calendar_days(gregorian_date);

CREATE UNIQUE INDEX IF NOT EXISTS idx_calendar_days_ethiopic
    ON calendar_days(era, ethiopic_date);
`

// migrationV2ImportRuns records each import of the day table.
const migrationV2ImportRuns = `
CREATE TABLE IF NOT EXISTS import_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    start_jdn INTEGER NOT NULL,
    end_jdn INTEGER NOT NULL,
    days_written INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    source TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_import_runs_created
    ON import_runs(created_at);
`
