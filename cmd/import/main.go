// Command import populates the SQLite day table with computed calendar days.
//
// Usage:
//
//	go run ./cmd/import -start 1900-01-01 -end 2100-12-31 -db data/calendar.db
//
// This tool:
// 1. Creates/opens the SQLite database
// 2. Runs migrations to ensure schema is current
// 3. Computes every day in the range and upserts it in batches
// 4. Records the run in import_runs and prints a summary
//
// The import is idempotent - re-running a range rewrites the same rows.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/database"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/daytable"
)

func main() {
	start := flag.String("start", "1900-01-01", "First Gregorian date (YYYY-MM-DD)")
	end := flag.String("end", "2100-12-31", "Last Gregorian date (YYYY-MM-DD)")
	dbPath := flag.String("db", "data/calendar.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*start, *end, *dbPath, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(startStr, endStr, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	start, err := calendar.ParseGregorianDate(startStr)
	if err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}
	end, err := calendar.ParseGregorianDate(endStr)
	if err != nil {
		return fmt.Errorf("parse -end: %w", err)
	}

	// =========================================================================
	// Step 1: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 2: Import
	// =========================================================================
	importRun, err := daytable.NewImporter(db, logger, 0).Import(ctx, start, end, "cmd/import")
	if err != nil {
		return fmt.Errorf("import days: %w", err)
	}

	// =========================================================================
	// Step 3: Verify import
	// =========================================================================
	stats, err := db.GetDayStats(ctx)
	if err != nil {
		return fmt.Errorf("get day stats: %w", err)
	}

	elapsed := time.Since(startTime)

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Range:               %s to %s\n", start, end)
	fmt.Printf("Days written:        %d\n", importRun.DaysWritten)
	fmt.Printf("Days in table:       %d\n", stats.TotalDays)
	fmt.Printf("Table covers:        %s to %s\n", stats.FirstGregorian, stats.LastGregorian)
	fmt.Printf("Import runs logged:  %d\n", stats.ImportRuns)
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}
