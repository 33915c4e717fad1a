package daytable

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/database"
)

// DefaultBatchSize is the number of days written per transaction.
const DefaultBatchSize = 1000

// Store is the write side of the day table.
type Store interface {
	UpsertDays(ctx context.Context, days []database.CalendarDay) (int, error)
	LogImportRun(ctx context.Context, run *database.ImportRun) error
	DeleteDaysByJDNRange(ctx context.Context, start, end int64) (int64, error)
}

// Importer populates the day table from the calendar kernel.
type Importer struct {
	db        Store
	logger    *slog.Logger
	limit     int
	batchSize int
}

// NewImporter creates an importer. limit caps the days per import
// (0 means no cap).
func NewImporter(db Store, logger *slog.Logger, limit int) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		db:        db,
		logger:    logger,
		limit:     limit,
		batchSize: DefaultBatchSize,
	}
}

// Import computes every day from start to end inclusive and upserts it
// into the day table, then records the run.
//
// Each batch commits on its own, so a failure part way leaves the earlier
// batches in place. Re-running the same range is safe.
func (im *Importer) Import(ctx context.Context, start, end calendar.GregorianDate, source string) (*database.ImportRun, error) {
	first, last, err := Span(start, end, im.limit)
	if err != nil {
		return nil, err
	}

	began := time.Now()
	im.logger.Info("importing days",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int64("days", int64(last-first)+1),
		slog.String("source", source),
	)

	written := 0
	batch := make([]database.CalendarDay, 0, im.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := im.db.UpsertDays(ctx, batch)
		if err != nil {
			return err
		}
		written += n
		im.logger.Debug("batch written",
			slog.Int64("through_jdn", batch[len(batch)-1].JDN),
			slog.Int("written", written),
		)
		batch = batch[:0]
		return nil
	}

	for jdn := first; jdn <= last; jdn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		batch = append(batch, Row(calendar.DayOf(jdn)))
		if len(batch) == im.batchSize {
			if err := flush(); err != nil {
				return nil, fmt.Errorf("import days: %w", err)
			}
		}
	}
	if err := flush(); err != nil {
		return nil, fmt.Errorf("import days: %w", err)
	}

	run := &database.ImportRun{
		StartJDN:    int64(first),
		EndJDN:      int64(last),
		DaysWritten: written,
		DurationMs:  time.Since(began).Milliseconds(),
		Source:      source,
	}
	if err := im.db.LogImportRun(ctx, run); err != nil {
		return nil, err
	}

	im.logger.Info("import complete",
		slog.Int("days_written", written),
		slog.Int64("duration_ms", run.DurationMs),
	)

	return run, nil
}

// Purge removes every imported day from start to end inclusive and returns
// how many rows went. Lookups in the range fall back to computation
// afterwards.
func (im *Importer) Purge(ctx context.Context, start, end calendar.GregorianDate) (int64, error) {
	first, last, err := Span(start, end, 0)
	if err != nil {
		return 0, err
	}

	removed, err := im.db.DeleteDaysByJDNRange(ctx, int64(first), int64(last))
	if err != nil {
		return 0, fmt.Errorf("purge days: %w", err)
	}

	im.logger.Info("days purged",
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int64("removed", removed),
	)
	return removed, nil
}
