package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/api"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/config"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/database"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/daytable"
	"github.com/abiywondimu5758/ethiopian-date-converter/internal/logger"
)

// ─── import ─────────────────────────────────────────────────────────────────

type importView struct {
	Database    string `json:"database" yaml:"database"`
	Start       string `json:"start" yaml:"start"`
	End         string `json:"end" yaml:"end"`
	DaysWritten int    `json:"days_written" yaml:"days_written"`
	DurationMs  int64  `json:"duration_ms" yaml:"duration_ms"`
	TotalDays   int    `json:"total_days" yaml:"total_days"`
}

func newImportCommand(out printerFunc) *cobra.Command {
	var start, end, dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Populate the day table for a Gregorian date range",
		Long: `Compute every day from --start to --end (inclusive) and write it to
the SQLite day table. Re-importing a range is safe.`,
		Example: `  ethcal import --start 2000-01-01 --end 2099-12-31 --db data/calendar.db`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.LoadLocal()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DatabasePath = dbPath
			}

			from, err := calendar.ParseGregorianDate(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			to, err := calendar.ParseGregorianDate(end)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			log := slog.Default()
			db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			run, err := daytable.NewImporter(db, log, cfg.ImportLimitDays).Import(ctx, from, to, "cli")
			if err != nil {
				return err
			}

			stats, err := db.GetDayStats(ctx)
			if err != nil {
				return err
			}

			view := importView{
				Database:    cfg.DatabasePath,
				Start:       from.String(),
				End:         to.String(),
				DaysWritten: run.DaysWritten,
				DurationMs:  run.DurationMs,
				TotalDays:   stats.TotalDays,
			}
			return out(cmd).print(view, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Imported %d days (%s to %s) into %s in %dms; table holds %d days\n",
					view.DaysWritten, view.Start, view.End, view.Database, view.DurationMs, view.TotalDays)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First Gregorian date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last Gregorian date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default: DATABASE_PATH)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

// ─── serve ──────────────────────────────────────────────────────────────────

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Long: `Start the HTTP API. Configuration comes from the environment
(PORT, ENV, DATABASE_PATH, API_KEY, LOG_LEVEL, LOG_FORMAT, ...) and the
optional TOML file named by CONFIG_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.Setup(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return api.Serve(ctx, cfg, log)
		},
	}
}
