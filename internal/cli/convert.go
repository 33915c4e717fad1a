package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/calendar"
)

// now is replaced in tests.
var now = time.Now

// eraFlag resolves --era, falling back to the era an Ethiopian date
// resolves to when the flag is empty.
func eraFlag(s string, date calendar.EthiopicDate) (calendar.Era, error) {
	if s == "" {
		return calendar.ResolveEra(date.Year, date.Month, date.Day), nil
	}
	return calendar.ParseEra(s)
}

// ─── to-gregorian ───────────────────────────────────────────────────────────

func newToGregorianCommand(out printerFunc) *cobra.Command {
	var era string

	cmd := &cobra.Command{
		Use:   "to-gregorian DATE",
		Short: "Convert an Ethiopian date to Gregorian",
		Example: `  ethcal to-gregorian 2017-01-01
  ethcal to-gregorian 5500-01-01 --era AA`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := calendar.ParseEthiopicDate(args[0])
			if err != nil {
				return err
			}
			e, err := eraFlag(era, date)
			if err != nil {
				return err
			}

			view := newDayView(calendar.DayInEra(date.JDN(e), e))
			return out(cmd).print(view, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, view.Gregorian)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&era, "era", "", "Era of DATE: AA or AM (default: auto)")
	return cmd
}

// ─── to-ethiopic ────────────────────────────────────────────────────────────

func newToEthiopicCommand(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "to-ethiopic DATE",
		Short:   "Convert a Gregorian date to Ethiopian",
		Example: `  ethcal to-ethiopic 2024-09-11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := calendar.ParseGregorianDate(args[0])
			if err != nil {
				return err
			}

			view := newDayView(calendar.DayOf(date.JDN()))
			return out(cmd).print(view, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s %s\n", view.Ethiopic, view.Era)
				return err
			})
		},
	}
}

// ─── today ──────────────────────────────────────────────────────────────────

func newTodayCommand(out printerFunc) *cobra.Command {
	var utc bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's date in both calendars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := now()
			if utc {
				t = t.UTC()
			}
			view := newDayView(calendar.DayOf(calendar.GregorianDateOf(t).JDN()))
			return out(cmd).print(view, view.writeText)
		},
	}
	cmd.Flags().BoolVar(&utc, "utc", false, "Use the UTC date instead of the local one")
	return cmd
}

// ─── validate ───────────────────────────────────────────────────────────────

type validationView struct {
	Calendar string `json:"calendar" yaml:"calendar"`
	Input    string `json:"input" yaml:"input"`
	Valid    bool   `json:"valid" yaml:"valid"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func newValidateCommand(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:       "validate ethiopic|gregorian DATE",
		Short:     "Check whether a date exists",
		Example:   `  ethcal validate ethiopic 2015-13-06`,
		Args:      cobra.MatchAll(cobra.ExactArgs(2), validCalendarArg),
		ValidArgs: []string{string(calendar.Ethiopic), string(calendar.Gregorian)},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch calendar.Kind(args[0]) {
			case calendar.Ethiopic:
				_, err = calendar.ParseEthiopicDate(args[1])
			case calendar.Gregorian:
				_, err = calendar.ParseGregorianDate(args[1])
			}

			view := validationView{Calendar: args[0], Input: args[1], Valid: err == nil}
			if err != nil {
				view.Reason = err.Error()
			}
			return out(cmd).print(view, func(w io.Writer) error {
				if view.Valid {
					_, err := fmt.Fprintln(w, "valid")
					return err
				}
				_, err := fmt.Fprintf(w, "invalid: %s\n", view.Reason)
				return err
			})
		},
	}
}

func validCalendarArg(cmd *cobra.Command, args []string) error {
	switch calendar.Kind(args[0]) {
	case calendar.Ethiopic, calendar.Gregorian:
		return nil
	}
	return fmt.Errorf("unknown calendar %q: use ethiopic or gregorian", args[0])
}

// ─── jdn ────────────────────────────────────────────────────────────────────

type jdnView struct {
	Calendar string `json:"calendar" yaml:"calendar"`
	Date     string `json:"date" yaml:"date"`
	Era      string `json:"era,omitempty" yaml:"era,omitempty"`
	JDN      int64  `json:"jdn" yaml:"jdn"`
}

func newJDNCommand(out printerFunc) *cobra.Command {
	var (
		kind string
		era  string
	)

	cmd := &cobra.Command{
		Use:   "jdn DATE",
		Short: "Print the Julian Day Number of a date",
		Example: `  ethcal jdn 2000-01-01
  ethcal jdn 2017-01-01 --calendar ethiopic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var view jdnView

			switch calendar.Kind(kind) {
			case calendar.Gregorian:
				date, err := calendar.ParseGregorianDate(args[0])
				if err != nil {
					return err
				}
				view = jdnView{Calendar: kind, Date: date.String(), JDN: int64(date.JDN())}
			case calendar.Ethiopic:
				date, err := calendar.ParseEthiopicDate(args[0])
				if err != nil {
					return err
				}
				e, err := eraFlag(era, date)
				if err != nil {
					return err
				}
				view = jdnView{Calendar: kind, Date: date.String(), Era: e.String(), JDN: int64(date.JDN(e))}
			default:
				return fmt.Errorf("unknown calendar %q: use ethiopic or gregorian", kind)
			}

			return out(cmd).print(view, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, view.JDN)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "calendar", "c", string(calendar.Gregorian), "Calendar of DATE: ethiopic or gregorian")
	cmd.Flags().StringVar(&era, "era", "", "Era of an Ethiopian DATE: AA or AM (default: auto)")
	return cmd
}

// ─── from-jdn ───────────────────────────────────────────────────────────────

func newFromJDNCommand(out printerFunc) *cobra.Command {
	var era string

	cmd := &cobra.Command{
		Use:     "from-jdn JDN",
		Short:   "Show the dates of a Julian Day Number",
		Example: `  ethcal from-jdn 2460565`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid JDN %q: %w", args[0], err)
			}
			jdn := calendar.JDN(n)

			day := calendar.DayOf(jdn)
			if era != "" {
				e, err := calendar.ParseEra(era)
				if err != nil {
					return err
				}
				day = calendar.DayInEra(jdn, e)
			}

			view := newDayView(day)
			return out(cmd).print(view, view.writeText)
		},
	}
	cmd.Flags().StringVar(&era, "era", "", "Era for the Ethiopian date: AA or AM (default: auto)")
	return cmd
}
