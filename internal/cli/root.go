// Package cli implements the ethcal command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/logger"
)

// NewRootCommand builds the ethcal command tree.
func NewRootCommand() *cobra.Command {
	var (
		output  string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "ethcal",
		Short: "Convert dates between the Ethiopian and Gregorian calendars",
		Long: `ethcal converts dates between the Ethiopian and Gregorian calendars
through Julian Day Numbers, and can serve the same conversions over HTTP.

Dates are written YYYY-MM-DD. Negative (astronomical) years must follow
a "--" so they are not read as flags:

  ethcal to-ethiopic -- -4713-11-24`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			level := "warn"
			if verbose {
				level = "debug"
			}
			logger.SetupWriter(cmd.ErrOrStderr(), level, "text")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging on stderr")

	out := func(cmd *cobra.Command) printer {
		return printer{w: cmd.OutOrStdout(), format: output}
	}

	root.AddCommand(
		newToGregorianCommand(out),
		newToEthiopicCommand(out),
		newTodayCommand(out),
		newValidateCommand(out),
		newJDNCommand(out),
		newFromJDNCommand(out),
		newImportCommand(out),
		newServeCommand(),
	)

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// printerFunc gives each command a printer bound to --output.
type printerFunc func(cmd *cobra.Command) printer
