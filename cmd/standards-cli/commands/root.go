package commands

import (
	"context"
	"fmt"
	"os"

	"standards-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and runtime perf gauges.")
}

var rootCmd = &cobra.Command{
	Use:   "standards-cli",
	Short: "standards-cli collects state education standards into a local database.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
		if *verbose {
			telemetry.InstrumentPerfStats(cmd.Context())
		}
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
