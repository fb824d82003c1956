// Command osscan sweeps the Observer–Singularity collapse model over
// parameter grids and writes the result tables the analysis notebooks
// consume. It is a thin driver: every threshold and formula lives in the
// oscollapse package, and this tool only maps fields to CSV columns.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "osscan",
		Short: "Parameter scans for the Observer-Singularity collapse model",
		Long: `osscan computes collapse rates, regime maps, visibility curves, and
coupling constraints for the Observer-Singularity (OS) gravity-collapse
model, and writes them as CSV tables.

The physics and every classification threshold live in the oscollapse
package; osscan only sweeps grids and renders columns. Infinite collapse
timescales are rendered as the literal "inf".`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{Level: level}),
			))
		},
	}

	rootCmd.PersistentFlags().String("config", "", "YAML file overriding classification thresholds")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newMassScanCmd(),
		newMapCmd(),
		newConstrainCmd(),
		newScenariosCmd(),
		newCurveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("osscan version %s\n", version)
		},
	}
}
