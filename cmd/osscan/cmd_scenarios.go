package main

import (
	"fmt"
	"log/slog"

	oscollapse "github.com/ermiazhalehpourmianj/Project-Observer-Singularity"
	"github.com/spf13/cobra"
)

func newScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Run the benchmark scenarios and print a summary",
		Long: `scenarios evaluates the four reference configurations spanning the
molecule-to-macroscopic mass range and prints one summary line per scenario.
With --out set, the results are also written as a CSV table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			results, err := oscollapse.BenchmarkScenarios()
			if err != nil {
				return err
			}

			for _, result := range results {
				fmt.Println(oscollapse.ScenarioSummary(result))
			}

			if out != "" {
				rows := make([][]string, 0, len(results))
				for _, result := range results {
					collapse, err := oscollapse.CollapseRates(result.Config, result.Coupling)
					if err != nil {
						return err
					}
					rows = append(rows, []string{
						result.Name,
						col(result.Config.Mass),
						col(result.Config.Separation),
						col(result.Time),
						col(collapse.DeltaEG),
						col(collapse.GammaCol),
						oscollapse.FormatTimescale(result.TauC),
						col(result.VisibilityAt),
					})
				}
				header := []string{
					"scenario", "mass_kg", "separation_m", "t_s",
					"delta_e_g", "gamma_col", "tau_c", "v_os",
				}
				if err := writeCSV(out, header, rows); err != nil {
					return err
				}
				slog.Info("scenario table written", "path", out, "scenarios", len(rows))
			}
			return nil
		},
	}

	cmd.Flags().String("out", "", "Optional CSV output path")

	return cmd
}
