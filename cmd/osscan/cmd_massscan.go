package main

import (
	"fmt"
	"log/slog"

	oscollapse "github.com/ermiazhalehpourmianj/Project-Observer-Singularity"
	"github.com/spf13/cobra"
)

func newMassScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mass-scan",
		Short: "Sweep collapse quantities over a log-spaced mass grid",
		Long: `mass-scan computes the self-energy gap, collapse rate, and collapse
timescale for each mass 10^e kg with e in [--min-exp, --max-exp], at a fixed
separation and coupling, and writes one CSV row per mass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			separation, _ := cmd.Flags().GetFloat64("separation")
			lambda, _ := cmd.Flags().GetFloat64("lambda")
			minExp, _ := cmd.Flags().GetInt("min-exp")
			maxExp, _ := cmd.Flags().GetInt("max-exp")
			out, _ := cmd.Flags().GetString("out")

			coupling, err := oscollapse.NewModelCoupling(lambda)
			if err != nil {
				return err
			}

			masses := logSpace(minExp, maxExp)
			rows := make([][]string, 0, len(masses))
			for _, mass := range masses {
				config, err := oscollapse.NewSuperpositionConfig(mass, separation)
				if err != nil {
					return err
				}
				collapse, err := oscollapse.CollapseRates(config, coupling)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					col(mass),
					col(separation),
					col(collapse.DeltaEG),
					col(collapse.GammaCol),
					oscollapse.FormatTimescale(collapse.TauC),
				})
				slog.Debug("mass point",
					"mass_kg", mass,
					"gamma_col", collapse.GammaCol,
					"tau_c", oscollapse.FormatTimescale(collapse.TauC))
			}

			header := []string{"mass_kg", "separation_m", "delta_e_g", "gamma_col", "tau_c"}
			if err := writeCSV(out, header, rows); err != nil {
				return err
			}

			slog.Info("mass scan written", "path", out, "rows", len(rows))
			fmt.Printf("Saved mass scan to %s (%d rows)\n", out, len(rows))
			return nil
		},
	}

	cmd.Flags().Float64("separation", 1e-6, "Branch separation in meters")
	cmd.Flags().Float64("lambda", 1.0, "OS coupling λ")
	cmd.Flags().Int("min-exp", -24, "Smallest mass exponent (10^e kg)")
	cmd.Flags().Int("max-exp", -6, "Largest mass exponent (10^e kg)")
	cmd.Flags().String("out", "analysis/mass_scan_results.csv", "Output CSV path")

	return cmd
}
