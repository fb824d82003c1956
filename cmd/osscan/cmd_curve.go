package main

import (
	"fmt"
	"log/slog"

	oscollapse "github.com/ermiazhalehpourmianj/Project-Observer-Singularity"
	"github.com/spf13/cobra"
)

func newCurveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Tabulate visibility versus time for one configuration",
		Long: `curve samples the QM, OS, environment, and combined visibility channels
on an evenly spaced time grid for a single mass/separation/coupling choice
and writes one CSV row per time point. Without --gamma-env the environment
channel is absent and its columns carry the unit visibility.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mass, _ := cmd.Flags().GetFloat64("mass")
			separation, _ := cmd.Flags().GetFloat64("separation")
			lambda, _ := cmd.Flags().GetFloat64("lambda")
			gammaEnv, _ := cmd.Flags().GetFloat64("gamma-env")
			tMax, _ := cmd.Flags().GetFloat64("t-max")
			points, _ := cmd.Flags().GetInt("points")
			out, _ := cmd.Flags().GetString("out")

			config, err := oscollapse.NewSuperpositionConfig(mass, separation)
			if err != nil {
				return err
			}
			coupling, err := oscollapse.NewModelCoupling(lambda)
			if err != nil {
				return err
			}
			collapse, err := oscollapse.CollapseRates(config, coupling)
			if err != nil {
				return err
			}

			envRate := 0.0
			if cmd.Flags().Changed("gamma-env") {
				envRate = gammaEnv
			}

			times := linSpace(tMax, points)
			vQM, err := oscollapse.VisibilityCurveQM(times)
			if err != nil {
				return err
			}
			vOS, err := oscollapse.VisibilityCurveOS(times, collapse.GammaCol)
			if err != nil {
				return err
			}
			vEnv, err := oscollapse.VisibilityCurveEnv(times, envRate)
			if err != nil {
				return err
			}
			vCombined, err := oscollapse.VisibilityCurveCombined(times, collapse.GammaCol, envRate)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(times))
			for i, t := range times {
				rows = append(rows, []string{
					col(t),
					col(vQM[i]),
					col(vOS[i]),
					col(vEnv[i]),
					col(vCombined[i]),
				})
			}

			header := []string{"t_s", "v_qm", "v_os", "v_env", "v_combined"}
			if err := writeCSV(out, header, rows); err != nil {
				return err
			}

			slog.Info("visibility curve written",
				"path", out,
				"points", len(rows),
				"gamma_col", collapse.GammaCol,
				"tau_c", oscollapse.FormatTimescale(collapse.TauC))
			fmt.Printf("Saved visibility curve to %s (%d points)\n", out, len(rows))
			return nil
		},
	}

	cmd.Flags().Float64("mass", 1e-15, "Superposed mass in kg")
	cmd.Flags().Float64("separation", 1e-7, "Branch separation in meters")
	cmd.Flags().Float64("lambda", 1.0, "OS coupling λ")
	cmd.Flags().Float64("gamma-env", 0.0, "Environment decoherence rate in s⁻¹ (channel absent unless set)")
	cmd.Flags().Float64("t-max", 1.0, "Last time point in seconds")
	cmd.Flags().Int("points", 200, "Number of time points")
	cmd.Flags().String("out", "analysis/visibility_curve.csv", "Output CSV path")

	return cmd
}
