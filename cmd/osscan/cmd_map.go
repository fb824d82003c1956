package main

import (
	"fmt"
	"log/slog"
	"strconv"

	oscollapse "github.com/ermiazhalehpourmianj/Project-Observer-Singularity"
	"github.com/spf13/cobra"
)

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Generate the regime/testability map over mass and separation",
		Long: `map classifies every (mass, separation) cell of a log-spaced grid at a
fixed duration and coupling, and writes one CSV row per cell with the t/tau_c
ratio, the regime label, and the testability verdict. The CSV is the
death/survival map the plotting notebooks render as a heatmap.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScanConfig(cmd)
			if err != nil {
				return err
			}

			t, _ := cmd.Flags().GetFloat64("time")
			lambda, _ := cmd.Flags().GetFloat64("lambda")
			gammaEnv, _ := cmd.Flags().GetFloat64("gamma-env")
			massMin, _ := cmd.Flags().GetInt("mass-min-exp")
			massMax, _ := cmd.Flags().GetInt("mass-max-exp")
			sepMin, _ := cmd.Flags().GetInt("sep-min-exp")
			sepMax, _ := cmd.Flags().GetInt("sep-max-exp")
			out, _ := cmd.Flags().GetString("out")

			coupling, err := oscollapse.NewModelCoupling(lambda)
			if err != nil {
				return err
			}

			env := oscollapse.NoEnv()
			if cmd.Flags().Changed("gamma-env") {
				env = oscollapse.Env(gammaEnv)
			}

			thresholds := cfg.regimeThresholds()
			testability := cfg.testabilityConfig()

			masses := logSpace(massMin, massMax)
			separations := logSpace(sepMin, sepMax)

			rows := make([][]string, 0, len(masses)*len(separations))
			for _, mass := range masses {
				for _, separation := range separations {
					config, err := oscollapse.NewSuperpositionConfig(mass, separation)
					if err != nil {
						return err
					}

					regime, err := oscollapse.AssessRegime(config, coupling, t, env, thresholds)
					if err != nil {
						return err
					}
					verdict, err := oscollapse.AssessTestability(config, coupling, t, env, testability)
					if err != nil {
						return err
					}

					rows = append(rows, []string{
						col(mass),
						col(separation),
						col(t),
						col(lambda),
						col(regime.TOverTau),
						string(regime.Regime),
						strconv.FormatBool(regime.StrongDeviation),
						strconv.FormatBool(verdict.Testable),
					})
				}
			}

			header := []string{
				"mass_kg", "separation_m", "t_s", "lam",
				"t_over_tau", "regime", "strong_deviation", "os_testable",
			}
			if err := writeCSV(out, header, rows); err != nil {
				return err
			}

			slog.Info("regime map written",
				"path", out,
				"masses", len(masses),
				"separations", len(separations))
			fmt.Printf("Saved regime map to %s (%d cells)\n", out, len(rows))
			return nil
		},
	}

	cmd.Flags().Float64("time", 0.1, "Experiment duration in seconds")
	cmd.Flags().Float64("lambda", 1.0, "OS coupling λ")
	cmd.Flags().Float64("gamma-env", 0.0, "Environment decoherence rate in s⁻¹ (channel absent unless set)")
	cmd.Flags().Int("mass-min-exp", -24, "Smallest mass exponent (10^e kg)")
	cmd.Flags().Int("mass-max-exp", -10, "Largest mass exponent (10^e kg)")
	cmd.Flags().Int("sep-min-exp", -9, "Smallest separation exponent (10^e m)")
	cmd.Flags().Int("sep-max-exp", -4, "Largest separation exponent (10^e m)")
	cmd.Flags().String("out", "analysis/death_survival_map.csv", "Output CSV path")

	return cmd
}
