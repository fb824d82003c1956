package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	oscollapse "github.com/ermiazhalehpourmianj/Project-Observer-Singularity"
	"github.com/spf13/cobra"
)

func newConstrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constrain",
		Short: "Derive λ upper bounds from interferometry records",
		Long: `constrain reads experiment records from a CSV file, finds the largest
coupling λ on a log-spaced grid whose predicted visibility stays within the
observation's error band, and writes the input columns back out with a
lambda_max_allowed column appended. An empty cell means no grid value
survives the record.

If the input file does not exist, a template with placeholder records is
created at its path so the column layout does not have to be memorized.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScanConfig(cmd)
			if err != nil {
				return err
			}

			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			minExp, _ := cmd.Flags().GetInt("min-exp")
			maxExp, _ := cmd.Flags().GetInt("max-exp")

			records, err := readExperimentCSV(in)
			if errors.Is(err, fs.ErrNotExist) {
				if werr := writeExperimentTemplate(in); werr != nil {
					return werr
				}
				fmt.Printf("No input found; wrote a template to %s. Fill it in and rerun.\n", in)
				return nil
			}
			if err != nil {
				return err
			}

			grid := logSpace(minExp, maxExp)
			sigma := cfg.sigmaFactor()

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				constraint, err := oscollapse.FindLambdaConstraint(record, grid, sigma)
				if err != nil {
					return fmt.Errorf("record %q: %w", record.Name, err)
				}

				bound := ""
				if constraint.Allowed {
					bound = col(constraint.MaxAllowed)
				}
				rows = append(rows, []string{
					record.Name,
					col(record.Mass),
					col(record.Separation),
					col(record.Time),
					col(record.VisibilityObserved),
					col(record.VisibilityError),
					envCol(record.Env),
					bound,
				})
				slog.Debug("constraint",
					"experiment", record.Name,
					"allowed", constraint.Allowed,
					"lambda_max", constraint.MaxAllowed)
			}

			header := []string{
				"name", "mass_kg", "separation_m", "t_s",
				"visibility_observed", "visibility_error", "gamma_env",
				"lambda_max_allowed",
			}
			if err := writeCSV(out, header, rows); err != nil {
				return err
			}

			slog.Info("constraints written", "path", out, "experiments", len(rows))
			fmt.Printf("Saved λ constraints to %s (%d experiments)\n", out, len(rows))
			return nil
		},
	}

	cmd.Flags().String("in", "analysis/experiments.csv", "Input CSV of experiment records")
	cmd.Flags().String("out", "analysis/lambda_constraints.csv", "Output CSV path")
	cmd.Flags().Int("min-exp", -4, "Smallest λ exponent on the grid (10^e)")
	cmd.Flags().Int("max-exp", 2, "Largest λ exponent on the grid (10^e)")

	return cmd
}

// readExperimentCSV parses records with columns
// name, mass_kg, separation_m, t_s, visibility_observed, visibility_error,
// gamma_env. An empty gamma_env cell means the environment channel is absent.
func readExperimentCSV(path string) ([]oscollapse.ExperimentRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	lines, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%s has no experiment rows", path)
	}

	records := make([]oscollapse.ExperimentRecord, 0, len(lines)-1)
	for i, line := range lines[1:] {
		if len(line) < 7 {
			return nil, fmt.Errorf("%s row %d: expected 7 columns, got %d", path, i+2, len(line))
		}
		record := oscollapse.ExperimentRecord{Name: line[0], Env: oscollapse.NoEnv()}
		fields := []struct {
			dst *float64
			col string
			raw string
		}{
			{&record.Mass, "mass_kg", line[1]},
			{&record.Separation, "separation_m", line[2]},
			{&record.Time, "t_s", line[3]},
			{&record.VisibilityObserved, "visibility_observed", line[4]},
			{&record.VisibilityError, "visibility_error", line[5]},
		}
		for _, field := range fields {
			v, err := strconv.ParseFloat(field.raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad %s %q", path, i+2, field.col, field.raw)
			}
			*field.dst = v
		}
		if line[6] != "" {
			rate, err := strconv.ParseFloat(line[6], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad gamma_env %q", path, i+2, line[6])
			}
			record.Env = oscollapse.Env(rate)
		}
		records = append(records, record)
	}
	return records, nil
}

func writeExperimentTemplate(path string) error {
	header := []string{
		"name", "mass_kg", "separation_m", "t_s",
		"visibility_observed", "visibility_error", "gamma_env",
	}
	rows := [][]string{
		{"molecule_interferometry", "1.000000e-23", "1.000000e-08", "1.000000e+00", "9.500000e-01", "2.000000e-02", ""},
		{"nanoparticle_levitation", "1.000000e-17", "1.000000e-06", "1.000000e-01", "9.000000e-01", "5.000000e-02", "1.000000e-02"},
	}
	return writeCSV(path, header, rows)
}

// envCol renders the optional environment rate, empty when absent.
func envCol(env oscollapse.EnvChannel) string {
	if !env.Present() {
		return ""
	}
	return col(env.Rate())
}
