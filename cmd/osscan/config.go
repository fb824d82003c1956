package main

import (
	"fmt"
	"os"

	oscollapse "github.com/ermiazhalehpourmianj/Project-Observer-Singularity"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// scanConfig is the YAML-overridable knob set. Zero-valued fields keep the
// package defaults, so a config file only needs the knobs it changes.
type scanConfig struct {
	Regime struct {
		MacroMassKg   float64 `yaml:"macro_mass_kg"`
		InstantTauS   float64 `yaml:"instant_tau_s"`
		MicroRatioMax float64 `yaml:"micro_ratio_max"`
		EdgeRatioMax  float64 `yaml:"edge_ratio_max"`
		Deviation     float64 `yaml:"deviation"`
	} `yaml:"regime"`

	Testability struct {
		Deviation  float64 `yaml:"deviation"`
		EnvLossMax float64 `yaml:"env_loss_max"`
	} `yaml:"testability"`

	SigmaFactor float64 `yaml:"sigma_factor"`
}

// loadScanConfig reads the optional --config file and merges it over the
// package defaults.
func loadScanConfig(cmd *cobra.Command) (scanConfig, error) {
	var cfg scanConfig

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// regimeThresholds converts the config to package thresholds, filling
// defaults for unset knobs.
func (c scanConfig) regimeThresholds() oscollapse.RegimeThresholds {
	th := oscollapse.DefaultRegimeThresholds()
	if c.Regime.MacroMassKg > 0 {
		th.MacroMass = c.Regime.MacroMassKg
	}
	if c.Regime.InstantTauS > 0 {
		th.InstantTau = c.Regime.InstantTauS
	}
	if c.Regime.MicroRatioMax > 0 {
		th.MicroRatioMax = c.Regime.MicroRatioMax
	}
	if c.Regime.EdgeRatioMax > 0 {
		th.EdgeRatioMax = c.Regime.EdgeRatioMax
	}
	if c.Regime.Deviation > 0 {
		th.Deviation = c.Regime.Deviation
	}
	return th
}

func (c scanConfig) testabilityConfig() oscollapse.TestabilityConfig {
	tc := oscollapse.DefaultTestabilityConfig()
	if c.Testability.Deviation > 0 {
		tc.Deviation = c.Testability.Deviation
	}
	if c.Testability.EnvLossMax > 0 {
		tc.EnvLossMax = c.Testability.EnvLossMax
	}
	return tc
}

func (c scanConfig) sigmaFactor() float64 {
	if c.SigmaFactor > 0 {
		return c.SigmaFactor
	}
	return oscollapse.DefaultSigmaFactor
}
