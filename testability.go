package oscollapse

import "fmt"

// TestabilityConfig holds the knobs for the practical-usefulness verdict.
type TestabilityConfig struct {
	Deviation  float64 // minimum |V_OS − V_QM| for the effect to be visible
	EnvLossMax float64 // maximum tolerable environment-induced visibility loss
}

// DefaultTestabilityConfig returns the standard knobs: a 10% deviation must
// survive at most 1% environmental loss.
func DefaultTestabilityConfig() TestabilityConfig {
	return TestabilityConfig{
		Deviation:  0.1,
		EnvLossMax: 0.01,
	}
}

// TestabilityAssessment summarizes whether an experiment can practically
// probe the collapse hypothesis: the collapse signal must be large enough to
// see AND environmental decoherence small enough not to mask it.
type TestabilityAssessment struct {
	Config   SuperpositionConfig
	Coupling ModelCoupling
	Time     float64 // s
	Env      EnvChannel

	VOS       float64
	VQM       float64
	VEnv      float64
	VCombined float64

	DeltaOSvsQM float64 // |V_OS − V_QM|
	EnvLoss     float64 // 1 − V_env

	DeviationLarge bool // DeltaOSvsQM ≥ config.Deviation
	EnvLossSmall   bool // EnvLoss ≤ config.EnvLossMax
	Testable       bool // DeviationLarge && EnvLossSmall
}

// AssessTestability evaluates the two-sided requirement for a useful
// experiment. An absent environment channel is evaluated at rate zero here:
// the env-loss side of the verdict needs a number either way, and no channel
// means no loss.
func AssessTestability(config SuperpositionConfig, coupling ModelCoupling, t float64, env EnvChannel, cfg TestabilityConfig) (TestabilityAssessment, error) {
	if t < 0 {
		return TestabilityAssessment{}, fmt.Errorf("time must be non-negative, got %g s: %w", t, ErrInvalidParameter)
	}

	collapse, err := CollapseRates(config, coupling)
	if err != nil {
		return TestabilityAssessment{}, err
	}

	vOS, err := VisibilityOS(t, collapse.GammaCol)
	if err != nil {
		return TestabilityAssessment{}, err
	}
	vQM := VisibilityQM(t)
	vEnv, err := VisibilityEnv(t, env.Rate())
	if err != nil {
		return TestabilityAssessment{}, err
	}
	vCombined, err := VisibilityCombined(t, collapse.GammaCol, env.Rate())
	if err != nil {
		return TestabilityAssessment{}, err
	}

	deltaOSvsQM := vQM - vOS
	if deltaOSvsQM < 0 {
		deltaOSvsQM = -deltaOSvsQM
	}
	envLoss := 1.0 - vEnv

	deviationLarge := deltaOSvsQM >= cfg.Deviation
	envLossSmall := envLoss <= cfg.EnvLossMax

	return TestabilityAssessment{
		Config:         config,
		Coupling:       coupling,
		Time:           t,
		Env:            env,
		VOS:            vOS,
		VQM:            vQM,
		VEnv:           vEnv,
		VCombined:      vCombined,
		DeltaOSvsQM:    deltaOSvsQM,
		EnvLoss:        envLoss,
		DeviationLarge: deviationLarge,
		EnvLossSmall:   envLossSmall,
		Testable:       deviationLarge && envLossSmall,
	}, nil
}
