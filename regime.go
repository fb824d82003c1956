package oscollapse

import (
	"fmt"
	"math"
)

// RegimeLabel classifies where a configuration sits relative to collapse
// dynamics.
type RegimeLabel string

const (
	// RegimeMicroSafe: the collapse channel is effectively dormant over the
	// experiment duration (t/τ_c far below one). Microscopic superpositions
	// live here.
	RegimeMicroSafe RegimeLabel = "micro_safe"

	// RegimeNanoEdge: the experiment probes the transition band where the
	// collapse prediction starts to separate from the QM baseline. This is
	// the interesting region for experiment design.
	RegimeNanoEdge RegimeLabel = "nano_edge"

	// RegimeMesoCollapse: collapse dominates well within the experiment
	// duration while the object is still mesoscopic.
	RegimeMesoCollapse RegimeLabel = "meso_collapse"

	// RegimeMacroClassical: macroscopic mass or near-instantaneous collapse;
	// classical behavior is guaranteed and nothing is testable.
	RegimeMacroClassical RegimeLabel = "macro_classical"
)

// RegimeThresholds holds the classification boundaries.
//
// The classifier keys on both the t/τ_c ratio and the absolute mass: a
// sufficiently heavy object is classical regardless of the ratio, and a
// τ_c below InstantTau means collapse completes before any measurement
// could begin.
type RegimeThresholds struct {
	MacroMass     float64 // mass at/above which the object is classical (kg)
	InstantTau    float64 // τ_c below which collapse is effectively instantaneous (s)
	MicroRatioMax float64 // t/τ_c below this: micro_safe
	EdgeRatioMax  float64 // t/τ_c at/below this: nano_edge; above: meso_collapse
	Deviation     float64 // minimum |V_OS − V_QM| to flag a strong deviation
}

// DefaultRegimeThresholds returns the standard boundaries.
func DefaultRegimeThresholds() RegimeThresholds {
	return RegimeThresholds{
		MacroMass:     1e-6,
		InstantTau:    1e-9,
		MicroRatioMax: 1e-3,
		EdgeRatioMax:  1e2,
		Deviation:     0.1,
	}
}

// RegimeAssessment is the classification verdict for one configuration,
// bundling the inputs, the derived collapse quantities, the visibility
// predictions under each model, and the regime label.
//
// VEnv and VCombined are meaningful only when HasEnv is true.
type RegimeAssessment struct {
	Config   SuperpositionConfig
	Coupling ModelCoupling
	Time     float64 // s
	Env      EnvChannel

	Collapse CollapseResult
	TOverTau float64 // t/τ_c; zero by policy when τ_c is infinite

	VOS       float64
	VQM       float64
	VEnv      float64
	VCombined float64
	HasEnv    bool

	Regime          RegimeLabel
	StrongDeviation bool // |V_OS − V_QM| ≥ thresholds.Deviation
}

// StrongDeviation reports whether two visibility predictions differ by at
// least the given threshold. Used for OS-vs-QM and combined-vs-env-only
// comparisons alike; callers supply the threshold explicitly.
func StrongDeviation(vA, vB, threshold float64) bool {
	return math.Abs(vA-vB) >= threshold
}

// AssessRegime classifies a configuration under the given coupling,
// experiment duration, and optional environment channel.
//
// The t/τ_c ratio for an infinite τ_c is defined to be zero: no collapse is
// expected within any finite time, so the configuration reads as maximally
// quiet rather than NaN. This is deliberate policy, not numerics.
func AssessRegime(config SuperpositionConfig, coupling ModelCoupling, t float64, env EnvChannel, thresholds RegimeThresholds) (RegimeAssessment, error) {
	if t < 0 {
		return RegimeAssessment{}, fmt.Errorf("time must be non-negative, got %g s: %w", t, ErrInvalidParameter)
	}

	collapse, err := CollapseRates(config, coupling)
	if err != nil {
		return RegimeAssessment{}, err
	}

	tOverTau := 0.0
	if !math.IsInf(collapse.TauC, 1) && collapse.TauC > 0 {
		tOverTau = t / collapse.TauC
	}

	vOS, err := VisibilityOS(t, collapse.GammaCol)
	if err != nil {
		return RegimeAssessment{}, err
	}
	vQM := VisibilityQM(t)

	assessment := RegimeAssessment{
		Config:   config,
		Coupling: coupling,
		Time:     t,
		Env:      env,
		Collapse: collapse,
		TOverTau: tOverTau,
		VOS:      vOS,
		VQM:      vQM,
	}

	if env.Present() {
		vEnv, err := VisibilityEnv(t, env.Rate())
		if err != nil {
			return RegimeAssessment{}, err
		}
		vCombined, err := VisibilityCombined(t, collapse.GammaCol, env.Rate())
		if err != nil {
			return RegimeAssessment{}, err
		}
		assessment.VEnv = vEnv
		assessment.VCombined = vCombined
		assessment.HasEnv = true
	}

	assessment.Regime = classify(config.Mass, collapse.TauC, tOverTau, thresholds)
	assessment.StrongDeviation = StrongDeviation(vOS, vQM, thresholds.Deviation)

	return assessment, nil
}

// classify applies the mass-and-ratio policy.
func classify(mass, tauC, tOverTau float64, th RegimeThresholds) RegimeLabel {
	switch {
	case mass >= th.MacroMass || (!math.IsInf(tauC, 1) && tauC < th.InstantTau):
		return RegimeMacroClassical
	case tOverTau < th.MicroRatioMax:
		return RegimeMicroSafe
	case tOverTau <= th.EdgeRatioMax:
		return RegimeNanoEdge
	default:
		return RegimeMesoCollapse
	}
}

// IsSafelyAlive reports whether the collapse hypothesis is effectively
// untested by this configuration: the regime is micro_safe and the OS
// prediction does not deviate strongly from QM.
func IsSafelyAlive(assessment RegimeAssessment) bool {
	return assessment.Regime == RegimeMicroSafe && !assessment.StrongDeviation
}

// IsStronglyTestable reports whether the configuration should distinguish
// the collapse hypothesis from QM unambiguously: a strong deviation in a
// regime where the experiment actually probes the transition
// (nano_edge or meso_collapse).
func IsStronglyTestable(assessment RegimeAssessment) bool {
	if !assessment.StrongDeviation {
		return false
	}
	return assessment.Regime == RegimeNanoEdge || assessment.Regime == RegimeMesoCollapse
}
