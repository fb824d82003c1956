package oscollapse

import (
	"math"
	"testing"
)

// AssertionConfig contains tolerances for the physical-property assertions.
type AssertionConfig struct {
	// Absolute tolerance for exact algebraic identities
	// (combined-channel law, inversion round-trip).
	Tolerance float64

	// Deviation threshold handed to regime assertions.
	Deviation float64
}

// DefaultAssertionConfig returns conservative tolerances.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Tolerance: 1e-12,
		Deviation: 0.1,
	}
}

// AssertVisibilityDecay verifies V(0) = 1 and strict monotone decay of the
// collapse visibility over an increasing time grid.
//
// Mathematical property:
//
//	V(0) = 1,  V(t₂) < V(t₁) for t₂ > t₁ whenever Γ_col > 0
func AssertVisibilityDecay(t *testing.T, gammaCol float64, times []float64, cfg AssertionConfig) {
	t.Helper()

	v0, err := VisibilityOS(0, gammaCol)
	if err != nil {
		t.Fatalf("VisibilityOS(0, %g) failed: %v", gammaCol, err)
	}
	if math.Abs(v0-1.0) > cfg.Tolerance {
		t.Errorf("V(0) = %.17g, expected exactly 1.0", v0)
	}

	prev := v0
	prevTime := 0.0
	for _, tm := range times {
		v, err := VisibilityOS(tm, gammaCol)
		if err != nil {
			t.Fatalf("VisibilityOS(%g, %g) failed: %v", tm, gammaCol, err)
		}
		if gammaCol > 0 && tm > prevTime && v >= prev {
			t.Errorf("visibility not strictly decreasing: V(%g)=%.6e ≥ V(%g)=%.6e", tm, v, prevTime, prev)
		}
		prev, prevTime = v, tm
	}

	t.Logf("✓ Visibility decay: V(0)=1, strictly decreasing over %d points (Γ=%g s⁻¹)", len(times), gammaCol)
}

// AssertCombinedChannelLaw verifies multiplicative independence of the two
// decoherence channels.
//
// Mathematical property:
//
//	V_combined(t, Γ, γ) = V_OS(t, Γ) · V_env(t, γ)
func AssertCombinedChannelLaw(t *testing.T, tm, gammaCol, gammaEnv float64, cfg AssertionConfig) {
	t.Helper()

	combined, err := VisibilityCombined(tm, gammaCol, gammaEnv)
	if err != nil {
		t.Fatalf("VisibilityCombined failed: %v", err)
	}
	vOS, err := VisibilityOS(tm, gammaCol)
	if err != nil {
		t.Fatalf("VisibilityOS failed: %v", err)
	}
	vEnv, err := VisibilityEnv(tm, gammaEnv)
	if err != nil {
		t.Fatalf("VisibilityEnv failed: %v", err)
	}

	if math.Abs(combined-vOS*vEnv) > cfg.Tolerance {
		t.Errorf("combined law violated at t=%g: combined=%.17g, product=%.17g", tm, combined, vOS*vEnv)
	}

	t.Logf("✓ Combined law: V(%g, Γ=%g, γ=%g) = V_OS·V_env = %.6e", tm, gammaCol, gammaEnv, combined)
}

// AssertSelfEnergyMonotonic verifies ΔE_G grows with mass and shrinks with
// separation.
func AssertSelfEnergyMonotonic(t *testing.T, masses []float64, separations []float64) {
	t.Helper()

	for i := 1; i < len(masses); i++ {
		lo, err := GravitationalSelfEnergy(masses[i-1], 1.0)
		if err != nil {
			t.Fatalf("GravitationalSelfEnergy(%g, 1) failed: %v", masses[i-1], err)
		}
		hi, err := GravitationalSelfEnergy(masses[i], 1.0)
		if err != nil {
			t.Fatalf("GravitationalSelfEnergy(%g, 1) failed: %v", masses[i], err)
		}
		if masses[i] > masses[i-1] && hi <= lo {
			t.Errorf("ΔE_G not increasing in mass: ΔE(%g)=%.6e ≤ ΔE(%g)=%.6e", masses[i], hi, masses[i-1], lo)
		}
	}

	for i := 1; i < len(separations); i++ {
		wide, err := GravitationalSelfEnergy(1.0, separations[i-1])
		if err != nil {
			t.Fatalf("GravitationalSelfEnergy(1, %g) failed: %v", separations[i-1], err)
		}
		narrow, err := GravitationalSelfEnergy(1.0, separations[i])
		if err != nil {
			t.Fatalf("GravitationalSelfEnergy(1, %g) failed: %v", separations[i], err)
		}
		if separations[i] < separations[i-1] && narrow <= wide {
			t.Errorf("ΔE_G not decreasing in separation: ΔE(%g)=%.6e ≤ ΔE(%g)=%.6e", separations[i], narrow, separations[i-1], wide)
		}
	}

	t.Logf("✓ ΔE_G monotonic: increasing over %d masses, decreasing over %d separations", len(masses), len(separations))
}

// AssertRegime classifies a configuration and fails unless the expected
// label comes out. Returns the assessment for further checks.
func AssertRegime(t *testing.T, config SuperpositionConfig, coupling ModelCoupling, tm float64, want RegimeLabel) RegimeAssessment {
	t.Helper()

	assessment, err := AssessRegime(config, coupling, tm, NoEnv(), DefaultRegimeThresholds())
	if err != nil {
		t.Fatalf("AssessRegime failed: %v", err)
	}

	if assessment.Regime != want {
		t.Errorf("regime mismatch for mass=%.2e kg, sep=%.2e m, t=%g s: got %q, want %q (t/τ=%.3e)",
			config.Mass, config.Separation, tm, assessment.Regime, want, assessment.TOverTau)
	} else {
		t.Logf("✓ Regime %q: t/τ=%.3e, V_OS=%.4f, strong_deviation=%v",
			assessment.Regime, assessment.TOverTau, assessment.VOS, assessment.StrongDeviation)
	}

	return assessment
}

// PrintCollapseAnalysis outputs a detailed collapse breakdown to the test log.
func PrintCollapseAnalysis(t *testing.T, config SuperpositionConfig, coupling ModelCoupling, tm float64) {
	t.Helper()

	collapse, err := CollapseRates(config, coupling)
	if err != nil {
		t.Fatalf("CollapseRates failed: %v", err)
	}
	vOS, err := VisibilityOS(tm, collapse.GammaCol)
	if err != nil {
		t.Fatalf("VisibilityOS failed: %v", err)
	}

	t.Logf("\n=== Collapse Analysis ===")
	t.Logf("Inputs:")
	t.Logf("  mass       = %.4e kg", config.Mass)
	t.Logf("  separation = %.4e m", config.Separation)
	t.Logf("  λ          = %.4e", coupling.Lambda)
	t.Logf("Derived:")
	t.Logf("  ΔE_G  = %.4e J", collapse.DeltaEG)
	t.Logf("  Γ_col = %.4e s⁻¹", collapse.GammaCol)
	t.Logf("  τ_c   = %s s", FormatTimescale(collapse.TauC))
	t.Logf("  V_OS(t=%g s) = %.6e (QM baseline: 1.0)", tm, vOS)
}
