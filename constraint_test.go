package oscollapse

import (
	"errors"
	"math"
	"testing"
)

func mockExperiment() ExperimentRecord {
	return ExperimentRecord{
		Name:               "mock_interferometer",
		Mass:               1e-15,
		Separation:         1e-7,
		Time:               0.1,
		VisibilityObserved: 0.9,
		VisibilityError:    0.05,
		Env:                NoEnv(),
	}
}

// TestFindLambdaConstraint pins the reference scan: with V_obs = 0.9,
// σ_V = 0.05, and the default two-sigma bound, λ = 0.1 survives and λ = 1.0
// is excluded.
func TestFindLambdaConstraint(t *testing.T) {
	grid := []float64{0.001, 0.01, 0.1, 1.0}

	constraint, err := FindLambdaConstraint(mockExperiment(), grid, DefaultSigmaFactor)
	if err != nil {
		t.Fatalf("FindLambdaConstraint failed: %v", err)
	}

	if !constraint.Allowed {
		t.Fatal("expected at least one allowed λ")
	}
	if math.Abs(constraint.MaxAllowed-0.1) > 1e-15 {
		t.Errorf("max allowed λ = %g, expected 0.1", constraint.MaxAllowed)
	}

	t.Logf("✓ λ ≤ %.3g at %g sigma (grid of %d)", constraint.MaxAllowed, DefaultSigmaFactor, len(grid))
}

// TestFindLambdaConstraintNoneAllowed: every candidate excluded is a defined
// outcome, not an error.
func TestFindLambdaConstraintNoneAllowed(t *testing.T) {
	record := mockExperiment()
	record.VisibilityObserved = 0.999
	record.VisibilityError = 1e-6

	constraint, err := FindLambdaConstraint(record, []float64{0.1, 1.0, 10.0}, DefaultSigmaFactor)
	if err != nil {
		t.Fatalf("FindLambdaConstraint failed: %v", err)
	}

	if constraint.Allowed {
		t.Errorf("expected none-allowed verdict, got max λ = %g", constraint.MaxAllowed)
	}

	t.Logf("✓ None-allowed reported without error")
}

// TestFindLambdaConstraintEnvChannel: a known environment channel eats into
// the visibility budget, so the λ bound tightens.
func TestFindLambdaConstraintEnvChannel(t *testing.T) {
	grid := []float64{0.001, 0.01, 0.1, 1.0}

	bare, err := FindLambdaConstraint(mockExperiment(), grid, DefaultSigmaFactor)
	if err != nil {
		t.Fatal(err)
	}

	noisy := mockExperiment()
	noisy.Env = Env(1.0) // V_env = exp(-0.1) ≈ 0.905 on its own
	withEnv, err := FindLambdaConstraint(noisy, grid, DefaultSigmaFactor)
	if err != nil {
		t.Fatal(err)
	}

	if withEnv.Allowed && bare.Allowed && withEnv.MaxAllowed > bare.MaxAllowed {
		t.Errorf("env channel loosened the bound: %g > %g", withEnv.MaxAllowed, bare.MaxAllowed)
	}

	t.Logf("✓ Bound without env: %.3g, with env: %.3g (allowed=%v)",
		bare.MaxAllowed, withEnv.MaxAllowed, withEnv.Allowed)
}

func TestFindLambdaConstraintPreconditions(t *testing.T) {
	grid := []float64{0.01, 0.1}

	t.Run("short grid", func(t *testing.T) {
		_, err := FindLambdaConstraint(mockExperiment(), []float64{1.0}, DefaultSigmaFactor)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("non-positive grid point", func(t *testing.T) {
		_, err := FindLambdaConstraint(mockExperiment(), []float64{0.1, -1.0}, DefaultSigmaFactor)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("bad record mass", func(t *testing.T) {
		record := mockExperiment()
		record.Mass = 0
		_, err := FindLambdaConstraint(record, grid, DefaultSigmaFactor)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("negative time", func(t *testing.T) {
		record := mockExperiment()
		record.Time = -0.1
		_, err := FindLambdaConstraint(record, grid, DefaultSigmaFactor)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("negative sigma factor", func(t *testing.T) {
		_, err := FindLambdaConstraint(mockExperiment(), grid, -1.0)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})
}

// TestInvertVisibilityRoundTrip: feeding the derived λ limit back through
// the forward formulas reproduces the target visibility.
func TestInvertVisibilityRoundTrip(t *testing.T) {
	config, _ := NewSuperpositionConfig(1e-15, 1e-7)
	coupling, _ := NewModelCoupling(1.0)

	for _, target := range []float64{0.5, 0.9, 0.95, 0.999} {
		result, err := InvertVisibility(config, coupling, 0.1, NoEnv(), target)
		if err != nil {
			t.Fatalf("InvertVisibility(target=%g) failed: %v", target, err)
		}

		limitCoupling, err := NewModelCoupling(result.LambdaLimit)
		if err != nil {
			t.Fatalf("derived λ limit %g invalid: %v", result.LambdaLimit, err)
		}
		collapse, err := CollapseRates(config, limitCoupling)
		if err != nil {
			t.Fatal(err)
		}
		roundTrip, err := VisibilityOS(0.1, collapse.GammaCol)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(roundTrip-target) > 1e-9 {
			t.Errorf("round trip for target %g gave %.12f", target, roundTrip)
		}
		if math.Abs(result.VisibilityAtLimit-target) > 1e-9 {
			t.Errorf("visibility at limit = %.12f, expected %g", result.VisibilityAtLimit, target)
		}

		t.Logf("✓ target %g → λ ≤ %.4e → V = %.9f", target, result.LambdaLimit, roundTrip)
	}
}

// TestInvertVisibilityExclusion: the configured λ = 1 collapses far below a
// 0.95 visibility floor at this scale, so the model is already excluded.
func TestInvertVisibilityExclusion(t *testing.T) {
	config, _ := NewSuperpositionConfig(1e-15, 1e-7)
	coupling, _ := NewModelCoupling(1.0)

	result, err := InvertVisibility(config, coupling, 0.1, NoEnv(), 0.95)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Excluded {
		t.Error("λ = 1 should be excluded by a 0.95 target at this scale")
	}
	if result.LambdaLimit >= coupling.Lambda {
		t.Errorf("λ limit %g should be below the current coupling %g", result.LambdaLimit, coupling.Lambda)
	}

	// A tiny coupling survives the same target.
	weak, _ := NewModelCoupling(1e-4)
	survivor, err := InvertVisibility(config, weak, 0.1, NoEnv(), 0.95)
	if err != nil {
		t.Fatal(err)
	}
	if survivor.Excluded {
		t.Errorf("λ = 1e-4 excluded by target 0.95 (limit was %g)", survivor.LambdaLimit)
	}
}

// TestInvertVisibilityEnvClamp: when the environment alone already decays
// past the target, the required collapse rate clamps to zero instead of
// going negative.
func TestInvertVisibilityEnvClamp(t *testing.T) {
	config, _ := NewSuperpositionConfig(1e-24, 1e-6)
	coupling, _ := NewModelCoupling(1.0)

	// γ_env·t = 10, so V_env ≈ 4.5e-5; a 0.5 target needs no collapse at all.
	result, err := InvertVisibility(config, coupling, 1.0, Env(10.0), 0.5)
	if err != nil {
		t.Fatal(err)
	}

	if result.GammaLimit != 0 {
		t.Errorf("Γ limit = %g, expected clamp to 0", result.GammaLimit)
	}
	if result.LambdaLimit != 0 {
		t.Errorf("λ limit = %g, expected 0", result.LambdaLimit)
	}
	if !result.Excluded {
		t.Error("combined visibility below target must read as excluded")
	}
}

func TestInvertVisibilityPreconditions(t *testing.T) {
	config, _ := NewSuperpositionConfig(1e-15, 1e-7)
	coupling, _ := NewModelCoupling(1.0)

	tests := []struct {
		name   string
		t      float64
		target float64
	}{
		{"target zero", 0.1, 0.0},
		{"target above one", 0.1, 1.5},
		{"target negative", 0.1, -0.5},
		{"zero time", 0.0, 0.9},
		{"negative time", -0.1, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InvertVisibility(config, coupling, tt.t, NoEnv(), tt.target)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}
