package oscollapse

import (
	"fmt"
	"math"
)

// DefaultSigmaFactor is the standard one-sided exclusion bound: a candidate
// coupling survives if its predicted visibility stays within two standard
// deviations below the observed value.
const DefaultSigmaFactor = 2.0

// ExperimentRecord describes one observed (or hypothetical) interference
// experiment used to constrain the coupling.
type ExperimentRecord struct {
	Name       string
	Mass       float64 // kg
	Separation float64 // m
	Time       float64 // s

	VisibilityObserved float64
	VisibilityError    float64 // one standard deviation

	Env EnvChannel
}

// LambdaConstraint is the grid-search bound on the coupling derived from one
// experiment: the largest λ in the scanned grid whose predicted visibility
// remains consistent with the observation, or an explicit none-allowed
// verdict. None-allowed is a defined outcome, not an error.
type LambdaConstraint struct {
	Experiment ExperimentRecord
	Grid       []float64

	MaxAllowed float64 // largest allowed λ; meaningful only when Allowed
	Allowed    bool    // false when every grid point is excluded
}

// FindLambdaConstraint scans the candidate grid and keeps each λ whose
// predicted visibility satisfies the one-sided bound
//
//	V_pred(λ) ≥ V_obs − sigmaFactor·σ_V
//
// The prediction uses the combined OS+env formula when the record carries an
// environment channel, the bare OS formula otherwise.
func FindLambdaConstraint(record ExperimentRecord, grid []float64, sigmaFactor float64) (LambdaConstraint, error) {
	if record.Time < 0 {
		return LambdaConstraint{}, fmt.Errorf("experiment %q: time must be non-negative, got %g s: %w", record.Name, record.Time, ErrInvalidParameter)
	}
	if sigmaFactor < 0 {
		return LambdaConstraint{}, fmt.Errorf("sigma factor must be non-negative, got %g: %w", sigmaFactor, ErrInvalidParameter)
	}
	if len(grid) < 2 {
		return LambdaConstraint{}, fmt.Errorf("λ grid needs at least 2 points, got %d: %w", len(grid), ErrInvalidParameter)
	}

	config, err := NewSuperpositionConfig(record.Mass, record.Separation)
	if err != nil {
		return LambdaConstraint{}, fmt.Errorf("experiment %q: %w", record.Name, err)
	}

	threshold := record.VisibilityObserved - sigmaFactor*record.VisibilityError

	constraint := LambdaConstraint{Experiment: record, Grid: grid}
	for _, lambda := range grid {
		coupling, err := NewModelCoupling(lambda)
		if err != nil {
			return LambdaConstraint{}, fmt.Errorf("experiment %q: %w", record.Name, err)
		}

		collapse, err := CollapseRates(config, coupling)
		if err != nil {
			return LambdaConstraint{}, err
		}

		var visibility float64
		if record.Env.Present() {
			visibility, err = VisibilityCombined(record.Time, collapse.GammaCol, record.Env.Rate())
		} else {
			visibility, err = VisibilityOS(record.Time, collapse.GammaCol)
		}
		if err != nil {
			return LambdaConstraint{}, err
		}

		if visibility >= threshold {
			if !constraint.Allowed || lambda > constraint.MaxAllowed {
				constraint.MaxAllowed = lambda
				constraint.Allowed = true
			}
		}
	}

	return constraint, nil
}

// InversionResult is the algebraic bound on the coupling from a single
// target visibility: the collapse rate that exactly saturates the target,
// the corresponding λ limit, and whether the supplied coupling is already
// ruled out by that target.
type InversionResult struct {
	GammaLimit        float64 // collapse rate saturating the target (s⁻¹), clamped at 0
	LambdaLimit       float64 // coupling bound; 0 when ΔE_G is 0
	VisibilityAtLimit float64 // combined visibility evaluated at GammaLimit
	Excluded          bool    // current coupling exceeds the bound
}

// InvertVisibility solves for the largest coupling still consistent with a
// target visibility at time t:
//
//	Γ_needed = −ln(V_target)/t − γ_env   (clamped to 0 if negative)
//	λ_limit  = Γ_needed·ħ / ΔE_G
//
// The target must lie in (0, 1] and t must be positive. Feeding λ_limit back
// through CollapseRates and the combined visibility reproduces the target
// exactly (up to floating point), which is the round-trip the tests pin down.
func InvertVisibility(config SuperpositionConfig, coupling ModelCoupling, t float64, env EnvChannel, targetVisibility float64) (InversionResult, error) {
	if targetVisibility <= 0 || targetVisibility > 1 {
		return InversionResult{}, fmt.Errorf("target visibility must lie in (0, 1], got %g: %w", targetVisibility, ErrInvalidParameter)
	}
	if t <= 0 {
		return InversionResult{}, fmt.Errorf("time must be positive, got %g s: %w", t, ErrInvalidParameter)
	}

	collapse, err := CollapseRates(config, coupling)
	if err != nil {
		return InversionResult{}, err
	}

	gammaNeeded := -math.Log(targetVisibility)/t - env.Rate()
	if gammaNeeded < 0 {
		gammaNeeded = 0
	}

	lambdaLimit := 0.0
	if collapse.DeltaEG != 0 {
		lambdaLimit = gammaNeeded * Hbar / collapse.DeltaEG
	}

	visibilityAtLimit, err := VisibilityCombined(t, gammaNeeded, env.Rate())
	if err != nil {
		return InversionResult{}, err
	}
	currentVisibility, err := VisibilityCombined(t, collapse.GammaCol, env.Rate())
	if err != nil {
		return InversionResult{}, err
	}

	excluded := gammaNeeded > 0 && collapse.GammaCol > gammaNeeded

	return InversionResult{
		GammaLimit:        gammaNeeded,
		LambdaLimit:       lambdaLimit,
		VisibilityAtLimit: visibilityAtLimit,
		Excluded:          excluded || currentVisibility < targetVisibility,
	}, nil
}
