package oscollapse

import (
	"errors"
	"fmt"
	"math"
)

// Physical constants in SI units.
//
// NOTE: G carries the 2018 CODATA value. The point-mass self-energy gap is an
// order-of-magnitude estimate anyway, so additional digits would be false
// precision.
const (
	// G is the Newtonian gravitational constant (m³ kg⁻¹ s⁻²).
	G = 6.67430e-11

	// Hbar is the reduced Planck constant (J·s).
	Hbar = 1.054571817e-34
)

// ErrInvalidParameter reports a violated physical precondition: non-positive
// mass, separation, coupling, or geometry factor; negative time or
// environment rate; a target visibility outside (0, 1]; or a grid with fewer
// than two points where a span is required.
//
// All violations surface synchronously at the offending call. Nothing is
// clamped or defaulted on the caller's behalf.
var ErrInvalidParameter = errors.New("invalid parameter")

// ModelCoupling holds the dimensionless coupling λ that scales the
// gravity-induced collapse rate. λ = 1 is the natural reference point; the
// constraint solver in this package exists to bound λ from experiments.
type ModelCoupling struct {
	Lambda float64
}

// NewModelCoupling validates λ > 0.
func NewModelCoupling(lambda float64) (ModelCoupling, error) {
	if lambda <= 0 {
		return ModelCoupling{}, fmt.Errorf("coupling λ must be positive, got %g: %w", lambda, ErrInvalidParameter)
	}
	return ModelCoupling{Lambda: lambda}, nil
}

// SuperpositionConfig describes a two-branch spatial superposition of a point
// mass: the mass of the object and the separation between the branches.
type SuperpositionConfig struct {
	Mass       float64 // kg
	Separation float64 // m
}

// NewSuperpositionConfig validates mass > 0 and separation > 0.
func NewSuperpositionConfig(mass, separation float64) (SuperpositionConfig, error) {
	if mass <= 0 {
		return SuperpositionConfig{}, fmt.Errorf("mass must be positive, got %g kg: %w", mass, ErrInvalidParameter)
	}
	if separation <= 0 {
		return SuperpositionConfig{}, fmt.Errorf("separation must be positive, got %g m: %w", separation, ErrInvalidParameter)
	}
	return SuperpositionConfig{Mass: mass, Separation: separation}, nil
}

// CollapseResult bundles the derived collapse quantities for one
// configuration and coupling.
//
// TauC is math.Inf(1) whenever GammaCol is non-positive: the superposition
// never collapses under the model. Downstream ratio math must treat the
// infinite timescale as "ratio zero", never as NaN (see AssessRegime).
type CollapseResult struct {
	DeltaEG  float64 // gravitational self-energy gap ΔE_G (J)
	GammaCol float64 // collapse rate Γ_col (s⁻¹)
	TauC     float64 // collapse timescale τ_c = 1/Γ_col (s), +Inf if Γ_col ≤ 0
}

// GravitationalSelfEnergy computes the point-mass self-energy gap
//
//	ΔE_G ≈ G·m²/d
//
// between the two branches of the superposition.
func GravitationalSelfEnergy(mass, separation float64) (float64, error) {
	return GravitationalSelfEnergyWithGeometry(mass, separation, 1.0)
}

// GravitationalSelfEnergyWithGeometry scales the point-mass estimate by a
// dimensionless geometry factor for non-spherical source shapes. The factor
// must be positive; 1.0 recovers the bare point-mass formula.
func GravitationalSelfEnergyWithGeometry(mass, separation, geometryFactor float64) (float64, error) {
	if mass <= 0 {
		return 0, fmt.Errorf("mass must be positive, got %g kg: %w", mass, ErrInvalidParameter)
	}
	if separation <= 0 {
		return 0, fmt.Errorf("separation must be positive, got %g m: %w", separation, ErrInvalidParameter)
	}
	if geometryFactor <= 0 {
		return 0, fmt.Errorf("geometry factor must be positive, got %g: %w", geometryFactor, ErrInvalidParameter)
	}
	return geometryFactor * G * mass * mass / separation, nil
}

// CollapseRates computes ΔE_G, Γ_col = λ·ΔE_G/ħ, and τ_c = 1/Γ_col for a
// configuration under the given coupling.
func CollapseRates(config SuperpositionConfig, coupling ModelCoupling) (CollapseResult, error) {
	return CollapseRatesWithGeometry(config, coupling, 1.0)
}

// CollapseRatesWithGeometry is CollapseRates with an explicit geometry factor.
func CollapseRatesWithGeometry(config SuperpositionConfig, coupling ModelCoupling, geometryFactor float64) (CollapseResult, error) {
	if coupling.Lambda <= 0 {
		return CollapseResult{}, fmt.Errorf("coupling λ must be positive, got %g: %w", coupling.Lambda, ErrInvalidParameter)
	}

	deltaEG, err := GravitationalSelfEnergyWithGeometry(config.Mass, config.Separation, geometryFactor)
	if err != nil {
		return CollapseResult{}, err
	}

	gammaCol := coupling.Lambda * deltaEG / Hbar

	tauC := math.Inf(1)
	if gammaCol > 0 {
		tauC = 1.0 / gammaCol
	}

	return CollapseResult{DeltaEG: deltaEG, GammaCol: gammaCol, TauC: tauC}, nil
}

// VisibilityOS is the interference visibility under the bare collapse
// channel: V(t) = exp(-Γ_col·t). Exactly 1.0 at t = 0, strictly decreasing
// in t for Γ_col > 0, constant 1.0 for Γ_col = 0.
func VisibilityOS(t, gammaCol float64) (float64, error) {
	if t < 0 {
		return 0, fmt.Errorf("time must be non-negative, got %g s: %w", t, ErrInvalidParameter)
	}
	return math.Exp(-gammaCol * t), nil
}

// VisibilityQM is the collapse-free quantum baseline: unit visibility at
// every time. The time argument exists only for symmetry with the decaying
// channels.
func VisibilityQM(t float64) float64 {
	_ = t
	return 1.0
}

// VisibilityEnv is the visibility under environment-only decoherence:
// V(t) = exp(-γ_env·t).
func VisibilityEnv(t, gammaEnv float64) (float64, error) {
	if t < 0 {
		return 0, fmt.Errorf("time must be non-negative, got %g s: %w", t, ErrInvalidParameter)
	}
	if gammaEnv < 0 {
		return 0, fmt.Errorf("environment rate must be non-negative, got %g s⁻¹: %w", gammaEnv, ErrInvalidParameter)
	}
	return math.Exp(-gammaEnv * t), nil
}

// VisibilityCombined is the visibility under collapse and environment acting
// together: V(t) = exp(-(Γ_col+γ_env)·t). The rates add because the model
// treats the two decoherence channels as statistically independent.
func VisibilityCombined(t, gammaCol, gammaEnv float64) (float64, error) {
	if t < 0 {
		return 0, fmt.Errorf("time must be non-negative, got %g s: %w", t, ErrInvalidParameter)
	}
	if gammaEnv < 0 {
		return 0, fmt.Errorf("environment rate must be non-negative, got %g s⁻¹: %w", gammaEnv, ErrInvalidParameter)
	}
	return math.Exp(-(gammaCol + gammaEnv) * t), nil
}

// validateTimeGrid rejects grids with fewer than two points or any negative
// time. Curve evaluation is all-or-nothing: one bad element invalidates the
// whole batch, no partial output.
func validateTimeGrid(times []float64) error {
	if len(times) < 2 {
		return fmt.Errorf("time grid needs at least 2 points, got %d: %w", len(times), ErrInvalidParameter)
	}
	for i, t := range times {
		if t < 0 {
			return fmt.Errorf("time grid point %d is negative (%g s): %w", i, t, ErrInvalidParameter)
		}
	}
	return nil
}

// VisibilityCurveOS evaluates VisibilityOS over a time grid, one value per
// input time in order.
func VisibilityCurveOS(times []float64, gammaCol float64) ([]float64, error) {
	if err := validateTimeGrid(times); err != nil {
		return nil, err
	}
	curve := make([]float64, len(times))
	for i, t := range times {
		curve[i] = math.Exp(-gammaCol * t)
	}
	return curve, nil
}

// VisibilityCurveQM evaluates the flat QM baseline over a time grid.
func VisibilityCurveQM(times []float64) ([]float64, error) {
	if err := validateTimeGrid(times); err != nil {
		return nil, err
	}
	curve := make([]float64, len(times))
	for i := range times {
		curve[i] = 1.0
	}
	return curve, nil
}

// VisibilityCurveEnv evaluates VisibilityEnv over a time grid.
func VisibilityCurveEnv(times []float64, gammaEnv float64) ([]float64, error) {
	if gammaEnv < 0 {
		return nil, fmt.Errorf("environment rate must be non-negative, got %g s⁻¹: %w", gammaEnv, ErrInvalidParameter)
	}
	if err := validateTimeGrid(times); err != nil {
		return nil, err
	}
	curve := make([]float64, len(times))
	for i, t := range times {
		curve[i] = math.Exp(-gammaEnv * t)
	}
	return curve, nil
}

// VisibilityCurveCombined evaluates VisibilityCombined over a time grid.
func VisibilityCurveCombined(times []float64, gammaCol, gammaEnv float64) ([]float64, error) {
	if gammaEnv < 0 {
		return nil, fmt.Errorf("environment rate must be non-negative, got %g s⁻¹: %w", gammaEnv, ErrInvalidParameter)
	}
	if err := validateTimeGrid(times); err != nil {
		return nil, err
	}
	curve := make([]float64, len(times))
	for i, t := range times {
		curve[i] = math.Exp(-(gammaCol + gammaEnv) * t)
	}
	return curve, nil
}
