package oscollapse

import (
	"fmt"
	"math"
)

// ScenarioResult bundles the outputs of one named scenario run.
type ScenarioResult struct {
	Name     string
	Config   SuperpositionConfig
	Coupling ModelCoupling

	TauC         float64 // s, +Inf when no collapse is predicted
	VisibilityAt float64 // OS visibility sampled at the scenario time
	Time         float64 // s
}

// RunScenario evaluates collapse properties for one mass/separation/time
// configuration and samples the OS visibility at the given time.
func RunScenario(name string, mass, separation, t, lambda float64) (ScenarioResult, error) {
	config, err := NewSuperpositionConfig(mass, separation)
	if err != nil {
		return ScenarioResult{}, fmt.Errorf("scenario %q: %w", name, err)
	}
	coupling, err := NewModelCoupling(lambda)
	if err != nil {
		return ScenarioResult{}, fmt.Errorf("scenario %q: %w", name, err)
	}

	collapse, err := CollapseRates(config, coupling)
	if err != nil {
		return ScenarioResult{}, err
	}
	visibility, err := VisibilityOS(t, collapse.GammaCol)
	if err != nil {
		return ScenarioResult{}, fmt.Errorf("scenario %q: %w", name, err)
	}

	return ScenarioResult{
		Name:         name,
		Config:       config,
		Coupling:     coupling,
		TauC:         collapse.TauC,
		VisibilityAt: visibility,
		Time:         t,
	}, nil
}

// BenchmarkScenarios returns the illustrative mass-scale ladder used for
// quick exploration: molecule, nanoparticle, mesoscopic, macroscopic.
func BenchmarkScenarios() ([]ScenarioResult, error) {
	presets := []struct {
		name       string
		mass       float64
		separation float64
		t          float64
	}{
		{"molecule", 1e-23, 1e-8, 1.0},
		{"nanoparticle", 1e-17, 1e-6, 1.0},
		{"mesoscopic", 1e-12, 1e-6, 0.1},
		{"macroscopic", 1e-6, 1e-3, 1e-3},
	}

	results := make([]ScenarioResult, 0, len(presets))
	for _, p := range presets {
		result, err := RunScenario(p.name, p.mass, p.separation, p.t, 1.0)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// FormatTimescale renders a collapse timescale for tabular output,
// preserving the infinite sentinel as the literal "inf" rather than letting
// it degrade into an overflow artifact.
func FormatTimescale(tauC float64) string {
	if math.IsInf(tauC, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.6e", tauC)
}

// ScenarioSummary renders a one-line human-readable summary.
func ScenarioSummary(result ScenarioResult) string {
	return fmt.Sprintf("%s: mass=%.2e kg, separation=%.2e m, tau_c=%s s, visibility(t=%.2e s)=%.3e",
		result.Name, result.Config.Mass, result.Config.Separation,
		FormatTimescale(result.TauC), result.Time, result.VisibilityAt)
}
