// Package oscollapse computes predictions of the Observer–Singularity (OS)
// gravity-induced wavefunction-collapse hypothesis for spatially superposed
// point masses, and compares them against the collapse-free quantum
// baseline and an optional environmental-decoherence channel.
//
// # Overview
//
// The OS model posits that a spatial superposition of a mass m with branch
// separation d decoheres spontaneously at a rate proportional to the
// gravitational self-energy gap between the branches:
//
//	ΔE_G  ≈ G·m²/d
//	Γ_col = λ·ΔE_G/ħ
//	τ_c   = 1/Γ_col
//
// where λ is a dimensionless free coupling. Interference visibility then
// decays as V(t) = exp(-Γ_col·t), against the constant V = 1 predicted by
// ordinary quantum mechanics. The question the package answers: for a given
// experiment (mass, separation, duration), can the two be told apart?
//
// # Architecture
//
// Two layers, leaves first:
//
//   - collapse.go     - formula layer: self-energy, rates, visibilities
//   - regime.go       - t/τ_c regime classification
//   - testability.go  - can-this-experiment-see-it verdicts
//   - constraint.go   - inverting observed visibility into λ bounds
//   - scenario.go     - named mass-scale presets
//   - assertions.go   - test helpers for the physical properties
//
// Every operation is a deterministic, side-effect-free computation over
// immutable inputs. There is no shared state and no I/O in the core; the
// cmd/osscan CLI handles tables and sweeps.
//
// # Quick Start
//
// Collapse properties of a nanoparticle superposition:
//
//	config, err := oscollapse.NewSuperpositionConfig(1e-17, 1e-6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	coupling, _ := oscollapse.NewModelCoupling(1.0)
//
//	collapse, err := oscollapse.CollapseRates(config, coupling)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("ΔE_G  = %.3e J\n", collapse.DeltaEG)
//	fmt.Printf("Γ_col = %.3e s⁻¹\n", collapse.GammaCol)
//	fmt.Printf("τ_c   = %.3e s\n", collapse.TauC)
//
// # Regime Classification
//
// The classifier keys on the dimensionless ratio t/τ_c and the absolute
// mass:
//
//	assessment, err := oscollapse.AssessRegime(config, coupling, 1.0,
//	    oscollapse.NoEnv(), oscollapse.DefaultRegimeThresholds())
//
//	switch assessment.Regime {
//	case oscollapse.RegimeMicroSafe:
//	    // collapse dormant, OS indistinguishable from QM
//	case oscollapse.RegimeNanoEdge:
//	    // transition band, the interesting region for experiments
//	case oscollapse.RegimeMesoCollapse:
//	    // collapse dominates within the experiment duration
//	case oscollapse.RegimeMacroClassical:
//	    // macroscopic, classical behavior guaranteed
//	}
//
// # Constraining λ
//
// Observed visibility bounds the coupling two ways. Grid search over
// candidates:
//
//	record := oscollapse.ExperimentRecord{
//	    Name: "mock_interferometer",
//	    Mass: 1e-15, Separation: 1e-7, Time: 0.1,
//	    VisibilityObserved: 0.9, VisibilityError: 0.05,
//	    Env: oscollapse.NoEnv(),
//	}
//	constraint, err := oscollapse.FindLambdaConstraint(record,
//	    []float64{0.001, 0.01, 0.1, 1.0}, oscollapse.DefaultSigmaFactor)
//	if constraint.Allowed {
//	    fmt.Printf("λ ≤ %.2e\n", constraint.MaxAllowed)
//	}
//
// or direct algebraic inversion of a single target visibility:
//
//	result, err := oscollapse.InvertVisibility(config, coupling, 0.1,
//	    oscollapse.NoEnv(), 0.95)
//	fmt.Printf("λ limit %.3e, excluded: %v\n", result.LambdaLimit, result.Excluded)
//
// # The Infinite Timescale
//
// When Γ_col ≤ 0 the superposition never collapses and τ_c is math.Inf(1),
// a deliberate sentinel. Ratio math downstream treats it as
// t/τ_c = 0, and tabular output renders it as the literal "inf"
// (FormatTimescale).
//
// # Testing
//
// The package ships assertion helpers for its own physical properties:
//
//	func TestNanoparticle(t *testing.T) {
//	    cfg := oscollapse.DefaultAssertionConfig()
//	    oscollapse.AssertVisibilityDecay(t, 2.5, []float64{0.1, 0.5, 1.0}, cfg)
//	    oscollapse.AssertCombinedChannelLaw(t, 0.5, 1.0, 2.0, cfg)
//	}
//
// # Philosophy
//
// A plotting script answers: "What does the curve look like?"
// oscollapse answers: "Could this experiment falsify the model?"
//
// The thresholds that decide testability live here and only here; CSV
// writers and dashboards downstream map fields to columns without
// re-deriving any physics.
package oscollapse
