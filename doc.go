// Package pets is the Helmholtz energy kernel of the PeTS model: a
// perturbation theory for the truncated-and-shifted Lennard-Jones fluid,
// usable both as a bulk equation of state and as a classical density
// functional.
//
// 🚀 What is in the module?
//
//	A generic, allocation-light numeric kernel that brings together:
//		• Parameters: pure and binary records, mixing rules, YAML/JSON loaders
//		• Hard spheres: fundamental measure theory (White Bear, anti-symmetrized
//		  White Bear, Kierlik–Rosinberg)
//		• Dispersion: a weighted-density perturbation term with ψ = 1.21
//		• Equation of state: residual properties by automatic differentiation
//		• DFT: weight functions, Helmholtz energy density, pair potential
//
// ✨ Why dual numbers?
//
//   - Exact derivatives: μ, p, s and second derivatives to machine precision
//   - One code path: every contribution is written once over num.Number
//   - Safe to share: models are immutable after construction
//
// Under the hood, everything is organized under these subpackages:
//
//	num/         Real, Dual, Dual2 and HyperDual scalars
//	matrix/      dense matrices for k_ij and the combining rules
//	parameters/  records, mixing rules and record loaders
//	functional/  weight functions and the hard-sphere/dispersion contributions
//	potential/   truncated-and-shifted Lennard-Jones pair potential
//	idealgas/    ideal-gas contribution (monatomic de Broglie term)
//	eos/         bulk equation of state and derived properties
//	dft/         density functional front for an external DFT solver
//	cmd/pets     command-line property report
//
// Quick example:
//
//	p := parameters.NewPure(argon)
//	m := eos.New(p)
//	rho := []float64{0.5 * m.ComputeMaxDensity([]float64{1})}
//	mu := m.ResidualChemicalPotential(150, rho)
//
//	go get github.com/katalvlaran/pets
package pets
