// Package idealgas provides the ideal-gas part of a PeTS model.
//
// The residual contributions of this module do not depend on it; models
// carry one so that callers get a complete Helmholtz energy. Heat-capacity
// correlations are supplied by callers through the Contribution interface;
// the built-in Monatomic model has translational degrees of freedom only.
package idealgas

import (
	"fmt"
	"math"
)

// Physical constants (SI, exact since 2019).
const (
	planck    = 6.62607015e-34 // J s
	boltzmann = 1.380649e-23   // J/K
	avogadro  = 6.02214076e23  // 1/mol
	angstrom  = 1e-10          // m
)

// Contribution is an ideal-gas model.
type Contribution interface {
	fmt.Stringer
	// Components returns the number of components.
	Components() int
	// LnLambda3 returns ln(Λ_i³/Å³) for every component, where Λ_i is the
	// effective thermal de Broglie wavelength at the given temperature (K).
	LnLambda3(temperature float64) []float64
	// Subset returns the model restricted to the given component indices.
	Subset(indices []int) Contribution
}

// Monatomic is the ideal gas of structureless particles:
// Λ_i = h / sqrt(2π m_i k T).
type Monatomic struct {
	molarWeight []float64
}

// NewMonatomic builds the model from molar weights in g/mol.
func NewMonatomic(molarWeight []float64) *Monatomic {
	mw := make([]float64, len(molarWeight))
	copy(mw, molarWeight)

	return &Monatomic{molarWeight: mw}
}

func (m *Monatomic) String() string  { return "Ideal gas (monatomic)" }
func (m *Monatomic) Components() int { return len(m.molarWeight) }

// LnLambda3 implements Contribution.
func (m *Monatomic) LnLambda3(temperature float64) []float64 {
	out := make([]float64, len(m.molarWeight))
	for i, mw := range m.molarWeight {
		mass := mw * 1e-3 / avogadro
		lambda := planck / math.Sqrt(2*math.Pi*mass*boltzmann*temperature) / angstrom
		out[i] = 3 * math.Log(lambda)
	}

	return out
}

// Subset implements Contribution. It panics on an index outside the model,
// like slice indexing.
func (m *Monatomic) Subset(indices []int) Contribution {
	mw := make([]float64, len(indices))
	for i, idx := range indices {
		mw[i] = m.molarWeight[idx]
	}

	return &Monatomic{molarWeight: mw}
}

// HelmholtzEnergyDensity returns the reduced ideal-gas Helmholtz energy
// density βf_id = Σ_i ρ_i (ln(ρ_i Λ_i³) − 1) in 1/Å³. Components with zero
// density do not contribute.
func HelmholtzEnergyDensity(c Contribution, temperature float64, density []float64) float64 {
	var f float64
	for i, l := range c.LnLambda3(temperature) {
		if rho := density[i]; rho > 0 {
			f += rho * (math.Log(rho) + l - 1)
		}
	}

	return f
}
