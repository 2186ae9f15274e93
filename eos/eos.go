// Package eos assembles the PeTS bulk equation of state.
//
// A Pets model combines a parameter set with the hard-sphere and dispersion
// contributions chosen by functional.Select and an ideal-gas contribution.
// Residual properties are obtained from the Helmholtz energy density by
// forward-mode automatic differentiation, so every derivative is exact to
// machine precision.
//
// Units: temperature in K, densities in 1/Å³, reduced energy densities
// (βf, βp, s/k) in 1/Å³.
package eos

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/idealgas"
	"github.com/katalvlaran/pets/parameters"
)

// Pets is the bulk equation of state. It is immutable after New and safe for
// concurrent use.
type Pets struct {
	p             *parameters.Parameters
	options       Options
	contributions []functional.Contribution
	idealGas      idealgas.Contribution
	customIG      bool
	sigma3        []float64
}

// New builds the model for p.
//
// Defaults: MaxEta 0.5, White Bear FMT, monatomic ideal gas built from the
// molar weights.
func New(p *parameters.Parameters, opts ...Option) *Pets {
	cfg := config{Options: DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Pets{
		p:             p,
		options:       cfg.Options,
		contributions: functional.Select(p, cfg.FMTVersion),
		idealGas:      cfg.idealGas,
		customIG:      cfg.idealGas != nil,
	}
	if m.idealGas == nil {
		m.idealGas = idealgas.NewMonatomic(p.MolarWeight())
	}
	m.sigma3 = p.Sigma()
	for i, s := range m.sigma3 {
		m.sigma3[i] = s * s * s
	}

	return m
}

// Subset returns a new model restricted to the given components, with the
// same options. Contributions are selected afresh, so a one-component subset
// of a mixture uses the reduced functionals.
func (m *Pets) Subset(indices []int) (*Pets, error) {
	p, err := m.p.Subset(indices)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithOptions(m.options)}
	if m.customIG {
		opts = append(opts, WithIdealGas(m.idealGas.Subset(indices)))
	}

	return New(p, opts...), nil
}

// Components returns the number of components.
func (m *Pets) Components() int { return m.p.Len() }

// Parameters returns the parameter set the model was built from.
func (m *Pets) Parameters() *parameters.Parameters { return m.p }

// Options returns the model options.
func (m *Pets) Options() Options { return m.options }

// Contributions returns the residual Helmholtz energy contributions.
func (m *Pets) Contributions() []functional.Contribution {
	out := make([]functional.Contribution, len(m.contributions))
	copy(out, m.contributions)

	return out
}

// IdealGas returns the ideal-gas contribution.
func (m *Pets) IdealGas() idealgas.Contribution { return m.idealGas }

// MolarWeight returns the molar weights in g/mol.
func (m *Pets) MolarWeight() []float64 { return m.p.MolarWeight() }

// ComputeMaxDensity returns the total number density (1/Å³) at which a fluid
// of the given composition reaches the packing fraction MaxEta:
//
//	ρ_max = MaxEta · Σn_i / ((π/6) Σ σ_i³ n_i)
//
// moles may be unnormalized amounts or mole fractions.
func (m *Pets) ComputeMaxDensity(moles []float64) float64 {
	return m.options.MaxEta * floats.Sum(moles) / (math.Pi / 6 * floats.Dot(m.sigma3, moles))
}
