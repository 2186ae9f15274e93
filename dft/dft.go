// Package dft assembles the PeTS Helmholtz energy functional for classical
// density functional theory.
//
// A Functional exposes what a DFT runtime needs: the weight functions and
// energy densities of the contributions, the molecule shape, the fluid
// parameters for external potentials and the pair potential for solvation
// calculations. It embeds the bulk equation of state of the same model, so
// bulk properties and ComputeMaxDensity are available directly.
package dft

import (
	"fmt"

	"github.com/katalvlaran/pets/eos"
	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/num"
	"github.com/katalvlaran/pets/parameters"
	"github.com/katalvlaran/pets/potential"
)

// ShapeKind classifies molecules for the DFT runtime.
type ShapeKind int

const (
	// Spherical molecules are single spheres.
	Spherical ShapeKind = iota
	// NonSpherical molecules are chains of identical segments.
	NonSpherical
	// Heterosegmented molecules are chains of different segments.
	Heterosegmented
)

func (k ShapeKind) String() string {
	switch k {
	case Spherical:
		return "Spherical"
	case NonSpherical:
		return "NonSpherical"
	case Heterosegmented:
		return "Heterosegmented"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// MoleculeShape describes the molecules of a functional.
type MoleculeShape struct {
	Kind     ShapeKind
	Segments int
}

// Functional is the PeTS Helmholtz energy functional. It is immutable and
// safe for concurrent use.
type Functional struct {
	*eos.Pets
	pair *potential.TruncatedShifted
}

// New builds the functional with the White Bear FMT closure unless an option
// selects another.
func New(p *parameters.Parameters, opts ...eos.Option) *Functional {
	return &Functional{Pets: eos.New(p, opts...), pair: potential.NewTruncatedShifted(p)}
}

// NewFull builds the functional with an explicit FMT closure. The version
// takes precedence over any WithFMTVersion option.
func NewFull(p *parameters.Parameters, version functional.FMTVersion, opts ...eos.Option) *Functional {
	all := append(append([]eos.Option(nil), opts...), eos.WithFMTVersion(version))

	return New(p, all...)
}

// Subset returns the functional restricted to the given components, with
// freshly selected contributions.
func (f *Functional) Subset(indices []int) (*Functional, error) {
	m, err := f.Pets.Subset(indices)
	if err != nil {
		return nil, err
	}

	return &Functional{Pets: m, pair: potential.NewTruncatedShifted(m.Parameters())}, nil
}

// FMTVersion returns the hard-sphere closure.
func (f *Functional) FMTVersion() functional.FMTVersion { return f.Options().FMTVersion }

// MoleculeShape returns Spherical with one segment per molecule.
func (f *Functional) MoleculeShape() MoleculeShape {
	return MoleculeShape{Kind: Spherical, Segments: 1}
}

// EpsilonKFF returns the fluid-fluid energy parameters ε_i/k (K) used to
// build fluid-solid interactions of external potentials.
func (f *Functional) EpsilonKFF() []float64 { return f.Parameters().EpsilonK() }

// SigmaFF returns the fluid-fluid segment diameters σ_i (Å).
func (f *Functional) SigmaFF() []float64 { return f.Parameters().Sigma() }

// M returns the number of segments per molecule, 1 for every component.
func (f *Functional) M() []float64 {
	m := make([]float64, f.Components())
	for i := range m {
		m[i] = 1
	}

	return m
}

// PairPotential tabulates the truncated-and-shifted Lennard-Jones potential
// u_i(r_j)/k (K) of every component on the separations r (Å).
func (f *Functional) PairPotential(r []float64) [][]float64 { return f.pair.Evaluate(r) }

// WeightFunctions returns the weight functions of every contribution, in the
// order of Contributions.
func WeightFunctions[T num.Number[T]](f *Functional, temperature T) []functional.WeightFunctionInfo[T] {
	cs := f.Contributions()
	out := make([]functional.WeightFunctionInfo[T], len(cs))
	for i, c := range cs {
		out[i] = functional.WeightFunctions(c, temperature)
	}

	return out
}

// HelmholtzEnergyDensity returns the residual βf (1/Å³) summed over all
// contributions on a set of points. weighted[k] holds the weighted densities
// of contribution k (rows) on every point (columns), as described by
// WeightFunctions. It panics if weighted does not have one entry per
// contribution.
func HelmholtzEnergyDensity[T num.Number[T]](f *Functional, temperature T, weighted [][][]T) []T {
	cs := f.Contributions()
	if len(weighted) != len(cs) {
		panic(fmt.Sprintf("dft: %d weighted-density sets for %d contributions", len(weighted), len(cs)))
	}
	var out []T
	for k, c := range cs {
		phi := functional.HelmholtzEnergyDensity(c, temperature, weighted[k])
		if out == nil {
			out = phi
			continue
		}
		for i := range out {
			out[i] = out[i].Add(phi[i])
		}
	}

	return out
}
