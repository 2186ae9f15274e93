// Package potential evaluates the truncated-and-shifted Lennard-Jones pair
// potential of the PeTS model.
//
// For a separation r ≤ r_c = 2.5σ_i the energy is
//
//	u_i(r) = 4ε_i [(σ_i/r)¹² − (σ_i/r)⁶] − u_LJ,i(r_c)
//
// and exactly zero beyond the cutoff. The potential is continuous at r_c but
// its slope is not. Energies are returned as u/k in Kelvin.
package potential

import (
	"fmt"

	"github.com/katalvlaran/pets/parameters"
)

// CutoffFactor is r_c/σ of the PeTS model.
const CutoffFactor = 2.5

// TruncatedShifted holds the per-component cutoffs and shift constants.
// It is immutable and safe for concurrent use.
type TruncatedShifted struct {
	sigma    []float64
	epsilonK []float64
	cutoff   []float64
	shift    []float64
}

// NewTruncatedShifted computes r_c,i and u_LJ,i(r_c) once for every component of p.
func NewTruncatedShifted(p *parameters.Parameters) *TruncatedShifted {
	ts := &TruncatedShifted{sigma: p.Sigma(), epsilonK: p.EpsilonK()}
	ts.cutoff = make([]float64, len(ts.sigma))
	ts.shift = make([]float64, len(ts.sigma))
	for i, s := range ts.sigma {
		ts.cutoff[i] = CutoffFactor * s
		ts.shift[i] = lennardJones(s, ts.epsilonK[i], ts.cutoff[i])
	}

	return ts
}

func lennardJones(sigma, epsilonK, r float64) float64 {
	s6 := sigma / r
	s6 = s6 * s6 * s6
	s6 *= s6

	return 4 * epsilonK * (s6*s6 - s6)
}

// Len returns the number of components.
func (ts *TruncatedShifted) Len() int { return len(ts.sigma) }

// Cutoff returns r_c of component i in Angstrom.
func (ts *TruncatedShifted) Cutoff(i int) float64 { return ts.cutoff[i] }

// Shift returns the raw Lennard-Jones energy at the cutoff, u_LJ,i(r_c), in Kelvin.
func (ts *TruncatedShifted) Shift(i int) float64 { return ts.shift[i] }

// At returns u_i(r)/k in Kelvin. It panics if i is not a component index.
func (ts *TruncatedShifted) At(i int, r float64) float64 {
	if i < 0 || i >= len(ts.sigma) {
		panic(fmt.Sprintf("potential: component %d of %d", i, len(ts.sigma)))
	}
	if r > ts.cutoff[i] {
		return 0
	}

	return lennardJones(ts.sigma[i], ts.epsilonK[i], r) - ts.shift[i]
}

// Evaluate tabulates the potential of every component on the separations r:
// out[i][j] = u_i(r[j]).
func (ts *TruncatedShifted) Evaluate(r []float64) [][]float64 {
	out := make([][]float64, len(ts.sigma))
	for i := range out {
		row := make([]float64, len(r))
		for j, rj := range r {
			row[j] = ts.At(i, rj)
		}
		out[i] = row
	}

	return out
}
