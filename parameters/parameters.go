package parameters

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pets/matrix"
	"github.com/katalvlaran/pets/num"
)

// Coefficients of the closed-form fit to the Barker–Henderson diameter of the
// truncated-and-shifted Lennard-Jones potential:
// d = σ (1 − hsCoeffA · exp(−hsCoeffB · ε/kT)).
const (
	hsCoeffA = 0.127112544
	hsCoeffB = 3.052785558
)

// Number of entropy-scaling coefficients per component.
const (
	ViscosityCoefficients           = 4
	DiffusionCoefficients           = 5
	ThermalConductivityCoefficients = 4
)

// Parameters is the immutable PeTS parameter set of n components.
type Parameters struct {
	molarWeight []float64
	sigma       []float64
	epsilonK    []float64

	kij        *matrix.Dense
	sigmaIJ    *matrix.Dense
	eKIJ       *matrix.Dense
	epsilonKIJ *matrix.Dense

	// coefficients × n; nil when any component lacks the set
	viscosity           *matrix.Dense
	diffusion           *matrix.Dense
	thermalConductivity *matrix.Dense

	pureRecords []PureRecord
}

// FromRecords builds a parameter set from pure records and the binary
// correction matrix. A nil kij means "no corrections" (all zeros).
//
// Errors: ErrNoRecords for an empty record list, ErrBinaryShape when kij is not n×n.
func FromRecords(pure []PureRecord, kij *matrix.Dense) (*Parameters, error) {
	n := len(pure)
	if n == 0 {
		return nil, ErrNoRecords
	}
	if kij == nil {
		kij, _ = matrix.NewZeros(n, n)
	} else if err := matrix.ValidateShape(kij, n, n); err != nil {
		return nil, fmt.Errorf("%d records: %w", n, ErrBinaryShape)
	} else {
		kij = kij.CloneDense()
	}

	p := &Parameters{
		molarWeight: make([]float64, n),
		sigma:       make([]float64, n),
		epsilonK:    make([]float64, n),
		kij:         kij,
		pureRecords: make([]PureRecord, n),
	}
	for i, r := range pure {
		p.pureRecords[i] = r.clone()
	}

	visc := make([][]float64, 0, n)
	diff := make([][]float64, 0, n)
	cond := make([][]float64, 0, n)
	for i, r := range pure {
		p.sigma[i] = r.ModelRecord.Sigma
		p.epsilonK[i] = r.ModelRecord.EpsilonK
		p.molarWeight[i] = r.MolarWeight
		if v := r.ModelRecord.Viscosity; v != nil {
			visc = append(visc, v[:])
		}
		if v := r.ModelRecord.Diffusion; v != nil {
			diff = append(diff, v[:])
		}
		if v := r.ModelRecord.ThermalConductivity; v != nil {
			cond = append(cond, v[:])
		}
	}

	// Combining rules. The matrix constructors only fail on non-finite values,
	// which are out of the model's validity domain; such entries propagate as-is.
	k := kij.ToSlices()
	p.sigmaIJ = mustPairwise(n, func(i, j int) float64 { return 0.5 * (p.sigma[i] + p.sigma[j]) })
	p.eKIJ = mustPairwise(n, func(i, j int) float64 { return math.Sqrt(p.epsilonK[i] * p.epsilonK[j]) })
	p.epsilonKIJ = mustPairwise(n, func(i, j int) float64 {
		return (1 - k[i][j]) * math.Sqrt(p.epsilonK[i]*p.epsilonK[j])
	})

	p.viscosity = coefficientMatrix(visc, n, ViscosityCoefficients)
	p.diffusion = coefficientMatrix(diff, n, DiffusionCoefficients)
	p.thermalConductivity = coefficientMatrix(cond, n, ThermalConductivityCoefficients)

	return p, nil
}

// mustPairwise builds an n×n matrix without the finite-value policy so that
// NaN/Inf parameters flow through to the numeric kernel instead of failing here.
func mustPairwise(n int, f func(i, j int) float64) *matrix.Dense {
	return mustMatrix(n, n, f)
}

// coefficientMatrix lays per-component coefficient sets out as columns
// (coefficients × n). All-or-nothing: nil unless every component contributed.
func coefficientMatrix(cols [][]float64, n, coeffs int) *matrix.Dense {
	if len(cols) != n {
		return nil
	}

	return mustMatrix(coeffs, n, func(i, j int) float64 { return cols[j][i] })
}

func mustMatrix(rows, cols int, f func(i, j int) float64) *matrix.Dense {
	m, _ := matrix.NewDenseWithPolicy(rows, cols, false)
	_ = m.Apply(func(i, j int, _ float64) float64 { return f(i, j) })

	return m
}

// NewPure builds a one-component parameter set.
func NewPure(record PureRecord) *Parameters {
	p, _ := FromRecords([]PureRecord{record}, nil)
	return p
}

// NewBinary builds a two-component parameter set with a symmetric k_ij = kij.
func NewBinary(records [2]PureRecord, kij float64) *Parameters {
	k, _ := matrix.FromRows([][]float64{{0, kij}, {kij, 0}})
	p, _ := FromRecords(records[:], k)

	return p
}

// Subset returns a new parameter set restricted to the given component
// indices, in the given order. The source is never aliased or mutated.
func (p *Parameters) Subset(indices []int) (*Parameters, error) {
	if len(indices) == 0 {
		return nil, ErrNoRecords
	}
	records := make([]PureRecord, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= p.Len() {
			return nil, fmt.Errorf("index %d of %d components: %w", idx, p.Len(), ErrIndexOutOfRange)
		}
		records[i] = p.pureRecords[idx]
	}
	kij, err := p.kij.Induced(indices, indices)
	if err != nil {
		return nil, fmt.Errorf("subset k_ij: %w", err)
	}

	return FromRecords(records, kij)
}

// HSDiameter returns the temperature-dependent hard-sphere diameters
// d_i(T) = σ_i (1 − 0.127112544 · exp(−3.052785558 · ε_i/kT)) in Angstrom.
func HSDiameter[T num.Number[T]](p *Parameters, temperature T) []T {
	ti := temperature.Recip().MulF(-hsCoeffB)
	d := make([]T, len(p.sigma))
	for i := range d {
		d[i] = ti.MulF(p.epsilonK[i]).Exp().MulF(-hsCoeffA).AddF(1).MulF(p.sigma[i])
	}

	return d
}

// Len returns the number of components.
func (p *Parameters) Len() int { return len(p.sigma) }

// Sigma returns a copy of the segment diameters σ_i (Angstrom).
func (p *Parameters) Sigma() []float64 { return clone(p.sigma) }

// EpsilonK returns a copy of the energy parameters ε_i/k (Kelvin).
func (p *Parameters) EpsilonK() []float64 { return clone(p.epsilonK) }

// MolarWeight returns a copy of the molar weights (g/mol).
func (p *Parameters) MolarWeight() []float64 { return clone(p.molarWeight) }

// KIJ returns a copy of the binary corrections exactly as supplied.
func (p *Parameters) KIJ() *matrix.Dense { return p.kij.CloneDense() }

// SigmaIJ returns a copy of σ_ij = (σ_i+σ_j)/2.
func (p *Parameters) SigmaIJ() *matrix.Dense { return p.sigmaIJ.CloneDense() }

// EKIJ returns a copy of e_k_ij = sqrt(ε_i ε_j).
func (p *Parameters) EKIJ() *matrix.Dense { return p.eKIJ.CloneDense() }

// EpsilonKIJ returns a copy of ε_k_ij = (1−k_ij) e_k_ij.
func (p *Parameters) EpsilonKIJ() *matrix.Dense { return p.epsilonKIJ.CloneDense() }

// Viscosity returns the 4×n viscosity coefficients, or nil when any component lacks them.
func (p *Parameters) Viscosity() *matrix.Dense { return cloneOptional(p.viscosity) }

// Diffusion returns the 5×n diffusion coefficients, or nil when any component lacks them.
func (p *Parameters) Diffusion() *matrix.Dense { return cloneOptional(p.diffusion) }

// ThermalConductivity returns the 4×n coefficients, or nil when any component lacks them.
func (p *Parameters) ThermalConductivity() *matrix.Dense {
	return cloneOptional(p.thermalConductivity)
}

// PureRecords returns a deep copy of the records the set was built from.
func (p *Parameters) PureRecords() []PureRecord {
	out := make([]PureRecord, len(p.pureRecords))
	for i, r := range p.pureRecords {
		out[i] = r.clone()
	}

	return out
}

// IdealGasRecords returns the ideal-gas records of all components, or nil
// when any component has none.
func (p *Parameters) IdealGasRecords() []IdealGasRecord {
	out := make([]IdealGasRecord, 0, len(p.pureRecords))
	for _, r := range p.pureRecords {
		if r.IdealGasRecord == nil {
			return nil
		}
		out = append(out, *r.IdealGasRecord)
	}

	return out
}

func clone(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}

func cloneOptional(m *matrix.Dense) *matrix.Dense {
	if m == nil {
		return nil
	}

	return m.CloneDense()
}
