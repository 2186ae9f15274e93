package functional

import (
	"math"

	"github.com/katalvlaran/pets/num"
	"github.com/katalvlaran/pets/parameters"
)

// psi scales the hard-sphere diameter to the range of the dispersion kernel.
const psi = 1.21

// Coefficients of the power series I1(η) = Σ a_k η^k and I2(η) = Σ b_k η^k
// fitted for the truncated-and-shifted Lennard-Jones fluid.
var (
	dispA = [7]float64{
		0.690603404, 1.189317012, 1.265604153, -24.34554201,
		93.67300357, -157.8773415, 96.93736697,
	}
	dispB = [7]float64{
		0.664852128, 2.10733079, -9.597951213, -17.37871193,
		30.17506222, 209.3942909, -363.2931540,
	}
)

// DispersionPure is the attractive functional of a single component.
type DispersionPure struct {
	p        *parameters.Parameters
	sigma3   float64
	epsilonK float64
}

// NewDispersionPure builds the single-component dispersion functional from
// the first component of p.
func NewDispersionPure(p *parameters.Parameters) *DispersionPure {
	return &DispersionPure{
		p:        p,
		sigma3:   math.Pow(p.Sigma()[0], 3),
		epsilonK: p.EpsilonK()[0],
	}
}

func (c *DispersionPure) String() string  { return "Pure dispersion functional" }
func (c *DispersionPure) Components() int { return 1 }
func (*DispersionPure) sealed()           {}

// DispersionMixture is the attractive functional of a mixture; σ_ij and
// ε_k_ij enter through a van der Waals one-fluid mixing of the densities.
type DispersionMixture struct {
	p          *parameters.Parameters
	sigma3IJ   [][]float64
	epsilonKIJ [][]float64
}

// NewDispersionMixture builds the mixture dispersion functional.
func NewDispersionMixture(p *parameters.Parameters) *DispersionMixture {
	s3 := p.SigmaIJ().ToSlices()
	for _, row := range s3 {
		for j := range row {
			row[j] = row[j] * row[j] * row[j]
		}
	}

	return &DispersionMixture{p: p, sigma3IJ: s3, epsilonKIJ: p.EpsilonKIJ().ToSlices()}
}

func (c *DispersionMixture) String() string  { return "Dispersion functional" }
func (c *DispersionMixture) Components() int { return c.p.Len() }
func (*DispersionMixture) sealed()           {}

// dispersionWeights returns one normalized Theta kernel per component with
// radius ψ·d_i, so that bulk weighted densities equal bulk densities.
func dispersionWeights[T num.Number[T]](p *parameters.Parameters, n int, temperature T) WeightFunctionInfo[T] {
	d := parameters.HSDiameter(p, temperature)[:n]
	for i := range d {
		d[i] = d[i].MulF(psi)
	}

	return WeightFunctionInfo[T]{
		Components:    n,
		ComponentWise: []WeightFunction[T]{NewScaledWeightFunction(d, Theta)},
	}
}

func dispersionPureDensity[T num.Number[T]](c *DispersionPure, temperature T) func(rho []T) T {
	vol := parameters.HSDiameter(c.p, temperature)[0].Powi(3).MulF(math.Pi / 6)
	e := temperature.Recip().MulF(c.epsilonK)
	f1 := e.MulF(c.sigma3)
	f2 := e.Mul(e).MulF(c.sigma3)

	return func(rho []T) T {
		rr := rho[0].Mul(rho[0])

		return dispersionKernel(rho[0].Mul(vol), rr.Mul(f1), rr.Mul(f2))
	}
}

func dispersionMixtureDensity[T num.Number[T]](c *DispersionMixture, temperature T) func(rho []T) T {
	d := parameters.HSDiameter(c.p, temperature)
	n := len(d)
	vol := make([]T, n)
	for i := range d {
		vol[i] = d[i].Powi(3).MulF(math.Pi / 6)
	}
	ti := temperature.Recip()
	ti2 := ti.Mul(ti)
	f1 := make([][]T, n)
	f2 := make([][]T, n)
	for i := 0; i < n; i++ {
		f1[i] = make([]T, n)
		f2[i] = make([]T, n)
		for j := 0; j < n; j++ {
			e, s3 := c.epsilonKIJ[i][j], c.sigma3IJ[i][j]
			f1[i][j] = ti.MulF(e * s3)
			f2[i][j] = ti2.MulF(e * e * s3)
		}
	}

	return func(rho []T) T {
		eta := num.Zero[T]()
		rho1 := num.Zero[T]()
		rho2 := num.Zero[T]()
		for i := 0; i < n; i++ {
			eta = eta.Add(rho[i].Mul(vol[i]))
			for j := 0; j < n; j++ {
				rr := rho[i].Mul(rho[j])
				rho1 = rho1.Add(rr.Mul(f1[i][j]))
				rho2 = rho2.Add(rr.Mul(f2[i][j]))
			}
		}

		return dispersionKernel(eta, rho1, rho2)
	}
}

// dispersionKernel returns φ = −π (2 ρ1 I1(η) + ρ2 C1(η) I2(η)) with the
// compressibility term C1 = (1 + (8η − 2η²)/(1−η)⁴)⁻¹.
func dispersionKernel[T num.Number[T]](eta, rho1, rho2 T) T {
	i1 := num.Zero[T]()
	i2 := num.Zero[T]()
	etaK := num.One[T]()
	for k := range dispA {
		i1 = i1.Add(etaK.MulF(dispA[k]))
		i2 = i2.Add(etaK.MulF(dispB[k]))
		etaK = etaK.Mul(eta)
	}
	c1 := eta.MulF(8).Sub(eta.Mul(eta).MulF(2)).Div(eta.Neg().AddF(1).Powi(4)).AddF(1).Recip()

	return rho1.Mul(i1).MulF(2).Add(rho2.Mul(c1).Mul(i2)).MulF(-math.Pi)
}
