package functional

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pets/num"
	"github.com/katalvlaran/pets/parameters"
)

// Below this packing fraction the n3-dependent factor of the third FMT term,
// a 0/0 expression at n3 = 0, is replaced by its Taylor series.
const smallPackingFraction = 1e-5

// HardSphereMixture is the fundamental measure theory functional for any
// number of components and any FMTVersion.
//
// Weighted densities (rows):
//
//	WhiteBear, AntiSymWhiteBear: n0, n1, n2, n3, n1v, n2v
//	KierlikRosinberg:            n0, n1, n2, n3
type HardSphereMixture struct {
	p       *parameters.Parameters
	version FMTVersion
}

// NewHardSphereMixture builds the mixture FMT functional.
func NewHardSphereMixture(p *parameters.Parameters, version FMTVersion) *HardSphereMixture {
	return &HardSphereMixture{p: p, version: version}
}

func (c *HardSphereMixture) String() string { return fmt.Sprintf("FMT functional (%s)", c.version) }
func (c *HardSphereMixture) Components() int { return c.p.Len() }

// Version returns the FMT closure.
func (c *HardSphereMixture) Version() FMTVersion { return c.version }
func (*HardSphereMixture) sealed()               {}

// HardSpherePure is the single-component FMT functional. It consumes only n2,
// n3 and n2v and derives the remaining weighted densities from the radius:
// n0 = n2/(4πR²), n1 = n2/(4πR), n1v = n2v/(4πR).
type HardSpherePure struct {
	p       *parameters.Parameters
	version FMTVersion
}

// NewHardSpherePure builds the reduced FMT functional for the first component
// of p. Only WhiteBear and AntiSymWhiteBear have a reduced form; any other
// version is evaluated as WhiteBear.
func NewHardSpherePure(p *parameters.Parameters, version FMTVersion) *HardSpherePure {
	if !version.HasPurePath() {
		version = WhiteBear
	}

	return &HardSpherePure{p: p, version: version}
}

func (c *HardSpherePure) String() string { return fmt.Sprintf("Pure FMT functional (%s)", c.version) }
func (c *HardSpherePure) Components() int { return 1 }

// Version returns the FMT closure.
func (c *HardSpherePure) Version() FMTVersion { return c.version }
func (*HardSpherePure) sealed()               {}

// radii returns the hard-sphere radii d_i(T)/2.
func radii[T num.Number[T]](p *parameters.Parameters, temperature T) []T {
	r := parameters.HSDiameter(p, temperature)
	for i := range r {
		r[i] = r[i].MulF(0.5)
	}

	return r
}

func hardSphereMixtureWeights[T num.Number[T]](c *HardSphereMixture, temperature T) WeightFunctionInfo[T] {
	r := radii(c.p, temperature)
	info := WeightFunctionInfo[T]{Components: len(r)}
	if c.version == KierlikRosinberg {
		info.Scalar = []WeightFunction[T]{
			NewWeightFunction(r, KR0),
			NewWeightFunction(r, KR1),
			NewWeightFunction(r, Delta),
			NewWeightFunction(r, Theta),
		}

		return info
	}

	// 1/(4πR²) and 1/(4πR)
	p0 := make([]T, len(r))
	p1 := make([]T, len(r))
	for i, ri := range r {
		p0[i] = ri.Powi(2).MulF(4 * math.Pi).Recip()
		p1[i] = ri.MulF(4 * math.Pi).Recip()
	}
	n0 := NewWeightFunction(r, Delta)
	n0.Prefactor = p0
	n1 := NewWeightFunction(r, Delta)
	n1.Prefactor = p1
	n1v := NewWeightFunction(r, DeltaVec)
	n1v.Prefactor = clone(p1)
	info.Scalar = []WeightFunction[T]{n0, n1, NewWeightFunction(r, Delta), NewWeightFunction(r, Theta)}
	info.Vector = []WeightFunction[T]{n1v, NewWeightFunction(r, DeltaVec)}

	return info
}

func hardSpherePureWeights[T num.Number[T]](c *HardSpherePure, temperature T) WeightFunctionInfo[T] {
	r := radii(c.p, temperature)[:1]

	return WeightFunctionInfo[T]{
		Components: 1,
		Scalar:     []WeightFunction[T]{NewWeightFunction(r, Delta), NewWeightFunction(r, Theta)},
		Vector:     []WeightFunction[T]{NewWeightFunction(r, DeltaVec)},
	}
}

func hardSphereMixtureDensity[T num.Number[T]](c *HardSphereMixture) func(wd []T) T {
	if c.version == KierlikRosinberg {
		zero := num.Zero[T]()
		return func(wd []T) T { return fmtDensity(c.version, wd[0], wd[1], wd[2], wd[3], zero, zero) }
	}

	return func(wd []T) T { return fmtDensity(c.version, wd[0], wd[1], wd[2], wd[3], wd[4], wd[5]) }
}

func hardSpherePureDensity[T num.Number[T]](c *HardSpherePure, temperature T) func(wd []T) T {
	r := radii(c.p, temperature)[0]
	shell := r.MulF(4 * math.Pi).Recip()            // 1/(4πR)
	surface := r.Powi(2).MulF(4 * math.Pi).Recip() // 1/(4πR²)

	return func(wd []T) T {
		n2, n3, n2v := wd[0], wd[1], wd[2]

		return fmtDensity(c.version, n2.Mul(surface), n2.Mul(shell), n2, n3, n2v.Mul(shell), n2v)
	}
}

// fmtDensity is the FMT free energy density
//
//	φ = −n0 ln(1−n3) + (n1 n2 − n1v n2v)/(1−n3) + F3 (n3 + (1−n3)² ln(1−n3)) / (36π n3² (1−n3)²)
//
// with F3 = n2³ − 3 n2 n2v² (WhiteBear), n2³ (1−ξ²)³ with ξ = |n2v|/n2
// (AntiSymWhiteBear) or n2³ (KierlikRosinberg). Packing fractions above 1 yield +Inf.
func fmtDensity[T num.Number[T]](version FMTVersion, n0, n1, n2, n3, n1v, n2v T) T {
	if n3.Value() > 1 {
		return num.Const[T](math.Inf(1))
	}
	ln31 := n3.Neg().Ln1p()
	n3m1 := n3.Neg().AddF(1)

	phi := n0.Mul(ln31).Neg().Add(n1.Mul(n2).Sub(n1v.Mul(n2v)).Div(n3m1))

	var f3 T
	switch version {
	case AntiSymWhiteBear:
		xi2 := num.Zero[T]()
		if n2.Value() != 0 {
			xi2 = n2v.Mul(n2v).Div(n2.Mul(n2))
		}
		if xi2.Value() > 1 {
			xi2 = num.One[T]()
		}
		f3 = n2.Powi(3).Mul(xi2.Neg().AddF(1).Powi(3))
	case KierlikRosinberg:
		f3 = n2.Powi(3)
	default:
		f3 = n2.Powi(3).Sub(n2.Mul(n2v).Mul(n2v).MulF(3))
	}

	var g T
	if n3.Value() < smallPackingFraction {
		// 3/2 + 8/3 n3 + 15/4 n3² + 24/5 n3³
		g = n3.MulF(24.0 / 5).AddF(15.0 / 4).Mul(n3).AddF(8.0 / 3).Mul(n3).AddF(1.5)
	} else {
		g = n3m1.Mul(n3m1).Mul(ln31).Add(n3).Div(n3.Mul(n3).Mul(n3m1).Mul(n3m1))
	}

	return phi.Add(f3.Mul(g).MulF(1 / (36 * math.Pi)))
}
