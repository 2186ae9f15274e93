package functional

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pets/num"
)

// Shape is the geometry of a weight function kernel of radius R.
type Shape int

const (
	// Delta is the spherical shell δ(R − r).
	Delta Shape = iota
	// Theta is the step Θ(R − r) filling the sphere.
	Theta
	// DeltaVec is the vector shell (r/|r|)·δ(R − r).
	DeltaVec
	// KR0 is the zeroth Kierlik-Rosinberg kernel; its bulk integral is 1.
	KR0
	// KR1 is the first Kierlik-Rosinberg kernel; its bulk integral is R.
	KR1
)

var shapeNames = [...]string{"Delta", "Theta", "DeltaVec", "KR0", "KR1"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}

	return shapeNames[s]
}

// IsVector reports whether the kernel produces vector-valued weighted densities.
func (s Shape) IsVector() bool { return s == DeltaVec }

// WeightFunction is one kernel per component: component i contributes with
// Prefactor[i]·w(KernelRadius[i], r).
type WeightFunction[T num.Number[T]] struct {
	Prefactor    []T
	KernelRadius []T
	Shape        Shape
}

// NewWeightFunction builds a weight function with unit prefactors.
func NewWeightFunction[T num.Number[T]](radius []T, shape Shape) WeightFunction[T] {
	prefactor := make([]T, len(radius))
	for i := range prefactor {
		prefactor[i] = num.One[T]()
	}

	return WeightFunction[T]{Prefactor: prefactor, KernelRadius: clone(radius), Shape: shape}
}

// NewScaledWeightFunction builds a weight function whose prefactors normalize
// the bulk integral to 1, so the weighted density of a uniform fluid equals
// the fluid density.
func NewScaledWeightFunction[T num.Number[T]](radius []T, shape Shape) WeightFunction[T] {
	w := NewWeightFunction(radius, shape)
	for i, integral := range w.unitIntegrals() {
		w.Prefactor[i] = integral.Recip()
	}

	return w
}

// unitIntegrals returns ∫w d³r for each component kernel.
func (w WeightFunction[T]) unitIntegrals() []T {
	out := make([]T, len(w.KernelRadius))
	for i, r := range w.KernelRadius {
		switch w.Shape {
		case Delta:
			out[i] = r.Powi(2).MulF(4 * math.Pi)
		case Theta:
			out[i] = r.Powi(3).MulF(4 * math.Pi / 3)
		case KR0:
			out[i] = num.One[T]()
		case KR1:
			out[i] = r
		default:
			out[i] = num.Zero[T]()
		}
	}

	return out
}

// BulkIntegrals returns Prefactor[i]·∫w_i d³r, the factor that maps the bulk
// density of component i onto its weighted density. Vector kernels vanish in bulk.
func (w WeightFunction[T]) BulkIntegrals() []T {
	out := w.unitIntegrals()
	for i := range out {
		out[i] = out[i].Mul(w.Prefactor[i])
	}

	return out
}

// WeightFunctionInfo groups the weight functions of one contribution.
//
// Weighted densities are laid out row by row:
//
//	ComponentWise  one row per (function, component), function-major
//	Scalar         one row per function, summed over components
//	Vector         one row per function, summed over components (one spatial dimension)
type WeightFunctionInfo[T num.Number[T]] struct {
	Components    int
	ComponentWise []WeightFunction[T]
	Scalar        []WeightFunction[T]
	Vector        []WeightFunction[T]
}

// Rows returns the number of weighted-density rows the contribution consumes.
func (wi WeightFunctionInfo[T]) Rows() int {
	return len(wi.ComponentWise)*wi.Components + len(wi.Scalar) + len(wi.Vector)
}

// BulkWeightedDensities maps bulk component densities onto the weighted
// densities of a homogeneous fluid, in row order.
func (wi WeightFunctionInfo[T]) BulkWeightedDensities(density []T) []T {
	out := make([]T, 0, wi.Rows())
	for _, w := range wi.ComponentWise {
		for i, b := range w.BulkIntegrals() {
			out = append(out, density[i].Mul(b))
		}
	}
	for _, w := range wi.Scalar {
		acc := num.Zero[T]()
		for i, b := range w.BulkIntegrals() {
			acc = acc.Add(density[i].Mul(b))
		}
		out = append(out, acc)
	}
	for range wi.Vector {
		out = append(out, num.Zero[T]())
	}

	return out
}

func clone[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)

	return out
}
