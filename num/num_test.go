package num_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/pets/num"
)

// probe is a formula exercising every operation of the capability set.
func probe[T num.Number[T]](x T) T {
	a := x.Powi(3).MulF(0.5).Add(x.Ln())
	b := x.Sqrt().Mul(x.Exp().Recip())
	c := x.Neg().AddF(1).Ln1p().Div(x.Powf(1.5))
	d := num.Const[T](2).Sub(x).Powi(-2)

	return a.Add(b).Sub(c).Add(d)
}

func probeFloat(x float64) float64 { return probe(num.Real(x)).Value() }

func TestReal_MatchesFloatArithmetic(t *testing.T) {
	x := 0.7
	want := 0.5*x*x*x + math.Log(x) + math.Sqrt(x)/math.Exp(x) -
		math.Log1p(1-x)/math.Pow(x, 1.5) + 1/((2-x)*(2-x))
	assert.InDelta(t, want, probeFloat(x), 1e-14)
}

func TestDual_FirstDerivativeMatchesFiniteDifference(t *testing.T) {
	for _, x := range []float64{0.3, 0.7, 1.4} {
		got := probe(num.Variable(x))
		want := fd.Derivative(probeFloat, x, &fd.Settings{Formula: fd.Central})
		require.InDelta(t, probeFloat(x), got.V, 1e-14, "value at x=%g", x)
		require.InEpsilon(t, want, got.D, 1e-6, "derivative at x=%g", x)
	}
}

func TestDual2_SecondDerivativeMatchesFiniteDifference(t *testing.T) {
	for _, x := range []float64{0.3, 0.7, 1.4} {
		got := probe(num.Variable2(x))
		first := probe(num.Variable(x)).D
		second := fd.Derivative(probeFloat, x, &fd.Settings{Formula: fd.Central2nd})
		require.InDelta(t, first, got.D1, 1e-12, "first derivative at x=%g", x)
		require.InEpsilon(t, second, got.D2, 1e-4, "second derivative at x=%g", x)
	}
}

func TestHyperDual_PureSecondDerivativeEqualsDual2(t *testing.T) {
	x := 0.9
	h := probe(num.HyperDual{V: x, E1: 1, E2: 1})
	d2 := probe(num.Variable2(x))
	assert.InDelta(t, d2.V, h.V, 1e-14)
	assert.InDelta(t, d2.D1, h.E1, 1e-12)
	assert.InDelta(t, d2.D1, h.E2, 1e-12)
	assert.InEpsilon(t, d2.D2, h.E12, 1e-12)
}

func TestHyperDual_MixedDerivative(t *testing.T) {
	// f(x, y) = x² · ln(y) · exp(x·y)
	f := func(x, y num.HyperDual) num.HyperDual {
		return x.Powi(2).Mul(y.Ln()).Mul(x.Mul(y).Exp())
	}
	x0, y0 := 0.8, 1.3
	h := f(num.HyperDual{V: x0, E1: 1}, num.HyperDual{V: y0, E2: 1})

	// analytic partials of f
	e := math.Exp(x0 * y0)
	ly := math.Log(y0)
	dfdx := func(x, y float64) float64 { return (2*x*math.Log(y) + x*x*math.Log(y)*y) * math.Exp(x*y) }
	dfdy := func(x, y float64) float64 { return x * x * (1/y + math.Log(y)*x) * math.Exp(x*y) }
	mixed := fd.Derivative(func(y float64) float64 { return dfdx(x0, y) }, y0, &fd.Settings{Formula: fd.Central})

	assert.InDelta(t, x0*x0*ly*e, h.V, 1e-14)
	assert.InDelta(t, dfdx(x0, y0), h.E1, 1e-12)
	assert.InDelta(t, dfdy(x0, y0), h.E2, 1e-12)
	assert.InEpsilon(t, mixed, h.E12, 1e-6)
}

func TestPowi_EdgeExponents(t *testing.T) {
	d := num.Variable(3)
	assert.Equal(t, num.Dual{V: 1}, d.Powi(0))
	assert.Equal(t, d, d.Powi(1))
	assert.InDelta(t, -2.0/27.0, d.Powi(-2).D, 1e-15)
	assert.Equal(t, num.Real(1.0/8.0), num.Real(2).Powi(-3))
}

func TestHelpers(t *testing.T) {
	xs := num.Lift[num.Dual]([]float64{1, 2, 3})
	require.Len(t, xs, 3)
	assert.Equal(t, num.Dual{V: 6}, num.Sum(xs))
	assert.Equal(t, []float64{1, 2, 3}, num.Values(xs))
	assert.Equal(t, num.Real(0), num.Sum[num.Real](nil))
	assert.Equal(t, num.Dual2{V: 1}, num.One[num.Dual2]())
	assert.Equal(t, []num.Real{1.5, -2}, num.Reals([]float64{1.5, -2}))
}
