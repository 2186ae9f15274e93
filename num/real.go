package num

import "math"

// Real is a plain float64 wrapped to satisfy Number.
type Real float64

func (Real) FromFloat(x float64) Real { return Real(x) }
func (r Real) Value() float64 { return float64(r) }

func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
func (r Real) Mul(o Real) Real { return r * o }
func (r Real) Div(o Real) Real { return r / o }
func (r Real) Neg() Real { return -r }
func (r Real) Recip() Real { return 1 / r }
func (r Real) AddF(c float64) Real { return r + Real(c) }
func (r Real) MulF(c float64) Real { return r * Real(c) }
func (r Real) Powi(n int) Real { return Real(powi(float64(r), n)) }
func (r Real) Powf(p float64) Real { return Real(math.Pow(float64(r), p)) }
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }
func (r Real) Exp() Real { return Real(math.Exp(float64(r))) }
func (r Real) Ln() Real { return Real(math.Log(float64(r))) }
func (r Real) Ln1p() Real { return Real(math.Log1p(float64(r))) }

// Reals converts plain values to Real.
func Reals(xs []float64) []Real {
	out := make([]Real, len(xs))
	for i, x := range xs {
		out[i] = Real(x)
	}

	return out
}

// powi computes x^n by binary exponentiation; negative n yields 1/x^|n|.
func powi(x float64, n int) float64 {
	if n < 0 {
		return 1 / powi(x, -n)
	}
	acc := 1.0
	for n > 0 {
		if n&1 == 1 {
			acc *= x
		}
		x *= x
		n >>= 1
	}

	return acc
}
