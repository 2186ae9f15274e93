package num

import "math"

// Dual carries a value and its first derivative with respect to one
// distinguished input: x = V + D·ε with ε² = 0.
type Dual struct {
	V float64 // value
	D float64 // first derivative
}

// Variable returns x seeded as the differentiation variable (D = 1).
func Variable(x float64) Dual { return Dual{V: x, D: 1} }

// chain applies a scalar function with value f0 and derivative f1 at d.V.
func (d Dual) chain(f0, f1 float64) Dual { return Dual{V: f0, D: f1 * d.D} }

func (Dual) FromFloat(x float64) Dual { return Dual{V: x} }
func (d Dual) Value() float64 { return d.V }

func (d Dual) Add(o Dual) Dual { return Dual{V: d.V + o.V, D: d.D + o.D} }
func (d Dual) Sub(o Dual) Dual { return Dual{V: d.V - o.V, D: d.D - o.D} }
func (d Dual) Mul(o Dual) Dual { return Dual{V: d.V * o.V, D: d.D*o.V + d.V*o.D} }

func (d Dual) Div(o Dual) Dual {
	inv := 1 / o.V
	v := d.V * inv

	return Dual{V: v, D: (d.D - v*o.D) * inv}
}

func (d Dual) Neg() Dual { return Dual{V: -d.V, D: -d.D} }

func (d Dual) Recip() Dual {
	inv := 1 / d.V
	return d.chain(inv, -inv*inv)
}

func (d Dual) AddF(c float64) Dual { return Dual{V: d.V + c, D: d.D} }
func (d Dual) MulF(c float64) Dual { return Dual{V: d.V * c, D: d.D * c} }

func (d Dual) Powi(n int) Dual {
	switch n {
	case 0:
		return Dual{V: 1}
	case 1:
		return d
	}
	pm1 := powi(d.V, n-1)

	return d.chain(pm1*d.V, float64(n)*pm1)
}

func (d Dual) Powf(p float64) Dual {
	if p == 0 {
		return Dual{V: 1}
	}
	pm1 := math.Pow(d.V, p-1)

	return d.chain(pm1*d.V, p*pm1)
}

func (d Dual) Sqrt() Dual {
	s := math.Sqrt(d.V)
	return d.chain(s, 0.5/s)
}

func (d Dual) Exp() Dual {
	e := math.Exp(d.V)
	return d.chain(e, e)
}

func (d Dual) Ln() Dual   { return d.chain(math.Log(d.V), 1/d.V) }
func (d Dual) Ln1p() Dual { return d.chain(math.Log1p(d.V), 1/(1+d.V)) }
