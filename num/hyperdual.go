package num

import "math"

// HyperDual carries a value, the first derivatives with respect to two
// independent inputs and the mixed second derivative:
// x = V + E1·ε1 + E2·ε2 + E12·ε1ε2 with ε1² = ε2² = 0.
//
// Seeding the same input in both directions (E1 = E2 = 1) yields the pure
// second derivative in E12.
type HyperDual struct {
	V   float64
	E1  float64
	E2  float64
	E12 float64
}

func (h HyperDual) chain(f0, f1, f2 float64) HyperDual {
	return HyperDual{
		V:   f0,
		E1:  f1 * h.E1,
		E2:  f1 * h.E2,
		E12: f1*h.E12 + f2*h.E1*h.E2,
	}
}

func (HyperDual) FromFloat(x float64) HyperDual { return HyperDual{V: x} }
func (h HyperDual) Value() float64 { return h.V }

func (h HyperDual) Add(o HyperDual) HyperDual {
	return HyperDual{V: h.V + o.V, E1: h.E1 + o.E1, E2: h.E2 + o.E2, E12: h.E12 + o.E12}
}

func (h HyperDual) Sub(o HyperDual) HyperDual {
	return HyperDual{V: h.V - o.V, E1: h.E1 - o.E1, E2: h.E2 - o.E2, E12: h.E12 - o.E12}
}

func (h HyperDual) Mul(o HyperDual) HyperDual {
	return HyperDual{
		V:   h.V * o.V,
		E1:  h.E1*o.V + h.V*o.E1,
		E2:  h.E2*o.V + h.V*o.E2,
		E12: h.E12*o.V + h.E1*o.E2 + h.E2*o.E1 + h.V*o.E12,
	}
}

func (h HyperDual) Div(o HyperDual) HyperDual { return h.Mul(o.Recip()) }

func (h HyperDual) Neg() HyperDual {
	return HyperDual{V: -h.V, E1: -h.E1, E2: -h.E2, E12: -h.E12}
}

func (h HyperDual) Recip() HyperDual {
	inv := 1 / h.V
	return h.chain(inv, -inv*inv, 2*inv*inv*inv)
}

func (h HyperDual) AddF(c float64) HyperDual {
	return HyperDual{V: h.V + c, E1: h.E1, E2: h.E2, E12: h.E12}
}

func (h HyperDual) MulF(c float64) HyperDual {
	return HyperDual{V: h.V * c, E1: h.E1 * c, E2: h.E2 * c, E12: h.E12 * c}
}

func (h HyperDual) Powi(n int) HyperDual {
	switch n {
	case 0:
		return HyperDual{V: 1}
	case 1:
		return h
	case 2:
		return h.Mul(h)
	}
	pm2 := powi(h.V, n-2)
	fn := float64(n)

	return h.chain(pm2*h.V*h.V, fn*pm2*h.V, fn*(fn-1)*pm2)
}

func (h HyperDual) Powf(p float64) HyperDual {
	if p == 0 {
		return HyperDual{V: 1}
	}
	pm2 := math.Pow(h.V, p-2)

	return h.chain(pm2*h.V*h.V, p*pm2*h.V, p*(p-1)*pm2)
}

func (h HyperDual) Sqrt() HyperDual {
	s := math.Sqrt(h.V)
	return h.chain(s, 0.5/s, -0.25/(s*h.V))
}

func (h HyperDual) Exp() HyperDual {
	e := math.Exp(h.V)
	return h.chain(e, e, e)
}

func (h HyperDual) Ln() HyperDual {
	inv := 1 / h.V
	return h.chain(math.Log(h.V), inv, -inv*inv)
}

func (h HyperDual) Ln1p() HyperDual {
	inv := 1 / (1 + h.V)
	return h.chain(math.Log1p(h.V), inv, -inv*inv)
}
