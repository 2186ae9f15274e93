package num

import "math"

// Dual2 carries a value with its first and second derivative with respect to
// one distinguished input.
type Dual2 struct {
	V  float64 // value
	D1 float64 // first derivative
	D2 float64 // second derivative
}

// Variable2 returns x seeded as the differentiation variable (D1 = 1, D2 = 0).
func Variable2(x float64) Dual2 { return Dual2{V: x, D1: 1} }

// chain applies a scalar function with value f0, first derivative f1 and
// second derivative f2 at d.V.
func (d Dual2) chain(f0, f1, f2 float64) Dual2 {
	return Dual2{V: f0, D1: f1 * d.D1, D2: f2*d.D1*d.D1 + f1*d.D2}
}

func (Dual2) FromFloat(x float64) Dual2 { return Dual2{V: x} }
func (d Dual2) Value() float64 { return d.V }

func (d Dual2) Add(o Dual2) Dual2 { return Dual2{V: d.V + o.V, D1: d.D1 + o.D1, D2: d.D2 + o.D2} }
func (d Dual2) Sub(o Dual2) Dual2 { return Dual2{V: d.V - o.V, D1: d.D1 - o.D1, D2: d.D2 - o.D2} }

func (d Dual2) Mul(o Dual2) Dual2 {
	return Dual2{
		V:  d.V * o.V,
		D1: d.D1*o.V + d.V*o.D1,
		D2: d.D2*o.V + 2*d.D1*o.D1 + d.V*o.D2,
	}
}

func (d Dual2) Div(o Dual2) Dual2 { return d.Mul(o.Recip()) }
func (d Dual2) Neg() Dual2        { return Dual2{V: -d.V, D1: -d.D1, D2: -d.D2} }

func (d Dual2) Recip() Dual2 {
	inv := 1 / d.V
	return d.chain(inv, -inv*inv, 2*inv*inv*inv)
}

func (d Dual2) AddF(c float64) Dual2 { return Dual2{V: d.V + c, D1: d.D1, D2: d.D2} }
func (d Dual2) MulF(c float64) Dual2 { return Dual2{V: d.V * c, D1: d.D1 * c, D2: d.D2 * c} }

func (d Dual2) Powi(n int) Dual2 {
	switch n {
	case 0:
		return Dual2{V: 1}
	case 1:
		return d
	case 2:
		return d.Mul(d)
	}
	pm2 := powi(d.V, n-2)
	fn := float64(n)

	return d.chain(pm2*d.V*d.V, fn*pm2*d.V, fn*(fn-1)*pm2)
}

func (d Dual2) Powf(p float64) Dual2 {
	if p == 0 {
		return Dual2{V: 1}
	}
	pm2 := math.Pow(d.V, p-2)

	return d.chain(pm2*d.V*d.V, p*pm2*d.V, p*(p-1)*pm2)
}

func (d Dual2) Sqrt() Dual2 {
	s := math.Sqrt(d.V)
	return d.chain(s, 0.5/s, -0.25/(s*d.V))
}

func (d Dual2) Exp() Dual2 {
	e := math.Exp(d.V)
	return d.chain(e, e, e)
}

func (d Dual2) Ln() Dual2 {
	inv := 1 / d.V
	return d.chain(math.Log(d.V), inv, -inv*inv)
}

func (d Dual2) Ln1p() Dual2 {
	inv := 1 / (1 + d.V)
	return d.chain(math.Log1p(d.V), inv, -inv*inv)
}
