package num

// Number is the arithmetic capability shared by all numeric instantiations.
//
// Methods never mutate the receiver; every operation returns a new value.
// Value reports the plain real part and is the only way formulas may branch on
// magnitude (e.g. series expansions near singular points).
type Number[T any] interface {
	// FromFloat injects a constant. The receiver is used only for its type.
	FromFloat(x float64) T
	// Value returns the real (non-derivative) part.
	Value() float64

	Add(o T) T
	Sub(o T) T
	Mul(o T) T
	Div(o T) T
	Neg() T
	Recip() T

	// AddF adds a plain constant.
	AddF(c float64) T
	// MulF scales by a plain constant.
	MulF(c float64) T

	Powi(n int) T
	Powf(p float64) T
	Sqrt() T
	Exp() T
	Ln() T
	// Ln1p returns ln(1+x), accurate for small x.
	Ln1p() T
}

// Const injects the constant x into the number type T.
func Const[T Number[T]](x float64) T {
	var z T
	return z.FromFloat(x)
}

// Zero returns the additive identity of T.
func Zero[T Number[T]]() T { return Const[T](0) }

// One returns the multiplicative identity of T.
func One[T Number[T]]() T { return Const[T](1) }

// Sum adds all elements of xs; an empty slice sums to zero.
func Sum[T Number[T]](xs []T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// Lift converts a slice of plain values into constants of type T.
func Lift[T Number[T]](xs []float64) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = Const[T](x)
	}

	return out
}

// Values extracts the real parts of xs.
func Values[T Number[T]](xs []T) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Value()
	}

	return out
}

// Compile-time assertions: every instantiation satisfies the capability.
var (
	_ Number[Real]      = Real(0)
	_ Number[Dual]      = Dual{}
	_ Number[Dual2]     = Dual2{}
	_ Number[HyperDual] = HyperDual{}
)
