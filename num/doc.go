// Package num provides the numeric kernel every PeTS formula is written against.
//
// 🚀 What is it?
//
//	A tiny capability set {constant, +, −, ×, ÷, power, exp, ln, sqrt} expressed as the
//	generic constraint Number[T]. Physics code is written once as
//
//	  func phi[T num.Number[T]](n3 T) T { return n3.Neg().Ln1p().Neg() }
//
//	and instantiated with whatever number type the caller needs.
//
// ✨ Instantiations:
//   - Real     : plain float64 evaluation
//   - Dual     : value + first derivative (forward-mode AD in one direction)
//   - Dual2    : value + first + second derivative in one direction
//   - HyperDual: value + two first derivatives + the mixed second derivative
//
// Derivatives are exact to floating-point precision; no finite differences and no
// symbolic algebra are involved. All types are small value structs, so they are safe
// to share between goroutines and cost no allocations.
//
// ⚙️ Usage:
//
//	x := num.Variable(2.0)          // Dual{V: 2, D: 1}
//	y := x.Powi(3).Add(x.Ln())      // y.V = 8+ln2, y.D = 12+1/2
package num
