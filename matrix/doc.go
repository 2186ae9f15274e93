// Package matrix offers the small dense-matrix layer behind PeTS parameter sets.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Induced, a copy-based submatrix used to restrict pairwise parameter
//     matrices (k_ij, σ_ij, ε_ij) to a subset of components.
//   - Validators for squareness, symmetry within a tolerance and all-zero checks.
//
// Parameter matrices are n×n with n the number of components, so O(n²) memory
// and O(n²) construction are always acceptable. Dense values handed out by the
// parameters package are fresh copies; a Dense is never shared mutably.
//
// See the examples in this package for usage patterns.
package matrix
