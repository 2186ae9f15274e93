// Package functional implements the PeTS Helmholtz energy contributions:
// hard-sphere repulsion by fundamental measure theory (FMT) and the
// dispersive attraction, each with a reduced single-component form and a
// general mixture form.
//
// Every formula is written once against num.Number, so the same code yields
// plain values (num.Real) and exact derivatives (num.Dual, num.Dual2,
// num.HyperDual) with respect to temperature or density.
//
// Evaluation modes:
//
//	inhomogeneous  HelmholtzEnergyDensity consumes weighted densities laid out
//	               as described by WeightFunctions (a DFT runtime convolves
//	               the density profile with those kernels).
//	bulk           BulkHelmholtzEnergyDensity takes component densities of a
//	               homogeneous fluid; kernels collapse to their integrals.
//
// Energy densities are reduced by kT and expressed in 1/Å³; temperatures are
// in Kelvin and densities in 1/Å³. Invalid states are not reported as errors:
// packing fractions at or beyond 1 diverge to ±Inf or NaN.
package functional
