package functional

import (
	"fmt"

	"github.com/katalvlaran/pets/num"
	"github.com/katalvlaran/pets/parameters"
)

// Contribution is one additive term of the residual Helmholtz energy density.
//
// The set is closed: *HardSpherePure, *HardSphereMixture, *DispersionPure and
// *DispersionMixture. Evaluation is provided by the generic functions
// WeightFunctions, HelmholtzEnergyDensity and BulkHelmholtzEnergyDensity,
// which dispatch on the concrete type. All implementations are immutable and
// safe for concurrent use.
type Contribution interface {
	fmt.Stringer
	// Components returns the number of components the contribution was built for.
	Components() int
	sealed()
}

// Select returns the contributions of a PeTS model. Single-component models
// with a version that has a pure path get the reduced functionals; every
// other combination gets the mixture functionals. The choice is fixed here.
func Select(p *parameters.Parameters, version FMTVersion) []Contribution {
	if p.Len() == 1 && version.HasPurePath() {
		return []Contribution{NewHardSpherePure(p, version), NewDispersionPure(p)}
	}

	return []Contribution{NewHardSphereMixture(p, version), NewDispersionMixture(p)}
}

// WeightFunctions returns the weight functions of c at the given temperature.
func WeightFunctions[T num.Number[T]](c Contribution, temperature T) WeightFunctionInfo[T] {
	switch c := c.(type) {
	case *HardSpherePure:
		return hardSpherePureWeights(c, temperature)
	case *HardSphereMixture:
		return hardSphereMixtureWeights(c, temperature)
	case *DispersionPure:
		return dispersionWeights(c.p, 1, temperature)
	case *DispersionMixture:
		return dispersionWeights(c.p, c.p.Len(), temperature)
	default:
		panic(fmt.Sprintf("functional: unknown contribution %T", c))
	}
}

// HelmholtzEnergyDensity evaluates the reduced Helmholtz energy density
// βf (1/Å³) of c on a set of points. weighted holds one row per weighted
// density (see WeightFunctionInfo) and one column per point; the result has
// one entry per point.
func HelmholtzEnergyDensity[T num.Number[T]](c Contribution, temperature T, weighted [][]T) []T {
	if len(weighted) == 0 {
		return nil
	}
	phi := densityFunc(c, temperature)
	out := make([]T, len(weighted[0]))
	col := make([]T, len(weighted))
	for k := range out {
		for r := range weighted {
			col[r] = weighted[r][k]
		}
		out[k] = phi(col)
	}

	return out
}

// BulkHelmholtzEnergyDensity evaluates c for a homogeneous fluid of the given
// component densities (1/Å³). Hard-sphere terms use the bulk limit of their
// weighted densities; dispersion terms use the local densities directly.
func BulkHelmholtzEnergyDensity[T num.Number[T]](c Contribution, temperature T, density []T) T {
	phi := densityFunc(c, temperature)
	switch c.(type) {
	case *DispersionPure, *DispersionMixture:
		return phi(density)
	default:
		return phi(WeightFunctions(c, temperature).BulkWeightedDensities(density))
	}
}

// densityFunc resolves the temperature-dependent quantities of c once and
// returns the energy density as a function of one point's weighted densities.
func densityFunc[T num.Number[T]](c Contribution, temperature T) func(wd []T) T {
	switch c := c.(type) {
	case *HardSpherePure:
		return hardSpherePureDensity(c, temperature)
	case *HardSphereMixture:
		return hardSphereMixtureDensity[T](c)
	case *DispersionPure:
		return dispersionPureDensity(c, temperature)
	case *DispersionMixture:
		return dispersionMixtureDensity(c, temperature)
	default:
		panic(fmt.Sprintf("functional: unknown contribution %T", c))
	}
}
