package functional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/num"
)

// The contributions are written once against num.Number; derivative-carrying
// instantiations must agree with finite differences of the plain one.

func TestDensityDerivativeMatchesFiniteDifference(t *testing.T) {
	p := ternary(t)
	const temperature = 160.0
	base := []float64{0.004, 0.007, 0.002}

	for _, c := range functional.Select(p, functional.AntiSymWhiteBear) {
		for k := range base {
			f := func(x float64) float64 {
				rho := append([]float64(nil), base...)
				rho[k] = x
				return bulk(c, temperature, rho...)
			}
			rho := make([]num.Dual, len(base))
			for i, v := range base {
				rho[i] = num.Dual{V: v}
			}
			rho[k].D = 1
			got := functional.BulkHelmholtzEnergyDensity(c, num.Dual{V: temperature}, rho)

			want := fd.Derivative(f, base[k], &fd.Settings{Formula: fd.Central, Step: 1e-7})
			assert.InDelta(t, f(base[k]), got.V, 1e-15)
			assert.InEpsilon(t, want, got.D, 1e-6, "%s d/drho_%d", c, k)
		}
	}
}

func TestTemperatureDerivativeMatchesFiniteDifference(t *testing.T) {
	for _, c := range functional.Select(argon(), functional.WhiteBear) {
		const rho = 0.018
		f := func(temperature float64) float64 { return bulk(c, temperature, rho) }
		for _, temperature := range []float64{100, 250} {
			got := functional.BulkHelmholtzEnergyDensity(c, num.Variable(temperature), []num.Dual{{V: rho}})
			want := fd.Derivative(f, temperature, &fd.Settings{Formula: fd.Central, Step: 1e-4})
			assert.InEpsilon(t, want, got.D, 1e-6, "%s T=%g", c, temperature)
		}
	}
}

func TestSecondDensityDerivative(t *testing.T) {
	for _, c := range functional.Select(argon(), functional.WhiteBear) {
		const temperature = 130.0
		first := func(rho float64) float64 {
			return functional.BulkHelmholtzEnergyDensity(c, num.Dual{V: temperature}, []num.Dual{num.Variable(rho)}).D
		}
		const rho = 0.02
		got := functional.BulkHelmholtzEnergyDensity(c, num.Dual2{V: temperature}, []num.Dual2{num.Variable2(rho)})
		assert.InDelta(t, first(rho), got.D1, 1e-12)
		want := fd.Derivative(first, rho, &fd.Settings{Formula: fd.Central, Step: 1e-7})
		assert.InEpsilon(t, want, got.D2, 1e-6, c.String())
	}
}

func TestMixedTemperatureDensityDerivative(t *testing.T) {
	p := ternary(t)
	base := []float64{0.004, 0.007, 0.002}
	for _, c := range functional.Select(p, functional.WhiteBear) {
		// ∂φ/∂ρ_1 as a function of temperature
		dRho := func(temperature float64) float64 {
			rho := make([]num.Dual, len(base))
			for i, v := range base {
				rho[i] = num.Dual{V: v}
			}
			rho[1].D = 1
			return functional.BulkHelmholtzEnergyDensity(c, num.Dual{V: temperature}, rho).D
		}
		const temperature = 180.0
		rho := make([]num.HyperDual, len(base))
		for i, v := range base {
			rho[i] = num.HyperDual{V: v}
		}
		rho[1].E2 = 1
		got := functional.BulkHelmholtzEnergyDensity(c, num.HyperDual{V: temperature, E1: 1}, rho)

		assert.InDelta(t, dRho(temperature), got.E2, 1e-12)
		want := fd.Derivative(dRho, temperature, &fd.Settings{Formula: fd.Central, Step: 1e-4})
		assert.InEpsilon(t, want, got.E12, 1e-6, c.String())
	}
}

func TestInhomogeneousDualMatchesReal(t *testing.T) {
	c := functional.NewHardSphereMixture(argon(), functional.WhiteBear)
	values := [][]float64{{0.02, 0.03}, {0.005, 0.006}, {0.6, 0.8}, {0.3, 0.4}, {0.01, -0.02}, {0.1, -0.2}}
	wdR := make([][]num.Real, len(values))
	wdD := make([][]num.Dual, len(values))
	for i, row := range values {
		wdR[i] = num.Reals(row)
		wdD[i] = num.Lift[num.Dual](row)
	}
	// seed n3 of the second point
	wdD[3][1].D = 1

	plain := functional.HelmholtzEnergyDensity[num.Real](c, 150, wdR)
	dual := functional.HelmholtzEnergyDensity(c, num.Dual{V: 150}, wdD)
	for k := range plain {
		assert.InDelta(t, float64(plain[k]), dual[k].V, 1e-15)
	}
	assert.Equal(t, 0.0, dual[0].D)

	f := func(n3 float64) float64 {
		wd := make([][]num.Real, len(values))
		for i, row := range values {
			wd[i] = num.Reals(row)
		}
		wd[3][1] = num.Real(n3)
		return float64(functional.HelmholtzEnergyDensity[num.Real](c, 150, wd)[1])
	}
	want := fd.Derivative(f, 0.4, &fd.Settings{Formula: fd.Central, Step: 1e-6})
	assert.InEpsilon(t, want, dual[1].D, 1e-6)
}
