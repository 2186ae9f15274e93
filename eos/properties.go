package eos

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/idealgas"
	"github.com/katalvlaran/pets/num"
)

// StateHD is a thermodynamic state in any number type: temperature (K),
// volume (Å³) and amounts (number of particles).
type StateHD[T num.Number[T]] struct {
	Temperature T
	Volume      T
	Moles       []T
}

// Density returns the partial densities n_i/V.
func (s StateHD[T]) Density() []T {
	rho := make([]T, len(s.Moles))
	for i, n := range s.Moles {
		rho[i] = n.Div(s.Volume)
	}

	return rho
}

// ResidualHelmholtzEnergyDensity returns βf_res, the sum of all residual
// contributions, for the partial densities rho (1/Å³).
func ResidualHelmholtzEnergyDensity[T num.Number[T]](m *Pets, temperature T, rho []T) T {
	f := num.Zero[T]()
	for _, c := range m.contributions {
		f = f.Add(functional.BulkHelmholtzEnergyDensity(c, temperature, rho))
	}

	return f
}

// ResidualHelmholtzEnergy returns βA_res = V · βf_res(T, n/V).
func ResidualHelmholtzEnergy[T num.Number[T]](m *Pets, s StateHD[T]) T {
	return ResidualHelmholtzEnergyDensity(m, s.Temperature, s.Density()).Mul(s.Volume)
}

// ResidualChemicalPotential returns βμ_i^res = ∂(βf_res)/∂ρ_i for every component.
func (m *Pets) ResidualChemicalPotential(temperature float64, rho []float64) []float64 {
	t := num.Dual{V: temperature}
	out := make([]float64, len(rho))
	seeded := make([]num.Dual, len(rho))
	for k := range rho {
		for i, r := range rho {
			seeded[i] = num.Dual{V: r}
		}
		seeded[k].D = 1
		out[k] = ResidualHelmholtzEnergyDensity(m, t, seeded).D
	}

	return out
}

// ResidualPressure returns βp_res = Σ ρ_i βμ_i^res − βf_res in 1/Å³.
func (m *Pets) ResidualPressure(temperature float64, rho []float64) float64 {
	f, df := m.scaled(temperature, rho)

	return df - f
}

// Pressure returns the total reduced pressure βp = Σρ_i + βp_res in 1/Å³.
func (m *Pets) Pressure(temperature float64, rho []float64) float64 {
	return floats.Sum(rho) + m.ResidualPressure(temperature, rho)
}

// scaled evaluates g(t) = βf_res(t·ρ) and g'(1) = Σ ρ_i βμ_i^res in one pass.
func (m *Pets) scaled(temperature float64, rho []float64) (float64, float64) {
	d := make([]num.Dual, len(rho))
	for i, r := range rho {
		d[i] = num.Dual{V: r, D: r}
	}
	g := ResidualHelmholtzEnergyDensity(m, num.Dual{V: temperature}, d)

	return g.V, g.D
}

// ResidualEntropyDensity returns s_res/k = −∂(T βf_res)/∂T at constant
// density, in 1/Å³.
func (m *Pets) ResidualEntropyDensity(temperature float64, rho []float64) float64 {
	t := num.Variable(temperature)
	f := ResidualHelmholtzEnergyDensity(m, t, num.Lift[num.Dual](rho)).Mul(t)

	return -f.D
}

// ResidualPressureDensityDerivative returns ∂(βp_res)/∂ρ along the line of
// constant composition, ρ being the total density. With g(t) = βf_res(t·ρ),
// βp_res(t) = t g'(t) − g(t), so the derivative is g''(1)/ρ.
func (m *Pets) ResidualPressureDensityDerivative(temperature float64, rho []float64) float64 {
	d := make([]num.Dual2, len(rho))
	for i, r := range rho {
		d[i] = num.Dual2{V: r, D1: r}
	}
	g := ResidualHelmholtzEnergyDensity(m, num.Dual2{V: temperature}, d)

	return g.D2 / floats.Sum(rho)
}

// MixedTemperatureDensityDerivative returns ∂²(βf_res)/∂T∂ρ_i, the temperature
// derivative of βμ_i^res, for every component.
func (m *Pets) MixedTemperatureDensityDerivative(temperature float64, rho []float64) []float64 {
	t := num.HyperDual{V: temperature, E1: 1}
	out := make([]float64, len(rho))
	seeded := make([]num.HyperDual, len(rho))
	for k := range rho {
		for i, r := range rho {
			seeded[i] = num.HyperDual{V: r}
		}
		seeded[k].E2 = 1
		out[k] = ResidualHelmholtzEnergyDensity(m, t, seeded).E12
	}

	return out
}

// HelmholtzEnergyDensity returns the total βf = βf_id + βf_res.
func (m *Pets) HelmholtzEnergyDensity(temperature float64, rho []float64) float64 {
	res := ResidualHelmholtzEnergyDensity(m, num.Real(temperature), num.Reals(rho))

	return idealgas.HelmholtzEnergyDensity(m.idealGas, temperature, rho) + float64(res)
}
