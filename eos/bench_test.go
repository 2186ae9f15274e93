package eos_test

import (
	"testing"

	"github.com/katalvlaran/pets/eos"
	"github.com/katalvlaran/pets/num"
	"github.com/katalvlaran/pets/parameters"
)

func benchModel(b *testing.B) (*eos.Pets, []float64) {
	b.Helper()
	p, err := parameters.FromRecords([]parameters.PureRecord{argonRecord, kryptonRecord, nitrogenRecord}, nil)
	if err != nil {
		b.Fatal(err)
	}
	m := eos.New(p)
	x := []float64{0.2, 0.3, 0.5}
	rhoMax := m.ComputeMaxDensity(x)
	rho := make([]float64, len(x))
	for i := range x {
		rho[i] = 0.6 * rhoMax * x[i]
	}

	return m, rho
}

// BenchmarkResidualHelmholtzEnergyDensity measures one plain evaluation of a ternary mixture.
func BenchmarkResidualHelmholtzEnergyDensity(b *testing.B) {
	m, rho := benchModel(b)
	r := num.Reals(rho)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eos.ResidualHelmholtzEnergyDensity(m, num.Real(150), r)
	}
}

// BenchmarkResidualChemicalPotential measures n dual-number passes.
func BenchmarkResidualChemicalPotential(b *testing.B) {
	m, rho := benchModel(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.ResidualChemicalPotential(150, rho)
	}
}

// BenchmarkMixedTemperatureDensityDerivative measures n hyper-dual passes.
func BenchmarkMixedTemperatureDensityDerivative(b *testing.B) {
	m, rho := benchModel(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.MixedTemperatureDensityDerivative(150, rho)
	}
}
