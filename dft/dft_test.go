package dft_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pets/dft"
	"github.com/katalvlaran/pets/eos"
	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/num"
	"github.com/katalvlaran/pets/parameters"
)

var (
	argonRecord = parameters.NewPureRecord(
		parameters.Identifier{Name: "argon"}, 39.948,
		parameters.PetsRecord{Sigma: 3.4050, EpsilonK: 119.8},
	)
	kryptonRecord = parameters.NewPureRecord(
		parameters.Identifier{Name: "krypton"}, 83.798,
		parameters.PetsRecord{Sigma: 3.6300, EpsilonK: 163.10},
	)
)

func argonKrypton() *parameters.Parameters {
	return parameters.NewBinary([2]parameters.PureRecord{argonRecord, kryptonRecord}, 0.01)
}

func TestNewSelectsContributions(t *testing.T) {
	f := dft.New(parameters.NewPure(argonRecord))
	assert.Equal(t, functional.WhiteBear, f.FMTVersion())
	assert.IsType(t, &functional.HardSpherePure{}, f.Contributions()[0])
	assert.IsType(t, &functional.DispersionPure{}, f.Contributions()[1])

	kr := dft.NewFull(parameters.NewPure(argonRecord), functional.KierlikRosinberg)
	assert.Equal(t, functional.KierlikRosinberg, kr.FMTVersion())
	assert.IsType(t, &functional.HardSphereMixture{}, kr.Contributions()[0])

	mix := dft.NewFull(argonKrypton(), functional.AntiSymWhiteBear, eos.WithFMTVersion(functional.KierlikRosinberg))
	assert.Equal(t, functional.AntiSymWhiteBear, mix.FMTVersion(), "explicit version wins")
	assert.IsType(t, &functional.HardSphereMixture{}, mix.Contributions()[0])
}

func TestFluidParameters(t *testing.T) {
	f := dft.New(argonKrypton())
	assert.Equal(t, dft.MoleculeShape{Kind: dft.Spherical, Segments: 1}, f.MoleculeShape())
	assert.Equal(t, "Spherical", f.MoleculeShape().Kind.String())
	assert.Equal(t, []float64{1, 1}, f.M())
	assert.Equal(t, []float64{119.8, 163.10}, f.EpsilonKFF())
	assert.Equal(t, []float64{3.4050, 3.6300}, f.SigmaFF())
	assert.Equal(t, []float64{39.948, 83.798}, f.MolarWeight())
}

func TestPairPotential(t *testing.T) {
	f := dft.New(parameters.NewPure(argonRecord))
	u := f.PairPotential([]float64{3.4050, 8.6, 12})
	require.Len(t, u, 1)

	shift := 4 * 119.8 * (math.Pow(2.5, -12) - math.Pow(2.5, -6))
	assert.InDelta(t, -shift, u[0][0], 1e-12)
	assert.Equal(t, 0.0, u[0][1])
	assert.Equal(t, 0.0, u[0][2])
}

func TestComputeMaxDensity(t *testing.T) {
	f := dft.New(parameters.NewPure(argonRecord), eos.WithMaxEta(0.5))
	want := 0.5 / (math.Pi / 6 * math.Pow(3.4050, 3))
	assert.InEpsilon(t, want, f.ComputeMaxDensity([]float64{1}), 1e-14)
}

func TestSubset(t *testing.T) {
	f := dft.NewFull(argonKrypton(), functional.AntiSymWhiteBear, eos.WithMaxEta(0.3))
	sub, err := f.Subset([]int{1})
	require.NoError(t, err)

	assert.Equal(t, functional.AntiSymWhiteBear, sub.FMTVersion())
	assert.Equal(t, 0.3, sub.Options().MaxEta)
	assert.IsType(t, &functional.HardSpherePure{}, sub.Contributions()[0])
	assert.Equal(t, []float64{3.6300}, sub.SigmaFF())
	assert.Len(t, sub.PairPotential([]float64{4}), 1)

	_, err = f.Subset([]int{5})
	assert.ErrorIs(t, err, parameters.ErrIndexOutOfRange)
}

func TestHelmholtzEnergyDensityInBulk(t *testing.T) {
	f := dft.New(argonKrypton())
	temperature := num.Real(150)
	density := num.Reals([]float64{0.008, 0.006})

	weights := dft.WeightFunctions(f, temperature)
	require.Len(t, weights, 2)
	weighted := make([][][]num.Real, len(weights))
	for k, w := range weights {
		wd := w.BulkWeightedDensities(density)
		weighted[k] = make([][]num.Real, len(wd))
		for r, v := range wd {
			// two identical points
			weighted[k][r] = []num.Real{v, v}
		}
	}

	phi := dft.HelmholtzEnergyDensity(f, temperature, weighted)
	require.Len(t, phi, 2)
	want := eos.ResidualHelmholtzEnergyDensity(f.Pets, temperature, density)
	assert.InEpsilon(t, float64(want), float64(phi[0]), 1e-12)
	assert.Equal(t, phi[0], phi[1])
}

func TestHelmholtzEnergyDensityPanicsOnMissingSets(t *testing.T) {
	f := dft.New(parameters.NewPure(argonRecord))
	assert.Panics(t, func() {
		dft.HelmholtzEnergyDensity(f, num.Real(100), [][][]num.Real{{{0.1}, {0.01}, {0}}})
	})
}
