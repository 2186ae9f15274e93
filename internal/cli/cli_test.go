package cli

import (
	"bytes"
	"context"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/parameters"
)

const (
	pureFile   = "../../parameters/testdata/pure.json"
	binaryFile = "../../parameters/testdata/binary.yaml"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("pets", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{
		"-pure", pureFile,
		"-binary", binaryFile,
		"-substances", "argon, krypton",
		"-x", "0.25,0.75",
		"-temperature", "150",
		"-density", "0.02",
		"-fmt", "kierlik-rosinberg",
		"-dft",
	})
	require.NoError(t, err)
	assert.Equal(t, pureFile, cfg.PureFile)
	assert.Equal(t, binaryFile, cfg.BinaryFile)
	assert.Equal(t, []string{"argon", "krypton"}, cfg.Substances)
	assert.Equal(t, []float64{0.25, 0.75}, cfg.MoleFraction)
	assert.Equal(t, 150.0, cfg.Temperature)
	assert.Equal(t, 0.02, cfg.Density)
	assert.Equal(t, "kierlik-rosinberg", cfg.FMTVersion)
	assert.Equal(t, "name", cfg.SearchOption)
	assert.Equal(t, 0.5, cfg.MaxEta)
	assert.True(t, cfg.DFT)
	assert.False(t, cfg.Debug)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("PETS_PURE_FILE", pureFile)
	t.Setenv("PETS_SUBSTANCES", "argon,nitrogen")
	t.Setenv("PETS_TEMPERATURE", "120")
	t.Setenv("PETS_MAX_ETA", "0.4")

	cfg, err := ParseConfig(newFlagSet(), []string{"-temperature", "130"})
	require.NoError(t, err)
	assert.Equal(t, pureFile, cfg.PureFile)
	assert.Equal(t, []string{"argon", "nitrogen"}, cfg.Substances)
	assert.Equal(t, 130.0, cfg.Temperature, "flags override the environment")
	assert.Equal(t, 0.4, cfg.MaxEta)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{name: "missing pure", args: []string{"-substances", "argon"}, want: "pure is required"},
		{name: "missing substances", args: []string{"-pure", pureFile}, want: "substances is required"},
		{name: "temperature", args: []string{"-pure", pureFile, "-substances", "argon", "-temperature", "0"}, want: "temperature"},
		{name: "density", args: []string{"-pure", pureFile, "-substances", "argon", "-density", "-1"}, want: "density"},
		{name: "max eta", args: []string{"-pure", pureFile, "-substances", "argon", "-max-eta", "1"}, want: "max-eta"},
		{name: "mole fractions", args: []string{"-pure", pureFile, "-substances", "argon", "-x", "0.5,0.5"}, want: "2 mole fractions for 1 substances"},
		{name: "bad mole fraction", args: []string{"-pure", pureFile, "-substances", "argon", "-x", "half"}, want: "mole fraction"},
		{name: "bad env", env: map[string]string{"PETS_TEMPERATURE": "warm"}, want: "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := ParseConfig(newFlagSet(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func baseConfig() Config {
	return Config{
		PureFile:     pureFile,
		Substances:   []string{"argon"},
		SearchOption: "name",
		FMTVersion:   "WhiteBear",
		Temperature:  300,
		Density:      0.01,
		MaxEta:       0.5,
	}
}

func TestRunReport(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), baseConfig(), &out, zap.New(core)))

	report := out.String()
	assert.Contains(t, report, "PetsParameters(")
	assert.Contains(t, report, "sigma=[3.405]")
	assert.Contains(t, report, "max density")
	assert.Contains(t, report, "0.0241")
	assert.Contains(t, report, "residual chemical potential 1")
	assert.NotContains(t, report, "functional (")

	assert.Equal(t, 1, logs.FilterMessage("parameters loaded").Len())
	assert.Equal(t, 1, logs.FilterMessage("report written").Len())
	assert.Zero(t, logs.FilterMessage("model built").Len(), "debug entries are filtered at info level")
}

func TestRunMixtureWithFunctional(t *testing.T) {
	cfg := baseConfig()
	cfg.BinaryFile = binaryFile
	cfg.Substances = []string{"argon", "krypton"}
	cfg.MoleFraction = []float64{1, 3}
	cfg.FMTVersion = "AntiSymWhiteBear"
	cfg.DFT = true
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, &out, zaptest.NewLogger(t)))

	report := out.String()
	assert.Contains(t, report, "k_ij=")
	assert.Contains(t, report, "residual chemical potential 2")
	assert.Contains(t, report, "functional (AntiSymWhiteBear, Spherical, 1 segment)")
	assert.Contains(t, report, "FMT functional (AntiSymWhiteBear)")
	assert.Contains(t, report, "Dispersion functional")
	assert.Contains(t, report, "pair potential 2 at sigma")
}

func TestRunErrors(t *testing.T) {
	logger := zap.NewNop()

	cfg := baseConfig()
	cfg.Substances = []string{"argon", "xenon"}
	err := run(context.Background(), cfg, io.Discard, logger)
	assert.ErrorIs(t, err, parameters.ErrUnknownSubstance)

	cfg = baseConfig()
	cfg.FMTVersion = "Rosenfeld"
	err = run(context.Background(), cfg, io.Discard, logger)
	assert.ErrorIs(t, err, functional.ErrUnknownFMTVersion)

	cfg = baseConfig()
	cfg.SearchOption = "color"
	err = run(context.Background(), cfg, io.Discard, logger)
	assert.ErrorIs(t, err, parameters.ErrUnknownIdentifierOption)

	cfg = baseConfig()
	cfg.MoleFraction = []float64{0}
	err = run(context.Background(), cfg, io.Discard, logger)
	assert.ErrorContains(t, err, "sum to 0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = run(ctx, baseConfig(), io.Discard, logger)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMoleFractions(t *testing.T) {
	x, err := moleFractions(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, x)

	x, err = moleFractions([]float64{1, 3}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, x, 1e-15)

	_, err = moleFractions([]float64{-1, 2}, 2)
	assert.ErrorContains(t, err, "negative")
	_, err = moleFractions([]float64{1}, 2)
	assert.Error(t, err)
}
