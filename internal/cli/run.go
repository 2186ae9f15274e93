package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pets/dft"
	"github.com/katalvlaran/pets/eos"
	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/num"
	"github.com/katalvlaran/pets/parameters"
)

// Boltzmann constant in J/K.
const kB = 1.380649e-23

// Run loads the selected substances, builds the model and writes a property
// report of the configured state to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return run(ctx, cfg, out, logger)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	opt, err := parameters.ParseIdentifierOption(cfg.SearchOption)
	if err != nil {
		return err
	}
	version, err := functional.ParseFMTVersion(cfg.FMTVersion)
	if err != nil {
		return err
	}

	p, err := parameters.FromFile(cfg.PureFile, cfg.BinaryFile, cfg.Substances, opt)
	if err != nil {
		return fmt.Errorf("load parameters: %w", err)
	}
	logger.Info("parameters loaded",
		zap.String("pure", cfg.PureFile),
		zap.String("binary", cfg.BinaryFile),
		zap.Strings("substances", cfg.Substances),
		zap.Stringer("search", opt),
	)

	x, err := moleFractions(cfg.MoleFraction, p.Len())
	if err != nil {
		return err
	}
	rho := make([]float64, len(x))
	floats.ScaleTo(rho, cfg.Density, x)

	if err := ctx.Err(); err != nil {
		return err
	}

	opts := []eos.Option{eos.WithMaxEta(cfg.MaxEta), eos.WithFMTVersion(version)}
	model := eos.New(p, opts...)
	names := make([]string, len(model.Contributions()))
	for i, c := range model.Contributions() {
		names[i] = c.String()
	}
	logger.Debug("model built",
		zap.Int("components", model.Components()),
		zap.Strings("contributions", names),
		zap.Stringer("ideal_gas", model.IdealGas()),
	)

	if _, err := fmt.Fprintf(out, "%s\n\n", p); err != nil {
		return err
	}
	if err := writeState(out, model, cfg.Temperature, x, rho); err != nil {
		return err
	}

	if cfg.DFT {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeFunctional(out, dft.New(p, opts...), cfg.Temperature); err != nil {
			return err
		}
	}
	logger.Info("report written", zap.Float64("temperature", cfg.Temperature), zap.Float64("density", cfg.Density))

	return nil
}

// moleFractions normalizes x, or returns the equimolar composition when x is empty.
func moleFractions(x []float64, n int) ([]float64, error) {
	if len(x) == 0 {
		out := make([]float64, n)
		for i := range out {
			out[i] = 1 / float64(n)
		}
		return out, nil
	}
	if len(x) != n {
		return nil, fmt.Errorf("%d mole fractions for %d components", len(x), n)
	}
	if floats.Min(x) < 0 {
		return nil, fmt.Errorf("negative mole fraction in %v", x)
	}
	sum := floats.Sum(x)
	if !(sum > 0) {
		return nil, fmt.Errorf("mole fractions sum to %g", sum)
	}
	out := make([]float64, n)
	floats.ScaleTo(out, 1/sum, x)

	return out, nil
}

func writeState(out io.Writer, m *eos.Pets, temperature float64, x, rho []float64) error {
	total := floats.Sum(rho)
	mu := m.ResidualChemicalPotential(temperature, rho)
	betaP := m.Pressure(temperature, rho)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "temperature\t%g\tK\n", temperature)
	fmt.Fprintf(tw, "density\t%g\t1/Å³\n", total)
	fmt.Fprintf(tw, "max density\t%g\t1/Å³\n", m.ComputeMaxDensity(x))
	fmt.Fprintf(tw, "pressure\t%.6g\tMPa\n", betaP*kB*temperature*1e30*1e-6)
	fmt.Fprintf(tw, "compressibility factor\t%.6g\t\n", betaP/total)
	fmt.Fprintf(tw, "residual helmholtz energy\t%.6g\tkT per particle\n", residualHelmholtz(m, temperature, rho)/total)
	fmt.Fprintf(tw, "residual entropy\t%.6g\tk per particle\n", m.ResidualEntropyDensity(temperature, rho)/total)
	fmt.Fprintf(tw, "dp_res/drho\t%.6g\tkT\n", m.ResidualPressureDensityDerivative(temperature, rho))
	for i, v := range mu {
		fmt.Fprintf(tw, "residual chemical potential %d\t%.6g\tkT\n", i+1, v)
	}

	return tw.Flush()
}

func residualHelmholtz(m *eos.Pets, temperature float64, rho []float64) float64 {
	return float64(eos.ResidualHelmholtzEnergyDensity(m, num.Real(temperature), num.Reals(rho)))
}

func writeFunctional(out io.Writer, f *dft.Functional, temperature float64) error {
	shape := f.MoleculeShape()
	if _, err := fmt.Fprintf(out, "\nfunctional (%s, %s, %d segment)\n", f.FMTVersion(), shape.Kind, shape.Segments); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	infos := dft.WeightFunctions(f, num.Real(temperature))
	for i, c := range f.Contributions() {
		fmt.Fprintf(tw, "%s\t%d weighted densities\n", c, infos[i].Rows())
	}
	sigma := f.SigmaFF()
	for i, u := range f.PairPotential(sigma) {
		parts := make([]string, len(u))
		for j, v := range u {
			parts[j] = fmt.Sprintf("%.4g", v)
		}
		fmt.Fprintf(tw, "pair potential %d at sigma\t[%s]\tK\n", i+1, strings.Join(parts, ", "))
	}

	return tw.Flush()
}
