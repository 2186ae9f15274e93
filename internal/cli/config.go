package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of one report run. Every field can be set from
// the environment; command-line flags take precedence.
type Config struct {
	PureFile     string    `env:"PETS_PURE_FILE"`
	BinaryFile   string    `env:"PETS_BINARY_FILE"`
	Substances   []string  `env:"PETS_SUBSTANCES" envSeparator:","`
	SearchOption string    `env:"PETS_SEARCH_OPTION" envDefault:"name"`
	FMTVersion   string    `env:"PETS_FMT_VERSION" envDefault:"WhiteBear"`
	Temperature  float64   `env:"PETS_TEMPERATURE" envDefault:"300"`
	Density      float64   `env:"PETS_DENSITY" envDefault:"0.01"`
	MoleFraction []float64 `env:"PETS_MOLE_FRACTION" envSeparator:","`
	MaxEta       float64   `env:"PETS_MAX_ETA" envDefault:"0.5"`
	DFT          bool      `env:"PETS_DFT"`
	Debug        bool      `env:"PETS_DEBUG"`
}

// ParseConfig reads environment defaults and then parses CLI flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.PureFile, "pure", cfg.PureFile, "pure-substance record file (JSON or YAML)")
	fs.StringVar(&cfg.BinaryFile, "binary", cfg.BinaryFile, "optional binary k_ij record file")
	fs.Func("substances", "comma-separated substances to select", func(s string) error {
		cfg.Substances = splitList(s)
		return nil
	})
	fs.StringVar(&cfg.SearchOption, "search", cfg.SearchOption, "identifier used to match substances (name, cas, inchi, iupacname, formula, smiles)")
	fs.StringVar(&cfg.FMTVersion, "fmt", cfg.FMTVersion, "hard-sphere functional (WhiteBear, KierlikRosinberg, AntiSymWhiteBear)")
	fs.Float64Var(&cfg.Temperature, "temperature", cfg.Temperature, "temperature in K")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "total number density in 1/Å³")
	fs.Func("x", "comma-separated mole fractions (default equimolar)", func(s string) error {
		x, err := parseFloats(s)
		if err != nil {
			return err
		}
		cfg.MoleFraction = x
		return nil
	})
	fs.Float64Var(&cfg.MaxEta, "max-eta", cfg.MaxEta, "packing fraction used for the maximum density")
	fs.BoolVar(&cfg.DFT, "dft", cfg.DFT, "also describe the density functional")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "development logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	if strings.TrimSpace(cfg.PureFile) == "" {
		return errors.New("pure is required")
	}
	if len(cfg.Substances) == 0 {
		return errors.New("substances is required")
	}
	if !(cfg.Temperature > 0) {
		return fmt.Errorf("temperature must be positive, got %g", cfg.Temperature)
	}
	if !(cfg.Density > 0) {
		return fmt.Errorf("density must be positive, got %g", cfg.Density)
	}
	if !(cfg.MaxEta > 0 && cfg.MaxEta < 1) {
		return fmt.Errorf("max-eta must be in (0,1), got %g", cfg.MaxEta)
	}
	if n := len(cfg.MoleFraction); n > 0 && n != len(cfg.Substances) {
		return fmt.Errorf("%d mole fractions for %d substances", n, len(cfg.Substances))
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func parseFloats(s string) ([]float64, error) {
	parts := splitList(s)
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("mole fraction %q: %w", p, err)
		}
		out[i] = v
	}

	return out, nil
}
