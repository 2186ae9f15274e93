package eos

import (
	"fmt"

	"github.com/katalvlaran/pets/functional"
	"github.com/katalvlaran/pets/idealgas"
)

// DefaultMaxEta is the packing fraction used by ComputeMaxDensity unless overridden.
const DefaultMaxEta = 0.5

// Options are the fixed settings of a model.
type Options struct {
	// MaxEta is the largest packing fraction ComputeMaxDensity allows for.
	// It is advisory; evaluation beyond it is not prevented.
	MaxEta float64
	// FMTVersion is the hard-sphere closure.
	FMTVersion functional.FMTVersion
}

// DefaultOptions returns MaxEta 0.5 and the White Bear functional.
func DefaultOptions() Options {
	return Options{MaxEta: DefaultMaxEta, FMTVersion: functional.WhiteBear}
}

type config struct {
	Options
	idealGas idealgas.Contribution
}

// Option configures a model before creation.
type Option func(*config)

// WithMaxEta sets the maximum packing fraction.
// Panics unless 0 < eta < 1.
func WithMaxEta(eta float64) Option {
	if !(eta > 0 && eta < 1) {
		panic(fmt.Sprintf("WithMaxEta: eta must be in (0,1), got %g", eta))
	}

	return func(c *config) { c.MaxEta = eta }
}

// WithFMTVersion selects the hard-sphere closure.
// Panics on a value outside the defined versions.
func WithFMTVersion(version functional.FMTVersion) Option {
	if _, err := version.MarshalText(); err != nil {
		panic(fmt.Sprintf("WithFMTVersion: %v", err))
	}

	return func(c *config) { c.FMTVersion = version }
}

// WithIdealGas replaces the default monatomic ideal gas. The contribution
// must describe the same components, in the same order, as the parameters.
func WithIdealGas(ig idealgas.Contribution) Option {
	return func(c *config) { c.idealGas = ig }
}

// WithOptions applies a complete Options value.
func WithOptions(o Options) Option {
	return func(c *config) { c.Options = o }
}
