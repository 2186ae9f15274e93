package parameters

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pets/matrix"
)

// listConfig collects the optional per-component lists of FromLists.
type listConfig struct {
	kij                 *matrix.Dense
	molarWeight         []float64
	viscosity           [][4]float64
	diffusion           [][5]float64
	thermalConductivity [][4]float64
}

// ListOption configures FromLists / FromListsPure.
type ListOption func(*listConfig)

// WithKIJ sets the binary correction matrix (default: all zeros).
func WithKIJ(kij *matrix.Dense) ListOption {
	return func(c *listConfig) { c.kij = kij }
}

// WithMolarWeight sets molar weights in g/mol (default: 1 for every component).
// Supplying the option counts even with no values; its length is then checked.
func WithMolarWeight(mw ...float64) ListOption {
	mw = append([]float64{}, mw...)

	return func(c *listConfig) { c.molarWeight = mw }
}

// WithViscosity sets one viscosity coefficient set per component.
func WithViscosity(v ...[4]float64) ListOption {
	v = append([][4]float64{}, v...)

	return func(c *listConfig) { c.viscosity = v }
}

// WithDiffusion sets one self-diffusion coefficient set per component.
func WithDiffusion(v ...[5]float64) ListOption {
	v = append([][5]float64{}, v...)

	return func(c *listConfig) { c.diffusion = v }
}

// WithThermalConductivity sets one thermal-conductivity coefficient set per component.
func WithThermalConductivity(v ...[4]float64) ListOption {
	v = append([][4]float64{}, v...)

	return func(c *listConfig) { c.thermalConductivity = v }
}

// FromLists builds a parameter set from plain per-component lists. Records get
// a synthetic CAS identifier equal to the component index ("0", "1", ...).
//
// Errors: ErrNoRecords, ErrListLength when any supplied list is not len(sigma)
// long, ErrBinaryShape for a mis-shaped k_ij.
func FromLists(sigma, epsilonK []float64, opts ...ListOption) (*Parameters, error) {
	return fromLists(sigma, epsilonK, func(i int) string { return strconv.Itoa(i) }, opts)
}

// FromListsPure builds a one-component parameter set; the record's CAS
// identifier is "1".
func FromListsPure(sigma, epsilonK float64, opts ...ListOption) (*Parameters, error) {
	return fromLists([]float64{sigma}, []float64{epsilonK}, func(int) string { return "1" }, opts)
}

func fromLists(sigma, epsilonK []float64, id func(int) string, opts []ListOption) (*Parameters, error) {
	var cfg listConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(sigma)
	if n == 0 {
		return nil, ErrNoRecords
	}
	lengths := []struct {
		name string
		l    int
		set  bool
	}{
		{"epsilon_k", len(epsilonK), true},
		{"molarweight", len(cfg.molarWeight), cfg.molarWeight != nil},
		{"viscosity", len(cfg.viscosity), cfg.viscosity != nil},
		{"diffusion", len(cfg.diffusion), cfg.diffusion != nil},
		{"thermal_conductivity", len(cfg.thermalConductivity), cfg.thermalConductivity != nil},
	}
	for _, c := range lengths {
		if c.set && c.l != n {
			return nil, fmt.Errorf("%s has %d entries, sigma has %d: %w", c.name, c.l, n, ErrListLength)
		}
	}

	records := make([]PureRecord, n)
	for i := range records {
		model := PetsRecord{Sigma: sigma[i], EpsilonK: epsilonK[i]}
		if cfg.viscosity != nil {
			v := cfg.viscosity[i]
			model.Viscosity = &v
		}
		if cfg.diffusion != nil {
			v := cfg.diffusion[i]
			model.Diffusion = &v
		}
		if cfg.thermalConductivity != nil {
			v := cfg.thermalConductivity[i]
			model.ThermalConductivity = &v
		}
		mw := 1.0
		if cfg.molarWeight != nil {
			mw = cfg.molarWeight[i]
		}
		records[i] = NewPureRecord(Identifier{Cas: id(i)}, mw, model)
	}

	return FromRecords(records, cfg.kij)
}
