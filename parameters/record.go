package parameters

import (
	"fmt"
	"strings"
)

// Identifier names a substance. Every field is optional.
type Identifier struct {
	Cas       string `json:"cas,omitempty" yaml:"cas,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	IupacName string `json:"iupac_name,omitempty" yaml:"iupac_name,omitempty"`
	Smiles    string `json:"smiles,omitempty" yaml:"smiles,omitempty"`
	Inchi     string `json:"inchi,omitempty" yaml:"inchi,omitempty"`
	Formula   string `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// IdentifierOption selects the Identifier field used for substance lookup.
type IdentifierOption int

const (
	ByName IdentifierOption = iota
	ByCas
	ByInchi
	ByIupacName
	ByFormula
	BySmiles
)

var identifierOptionNames = [...]string{"Name", "Cas", "Inchi", "IupacName", "Formula", "Smiles"}

func (o IdentifierOption) String() string {
	if o < 0 || int(o) >= len(identifierOptionNames) {
		return fmt.Sprintf("IdentifierOption(%d)", int(o))
	}

	return identifierOptionNames[o]
}

// ParseIdentifierOption parses the case-insensitive option name ("name", "cas", ...).
func ParseIdentifierOption(s string) (IdentifierOption, error) {
	for i, n := range identifierOptionNames {
		if strings.EqualFold(s, n) {
			return IdentifierOption(i), nil
		}
	}

	return ByName, fmt.Errorf("%q: %w", s, ErrUnknownIdentifierOption)
}

// Lookup returns the identifier field selected by opt.
func (id Identifier) Lookup(opt IdentifierOption) string {
	switch opt {
	case ByCas:
		return id.Cas
	case ByInchi:
		return id.Inchi
	case ByIupacName:
		return id.IupacName
	case ByFormula:
		return id.Formula
	case BySmiles:
		return id.Smiles
	default:
		return id.Name
	}
}

// PetsRecord carries the PeTS model parameters of one substance.
type PetsRecord struct {
	// Sigma is the segment diameter in Angstrom.
	Sigma float64 `json:"sigma" yaml:"sigma"`
	// EpsilonK is the energy parameter ε/k in Kelvin.
	EpsilonK float64 `json:"epsilon_k" yaml:"epsilon_k"`
	// Viscosity holds entropy-scaling coefficients for viscosity.
	Viscosity *[4]float64 `json:"viscosity,omitempty" yaml:"viscosity,omitempty"`
	// Diffusion holds entropy-scaling coefficients for self-diffusion.
	Diffusion *[5]float64 `json:"diffusion,omitempty" yaml:"diffusion,omitempty"`
	// ThermalConductivity holds entropy-scaling coefficients for thermal conductivity.
	ThermalConductivity *[4]float64 `json:"thermal_conductivity,omitempty" yaml:"thermal_conductivity,omitempty"`
}

// String renders the record as PetsRecord(sigma=..., epsilon_k=...[, ...]).
func (r PetsRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "PetsRecord(sigma=%v, epsilon_k=%v", r.Sigma, r.EpsilonK)
	if r.Viscosity != nil {
		fmt.Fprintf(&b, ", viscosity=%v", *r.Viscosity)
	}
	if r.Diffusion != nil {
		fmt.Fprintf(&b, ", diffusion=%v", *r.Diffusion)
	}
	if r.ThermalConductivity != nil {
		fmt.Fprintf(&b, ", thermal_conductivity=%v", *r.ThermalConductivity)
	}
	b.WriteString(")")

	return b.String()
}

// IdealGasRecord is the record of the external ideal-gas model (Joback group
// contribution coefficients). It is carried through parameter sets untouched.
type IdealGasRecord struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
	C float64 `json:"c" yaml:"c"`
	D float64 `json:"d" yaml:"d"`
	E float64 `json:"e" yaml:"e"`
}

// PureRecord bundles everything known about one substance.
type PureRecord struct {
	Identifier     Identifier      `json:"identifier" yaml:"identifier"`
	MolarWeight    float64         `json:"molarweight" yaml:"molarweight"`
	ModelRecord    PetsRecord      `json:"model_record" yaml:"model_record"`
	IdealGasRecord *IdealGasRecord `json:"ideal_gas_record,omitempty" yaml:"ideal_gas_record,omitempty"`
}

// NewPureRecord returns a record without ideal-gas data.
func NewPureRecord(id Identifier, molarWeight float64, model PetsRecord) PureRecord {
	return PureRecord{Identifier: id, MolarWeight: molarWeight, ModelRecord: model}
}

// clone returns a copy that shares no pointers with r.
func (r PureRecord) clone() PureRecord {
	out := r
	m := &out.ModelRecord
	if m.Viscosity != nil {
		v := *m.Viscosity
		m.Viscosity = &v
	}
	if m.Diffusion != nil {
		v := *m.Diffusion
		m.Diffusion = &v
	}
	if m.ThermalConductivity != nil {
		v := *m.ThermalConductivity
		m.ThermalConductivity = &v
	}
	if r.IdealGasRecord != nil {
		ig := *r.IdealGasRecord
		out.IdealGasRecord = &ig
	}

	return out
}

// BinaryRecord is the binary correction of one ordered component pair.
type BinaryRecord struct {
	KIJ float64 `json:"k_ij" yaml:"k_ij"`
}

// BinarySubstanceRecord stores a BinaryRecord keyed by the two substances'
// identifier strings (matched with an IdentifierOption at load time).
type BinarySubstanceRecord struct {
	ID1         string       `json:"id1" yaml:"id1"`
	ID2         string       `json:"id2" yaml:"id2"`
	ModelRecord BinaryRecord `json:"model_record" yaml:"model_record"`
}
