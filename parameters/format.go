package parameters

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pets/matrix"
)

const (
	markdownHeader = "|component|molarweight|$\\sigma$|$\\varepsilon$|\n|-|-|-|-|"
	markdownRow    = "\n|%s|%v|%v|%v|"
)

// String renders the set as
//
//	PetsParameters(
//		molarweight=[...]
//		sigma=[...]
//		epsilon_k=[...]
//		k_ij=
//	[...]
//	)
//
// The k_ij block is printed only when some |k_ij| exceeds matrix.DefaultEpsilon.
func (p *Parameters) String() string {
	var b strings.Builder
	b.WriteString("PetsParameters(")
	fmt.Fprintf(&b, "\n\tmolarweight=%s", formatList(p.molarWeight))
	fmt.Fprintf(&b, "\n\tsigma=%s", formatList(p.sigma))
	fmt.Fprintf(&b, "\n\tepsilon_k=%s", formatList(p.epsilonK))
	if zero, _ := matrix.IsZero(p.kij, matrix.DefaultEpsilon); !zero {
		fmt.Fprintf(&b, "\n\tk_ij=\n%s", strings.TrimSuffix(p.kij.String(), "\n"))
	}
	b.WriteString("\n)")

	return b.String()
}

// Markdown renders one table row per component. Components without a name
// are labelled "Component 1", "Component 2", ...
func (p *Parameters) Markdown() string {
	var b strings.Builder
	b.WriteString(markdownHeader)
	for i, r := range p.pureRecords {
		name := r.Identifier.Name
		if name == "" {
			name = fmt.Sprintf("Component %d", i+1)
		}
		fmt.Fprintf(&b, markdownRow, name, p.molarWeight[i], p.sigma[i], p.epsilonK[i])
	}

	return b.String()
}

func formatList(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%v", x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
