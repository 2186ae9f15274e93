// Package parameters holds PeTS molecular parameters and derives the pairwise
// combining-rule matrices every Helmholtz-energy contribution reads.
//
// What & Why:
//
//	A Parameters value is built once from an ordered list of PureRecord values and
//	an n×n matrix of binary corrections k_ij. Construction derives
//
//	  σ_ij    = (σ_i + σ_j) / 2            arithmetic mean
//	  e_k_ij  = sqrt(ε_i/k · ε_j/k)        geometric mean
//	  ε_k_ij  = (1 − k_ij) · e_k_ij
//
//	k_ij is stored exactly as supplied and is not symmetrized. Transport
//	coefficient matrices (viscosity, diffusion, thermal conductivity) follow an
//	all-or-nothing rule: when any component lacks a set, the matrix is absent.
//
// Immutability:
//
//	Nothing is mutated after construction and every accessor returns a copy, so
//	one *Parameters may be read from many goroutines. Subset always builds a new,
//	independent value from the selected records.
//
// Ingestion:
//
//	Records can be constructed in Go, from plain lists (FromLists), or loaded from
//	JSON/YAML files (LoadPureRecords, FromFile) with substance lookup by name,
//	CAS number, InChI, IUPAC name, formula or SMILES.
//
// Complexity:
//
//	FromRecords is O(n²) in the number of components; Subset is O(k²) for k kept
//	components.
package parameters
