package parameters

import "errors"

// Sentinel errors of the ingestion boundary. Numeric evaluation never returns
// errors; physically meaningless values (negative σ, ...) are not validated.
var (
	// ErrNoRecords is returned when a parameter set is requested for zero components.
	ErrNoRecords = errors.New("parameters: no pure records")

	// ErrBinaryShape indicates a k_ij matrix that is not n×n for n pure records.
	ErrBinaryShape = errors.New("parameters: binary matrix shape does not match pure records")

	// ErrIndexOutOfRange indicates a component index outside [0, n) passed to Subset.
	ErrIndexOutOfRange = errors.New("parameters: component index out of range")

	// ErrListLength indicates per-component lists of different lengths in FromLists.
	ErrListLength = errors.New("parameters: per-component lists differ in length")

	// ErrUnknownSubstance is returned when a requested substance has no record.
	ErrUnknownSubstance = errors.New("parameters: substance not found in records")

	// ErrUnknownIdentifierOption is returned when parsing an unsupported search option.
	ErrUnknownIdentifierOption = errors.New("parameters: unknown identifier option")

	// ErrDecode wraps failures decoding record files.
	ErrDecode = errors.New("parameters: cannot decode records")
)
