package parameters

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pets/matrix"
)

// ReadPureRecords decodes a list of pure records. JSON input is accepted as
// the YAML subset it is.
func ReadPureRecords(r io.Reader) ([]PureRecord, error) {
	var records []PureRecord
	if err := decode(r, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// LoadPureRecords reads pure records from the file at path.
func LoadPureRecords(path string) ([]PureRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parameters: open pure records: %w", err)
	}
	defer f.Close()

	records, err := ReadPureRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// ReadBinaryRecords decodes a list of binary records keyed by substance
// identifiers. An empty document yields no records.
func ReadBinaryRecords(r io.Reader) ([]BinarySubstanceRecord, error) {
	var records []BinarySubstanceRecord
	if err := decode(r, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// LoadBinaryRecords reads binary records from the file at path.
func LoadBinaryRecords(path string) ([]BinarySubstanceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parameters: open binary records: %w", err)
	}
	defer f.Close()

	records, err := ReadBinaryRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

func decode(r io.Reader, out any) error {
	err := yaml.NewDecoder(r).Decode(out)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrDecode, err)
}

// SelectRecords picks the records of the named substances, in the order given,
// matching each name against the identifier field selected by opt. A nil or
// empty substance list selects every record in file order.
//
// Errors: ErrUnknownSubstance listing every name without a record.
func SelectRecords(records []PureRecord, substances []string, opt IdentifierOption) ([]PureRecord, error) {
	if len(substances) == 0 {
		out := make([]PureRecord, len(records))
		copy(out, records)

		return out, nil
	}

	index := make(map[string]int, len(records))
	for i, r := range records {
		key := r.Identifier.Lookup(opt)
		if _, seen := index[key]; key != "" && !seen {
			index[key] = i
		}
	}

	out := make([]PureRecord, 0, len(substances))
	var missing []string
	for _, s := range substances {
		i, ok := index[s]
		if !ok {
			missing = append(missing, s)
			continue
		}
		out = append(out, records[i])
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s by %s: %w", strings.Join(missing, ", "), opt, ErrUnknownSubstance)
	}

	return out, nil
}

// BinaryMatrix assembles the n×n k_ij matrix for the given pure records.
// A record (id1, id2) fills [i,j] and mirrors into [j,i] unless the reverse
// pair is listed explicitly. Records naming other substances are ignored;
// missing pairs stay 0.
func BinaryMatrix(binary []BinarySubstanceRecord, pure []PureRecord, opt IdentifierOption) *matrix.Dense {
	n := len(pure)
	kij, _ := matrix.NewDenseWithPolicy(n, n, false)
	index := make(map[string]int, n)
	for i, r := range pure {
		if key := r.Identifier.Lookup(opt); key != "" {
			index[key] = i
		}
	}

	type pair struct{ i, j int }
	var explicit []pair
	var values []float64
	for _, br := range binary {
		i, ok1 := index[br.ID1]
		j, ok2 := index[br.ID2]
		if !ok1 || !ok2 {
			continue
		}
		explicit = append(explicit, pair{i, j})
		values = append(values, br.ModelRecord.KIJ)
		_ = kij.Set(j, i, br.ModelRecord.KIJ)
	}
	for k, p := range explicit {
		_ = kij.Set(p.i, p.j, values[k])
	}

	return kij
}

// FromFile loads pure (and optionally binary) records and builds the parameter
// set of the named substances. An empty binaryFile means no corrections.
func FromFile(pureFile, binaryFile string, substances []string, opt IdentifierOption) (*Parameters, error) {
	all, err := LoadPureRecords(pureFile)
	if err != nil {
		return nil, err
	}
	pure, err := SelectRecords(all, substances, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pureFile, err)
	}

	var kij *matrix.Dense
	if binaryFile != "" {
		binary, err := LoadBinaryRecords(binaryFile)
		if err != nil {
			return nil, err
		}
		kij = BinaryMatrix(binary, pure, opt)
	}

	return FromRecords(pure, kij)
}
