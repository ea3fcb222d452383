// Package alignmap maps the residues of one target sequence onto the
// columns of its row in a reference multiple-sequence alignment.
//
// Domain-local residue indices and alignment-column indices are distinct
// index spaces; this package is the only place they are converted.
package alignmap

import (
	"fmt"
	"log"
	"strings"
)

// SeedLength is the number of N-terminal residues matched as a contiguous
// substring to locate the sequence inside its gapped alignment row.
const SeedLength = 15

// Gap is the alignment gap character.
const Gap = '-'

// Column is the alignment position of one residue. Mapped is false for
// residues marked as truncated, which hold no valid column.
type Column struct {
	Index  int
	Mapped bool
}

// Map gives, for each domain-local residue of one target sequence, its
// alignment-column index. Immutable after construction.
type Map struct {
	columns []Column
}

// UnmappableError reports a sequence that could not be located in the
// reference alignment. Callers skip or flag the sequence; the batch
// continues.
type UnmappableError struct {
	Name   string
	Reason string
}

func (e *UnmappableError) Error() string {
	return fmt.Sprintf("sequence %q cannot be mapped to the alignment: %s", e.Name, e.Reason)
}

// FindStart locates the first SeedLength residues of seq as a contiguous
// substring of the gapped row and returns the gapped column index of the
// first matched residue.
func FindStart(row, seq string) (int, error) {
	seed := seq
	if len(seed) > SeedLength {
		seed = seed[:SeedLength]
	}
	// De-gap the row while remembering each retained column's index.
	var plain strings.Builder
	cols := make([]int, 0, len(row))
	for i := 0; i < len(row); i++ {
		if row[i] == Gap {
			continue
		}
		plain.WriteByte(row[i])
		cols = append(cols, i)
	}
	at := strings.Index(plain.String(), seed)
	if at < 0 {
		return 0, fmt.Errorf("seed %q not found in alignment row", seed)
	}
	return cols[at], nil
}

// Options adjust Build.
type Options struct {
	// StartColumn, when non-nil, skips the seed search and walks from the
	// given column.
	StartColumn *int
	// Truncated marks residues without a valid column; they are assigned
	// an unmapped Column and consume no alignment column.
	Truncated []bool
}

// Build aligns seq to the named row of the alignment and returns the full
// per-residue column mapping. The walk matches each sequence residue in
// order, skipping gap columns and advancing past matched columns so
// repeated identical residues are not re-matched.
func Build(name, seq string, alignment map[string]string, opts Options) (*Map, error) {
	// Sequence files are frequently named "<entry>.fa"; the alignment
	// rows are keyed by the bare entry name.
	key := strings.SplitN(name, ".fa", 2)[0]
	row, ok := alignment[key]
	if !ok {
		return nil, &UnmappableError{Name: key, Reason: "name not present in alignment"}
	}

	col := 0
	if opts.StartColumn != nil {
		col = *opts.StartColumn
	} else {
		start, err := FindStart(row, seq)
		if err != nil {
			return nil, &UnmappableError{Name: key, Reason: err.Error()}
		}
		col = start
	}

	columns := make([]Column, len(seq))
	for i := 0; i < len(seq); i++ {
		if i < len(opts.Truncated) && opts.Truncated[i] {
			continue // stays unmapped, no column consumed
		}
		for col < len(row) {
			if row[col] == seq[i] {
				columns[i] = Column{Index: col, Mapped: true}
				col++
				break
			}
			if row[col] != Gap {
				log.Printf("alignmap: out-of-place residue %c at column %d while matching %c (residue %d)", row[col], col, seq[i], i)
			}
			col++
		}
	}
	return &Map{columns: columns}, nil
}

// Len returns the number of residues covered by the mapping.
func (m *Map) Len() int { return len(m.columns) }

// At returns the alignment column of residue i. ok is false for truncated
// residues and indices outside the mapping.
func (m *Map) At(i int) (col int, ok bool) {
	if i < 0 || i >= len(m.columns) || !m.columns[i].Mapped {
		return 0, false
	}
	return m.columns[i].Index, true
}

// ResidueAt returns the domain-local residue whose column is exactly col.
func (m *Map) ResidueAt(col int) (res int, ok bool) {
	for i, c := range m.columns {
		if c.Mapped && c.Index == col {
			return i, true
		}
	}
	return 0, false
}

// GPSCenter finds the residue matching the conserved GPS-1 alignment
// column. The quality of this lookup depends on the underlying MSA; a
// missing column is reported as ok=false so the caller can fall back to
// an alternative detection.
func (m *Map) GPSCenter(gpsMinusOne int) (int, bool) {
	return m.ResidueAt(gpsMinusOne)
}

// LastColumn returns the highest mapped column, used when an element
// overruns the end of the mapping.
func (m *Map) LastColumn() (int, bool) {
	for i := len(m.columns) - 1; i >= 0; i-- {
		if m.columns[i].Mapped {
			return m.columns[i].Index, true
		}
	}
	return 0, false
}
