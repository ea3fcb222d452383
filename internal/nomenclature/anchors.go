// Package nomenclature assigns stable alignment-derived labels to the
// grouped secondary-structure elements of a GAIN domain.
//
// Labels follow reference-residue numbering: the conserved anchor residue
// of an element is always position 50 ("H3.50"), the offset growing by
// one per residue toward the C-terminus.
package nomenclature

import (
	"fmt"
	"sort"
)

// Anchor is a conserved alignment column bound to a human-readable label
// and an occupation weight (conservation support, used only to break ties
// when two anchors compete for one element).
type Anchor struct {
	Column     int
	Label      string
	Occupation float64
}

// AnchorSet is the curated reference table of anchors for one domain
// family, partitioned into subdomain-A helix anchors and subdomain-B
// sheet anchors by comparison against the subdomain boundary column.
type AnchorSet struct {
	ordered  []Anchor
	byColumn map[int]Anchor
}

// NewAnchorSet labels the anchor columns against the subdomain boundary
// column: columns below it become "H1".."Hn", columns above it "S1".."Sm",
// each numbered in ascending column order. occupations runs parallel to
// columns.
func NewAnchorSet(columns []int, occupations []float64, boundaryColumn int) (*AnchorSet, error) {
	if len(columns) != len(occupations) {
		return nil, fmt.Errorf("got %d anchor columns but %d occupation weights", len(columns), len(occupations))
	}
	type col struct {
		column int
		weight float64
	}
	var helices, sheets []col
	for i, c := range columns {
		if c < boundaryColumn {
			helices = append(helices, col{c, occupations[i]})
		} else if c > boundaryColumn {
			sheets = append(sheets, col{c, occupations[i]})
		} else {
			return nil, fmt.Errorf("anchor column %d coincides with the subdomain boundary column", c)
		}
	}
	sort.Slice(helices, func(i, j int) bool { return helices[i].column < helices[j].column })
	sort.Slice(sheets, func(i, j int) bool { return sheets[i].column < sheets[j].column })

	set := &AnchorSet{byColumn: make(map[int]Anchor, len(columns))}
	add := func(prefix string, cols []col) {
		for i, c := range cols {
			a := Anchor{Column: c.column, Label: fmt.Sprintf("%s%d", prefix, i+1), Occupation: c.weight}
			set.ordered = append(set.ordered, a)
			set.byColumn[c.column] = a
		}
	}
	add("H", helices)
	add("S", sheets)
	return set, nil
}

// ByColumn looks up the anchor at an exact alignment column.
func (s *AnchorSet) ByColumn(col int) (Anchor, bool) {
	a, ok := s.byColumn[col]
	return a, ok
}

// Anchors returns all anchors, helix anchors first, ascending by column.
func (s *AnchorSet) Anchors() []Anchor { return s.ordered }

// Len returns the number of anchors in the table.
func (s *AnchorSet) Len() int { return len(s.ordered) }
