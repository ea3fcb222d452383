// Package segment groups per-residue secondary-structure membership into
// discrete elements, tolerating short internal breaks ("fuzzy" grouping).
package segment

import (
	"fmt"

	"github.com/gph82/GAIN-GRN/internal/sse"
)

// Grouping defaults used for GAIN subdomains. Sheets tolerate shorter
// elements than helices.
const (
	DefaultSpacing        = 1
	MinHelixLength        = 3
	MinSheetLength        = 2
)

// Element is one detected secondary-structure run: a closed residue-index
// range plus the positions inside it that lack the raw per-residue signal
// (tolerated breaks, used downstream for disambiguation).
type Element struct {
	Start  int
	End    int
	Breaks []int
}

// Len returns the number of residues covered, break residues included.
func (e Element) Len() int { return e.End - e.Start + 1 }

// Contains reports whether the residue index lies inside the element.
func (e Element) Contains(res int) bool { return res >= e.Start && res <= e.End }

func (e Element) String() string { return fmt.Sprintf("[%d, %d]", e.Start, e.End) }

// Group scans the membership mask for contiguous-with-tolerance runs.
// Residues below domainStart are ignored; elements whose start lies at or
// beyond domainEnd are dropped, as are elements shorter than minLength
// after merging. Gaps of at most spacing zero residues between runs are
// merged into one element and recorded as break positions (absolute
// residue indices). A spacing of 0 disables merging. An all-false mask
// yields an empty result.
func Group(mask []bool, domainStart, domainEnd, spacing, minLength int) []Element {
	if len(mask) == 0 {
		return nil
	}
	trimmed := make([]bool, len(mask))
	copy(trimmed, mask)
	for i := 0; i < domainStart && i < len(trimmed); i++ {
		trimmed[i] = false
	}

	// Rising and falling edges; the array end is an implicit falling edge.
	var up, down []int
	if trimmed[0] {
		up = append(up, 0)
	}
	for i := 0; i+1 < len(trimmed); i++ {
		if trimmed[i] && !trimmed[i+1] {
			down = append(down, i+1)
		}
		if !trimmed[i] && trimmed[i+1] {
			up = append(up, i+1)
		}
	}
	down = append(down, len(trimmed))

	// Merge adjacent runs separated by at most spacing zeros.
	for i := 0; i+1 < len(up); {
		if up[i+1]-down[i] <= spacing {
			up = append(up[:i+1], up[i+2:]...)
			down = append(down[:i], down[i+1:]...)
			continue
		}
		i++
	}

	var elements []Element
	for i := range up {
		if down[i]-up[i] < minLength {
			continue
		}
		if up[i] >= domainEnd {
			continue
		}
		el := Element{Start: up[i], End: down[i] - 1}
		for res := el.Start + 1; res < el.End; res++ {
			if !trimmed[res] {
				el.Breaks = append(el.Breaks, res)
			}
		}
		elements = append(elements, el)
	}
	return elements
}

// FromIntervals rasterizes an interval list and groups it. Intervals
// not fully inside the [domainStart, domainEnd] window are discarded
// before rasterization.
func FromIntervals(list []sse.Interval, domainStart, domainEnd, spacing, minLength int) []Element {
	var parsed []sse.Interval
	for _, iv := range list {
		if iv.First >= domainStart && iv.Last <= domainEnd {
			parsed = append(parsed, iv)
		}
	}
	return Group(sse.Rasterize(parsed, domainEnd), domainStart, domainEnd, spacing, minLength)
}
