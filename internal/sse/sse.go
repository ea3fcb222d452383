// Package sse models secondary-structure assignments of a protein chain
// and converts them into the numeric and boolean per-residue signals the
// boundary detector and element grouper consume.
//
// Two index spaces coexist in this package and must not be conflated:
// interval positions are domain-local residue indices (0-based from the
// chain start), while Letters is keyed by the PDB residue number of the
// source assignment.
package sse

import "fmt"

// Names of the STRIDE secondary-structure classes the signal builder
// recognizes.
const (
	AlphaHelix = "AlphaHelix"
	Helix310   = "310Helix"
	Strand     = "Strand"
)

// Per-residue score values written by BuildScore.
const (
	HelixScore  = -1
	StrandScore = 1
)

// Interval is a closed range [First, Last] of residue indices sharing one
// secondary-structure classification.
type Interval struct {
	First int
	Last  int
}

// NewInterval validates the ascending-order invariant at construction.
func NewInterval(first, last int) (Interval, error) {
	if first < 0 {
		return Interval{}, fmt.Errorf("interval start %d is negative", first)
	}
	if last < first {
		return Interval{}, fmt.Errorf("interval [%d, %d] is not ascending", first, last)
	}
	return Interval{First: first, Last: last}, nil
}

// Len returns the number of residues covered by the closed interval.
func (iv Interval) Len() int { return iv.Last - iv.First + 1 }

// Map collects intervals per secondary-structure class name, in N→C order
// as produced by the source assignment.
type Map map[string][]Interval

// Helices returns all helical intervals (alpha plus 3/10) in source order.
func (m Map) Helices() []Interval {
	out := make([]Interval, 0, len(m[AlphaHelix])+len(m[Helix310]))
	out = append(out, m[AlphaHelix]...)
	out = append(out, m[Helix310]...)
	return out
}

// Sheets returns the strand intervals.
func (m Map) Sheets() []Interval { return m[Strand] }

// HasDomainTypes reports whether both a helix class and the strand class
// are present. Without both, boundary detection cannot recognize a GAIN
// domain.
func (m Map) HasDomainTypes() bool {
	_, hasHelix := m[AlphaHelix]
	_, hasSheet := m[Strand]
	return hasHelix && hasSheet
}

// Clip truncates every interval list of the map to the window
// [start, end], dropping intervals fully outside and trimming those that
// straddle an edge. Classes left without intervals are omitted.
func (m Map) Clip(start, end int) Map {
	out := make(Map, len(m))
	for name, list := range m {
		var kept []Interval
		for _, iv := range list {
			if iv.First > end || iv.Last < start {
				continue
			}
			if iv.First < start {
				iv.First = start
			}
			if iv.Last > end {
				iv.Last = end
			}
			kept = append(kept, iv)
		}
		if len(kept) > 0 {
			out[name] = kept
		}
	}
	return out
}

// BuildScore converts the interval map into one real value per residue:
// coilWeight everywhere, HelixScore over helix intervals, StrandScore over
// strand intervals. Helices are written first, then strands, so a residue
// claimed by both interval lists ends up with the strand score. Interval
// ends are exclusive here, matching the signal the detector was tuned on.
func BuildScore(m Map, length int, coilWeight float64) []float64 {
	scored := make([]float64, length)
	if coilWeight != 0 {
		for i := range scored {
			scored[i] = coilWeight
		}
	}
	write := func(list []Interval, value float64) {
		for _, iv := range list {
			for i := iv.First; i < iv.Last && i < length; i++ {
				if i >= 0 {
					scored[i] = value
				}
			}
		}
	}
	write(m.Helices(), HelixScore)
	write(m.Sheets(), StrandScore)
	return scored
}

// Rasterize projects intervals onto a boolean membership array of length
// domainEnd. Unlike BuildScore, the interval end is inclusive: the grouped
// elements carry the exact last residue of each run.
func Rasterize(list []Interval, domainEnd int) []bool {
	mask := make([]bool, domainEnd)
	for _, iv := range list {
		for i := iv.First; i <= iv.Last && i < domainEnd; i++ {
			if i >= 0 {
				mask[i] = true
			}
		}
	}
	return mask
}
