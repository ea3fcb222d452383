package sse

import "unicode"

// Letters is the per-residue one-character secondary-structure
// classification from a modified STRIDE ASG listing, keyed by PDB residue
// number. Lowercase letters mark conservation outliers, "X" marks
// residues the structure prediction skipped.
type Letters map[int]byte

// Unassigned is the filler code for residues without an ASG record.
const Unassigned = 'X'

// MaxResidue returns the highest residue number carrying a letter, or -1
// for an empty map.
func (l Letters) MaxResidue() int {
	max := -1
	for res := range l {
		if res > max {
			max = res
		}
	}
	return max
}

// IsHelix reports whether the code is helix-equivalent: alpha ("H") or
// 3/10 ("G"), either case.
func IsHelix(code byte) bool {
	switch code {
	case 'H', 'h', 'G', 'g':
		return true
	}
	return false
}

// IsStrand reports whether the code is strand-equivalent ("E", either
// case).
func IsStrand(code byte) bool { return code == 'E' || code == 'e' }

// IsCoil reports the explicit coil assignment.
func IsCoil(code byte) bool { return code == 'C' }

// IsOutlier reports the lowercase outlier variants written by the
// modified STRIDE post-processing.
func IsOutlier(code byte) bool {
	return code != Unassigned && unicode.IsLower(rune(code))
}

// Signals rasterizes the letters into helix and strand membership arrays
// of length MaxResidue()+1. Residues without a letter stay false in both.
func (l Letters) Signals() (helix, strand []bool) {
	n := l.MaxResidue() + 1
	helix = make([]bool, n)
	strand = make([]bool, n)
	for res, code := range l {
		if res < 0 {
			continue
		}
		switch {
		case IsHelix(code):
			helix[res] = true
		case IsStrand(code):
			strand[res] = true
		}
	}
	return helix, strand
}
