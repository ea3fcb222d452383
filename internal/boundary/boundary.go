// Package boundary locates the N-terminal edge of a GAIN domain and the
// split point between its helical subdomain A and sheet subdomain B from
// a smoothed per-residue helix/sheet score signal.
package boundary

import (
	"log"

	"github.com/gph82/GAIN-GRN/internal/sse"
)

// Tuned defaults for GAIN-sized domains.
const (
	DefaultBracketSize     = 50
	DefaultDomainThreshold = 50
)

// Options parameterize Detect.
type Options struct {
	// BracketSize is the width of the uniform smoothing kernel.
	BracketSize int
	// DomainThreshold is the minimum number of truly helical residues a
	// signal run must contain to qualify as subdomain A.
	DomainThreshold int
	// CoilWeight is the score of unordered residues; small positive
	// values sharpen the decay of helical blocks.
	CoilWeight float64
	// TruncateN, when set, shifts the domain start to *TruncateN residues
	// before the first helical residue found at or after the provisional
	// start.
	TruncateN *int
}

// DefaultOptions returns the parameters used for the reference dataset.
func DefaultOptions() Options {
	return Options{
		BracketSize:     DefaultBracketSize,
		DomainThreshold: DefaultDomainThreshold,
	}
}

// Result holds the detected domain extent.
type Result struct {
	// Start is the most N-terminal residue index of the domain.
	Start int
	// Boundary is the residue index splitting subdomain A from B.
	Boundary int
}

// Smooth convolves the signal with a uniform kernel of width bracket,
// centered, same-length. A bracket of zero or one returns a copy.
func Smooth(signal []float64, bracket int) []float64 {
	out := make([]float64, len(signal))
	if bracket <= 1 {
		copy(out, signal)
		return out
	}
	// Centered window placement as in a same-mode convolution: for even
	// brackets the window extends one further to the left.
	left := bracket / 2
	right := bracket - left - 1
	for i := range signal {
		lo := i - left
		if lo < 0 {
			lo = 0
		}
		hi := i + right
		if hi > len(signal)-1 {
			hi = len(signal) - 1
		}
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += signal[j]
		}
		out[i] = sum
	}
	return out
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SignChanges returns the indices where the sign of the smoothed signal
// differs from its predecessor, partitioning it into alternating
// positive/negative runs. Exact zeros are never their own sign class:
// each zero absorbs the sign of the preceding element (the first element
// wraps around to the last), repeated until no zero sign remains. Index 0
// is reported when the first and last element disagree in sign.
func SignChanges(signal []float64) []int {
	n := len(signal)
	if n == 0 {
		return nil
	}
	signs := make([]int, n)
	zeros := 0
	for i, v := range signal {
		signs[i] = sign(v)
		if signs[i] == 0 {
			zeros++
		}
	}
	// Propagate neighboring signs into zero runs.
	for zeros > 0 {
		next := make([]int, n)
		copy(next, signs)
		remaining := 0
		for i := 0; i < n; i++ {
			if signs[i] != 0 {
				continue
			}
			prev := signs[(i-1+n)%n]
			if prev == 0 {
				remaining++
			} else {
				next[i] = prev
			}
		}
		if remaining == zeros {
			// All-zero signal, no crossings to find.
			return nil
		}
		signs = next
		zeros = remaining
	}
	var changes []int
	for i := 0; i < n; i++ {
		if signs[i] != signs[(i-1+n)%n] {
			changes = append(changes, i)
		}
	}
	return changes
}

// Detect finds the domain start and the subdomain boundary. The second
// return value is false when the assignment contains no recognizable GAIN
// domain: a helix or strand class is missing entirely, the signal has no
// sign crossings, or no helical run meets the domain threshold.
func Detect(m sse.Map, seqLen int, opts Options) (Result, bool) {
	if !m.HasDomainTypes() {
		return Result{}, false
	}
	scored := sse.BuildScore(m, seqLen, opts.CoilWeight)
	smoothed := Smooth(scored, opts.BracketSize)
	crossings := SignChanges(smoothed)
	if len(crossings) == 0 {
		return Result{}, false
	}

	// Count truly helical residues per run between adjacent crossings.
	helicalCounts := make([]int, len(crossings)-1)
	for k := 0; k+1 < len(crossings); k++ {
		for i := crossings[k]; i < crossings[k+1]; i++ {
			if scored[i] == sse.HelixScore {
				helicalCounts[k]++
			}
		}
	}

	// The first run from the C-terminal end meeting the threshold is
	// subdomain A; its starting crossing is the provisional domain start.
	maxk := -1
	for k := len(helicalCounts) - 1; k >= 0; k-- {
		if helicalCounts[k] >= opts.DomainThreshold {
			maxk = k
			break
		}
	}
	if maxk < 0 {
		return Result{}, false
	}
	start := crossings[maxk]
	provisional := crossings[maxk+1]

	if opts.TruncateN != nil {
		for i := start; i < len(scored); i++ {
			if scored[i] == sse.HelixScore {
				log.Printf("boundary: truncating domain start %d to %d", start, i-*opts.TruncateN)
				start = i - *opts.TruncateN
				break
			}
		}
	}

	// Refine: walk outward from the provisional crossing to the exact
	// edge of the last subdomain-A helix and the first subdomain-B
	// strand; the boundary is the floor midpoint of the two.
	sheetStart := provisional
	if at(scored, sheetStart) == sse.StrandScore {
		for {
			sheetStart--
			if at(scored, sheetStart) != sse.StrandScore {
				break
			}
		}
	} else {
		for sheetStart < len(scored) && at(scored, sheetStart) != sse.StrandScore {
			sheetStart++
		}
	}
	helixEnd := provisional
	if at(scored, helixEnd) != sse.HelixScore {
		for helixEnd > 0 && at(scored, helixEnd) != sse.HelixScore {
			helixEnd--
		}
	} else {
		for at(scored, helixEnd+1) == sse.HelixScore {
			helixEnd++
		}
		helixEnd++ // first residue past the helix
	}

	if opts.CoilWeight == 0 {
		for i := helixEnd + 1; i < sheetStart && i < len(scored); i++ {
			if i >= 0 && scored[i] != 0 {
				log.Printf("boundary: secondary structure remains inside the subdomain connecting loop (residues %d..%d)", helixEnd+1, sheetStart-1)
				break
			}
		}
	}

	return Result{Start: start, Boundary: (helixEnd + sheetStart) / 2}, true
}

func at(scored []float64, i int) float64 {
	if i < 0 || i >= len(scored) {
		return 0
	}
	return scored[i]
}
