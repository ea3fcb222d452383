package nomenclature

import (
	"fmt"
	"io"
	"log"

	"github.com/gph82/GAIN-GRN/internal/alignmap"
	"github.com/gph82/GAIN-GRN/internal/segment"
	"github.com/gph82/GAIN-GRN/internal/sse"
)

// ReferenceOffset is the offset of the anchor's own residue in the
// reference numbering convention.
const ReferenceOffset = 50

// unindexedMinSpan is the minimum Start..End span an element must exceed
// to be reported for manual review when no anchor matches it.
const unindexedMinSpan = 3

// GPS labels for the three fixed positions around the proteolytic
// cleavage site, N to C.
var gpsLabels = [3]string{"GPS-2", "GPS-1", "GPS+1"}

// Input bundles one target sequence's data for the assigner. Element
// residues and the alignment map share the domain-local index space;
// Letters is keyed by absolute residue number (domain-local + Start).
type Input struct {
	Name     string
	Sequence string
	// Helices are the grouped subdomain-A elements, Sheets the grouped
	// subdomain-B elements, both in ascending residue order.
	Helices []segment.Element
	Sheets  []segment.Element
	Columns *alignmap.Map
	Letters sse.Letters
	// Start and End delimit the domain in absolute residue numbers.
	Start int
	End   int
	// GPS holds externally supplied cleavage-site residue numbers; the
	// first three are patched into the output.
	GPS []int
}

// Indexing is the assigner's output: the per-anchor segment intervals,
// the reference (".50") residues, the full per-offset label map, and the
// elements left without an anchor.
type Indexing struct {
	// Segments maps each anchor label to the domain-local element
	// interval bound to it.
	Segments map[string]segment.Element
	// Centers maps "<label>.50" to the domain-local reference residue.
	Centers map[string]int
	// Residues maps every generated label ("H3.52", "GPS-1", ...) to its
	// absolute residue number.
	Residues map[string]int
	// Unindexed lists the start alignment columns of elements longer
	// than the review threshold that no anchor matched.
	Unindexed []int
	// GPS echoes the patched cleavage-site residue numbers.
	GPS []int
	// Labels is the per-residue label array over [0, End], absolute
	// indexing; residues outside any assigned segment stay empty.
	Labels []string
}

// Options adjust Assign.
type Options struct {
	Mode SplitMode
	// Offset shifts the residue numbers written by WriteLong, for model
	// structures numbered against UniProt entries.
	Offset int
}

// Assign maps every grouped element to an anchor label. Failures are
// local to one element: an element whose ambiguity cannot be resolved is
// skipped with a diagnostic and the remaining elements are processed.
func Assign(in Input, anchors *AnchorSet, opts Options) *Indexing {
	out := &Indexing{
		Segments: make(map[string]segment.Element),
		Centers:  make(map[string]int),
		Residues: make(map[string]int),
		Labels:   make([]string, in.End+1),
	}

	for _, set := range [][]segment.Element{in.Helices, in.Sheets} {
		for _, el := range set {
			if err := assignElement(in, anchors, opts, el, out); err != nil {
				log.Printf("nomenclature: %s: element %v skipped: %v", in.Name, el, err)
			}
		}
	}

	// Patch the GPS positions over whatever structural label they carry.
	for i, res := range in.GPS {
		if i >= len(gpsLabels) {
			break
		}
		if res >= 0 && res < len(out.Labels) {
			out.Labels[res] = gpsLabels[i]
		}
		out.Residues[gpsLabels[i]] = res
		out.GPS = append(out.GPS, res)
	}
	return out
}

func assignElement(in Input, anchors *AnchorSet, opts Options, el segment.Element, out *Indexing) error {
	// The detected last strand occasionally exceeds the domain boundary;
	// pull the scanned end back inside the mapping.
	sseEnd := el.End
	if el.End > in.End-in.Start-1 {
		sseEnd = el.End - 1
	}

	var (
		exactMatch bool
		fuzzyMatch bool
		stored     candidate
		chosen     assignment
	)

	for res := el.Start; res <= sseEnd; res++ {
		col, ok := in.Columns.At(res)
		if !ok {
			continue
		}
		anchor, isAnchor := anchors.ByColumn(col)
		if !isAnchor {
			continue
		}
		if !exactMatch {
			stored = candidate{anchor: anchor, res: res}
			chosen = assignment{seg: el, ref: res, anchor: anchor}
			exactMatch = true
			continue
		}

		// A second distinct anchor inside the same element: resolve via
		// break residues between the two candidates, or occupation
		// weight when none exist.
		coiled, outlier := breakFlags(in, el)
		resolved, wasSplit, err := disambiguate(stored, candidate{anchor: anchor, res: res}, el, coiled, outlier, opts.Mode)
		if err != nil {
			return err
		}
		chosen = resolved[0]
		if wasSplit {
			cast(out, resolved[1], in.Start)
		}
	}

	if !exactMatch {
		// Fuzzy interval match: widen by one residue past each end and
		// test whether any anchor column falls inside.
		firstCol, _ := in.Columns.At(el.Start)
		exFirst := firstCol
		if el.Start > 0 {
			if c, ok := in.Columns.At(el.Start - 1); ok {
				exFirst = c
			}
		}
		exLast, ok := in.Columns.At(el.End + 1)
		if !ok {
			if c, ok := in.Columns.At(sseEnd); ok {
				exLast = c
			} else if c, ok := in.Columns.LastColumn(); ok {
				exLast = c
			}
		}
		for _, anchor := range anchors.Anchors() {
			if anchor.Column < exFirst || anchor.Column > exLast {
				continue
			}
			fuzzyMatch = true
			// The element residue whose column is closest to the anchor
			// column becomes the reference; ties break N-terminal.
			ref := el.Start
			best := -1
			for res := el.Start; res <= sseEnd; res++ {
				col, ok := in.Columns.At(res)
				if !ok {
					continue
				}
				d := col - anchor.Column
				if d < 0 {
					d = -d
				}
				if best < 0 || d < best {
					best = d
					ref = res
				}
			}
			chosen = assignment{seg: el, ref: ref, anchor: anchor}
			break
		}
	}

	switch {
	case exactMatch || fuzzyMatch:
		cast(out, chosen, in.Start)
	default:
		if el.End-el.Start > unindexedMinSpan {
			if col, ok := in.Columns.At(el.Start); ok {
				out.Unindexed = append(out.Unindexed, col)
			}
		}
	}
	return nil
}

// breakFlags collects the coil and outlier residues of the element from
// the per-residue letter sequence, converted to domain-local indices.
func breakFlags(in Input, el segment.Element) (coiled, outlier []int) {
	maxKey := in.Letters.MaxResidue()
	for abs := el.Start + in.Start; abs <= el.End+in.Start; abs++ {
		if abs > maxKey {
			break
		}
		code, ok := in.Letters[abs]
		if !ok {
			continue
		}
		if sse.IsCoil(code) {
			coiled = append(coiled, abs-in.Start)
		} else if sse.IsOutlier(code) {
			outlier = append(outlier, abs-in.Start)
		}
	}
	return coiled, outlier
}

// cast renders one assignment into the output maps and label array.
func cast(out *Indexing, a assignment, domainStart int) {
	out.Segments[a.anchor.Label] = a.seg
	out.Centers[a.anchor.Label+".50"] = a.ref
	for res := a.seg.Start; res <= a.seg.End; res++ {
		label := render(a.anchor.Label, ReferenceOffset+res-a.ref)
		abs := res + domainStart
		if abs >= 0 && abs < len(out.Labels) {
			out.Labels[abs] = label
		}
		out.Residues[label] = abs
	}
}

// render materializes the structured (anchor, offset) record as the
// public label string.
func render(anchorLabel string, offset int) string {
	return fmt.Sprintf("%s.%d", anchorLabel, offset)
}

// WriteLong emits the line-per-residue listing of the assignment, one
// residue letter, number and label per line. A plain export for manual
// inspection, separate from the algorithmic contract.
func (ix *Indexing) WriteLong(w io.Writer, name, sequence string, domainStart, offset int) error {
	if _, err := fmt.Fprintf(w, "%s\nSequence length: %d\n\n", name, len(sequence)); err != nil {
		return err
	}
	for j := 0; j+domainStart < len(ix.Labels) && j < len(sequence); j++ {
		label := ix.Labels[j+domainStart]
		if _, err := fmt.Fprintf(w, "%s  %4d  %7s\n", string(sequence[j]), j+domainStart+offset, label); err != nil {
			return err
		}
	}
	return nil
}
