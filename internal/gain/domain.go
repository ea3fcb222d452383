// Package gain composes the per-sequence GAIN-domain pipeline: score
// signal, boundary detection, and fuzzy element grouping per subdomain.
package gain

import (
	"errors"
	"fmt"

	"github.com/gph82/GAIN-GRN/internal/boundary"
	"github.com/gph82/GAIN-GRN/internal/segment"
	"github.com/gph82/GAIN-GRN/internal/sse"
)

// ErrNotADomain reports a sequence without a recognizable GAIN domain:
// the assignment lacks helix or strand classes, or no helical block meets
// the domain threshold. Callers skip the sequence and continue the batch.
var ErrNotADomain = errors.New("not a GAIN domain")

// Domain is one detected GAIN domain. Start, End and Boundary are
// absolute residue indices of the target chain; the element lists are
// domain-local (0 at Start).
type Domain struct {
	Name     string
	Sequence string
	SSEs     sse.Map
	Letters  sse.Letters

	Start    int
	End      int
	Boundary int

	// Helices are the grouped subdomain-A elements, Sheets the grouped
	// subdomain-B elements, ascending, domain-local.
	Helices []segment.Element
	Sheets  []segment.Element
}

// Options parameterize Detect.
type Options struct {
	Boundary boundary.Options
	// OutlierMode groups elements from the per-residue letter sequence
	// (lowercase-outlier aware) instead of the grouped interval lists.
	OutlierMode bool
}

// DefaultOptions uses the reference-dataset boundary parameters and the
// letter-sequence grouping path.
func DefaultOptions() Options {
	return Options{Boundary: boundary.DefaultOptions(), OutlierMode: true}
}

// Detect runs boundary detection and per-subdomain grouping over one
// target sequence. sequence is the full chain; m and letters use the same
// residue numbering as the interval lists.
func Detect(name, sequence string, m sse.Map, letters sse.Letters, opts Options) (*Domain, error) {
	res, ok := boundary.Detect(m, len(sequence), opts.Boundary)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotADomain)
	}
	start, bnd := res.Start, res.Boundary
	end := len(sequence) - 1

	var helices, sheets []segment.Element
	if opts.OutlierMode && letters != nil {
		helixMask, strandMask := letters.Signals()
		helices = segment.Group(helixMask, start, bnd, segment.DefaultSpacing, segment.MinHelixLength)
		sheets = segment.Group(strandMask, bnd, end+1, segment.DefaultSpacing, segment.MinSheetLength)
	} else {
		helices = segment.FromIntervals(m.Helices(), start, bnd, segment.DefaultSpacing, segment.MinHelixLength)
		sheets = segment.FromIntervals(m.Sheets(), bnd, end+1, segment.DefaultSpacing, segment.MinSheetLength)
	}

	domainSeq := sequence
	if start >= 0 && start <= len(sequence) {
		domainSeq = sequence[start:]
	}

	return &Domain{
		Name:     name,
		Sequence: domainSeq,
		SSEs:     m.Clip(start, end),
		Letters:  letters,
		Start:    start,
		End:      end,
		Boundary: bnd,
		Helices:  toLocal(helices, start),
		Sheets:   toLocal(sheets, start),
	}, nil
}

// toLocal shifts absolute element coordinates into the domain-local
// space shared with the alignment map.
func toLocal(els []segment.Element, start int) []segment.Element {
	out := make([]segment.Element, len(els))
	for i, el := range els {
		local := segment.Element{Start: el.Start - start, End: el.End - start}
		for _, b := range el.Breaks {
			local.Breaks = append(local.Breaks, b-start)
		}
		out[i] = local
	}
	return out
}

// SubdomainALength returns the residue count of the helical subdomain.
func (d *Domain) SubdomainALength() int { return d.Boundary - d.Start }

// SubdomainBLength returns the residue count of the sheet subdomain.
func (d *Domain) SubdomainBLength() int { return d.End - d.Boundary + 1 }

// Len returns the domain length in residues.
func (d *Domain) Len() int { return d.End - d.Start + 1 }
