// Package gaingrn provides a high-level API for GAIN-domain detection
// and reference-residue indexing.
//
// Example usage:
//
//	sses, err := gaingrn.ReadStride("model_0.stride")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dom, err := gaingrn.DetectDomain("Q8WXG9", seq, sses, letters)
//	if err != nil {
//	    log.Fatal(err) // or skip: errors.Is(err, gaingrn.ErrNotADomain)
//	}
//	idx := gaingrn.Index(dom, columns, anchors, gaingrn.Options{})
//	fmt.Println(idx.Centers["H3.50"])
package gaingrn

import (
	"github.com/gph82/GAIN-GRN/internal/alignmap"
	"github.com/gph82/GAIN-GRN/internal/boundary"
	"github.com/gph82/GAIN-GRN/internal/fasta"
	"github.com/gph82/GAIN-GRN/internal/gain"
	"github.com/gph82/GAIN-GRN/internal/nomenclature"
	"github.com/gph82/GAIN-GRN/internal/quality"
	"github.com/gph82/GAIN-GRN/internal/segment"
	"github.com/gph82/GAIN-GRN/internal/sse"
	"github.com/gph82/GAIN-GRN/internal/stats"
	"github.com/gph82/GAIN-GRN/internal/stride"
)

// Re-export types for convenience.
type (
	Interval   = sse.Interval
	SSEMap     = sse.Map
	Letters    = sse.Letters
	Element    = segment.Element
	Domain     = gain.Domain
	Anchor     = nomenclature.Anchor
	AnchorSet  = nomenclature.AnchorSet
	Indexing   = nomenclature.Indexing
	SplitMode  = nomenclature.SplitMode
	AlignMap   = alignmap.Map
	Collection = stats.Collection
	FastaEntry = fasta.Entry
)

// Constants and sentinel errors.
const (
	SplitSingle = nomenclature.SplitSingle
	SplitDouble = nomenclature.SplitDouble
)

var ErrNotADomain = gain.ErrNotADomain

// ReadStride parses the grouped LOC records of a STRIDE file.
func ReadStride(path string) (SSEMap, error) {
	return stride.ReadLoc(path)
}

// ReadStrideLetters parses the per-residue ASG records of a STRIDE file.
func ReadStrideLetters(path string) (Letters, error) {
	return stride.ReadAsg(path)
}

// ReadFASTA reads every sequence of a FASTA file.
func ReadFASTA(path string) ([]FastaEntry, error) {
	return fasta.ReadMulti(path)
}

// ReadAlignment loads a gapped reference alignment truncated at the
// cutoff column.
func ReadAlignment(path string, cutoff int) (map[string]string, error) {
	return fasta.ReadAlignment(path, cutoff)
}

// ReadQuality extracts per-column BLOSUM62 conservation values from a
// Jalview annotation export.
func ReadQuality(path string) ([]float64, error) {
	return quality.ReadAnnotation(path)
}

// DetectDomain runs boundary detection and element grouping with the
// reference-dataset defaults.
func DetectDomain(name, sequence string, m SSEMap, letters Letters) (*Domain, error) {
	return gain.Detect(name, sequence, m, letters, gain.DefaultOptions())
}

// DetectDomainOptions exposes the detector's tuning parameters.
type DetectDomainOptions = gain.Options

// DetectDomainWith runs detection with explicit parameters.
func DetectDomainWith(name, sequence string, m SSEMap, letters Letters, opts DetectDomainOptions) (*Domain, error) {
	return gain.Detect(name, sequence, m, letters, opts)
}

// MapToAlignment builds the residue→alignment-column mapping for a named
// sequence.
func MapToAlignment(name, sequence string, alignment map[string]string) (*AlignMap, error) {
	return alignmap.Build(name, sequence, alignment, alignmap.Options{})
}

// NewAnchors builds the labeled anchor table from curated columns,
// occupation weights, and the subdomain boundary column.
func NewAnchors(columns []int, occupations []float64, boundaryColumn int) (*AnchorSet, error) {
	return nomenclature.NewAnchorSet(columns, occupations, boundaryColumn)
}

// Options adjust Index.
type Options struct {
	Mode   SplitMode
	GPS    []int
	Offset int
}

// Index assigns the consensus nomenclature to a detected domain.
func Index(d *Domain, columns *AlignMap, anchors *AnchorSet, opts Options) *Indexing {
	return nomenclature.Assign(nomenclature.Input{
		Name:     d.Name,
		Sequence: d.Sequence,
		Helices:  d.Helices,
		Sheets:   d.Sheets,
		Columns:  columns,
		Letters:  d.Letters,
		Start:    d.Start,
		End:      d.End,
		GPS:      opts.GPS,
	}, anchors, nomenclature.Options{Mode: opts.Mode, Offset: opts.Offset})
}

// DetectBoundaries runs only the boundary detector over an interval map.
func DetectBoundaries(m SSEMap, seqLen int) (start, subdomainBoundary int, ok bool) {
	res, ok := boundary.Detect(m, seqLen, boundary.DefaultOptions())
	if !ok {
		return 0, 0, false
	}
	return res.Start, res.Boundary, true
}

// CollectionStats summarizes a batch of detected domains.
func CollectionStats(domains []*Domain) (*Collection, error) {
	return stats.FromDomains(domains)
}

// Version information.
const (
	Name    = "GAIN-GRN"
	Version = "1.0.0"
)

// Info returns a human-readable version string.
func Info() string {
	return Name + " " + Version
}
