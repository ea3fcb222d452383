package nomenclature

import (
	"fmt"

	"github.com/gph82/GAIN-GRN/internal/segment"
)

// SplitMode selects how an element claimed by two anchors is divided once
// break residues are found between them.
type SplitMode int

const (
	// SplitSingle cuts at the single break residue closest to the
	// lower-weight anchor; everything else, further break residues
	// included, goes to the higher-weight anchor's segment.
	SplitSingle SplitMode = iota
	// SplitDouble trims each anchor's segment independently at the
	// nearest break residue on either side of its own reference residue.
	SplitDouble
)

// breakerSearchWindow bounds the scan for the break residue nearest the
// lower-weight anchor. Not finding one inside the window violates the
// precondition that breaks exist between the anchors and is a hard error
// for the element.
const breakerSearchWindow = 20

// candidate is one anchor competing for an element, with the domain-local
// residue sitting on its column.
type candidate struct {
	anchor Anchor
	res    int
}

// assignment binds a (sub)element to its winning anchor's reference
// residue. Labels are rendered from it only at the output boundary.
type assignment struct {
	seg    segment.Element
	ref    int
	anchor Anchor
}

func between(r, a, b int) bool {
	return (a < r && r < b) || (b < r && r < a)
}

// disambiguate resolves two anchors falling inside one element. coiled
// and outlier carry the domain-local residues flagged "C" respectively
// lowercase in the per-residue letter sequence. The returned bool reports
// whether the element was split in two.
func disambiguate(stored, fresh candidate, el segment.Element, coiled, outlier []int, mode SplitMode) ([]assignment, bool, error) {
	hasCoiled := false
	for _, r := range coiled {
		if between(r, stored.res, fresh.res) {
			hasCoiled = true
		}
	}
	hasOutlier := false
	for _, r := range outlier {
		if between(r, stored.res, fresh.res) {
			hasOutlier = true
		}
	}

	// No local break between the anchors: the higher occupation wins the
	// whole element, ties keep the stored anchor.
	if !hasCoiled && !hasOutlier {
		winner := stored
		if fresh.anchor.Occupation > stored.anchor.Occupation {
			winner = fresh
		}
		return []assignment{{seg: el, ref: winner.res, anchor: winner.anchor}}, false, nil
	}

	// Coil flags take precedence over conservation outliers: a coiled
	// breaker is excluded from both segments, an outlier-only breaker is
	// kept in the segment it terminates.
	breakers := outlier
	if hasCoiled {
		breakers = coiled
	}

	var segStored, segFresh segment.Element
	switch mode {
	case SplitSingle:
		lower := stored
		if stored.anchor.Occupation > fresh.anchor.Occupation {
			lower = fresh
		}
		breaker := -1
		for offset := 1; offset < breakerSearchWindow; offset++ {
			if containsRes(breakers, lower.res+offset) {
				breaker = lower.res + offset
				break
			}
			if containsRes(breakers, lower.res-offset) {
				breaker = lower.res - offset
				break
			}
		}
		if breaker < 0 {
			return nil, false, fmt.Errorf("no break residue within %d positions of residue %d despite breaks between anchors %s and %s",
				breakerSearchWindow, lower.res, stored.anchor.Label, fresh.anchor.Label)
		}
		terminal := 0
		if hasCoiled {
			terminal = 1
		}
		segN := segment.Element{Start: el.Start, End: breaker - terminal}
		segC := segment.Element{Start: breaker + terminal, End: el.End}
		if stored.res < breaker {
			segStored, segFresh = segN, segC
		} else {
			segStored, segFresh = segC, segN
		}
	case SplitDouble:
		include := !hasCoiled
		segStored = terminate(el, stored.res, breakers, include)
		segFresh = terminate(el, fresh.res, breakers, include)
	default:
		return nil, false, fmt.Errorf("unknown split mode %d", mode)
	}

	return []assignment{
		{seg: segStored, ref: stored.res, anchor: stored.anchor},
		{seg: segFresh, ref: fresh.res, anchor: fresh.anchor},
	}, true, nil
}

// terminate trims the element to the break residues nearest centerRes on
// each side. include keeps the break residue inside the trimmed segment
// (outlier-only breaks); otherwise the segment stops one short of it.
func terminate(el segment.Element, centerRes int, breakers []int, include bool) segment.Element {
	terminal := -1
	if include {
		terminal = 0
	}
	nBoundary := el.Start
	for _, r := range breakers {
		if r < centerRes && r >= el.Start && r-terminal > nBoundary {
			nBoundary = r - terminal
		}
	}
	cBoundary := el.End
	for _, r := range breakers {
		if r > centerRes && r <= el.End && r+terminal < cBoundary {
			cBoundary = r + terminal
		}
	}
	return segment.Element{Start: nBoundary, End: cBoundary}
}

func containsRes(list []int, res int) bool {
	for _, r := range list {
		if r == res {
			return true
		}
	}
	return false
}
