// Package stats summarizes a collection of detected GAIN domains for
// batch runs over many homologous structures.
package stats

import (
	"fmt"
	"sort"

	"github.com/gph82/GAIN-GRN/internal/gain"
)

// Collection holds summary statistics over a set of domains.
type Collection struct {
	Count        int
	MinLength    int
	MaxLength    int
	MeanLength   float64
	MedianLength int

	MeanSubdomainA float64
	MeanSubdomainB float64
	MeanHelices    float64
	MeanSheets     float64
}

// FromDomains computes collection statistics. An empty set is an error.
func FromDomains(domains []*gain.Domain) (*Collection, error) {
	if len(domains) == 0 {
		return nil, fmt.Errorf("no domains to summarize")
	}

	lengths := make([]int, len(domains))
	c := &Collection{Count: len(domains)}
	var totalLen, totalA, totalB, totalHelices, totalSheets int
	for i, d := range domains {
		lengths[i] = d.Len()
		totalLen += d.Len()
		totalA += d.SubdomainALength()
		totalB += d.SubdomainBLength()
		totalHelices += len(d.Helices)
		totalSheets += len(d.Sheets)
	}
	sort.Ints(lengths)

	n := float64(len(domains))
	c.MinLength = lengths[0]
	c.MaxLength = lengths[len(lengths)-1]
	c.MeanLength = float64(totalLen) / n
	c.MedianLength = lengths[len(lengths)/2]
	c.MeanSubdomainA = float64(totalA) / n
	c.MeanSubdomainB = float64(totalB) / n
	c.MeanHelices = float64(totalHelices) / n
	c.MeanSheets = float64(totalSheets) / n
	return c, nil
}
