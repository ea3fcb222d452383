package gain

import "fmt"

// roughScan is the explicit state of the rough-labeling sweep: the run
// type and counter currently in effect and the label being propagated.
// The sweep runs C→N, so counters grow toward the N-terminus.
type roughScan struct {
	helixIndex int
	sheetIndex int
	prefix     byte
	current    string
	inSSE      bool
}

// RoughLabels produces the pre-nomenclature naming scheme for the
// domain: helices and sheets counted separately from the C-terminus
// ("H1", "S2"), connecting regions labeled after their flanking elements
// ("L.H1-2"), and the inter-subdomain loop labeled "L.A/B". This scheme
// needs no reference dataset; it is not the consensus nomenclature.
func (d *Domain) RoughLabels() []string {
	n := d.End - d.Start
	if n <= 0 {
		return nil
	}
	isHelix := make([]bool, n)
	isSheet := make([]bool, n)
	mark := func(mask []bool, start, end int) {
		for i := start; i <= end && i < n; i++ {
			if i >= 0 {
				mask[i] = true
			}
		}
	}
	for _, el := range d.Helices {
		mark(isHelix, el.Start, el.End)
	}
	for _, el := range d.Sheets {
		mark(isSheet, el.Start, el.End)
	}

	labels := make([]string, n)
	var st roughScan
	for res := n - 1; res >= 0; res-- {
		if !st.inSSE {
			switch {
			case isSheet[res]:
				st.sheetIndex++
				st.prefix = 'S'
				st.inSSE = true
				st.current = fmt.Sprintf("S%d", st.sheetIndex)
			case isHelix[res]:
				st.helixIndex++
				st.prefix = 'H'
				st.inSSE = true
				st.current = fmt.Sprintf("H%d", st.helixIndex)
			}
		} else if !isHelix[res] && !isSheet[res] {
			st.inSSE = false
			switch st.prefix {
			case 'H':
				st.current = fmt.Sprintf("L.H%d-%d", st.helixIndex, st.helixIndex+1)
			case 'S':
				st.current = fmt.Sprintf("L.S%d-%d", st.sheetIndex, st.sheetIndex+1)
			}
		}
		labels[res] = st.current
	}

	// Anything N-terminal of the first helix is not part of the scheme.
	for i := 0; i < n; i++ {
		if len(labels[i]) > 0 && labels[i][0] == 'H' {
			break
		}
		labels[i] = ""
	}

	// The loop between the subdomains has its own name.
	if b := d.Boundary - d.Start; b >= 0 && b < n {
		for i := b; i < n && (len(labels[i]) == 0 || labels[i][0] != 'S'); i++ {
			labels[i] = "L.A/B"
		}
		for j := b - 1; j >= 0 && (len(labels[j]) == 0 || labels[j][0] != 'H'); j-- {
			labels[j] = "L.A/B"
		}
	}
	return labels
}
