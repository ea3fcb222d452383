// Package quality extracts per-column conservation values from exported
// alignment annotation and projects them onto the residues of a target
// sequence. The values feed the anchor occupation weights.
package quality

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gph82/GAIN-GRN/internal/alignmap"
)

// ReadAnnotation extracts the BLOSUM62 quality row from a Jalview
// annotation export: one "|"-separated value list per annotation track,
// each cell "graph,value,...". Only the last BLOSUM62 track of the file
// is kept.
func ReadAnnotation(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		head := line
		if len(head) > 200 {
			head = head[:200]
		}
		if strings.Contains(head, "Blosum62") {
			raw = strings.Split(strings.TrimSpace(line), "|")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: no Blosum62 annotation track", path)
	}

	var values []float64
	for _, cell := range raw {
		if len(cell) == 0 {
			continue
		}
		parts := strings.Split(cell, ",")
		if len(parts) < 2 {
			continue
		}
		field := parts[1]
		if len(field) > 5 {
			field = field[:5]
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad quality cell %q", path, cell)
		}
		values = append(values, v)
	}
	return values, nil
}

// PerResidue assigns each mapped residue of the column map the quality
// value of its alignment column. Truncated residues get 0.
func PerResidue(columns *alignmap.Map, values []float64) []float64 {
	out := make([]float64, columns.Len())
	for i := range out {
		col, ok := columns.At(i)
		if !ok || col < 0 || col >= len(values) {
			continue
		}
		out[i] = values[col]
	}
	return out
}
