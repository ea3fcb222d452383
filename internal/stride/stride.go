// Package stride parses STRIDE secondary-structure assignment output,
// including the modified variant where conservation outliers are written
// as lowercase letters (H → h, G → g, E → e).
package stride

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gph82/GAIN-GRN/internal/sse"
)

// ASG field positions. Field 3 is the PDB residue number; always use it
// over the enumerating index in field 4 to avoid offsets.
const (
	asgFieldResidue = 3
	asgFieldCode    = 5
	asgFieldPhi     = 7
	asgFieldPsi     = 8
)

// ReadLoc reads the grouped LOC records of a STRIDE file into an interval
// map, per class name, in N→C order.
func ReadLoc(path string) (sse.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := make(sse.Map)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "LOC") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 7 {
			continue
		}
		first, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%s: bad LOC start %q", path, fields[3])
		}
		last, err := strconv.Atoi(fields[6])
		if err != nil {
			return nil, fmt.Errorf("%s: bad LOC end %q", path, fields[6])
		}
		iv, err := sse.NewInterval(first, last)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		m[fields[1]] = append(m[fields[1]], iv)
	}
	return m, sc.Err()
}

// ReadAsg reads the per-residue ASG records, keyed by PDB residue number.
// Residues between the first and last record that carry no ASG line (for
// example residues skipped by the structure prediction) are filled with
// the Unassigned code.
func ReadAsg(path string) (sse.Letters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type asg struct {
		res  int
		code byte
	}
	var records []asg
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "ASG") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) <= asgFieldCode {
			continue
		}
		res, err := strconv.Atoi(fields[asgFieldResidue])
		if err != nil {
			return nil, fmt.Errorf("%s: bad ASG residue %q", path, fields[asgFieldResidue])
		}
		records = append(records, asg{res: res, code: fields[asgFieldCode][0]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no ASG records", path)
	}

	letters := make(sse.Letters)
	for r := records[0].res; r <= records[len(records)-1].res; r++ {
		letters[r] = sse.Unassigned
	}
	for _, rec := range records {
		letters[rec.res] = rec.code
	}
	return letters, nil
}

// Angles holds the backbone dihedral angles of one residue.
type Angles struct {
	Phi float64
	Psi float64
}

// ReadAngles reads phi/psi values per PDB residue number. filterCode, if
// non-zero, keeps only residues assigned that secondary-structure letter.
func ReadAngles(path string, filterCode byte) (map[int]Angles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	angles := make(map[int]Angles)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "ASG") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) <= asgFieldPsi {
			continue
		}
		if filterCode != 0 && fields[asgFieldCode][0] != filterCode {
			continue
		}
		res, err := strconv.Atoi(fields[asgFieldResidue])
		if err != nil {
			continue
		}
		phi, err1 := strconv.ParseFloat(fields[asgFieldPhi], 64)
		psi, err2 := strconv.ParseFloat(fields[asgFieldPsi], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		angles[res] = Angles{Phi: phi, Psi: psi}
	}
	return angles, sc.Err()
}

// FindFile locates the STRIDE file whose path contains name within the
// glob pattern, for batch runs over a directory of per-model outputs.
func FindFile(name, pattern string) (string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		if strings.Contains(m, name) {
			return m, nil
		}
	}
	return "", fmt.Errorf("no stride file matching %q under %q", name, pattern)
}
