package fasta

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

// Map-file truncation defaults: column 801 is the GPS+1 column of the
// reference alignment and must be included; sequences longer than 700
// residues are cut from the N-terminus to stay within structure
// prediction size limits.
const (
	DefaultRightThreshold = 801
	DefaultMaxSize        = 700
)

// TruncateFromMap cuts the sequence down to the residues covered by the
// alignment, as recorded in a mafft --add map file (lines of
// "residue, number, column" with "-" for unaligned residues). The cut
// ends at the first unaligned residue after rightThreshold is reached and
// keeps at most maxSize residues counted from the C-terminus.
func TruncateFromMap(mapPath, sequence string, rightThreshold, maxSize int) (string, error) {
	f, err := os.Open(mapPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	firstResidue := -1
	lastResidue := -1
	beyondRight := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, ">") || strings.HasPrefix(line, "#") {
			continue
		}
		items := strings.Split(strings.TrimSpace(line), ", ")
		if len(items) < 3 {
			continue
		}
		column := strings.TrimSpace(items[2])
		number, err := strconv.Atoi(strings.TrimSpace(items[1]))
		if err != nil {
			continue
		}
		if column != "-" && firstResidue < 0 {
			log.Printf("fasta: alignment fitting: initial residue %d at column %s", number, column)
			firstResidue = number
		}
		if column != "-" {
			if col, err := strconv.Atoi(column); err == nil && col >= rightThreshold {
				beyondRight = true
				lastResidue = number
			}
		}
		if beyondRight && column == "-" {
			lastResidue = number
			break
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	if firstResidue < 0 || lastResidue < 0 {
		return "", fmt.Errorf("%s: map file covers no aligned residue at or beyond column %d", mapPath, rightThreshold)
	}
	log.Printf("fasta: alignment fitting: fitted interval %d..%d", firstResidue, lastResidue)

	left := 0
	if lastResidue-firstResidue > maxSize {
		left = lastResidue - maxSize
	}
	if lastResidue > len(sequence) {
		lastResidue = len(sequence)
	}
	if left > lastResidue {
		left = lastResidue
	}
	return sequence[left:lastResidue], nil
}
