// Package fasta reads and writes protein FASTA files and gapped
// reference alignments in FASTA format.
package fasta

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Entry is one named sequence.
type Entry struct {
	Name     string
	Sequence string
}

// ReadSeq reads the first sequence of a FASTA file.
func ReadSeq(path string) (Entry, error) {
	entries, err := ReadMulti(path)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, fmt.Errorf("%s: no sequences", path)
	}
	return entries[0], nil
}

// ReadMulti reads every sequence of a FASTA file in order.
func ReadMulti(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, block := range strings.Split(strings.TrimSpace(string(data)), ">") {
		if block == "" {
			continue
		}
		lines := strings.Split(strings.TrimSpace(block), "\n")
		seq := strings.Join(lines[1:], "")
		entries = append(entries, Entry{
			Name:     strings.TrimSpace(lines[0]),
			Sequence: strings.TrimSpace(seq),
		})
	}
	return entries, nil
}

// ReadAlignment loads a gapped FASTA alignment into a name→row map, each
// row truncated at the cutoff column. Row names are cut at the first "/"
// (Jalview-style "name/start-end" suffixes). A cutoff < 0 keeps full
// rows.
func ReadAlignment(path string, cutoff int) (map[string]string, error) {
	entries, err := ReadMulti(path)
	if err != nil {
		return nil, err
	}
	rows := make(map[string]string, len(entries))
	for _, e := range entries {
		name := strings.SplitN(e.Name, "/", 2)[0]
		row := e.Sequence
		if cutoff >= 0 && cutoff < len(row) {
			row = row[:cutoff]
		}
		rows[name] = row
	}
	return rows, nil
}

// Write writes one sequence as a standard FASTA file.
func Write(path, name, sequence string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, ">%s\n%s\n", name, sequence); err != nil {
		return err
	}
	return w.Flush()
}
