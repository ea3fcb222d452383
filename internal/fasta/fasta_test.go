package fasta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadSeq(t *testing.T) {
	path := writeFile(t, "one.fa", ">Q8IZF2\nMKTAYIAK\nQRQISFVK\n")

	entry, err := ReadSeq(path)
	require.NoError(t, err)
	assert.Equal(t, "Q8IZF2", entry.Name)
	assert.Equal(t, "MKTAYIAKQRQISFVK", entry.Sequence, "wrapped lines are joined")
}

func TestReadSeqEmptyFile(t *testing.T) {
	_, err := ReadSeq(writeFile(t, "empty.fa", ""))
	assert.Error(t, err)
}

func TestReadMulti(t *testing.T) {
	path := writeFile(t, "multi.fa", ">A\nMKT\n>B\nAYI\n>C\nQRQ\n")

	entries, err := ReadMulti(path)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "A", Sequence: "MKT"}, entries[0])
	assert.Equal(t, Entry{Name: "B", Sequence: "AYI"}, entries[1])
	assert.Equal(t, Entry{Name: "C", Sequence: "QRQ"}, entries[2])
}

func TestReadAlignment(t *testing.T) {
	path := writeFile(t, "aln.fa", ">Q8IZF2/101-200\n--MKT-AYI--\n>P12345\nQRQIS-FVK--\n")

	rows, err := ReadAlignment(path, -1)
	require.NoError(t, err)

	// Jalview range suffixes are stripped from row names.
	assert.Equal(t, "--MKT-AYI--", rows["Q8IZF2"])
	assert.Equal(t, "QRQIS-FVK--", rows["P12345"])
}

func TestReadAlignmentCutoff(t *testing.T) {
	path := writeFile(t, "aln.fa", ">A\n--MKT-AYI--\n")

	rows, err := ReadAlignment(path, 5)
	require.NoError(t, err)
	assert.Equal(t, "--MKT", rows["A"])
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fa")
	require.NoError(t, Write(path, "Q8IZF2", "MKTAYIAK"))

	entry, err := ReadSeq(path)
	require.NoError(t, err)
	assert.Equal(t, "Q8IZF2", entry.Name)
	assert.Equal(t, "MKTAYIAK", entry.Sequence)
}

const mapSample = `># generated map
M, 1, 795
A, 2, 801
L, 3, 802
D, 4, -
K, 5, -
`

func TestTruncateFromMap(t *testing.T) {
	path := writeFile(t, "seq.map", mapSample)

	got, err := TruncateFromMap(path, "MALDK", 800, 700)
	require.NoError(t, err)

	// The cut runs to the first unaligned residue after the threshold
	// column is passed.
	assert.Equal(t, "MALD", got)
}

func TestTruncateFromMapCutsNTerminus(t *testing.T) {
	path := writeFile(t, "seq.map", mapSample)

	got, err := TruncateFromMap(path, "MALDK", 800, 2)
	require.NoError(t, err)
	assert.Equal(t, "LD", got)
}

func TestTruncateFromMapNoCoverage(t *testing.T) {
	path := writeFile(t, "seq.map", "M, 1, 5\nA, 2, 6\n")

	_, err := TruncateFromMap(path, "MA", 800, 700)
	assert.Error(t, err)
}
