package stride

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gph82/GAIN-GRN/internal/sse"
)

func writeStride(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.stride")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const locSample = `REM  -------------------- Secondary structure summary -------------------
LOC  AlphaHelix   SER    10 A      GLU     25 A      model
LOC  AlphaHelix   LYS    30 A      ALA     40 A      model
LOC  Strand       VAL    55 A      ILE     60 A      model
LOC  310Helix     GLY    44 A      ASN     46 A      model
REM  --------------- Detailed secondary structure assignment -------------
`

func TestReadLoc(t *testing.T) {
	m, err := ReadLoc(writeStride(t, locSample))
	require.NoError(t, err)

	require.Len(t, m[sse.AlphaHelix], 2)
	assert.Equal(t, sse.Interval{First: 10, Last: 25}, m[sse.AlphaHelix][0])
	assert.Equal(t, sse.Interval{First: 30, Last: 40}, m[sse.AlphaHelix][1])
	require.Len(t, m[sse.Strand], 1)
	assert.Equal(t, sse.Interval{First: 55, Last: 60}, m[sse.Strand][0])
	require.Len(t, m[sse.Helix310], 1)
	assert.Equal(t, sse.Interval{First: 44, Last: 46}, m[sse.Helix310][0])
}

func TestReadLocRejectsDescendingInterval(t *testing.T) {
	_, err := ReadLoc(writeStride(t, "LOC  Strand       VAL    60 A      ILE     55 A      model\n"))
	assert.Error(t, err)
}

func TestReadLocMissingFile(t *testing.T) {
	_, err := ReadLoc(filepath.Join(t.TempDir(), "absent.stride"))
	assert.Error(t, err)
}

const asgSample = `REM  --------------- Detailed secondary structure assignment -------------
ASG  SER A   10   10    H    AlphaHelix   -60.00    -45.00   120.0      ~~~~
ASG  LEU A   11   11    h    AlphaHelix   -62.00    -44.00   110.0      ~~~~
ASG  GLU A   13   13    E    Strand      -120.00    130.00    90.0      ~~~~
`

func TestReadAsg(t *testing.T) {
	letters, err := ReadAsg(writeStride(t, asgSample))
	require.NoError(t, err)

	assert.Equal(t, byte('H'), letters[10])
	assert.Equal(t, byte('h'), letters[11], "lowercase outlier codes survive")
	assert.Equal(t, byte('E'), letters[13])

	// Residue 12 carries no record; it is filled, not skipped.
	assert.Equal(t, byte(sse.Unassigned), letters[12])
	assert.Equal(t, 13, letters.MaxResidue())
}

func TestReadAsgEmpty(t *testing.T) {
	_, err := ReadAsg(writeStride(t, "REM nothing here\n"))
	assert.Error(t, err)
}

func TestReadAngles(t *testing.T) {
	angles, err := ReadAngles(writeStride(t, asgSample), 0)
	require.NoError(t, err)

	require.Len(t, angles, 3)
	assert.InDelta(t, -60.0, angles[10].Phi, 1e-9)
	assert.InDelta(t, -45.0, angles[10].Psi, 1e-9)
}

func TestReadAnglesFiltered(t *testing.T) {
	angles, err := ReadAngles(writeStride(t, asgSample), 'E')
	require.NoError(t, err)

	require.Len(t, angles, 1)
	assert.InDelta(t, 130.0, angles[13].Psi, 1e-9)
}

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Q8IZF2_model.stride", "P12345_model.stride"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	got, err := FindFile("Q8IZF2", filepath.Join(dir, "*.stride"))
	require.NoError(t, err)
	assert.Contains(t, got, "Q8IZF2_model.stride")

	_, err = FindFile("A0A000", filepath.Join(dir, "*.stride"))
	assert.Error(t, err)
}

func TestAngleOutlierPsiWrap(t *testing.T) {
	angles := map[int]Angles{
		10: {Phi: -120, Psi: 125},
		11: {Phi: -118, Psi: 140},
		12: {Phi: -122, Psi: -170},
		13: {Phi: -121, Psi: 130},
		14: {Phi: -119, Psi: 135},
	}
	phiRef := MeanSD{Mean: 240, SD: 20}
	psiRef := MeanSD{Mean: 130, SD: 15}

	// Psi -170 wraps to 190; its deviance of 60 clears the two-sigma bar.
	res, ok := AngleOutlier(10, 15, angles, phiRef, psiRef, true)
	require.True(t, ok)
	assert.Equal(t, 12, res)
}

func TestAngleOutlierPhiPriority(t *testing.T) {
	angles := map[int]Angles{
		10: {Phi: -125, Psi: 128},
		11: {Phi: -60, Psi: 131},
		12: {Phi: -122, Psi: 132},
	}
	phiRef := MeanSD{Mean: 240, SD: 20}
	psiRef := MeanSD{Mean: 130, SD: 15}

	res, ok := AngleOutlier(10, 13, angles, phiRef, psiRef, false)
	require.True(t, ok)
	assert.Equal(t, 11, res)
}

func TestAngleOutlierNone(t *testing.T) {
	angles := map[int]Angles{
		10: {Phi: -120, Psi: 129},
		11: {Phi: -118, Psi: 131},
	}
	phiRef := MeanSD{Mean: 240, SD: 20}
	psiRef := MeanSD{Mean: 130, SD: 15}

	_, ok := AngleOutlier(10, 12, angles, phiRef, psiRef, true)
	assert.False(t, ok)
}
