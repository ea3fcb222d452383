package alignmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindStart(t *testing.T) {
	tests := []struct {
		name string
		row  string
		seq  string
		want int
		ok   bool
	}{
		{
			name: "short sequence inside gapped row",
			row:  "--AC-DEF--G",
			seq:  "ACDEFG",
			want: 2,
			ok:   true,
		},
		{
			name: "row without leading gaps",
			row:  "ACDEFG",
			seq:  "ACDEFG",
			want: 0,
			ok:   true,
		},
		{
			name: "seed truncated to fifteen residues",
			row:  "----MKTAYIAKQRQISFVKSH",
			seq:  "MKTAYIAKQRQISFVKSHFSRQ",
			want: 4,
			ok:   true,
		},
		{
			name: "seed absent from row",
			row:  "--AC-DEF--G",
			seq:  "WWWWWW",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindStart(tt.row, tt.seq)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMapsEveryResidue(t *testing.T) {
	alignment := map[string]string{
		"Q8IZF2": "--AC-DEF--G",
	}

	m, err := Build("Q8IZF2", "ACDEFG", alignment, Options{})
	require.NoError(t, err)

	require.Equal(t, 6, m.Len())
	want := []int{2, 3, 5, 6, 7, 10}
	for i, col := range want {
		got, ok := m.At(i)
		require.True(t, ok, "residue %d", i)
		assert.Equal(t, col, got, "residue %d", i)
	}
}

func TestBuildStripsFastaSuffix(t *testing.T) {
	alignment := map[string]string{
		"Q8IZF2": "ACDEFG",
	}

	m, err := Build("Q8IZF2.fa", "ACDEFG", alignment, Options{})
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())
}

func TestBuildNameNotInAlignment(t *testing.T) {
	_, err := Build("P00000", "ACDEFG", map[string]string{"Q8IZF2": "ACDEFG"}, Options{})

	var unmappable *UnmappableError
	require.ErrorAs(t, err, &unmappable)
	assert.Equal(t, "P00000", unmappable.Name)
}

func TestBuildSeedNotFound(t *testing.T) {
	_, err := Build("Q8IZF2", "WWWWWW", map[string]string{"Q8IZF2": "ACDEFG"}, Options{})

	var unmappable *UnmappableError
	require.ErrorAs(t, err, &unmappable)
}

func TestBuildTruncatedResiduesStayUnmapped(t *testing.T) {
	alignment := map[string]string{
		"Q8IZF2": "--AC-DEF--G",
	}
	truncated := []bool{false, false, true, false, false, false}

	m, err := Build("Q8IZF2", "ACDEFG", alignment, Options{Truncated: truncated})
	require.NoError(t, err)

	_, ok := m.At(2)
	assert.False(t, ok, "truncated residue must not map")

	// The walk does not consume a column for the truncated residue; the
	// following residue still lands on its own column.
	got, ok := m.At(3)
	require.True(t, ok)
	assert.Equal(t, 6, got)
}

func TestBuildExplicitStartColumn(t *testing.T) {
	alignment := map[string]string{
		"Q8IZF2": "AC--AC-DEF--G",
	}

	start := 4
	m, err := Build("Q8IZF2", "ACDEFG", alignment, Options{StartColumn: &start})
	require.NoError(t, err)

	got, ok := m.At(0)
	require.True(t, ok)
	assert.Equal(t, 4, got)
}

func TestBuildRepeatedResiduesAdvance(t *testing.T) {
	alignment := map[string]string{
		"Q8IZF2": "AA-A",
	}

	m, err := Build("Q8IZF2", "AAA", alignment, Options{})
	require.NoError(t, err)

	want := []int{0, 1, 3}
	for i, col := range want {
		got, ok := m.At(i)
		require.True(t, ok)
		assert.Equal(t, col, got)
	}
}

func TestResidueAtAndLastColumn(t *testing.T) {
	m, err := Build("Q8IZF2", "ACDEFG", map[string]string{"Q8IZF2": "--AC-DEF--G"}, Options{})
	require.NoError(t, err)

	res, ok := m.ResidueAt(5)
	require.True(t, ok)
	assert.Equal(t, 2, res)

	_, ok = m.ResidueAt(4)
	assert.False(t, ok, "gap columns hold no residue")

	last, ok := m.LastColumn()
	require.True(t, ok)
	assert.Equal(t, 10, last)
}

func TestGPSCenter(t *testing.T) {
	m, err := Build("Q8IZF2", "ACDEFG", map[string]string{"Q8IZF2": "--AC-DEF--G"}, Options{})
	require.NoError(t, err)

	res, ok := m.GPSCenter(7)
	require.True(t, ok)
	assert.Equal(t, 4, res)

	_, ok = m.GPSCenter(99)
	assert.False(t, ok)
}

func TestAtOutOfRange(t *testing.T) {
	m, err := Build("Q8IZF2", "AC", map[string]string{"Q8IZF2": "AC"}, Options{})
	require.NoError(t, err)

	_, ok := m.At(-1)
	assert.False(t, ok)
	_, ok = m.At(2)
	assert.False(t, ok)
}
