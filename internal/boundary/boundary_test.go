package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gph82/GAIN-GRN/internal/sse"
)

func TestSmooth(t *testing.T) {
	t.Run("bracket one is a copy", func(t *testing.T) {
		in := []float64{1, -1, 0.5}
		assert.Equal(t, in, Smooth(in, 1))
	})

	t.Run("odd bracket is symmetric", func(t *testing.T) {
		out := Smooth([]float64{0, 0, 3, 0, 0}, 3)
		assert.Equal(t, []float64{0, 3, 3, 3, 0}, out)
	})

	t.Run("even bracket extends further left", func(t *testing.T) {
		out := Smooth([]float64{0, 0, 3, 0, 0}, 2)
		// Window [i-1, i]: the spike contributes at its own index and
		// the one after.
		assert.Equal(t, []float64{0, 0, 3, 3, 0}, out)
	})

	t.Run("edges clamp to the array", func(t *testing.T) {
		out := Smooth([]float64{1, 1, 1, 1}, 3)
		assert.Equal(t, []float64{2, 3, 3, 2}, out)
	})
}

func TestSignChanges(t *testing.T) {
	tests := []struct {
		name   string
		signal []float64
		want   []int
	}{
		{
			name:   "single crossing with wrap change at zero",
			signal: []float64{-1, -1, 1, 1},
			want:   []int{0, 2},
		},
		{
			name:   "zero absorbed into preceding sign",
			signal: []float64{1, 1, 0, -1},
			want:   []int{0, 3},
		},
		{
			name:   "uniform sign has no crossings",
			signal: []float64{1, 1, 1},
			want:   nil,
		},
		{
			name:   "all zero has no crossings",
			signal: []float64{0, 0, 0},
			want:   nil,
		},
		{
			name:   "empty",
			signal: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignChanges(tt.signal))
		})
	}
}

func TestDetect(t *testing.T) {
	// Score array [-1 x5, 0, 0, 1 x5] with bracket 3 and threshold 5:
	// the helical run of length 5 qualifies and the boundary lands in
	// the two-residue gap.
	m := sse.Map{
		sse.AlphaHelix: {{First: 0, Last: 5}},
		sse.Strand:     {{First: 7, Last: 12}},
	}
	opts := Options{BracketSize: 3, DomainThreshold: 5}

	res, ok := Detect(m, 12, opts)
	require.True(t, ok)
	assert.Equal(t, 0, res.Start)
	assert.Equal(t, 5, res.Boundary)
	assert.Less(t, res.Start, res.Boundary)
	assert.Less(t, res.Boundary, 12)
}

func TestDetectNotADomain(t *testing.T) {
	t.Run("missing strand class", func(t *testing.T) {
		m := sse.Map{sse.AlphaHelix: {{First: 0, Last: 60}}}
		_, ok := Detect(m, 100, DefaultOptions())
		assert.False(t, ok)
	})

	t.Run("missing helix class", func(t *testing.T) {
		m := sse.Map{sse.Strand: {{First: 0, Last: 60}}}
		_, ok := Detect(m, 100, DefaultOptions())
		assert.False(t, ok)
	})

	t.Run("no run meets the threshold", func(t *testing.T) {
		m := sse.Map{
			sse.AlphaHelix: {{First: 0, Last: 4}},
			sse.Strand:     {{First: 8, Last: 12}},
		}
		_, ok := Detect(m, 20, Options{BracketSize: 3, DomainThreshold: 50})
		assert.False(t, ok)
	})
}

func TestDetectTruncateN(t *testing.T) {
	// The wide smoothing bracket pulls the provisional start to residue
	// 1, well before the first helical residue at 4; the margin re-pins
	// the start to one residue before that helix.
	m := sse.Map{
		sse.AlphaHelix: {{First: 4, Last: 10}},
		sse.Strand:     {{First: 12, Last: 16}},
	}
	base := Options{BracketSize: 7, DomainThreshold: 4}
	res, ok := Detect(m, 16, base)
	require.True(t, ok)
	require.Equal(t, 1, res.Start)

	margin := 1
	truncated := base
	truncated.TruncateN = &margin
	res, ok = Detect(m, 16, truncated)
	require.True(t, ok)
	assert.Equal(t, 3, res.Start)
}

func TestDetectBoundaryInsideGap(t *testing.T) {
	// A larger synthetic domain: helix block then strand block with a
	// ten-residue connecting loop; the boundary must land inside it.
	m := sse.Map{
		sse.AlphaHelix: {{First: 0, Last: 50}},
		sse.Strand:     {{First: 60, Last: 90}},
	}
	res, ok := Detect(m, 100, Options{BracketSize: 5, DomainThreshold: 30})
	require.True(t, ok)
	assert.Equal(t, 0, res.Start)
	assert.GreaterOrEqual(t, res.Boundary, 50)
	assert.LessOrEqual(t, res.Boundary, 59)
}
