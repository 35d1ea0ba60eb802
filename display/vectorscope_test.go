package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noriah/catscope/input"
)

func ramp(n int, start float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

func countPoints(sets []Dataset) int {
	total := 0
	for _, s := range sets {
		total += len(s.Points)
	}
	return total
}

func TestVectorscopePairs(t *testing.T) {
	tests := []struct {
		name   string
		a, b   int
		sample int
		want   int
	}{
		{"equal", 5, 5, 10, 5},
		{"mismatch", 5, 3, 10, 3},
		{"truncated", 8, 8, 2, 2},
		{"no samples", 8, 8, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewGraphConfig(tt.a, 44100)
			cfg.Samples = tt.sample

			var v Vectorscope
			sets := v.process(&cfg, input.Matrix{ramp(tt.a, 0), ramp(tt.b, 100)})
			require.Len(t, sets, 2)

			assert.Equal(t, tt.want, countPoints(sets))

			diff := len(sets[0].Points) - len(sets[1].Points)
			assert.True(t, diff == 0 || diff == -1, "halves %d and %d",
				len(sets[0].Points), len(sets[1].Points))
		})
	}
}

func TestVectorscopeOlderHalfFirst(t *testing.T) {
	cfg := NewGraphConfig(4, 44100)

	var v Vectorscope
	sets := v.process(&cfg, input.Matrix{{1, 2, 3, 4}, {5, 6, 7, 8}})
	require.Len(t, sets, 2)

	assert.Equal(t, []Point{{1, 5}, {2, 6}}, sets[0].Points)
	assert.Equal(t, []Point{{3, 7}, {4, 8}}, sets[1].Points)
	assert.NotEqual(t, sets[0].Color, sets[1].Color)
}

func TestVectorscopeLeftoverChannel(t *testing.T) {
	cfg := NewGraphConfig(4, 44100)

	var v Vectorscope
	sets := v.process(&cfg, input.Matrix{{1, 2, 3, 4}, {5, 6, 7, 8}, {0.5, 0.25, 0, -1}})
	require.Len(t, sets, 4)

	leftover := append(append([]Point(nil), sets[2].Points...), sets[3].Points...)
	assert.Equal(t, []Point{{0.5, 0}, {0.25, 1}, {0, 2}, {-1, 3}}, leftover)
}

func TestVectorscopeAxisAndReferences(t *testing.T) {
	for _, scale := range []float64{0, 1, 2.5} {
		cfg := NewGraphConfig(16, 44100)
		cfg.Scale = scale

		var v Vectorscope
		assert.Equal(t, [2]float64{-scale, scale}, v.axis(&cfg, DimensionX).Bounds)
		assert.Equal(t, [2]float64{-scale, scale}, v.axis(&cfg, DimensionY).Bounds)

		refs := v.references(&cfg)
		require.Len(t, refs, 2)
		assert.Equal(t, []Point{{-scale, 0}, {scale, 0}}, refs[0].Points)
		assert.Equal(t, []Point{{0, -scale}, {0, scale}}, refs[1].Points)
	}
}
