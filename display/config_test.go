package display

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustSamplesStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cfg := NewGraphConfig(100, 44100)

	steps := []int{25, -25, 250, -250, 125, -125, 5, -5}
	for i := 0; i < 1000; i++ {
		cfg.AdjustSamples(steps[rng.Intn(len(steps))])
		assert.GreaterOrEqual(t, cfg.Samples, 0)
		assert.LessOrEqual(t, cfg.Samples, 200)
	}

	for i := 0; i < 20; i++ {
		cfg.AdjustSamples(250)
	}
	assert.Equal(t, 200, cfg.Samples)

	for i := 0; i < 20; i++ {
		cfg.AdjustSamples(-250)
	}
	assert.Equal(t, 0, cfg.Samples)
}

func TestAdjustScaleClamps(t *testing.T) {
	cfg := NewGraphConfig(100, 44100)

	cfg.AdjustScale(-5)
	assert.Equal(t, 0.0, cfg.Scale)

	cfg.AdjustScale(50)
	assert.Equal(t, MaxScale, cfg.Scale)

	cfg.AdjustScale(-0.5)
	assert.InDelta(t, 9.5, cfg.Scale, 1e-9)
}

func TestResetRestoresZoom(t *testing.T) {
	cfg := NewGraphConfig(100, 44100)
	cfg.AdjustSamples(-60)
	cfg.AdjustScale(2)

	cfg.Reset()
	assert.Equal(t, 100, cfg.Samples)
	assert.Equal(t, 1.0, cfg.Scale)
}

func TestPaletteColorCycles(t *testing.T) {
	cfg := NewGraphConfig(100, 44100)
	cfg.Palette = []Color{ColorRed, ColorBlue}

	assert.Equal(t, ColorRed, cfg.PaletteColor(0))
	assert.Equal(t, ColorBlue, cfg.PaletteColor(1))
	assert.Equal(t, ColorRed, cfg.PaletteColor(4))

	cfg.Palette = nil
	assert.Equal(t, ColorWhite, cfg.PaletteColor(2))
}

func TestGraphType(t *testing.T) {
	cfg := NewGraphConfig(100, 44100)
	assert.Equal(t, GraphLine, cfg.GraphType())

	cfg.Scatter = true
	assert.Equal(t, GraphScatter, cfg.GraphType())
}
