package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noriah/catscope/display"
)

func TestValidateDefaults(t *testing.T) {
	cfg := newZeroConfig()
	require.NoError(t, cfg.validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"rate", func(c *config) { c.sampleRate = 0 }},
		{"samples", func(c *config) { c.sampleSize = 2 }},
		{"channels", func(c *config) { c.channelCount = 0 }},
		{"scale", func(c *config) { c.scale = 11 }},
		{"note", func(c *config) { c.tune = "H" }},
		{"mode", func(c *config) { c.mode = "waterfall" }},
		{"window", func(c *config) { c.window = "kaiser" }},
		{"average", func(c *config) { c.average = 0 }},
		{"smoothing", func(c *config) { c.smoothing = 100 }},
		{"color", func(c *config) { c.axisColor = 300 }},
		{"palette", func(c *config) { c.palette = "1,x" }},
		{"empty palette", func(c *config) { c.palette = " , " }},
	}

	for _, tt := range tests {
		cfg := newZeroConfig()
		tt.modify(&cfg)
		assert.Error(t, cfg.validate(), tt.name)
	}
}

func TestValidateTunes(t *testing.T) {
	cfg := newZeroConfig()
	cfg.sampleRate = 48000
	cfg.tune = "A4"

	require.NoError(t, cfg.validate())
	assert.Equal(t, 436, cfg.sampleSize)
}

func TestGraphConfigFromFlags(t *testing.T) {
	cfg := newZeroConfig()
	cfg.scale = 2
	cfg.noReference = true
	cfg.noBraille = true
	cfg.palette = "4, 6"
	cfg.mode = "spectro"
	cfg.average = 3
	cfg.smoothing = 50
	require.NoError(t, cfg.validate())

	graph := cfg.graphConfig()
	assert.Equal(t, 2.0, graph.Scale)
	assert.False(t, graph.References)
	assert.True(t, graph.ShowUI)
	assert.Equal(t, display.MarkerDot, graph.Marker)
	assert.Equal(t, []display.Color{display.ColorBlue, display.ColorCyan}, graph.Palette)
	assert.Equal(t, 1024, graph.Width)

	modes := cfg.modes()
	assert.Equal(t, display.KindSpectroscope, modes.Current)
	assert.Equal(t, 3, modes.Spectroscope.Average)
	assert.Equal(t, 0.5, modes.Spectroscope.Smoothing)
	assert.Equal(t, 1, modes.Oscilloscope.Depth)
}
