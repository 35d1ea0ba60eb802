package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderCells(t *testing.T) {
	h := Header{
		Mode:    "oscillo",
		Status:  "live",
		Scale:   1.5,
		Samples: 512,
		Width:   1024,
		FPS:     60,
	}

	assert.Equal(t, []string{
		"oscillo::catscope", "live", "-1.50x+", "512/1024 spf", "60fps", "---", "|>",
	}, h.Cells())

	h.Scatter = true
	h.Pause = true
	cells := h.Cells()
	assert.Equal(t, "***", cells[5])
	assert.Equal(t, "||", cells[6])
}
