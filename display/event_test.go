package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventMagnitude(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want float64
	}{
		{ModNone, 1},
		{ModShift, 10},
		{ModCtrl, 5},
		{ModAlt, 0.2},
		{ModShift | ModCtrl, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyEvent(KeyUp, tt.mod).Magnitude(), "mod %d", tt.mod)
	}
}

func TestEventIsRune(t *testing.T) {
	assert.True(t, RuneEvent('q', ModNone).IsRune('q'))
	assert.True(t, RuneEvent('q', ModCtrl).IsRune('q'))
	assert.False(t, RuneEvent('w', ModNone).IsRune('q'))
	assert.False(t, KeyEvent(KeyEsc, ModNone).IsRune(0))
}
