package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noriah/catscope/input"
)

func TestKindCycle(t *testing.T) {
	assert.Equal(t, KindVectorscope, KindOscilloscope.Next())
	assert.Equal(t, KindSpectroscope, KindVectorscope.Next())
	assert.Equal(t, KindOscilloscope, KindSpectroscope.Next())
}

func TestParseKind(t *testing.T) {
	for _, name := range KindNames() {
		k, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := ParseKind("waterfall")
	assert.Error(t, err)
}

func TestModesRoundTripKeepsState(t *testing.T) {
	m := NewModes(KindOscilloscope)

	m.Handle(RuneEvent('t', ModNone))
	m.Handle(RuneEvent('e', ModNone))
	m.Handle(KeyEvent(KeyPgUp, ModShift))
	m.Handle(RuneEvent('=', ModNone))
	before := m.Oscilloscope

	m.Cycle()
	assert.Equal(t, "vector", m.Name())
	m.Handle(RuneEvent('t', ModNone))

	m.Cycle()
	assert.Equal(t, "spectro", m.Name())
	m.Handle(KeyEvent(KeyPgUp, ModNone))
	m.Handle(KeyEvent(KeyEsc, ModNone))

	m.Cycle()
	assert.Equal(t, KindOscilloscope, m.Current)
	assert.Equal(t, before, m.Oscilloscope)
}

func TestModesSpectroscopeRestartsWhenActivated(t *testing.T) {
	cfg := NewGraphConfig(4, 44100)
	m := NewModes(KindSpectroscope)
	m.Spectroscope.Average = 2

	m.Process(&cfg, input.Matrix{{1, 2, 3, 4}})
	m.Process(&cfg, input.Matrix{{5, 6, 7, 8}})

	for i := 0; i < 3; i++ {
		m.Cycle()
	}
	require.Equal(t, KindSpectroscope, m.Current)
	assert.Equal(t, 2, m.Spectroscope.Average)

	m.Process(&cfg, input.Matrix{{9, 10, 11, 12}})
	assert.Equal(t, []float64{9, 10, 11, 12}, m.Spectroscope.samples(0))
}

func TestModesDispatch(t *testing.T) {
	cfg := NewGraphConfig(4, 44100)
	m := NewModes(KindVectorscope)

	assert.Equal(t, "left -", m.Axis(&cfg, DimensionX).Title)
	assert.Equal(t, "live", m.Header(&cfg))

	m.Handle(RuneEvent('w', ModNone))
	assert.False(t, m.Spectroscope.Window)

	m.Current = KindSpectroscope
	m.Handle(RuneEvent('w', ModNone))
	assert.True(t, m.Spectroscope.Window)
	assert.Equal(t, "frequency -", m.Axis(&cfg, DimensionX).Title)
}

func TestModesDatasetsReferencesFirst(t *testing.T) {
	cfg := NewGraphConfig(4, 44100)
	m := NewModes(KindOscilloscope)
	data := input.Matrix{{0, 1, 0, -1}}

	sets := m.Datasets(&cfg, data)
	require.Len(t, sets, 2)
	assert.Equal(t, cfg.AxisColor, sets[0].Color)
	assert.Equal(t, "L", sets[1].Name)

	cfg.References = false
	sets = m.Datasets(&cfg, data)
	require.Len(t, sets, 1)
	assert.Equal(t, "L", sets[0].Name)
}
