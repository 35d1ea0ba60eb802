package display

import (
	"github.com/pkg/errors"

	"github.com/noriah/catscope/input"
)

// Kind names a display mode.
type Kind int

const (
	KindOscilloscope Kind = iota
	KindVectorscope
	KindSpectroscope

	kindCount
)

var kindNames = [...]string{
	KindOscilloscope: "oscillo",
	KindVectorscope:  "vector",
	KindSpectroscope: "spectro",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Next returns the mode that follows k in the Tab cycle.
func (k Kind) Next() Kind {
	return (k + 1) % kindCount
}

// ParseKind returns the mode called name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, errors.Errorf("unknown mode %q", name)
}

// KindNames lists the mode names in cycle order.
func KindNames() []string {
	return append([]string(nil), kindNames[:]...)
}

// Modes holds the private state of every mode and dispatches to the active
// one. Inactive modes keep their state across switches.
type Modes struct {
	Current Kind

	Oscilloscope Oscilloscope
	Vectorscope  Vectorscope
	Spectroscope Spectroscope
}

// NewModes returns every mode in its startup state with start active.
func NewModes(start Kind) *Modes {
	return &Modes{
		Current:      start,
		Oscilloscope: NewOscilloscope(),
		Spectroscope: NewSpectroscope(),
	}
}

// Cycle switches to the next mode. The spectroscope starts averaging afresh
// each time it becomes active, since it saw no frames while inactive.
func (m *Modes) Cycle() {
	m.Current = m.Current.Next()

	if m.Current == KindSpectroscope {
		m.Spectroscope.restart()
	}
}

// Name is the active mode's name.
func (m *Modes) Name() string {
	return m.Current.String()
}

// Axis returns the active mode's axis for dim. It does not mutate anything.
func (m *Modes) Axis(cfg *GraphConfig, dim Dimension) Axis {
	switch m.Current {
	case KindVectorscope:
		return m.Vectorscope.axis(cfg, dim)
	case KindSpectroscope:
		return m.Spectroscope.axis(cfg, dim)
	default:
		return m.Oscilloscope.axis(cfg, dim)
	}
}

// Header returns the active mode's status text.
func (m *Modes) Header(cfg *GraphConfig) string {
	switch m.Current {
	case KindVectorscope:
		return m.Vectorscope.header(cfg)
	case KindSpectroscope:
		return m.Spectroscope.header(cfg)
	default:
		return m.Oscilloscope.header(cfg)
	}
}

// References returns the active mode's guide geometry.
func (m *Modes) References(cfg *GraphConfig) []Dataset {
	switch m.Current {
	case KindVectorscope:
		return m.Vectorscope.references(cfg)
	case KindSpectroscope:
		return m.Spectroscope.references(cfg)
	default:
		return m.Oscilloscope.references(cfg)
	}
}

// Process transforms data with the active mode.
func (m *Modes) Process(cfg *GraphConfig, data input.Matrix) []Dataset {
	switch m.Current {
	case KindVectorscope:
		return m.Vectorscope.process(cfg, data)
	case KindSpectroscope:
		return m.Spectroscope.process(cfg, data)
	default:
		return m.Oscilloscope.process(cfg, data)
	}
}

// Datasets returns the references, when enabled, followed by the processed
// traces so that traces paint on top.
func (m *Modes) Datasets(cfg *GraphConfig, data input.Matrix) []Dataset {
	var out []Dataset
	if cfg.References {
		out = m.References(cfg)
	}
	return append(out, m.Process(cfg, data)...)
}

// Handle forwards ev to the active mode.
func (m *Modes) Handle(ev Event) {
	switch m.Current {
	case KindVectorscope:
		m.Vectorscope.handle(ev)
	case KindSpectroscope:
		m.Spectroscope.handle(ev)
	default:
		m.Oscilloscope.handle(ev)
	}
}
