package display

import (
	"fmt"

	"github.com/noriah/catscope/input"
)

// thresholdStep is the base threshold change per key press.
const thresholdStep = 0.01

// Oscilloscope plots amplitude over time, optionally aligned to a trigger.
type Oscilloscope struct {
	Triggering  bool
	FallingEdge bool
	Threshold   float64 // in [-1, 1]
	Depth       int     // samples that must stay past the threshold
	Peaks       bool    // show min/max markers
}

// NewOscilloscope returns an untriggered oscilloscope.
func NewOscilloscope() Oscilloscope {
	return Oscilloscope{Depth: 1}
}

func (o *Oscilloscope) depth() int {
	if o.Depth < 1 {
		return 1
	}
	return o.Depth
}

// Triggered reports whether data crosses threshold at index and stays past it
// for depth samples. Indexes without a full lookahead never trigger.
func Triggered(data []float64, index int, threshold float64, depth int, fallingEdge bool) bool {
	if depth < 1 {
		depth = 1
	}

	if index < 0 || len(data) < index+depth+1 {
		return false
	}

	if fallingEdge {
		if data[index] < threshold {
			return false
		}

		for _, v := range data[index+1 : index+depth+1] {
			if v >= threshold {
				return false
			}
		}

		return true
	}

	if data[index] > threshold {
		return false
	}

	for _, v := range data[index+1 : index+depth+1] {
		if v <= threshold {
			return false
		}
	}

	return true
}

// TriggerOffset returns the first index of channel that triggers, or 0 when
// triggering is off or nothing qualifies.
func (o *Oscilloscope) TriggerOffset(channel []float64) int {
	if !o.Triggering {
		return 0
	}

	depth := o.depth()

	for idx := 0; idx+depth < len(channel); idx++ {
		if Triggered(channel, idx, o.Threshold, depth, o.FallingEdge) {
			return idx
		}
	}

	return 0
}

func (o *Oscilloscope) channelName(index int) string {
	switch index {
	case 0:
		return "L"
	case 1:
		return "R"
	default:
		return channelNumber(index)
	}
}

func (o *Oscilloscope) header(_ *GraphConfig) string {
	if !o.Triggering {
		return "live"
	}

	edge := "^"
	if o.FallingEdge {
		edge = "v"
	}

	depth := ""
	if o.Depth > 1 {
		depth = fmt.Sprintf(":%d", o.Depth)
	}

	return fmt.Sprintf("%s %.2f%s trigger", edge, o.Threshold, depth)
}

func (o *Oscilloscope) axis(cfg *GraphConfig, dim Dimension) Axis {
	if dim == DimensionX {
		return newAxis(cfg, "time -", 0, float64(cfg.Samples))
	}

	return newAxis(cfg, "| amplitude", -cfg.Scale, cfg.Scale)
}

func (o *Oscilloscope) references(cfg *GraphConfig) []Dataset {
	end := float64(cfg.Samples)

	refs := []Dataset{line(cfg, Point{0, 0}, Point{end, 0})}

	if o.Triggering {
		refs = append(refs, line(cfg, Point{0, o.Threshold}, Point{end, o.Threshold}))
	}

	return refs
}

// process aligns every channel to the trigger found on channel 0. Channels are
// emitted last to first so that channel 0 paints on top.
func (o *Oscilloscope) process(cfg *GraphConfig, data input.Matrix) []Dataset {
	var out []Dataset

	offset := 0
	if len(data) > 0 {
		offset = o.TriggerOffset(data[0])
	}

	if o.Triggering {
		out = append(out, Dataset{
			Name:   "T",
			Points: []Point{{0, o.Threshold}},
			Marker: cfg.Marker,
			Graph:  GraphScatter,
			Color:  cfg.LabelsColor,
		})
	}

	for n := len(data) - 1; n >= 0; n-- {
		channel := data[n]

		if o.Peaks && len(channel) > 0 {
			lo, hi := peaks(channel)
			out = append(out, Dataset{
				Points: []Point{{0, lo}, {0, hi}},
				Marker: cfg.Marker,
				Graph:  GraphScatter,
				Color:  cfg.PaletteColor(n),
			})
		}

		var points []Point
		if offset < len(channel) {
			points = make([]Point, 0, len(channel)-offset)
			for idx, v := range channel[offset:] {
				points = append(points, Point{float64(idx), v})
			}
		}

		out = append(out, Dataset{
			Name:   o.channelName(n),
			Points: points,
			Marker: cfg.Marker,
			Graph:  cfg.GraphType(),
			Color:  cfg.PaletteColor(n),
		})
	}

	return out
}

func peaks(channel []float64) (lo, hi float64) {
	lo, hi = channel[0], channel[0]
	for _, v := range channel[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func (o *Oscilloscope) handle(ev Event) {
	mag := ev.Magnitude()

	switch ev.Key {
	case KeyPgUp:
		o.Threshold = clampFloat(o.Threshold+thresholdStep*mag, -1, 1)
	case KeyPgDn:
		o.Threshold = clampFloat(o.Threshold-thresholdStep*mag, -1, 1)
	case KeyEsc:
		o.Triggering = false
		o.Threshold = 0
		o.Depth = 1
	case KeyRune:
		switch ev.Rune {
		case 't':
			o.Triggering = !o.Triggering
		case 'e':
			o.FallingEdge = !o.FallingEdge
		case 'p':
			o.Peaks = !o.Peaks
		case '=':
			o.Depth = o.depth() + 1
		case '-':
			o.Depth = o.depth() - 1
		case '+':
			o.Depth = o.depth() + 10
		case '_':
			o.Depth = o.depth() - 10
		}

		if o.Depth < 1 {
			o.Depth = 1
		}
	}
}
