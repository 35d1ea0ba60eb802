// Package processor runs the visualizer loop: pull a frame, transform it with
// the active display mode, draw it, then apply the queued input events.
package processor

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/noriah/catscope/display"
	"github.com/noriah/catscope/input"
)

// Output is the rendering sink and the keyboard queue.
type Output interface {
	// Draw renders one frame.
	Draw(display.Frame) error
	// PollEvent returns the next queued event without blocking. The second
	// value is false once the queue is empty.
	PollEvent() (display.Event, bool)
}

// Config is the processor configuration.
type Config struct {
	Source input.Session        // frame source
	Output Output               // renderer and event queue
	Graph  *display.GraphConfig // shared drawing state
	Modes  *display.Modes       // display modes
	Clock  func() time.Time     // frame rate clock, time.Now when nil
}

// Processor owns the loop state.
type Processor struct {
	src   input.Session
	out   Output
	graph *display.GraphConfig
	modes *display.Modes
	meter *FrameMeter

	current input.Matrix
	quit    bool
}

// New returns a processor for cfg.
func New(cfg Config) *Processor {
	modes := cfg.Modes
	if modes == nil {
		modes = display.NewModes(display.KindOscilloscope)
	}

	return &Processor{
		src:   cfg.Source,
		out:   cfg.Output,
		graph: cfg.Graph,
		modes: modes,
		meter: NewFrameMeter(cfg.Clock),
	}
}

// Process runs until the user quits, ctx is cancelled or a step fails. A
// source failure is wrapped, a draw failure is returned as is.
func (p *Processor) Process(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		running, err := p.Step()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		if !running {
			return nil
		}
	}
}

// Step runs a single iteration. It reports false once the user asked to quit.
func (p *Processor) Step() (bool, error) {
	frame, err := p.src.Next()
	if err != nil {
		return false, errors.Wrap(err, "failed to receive frame")
	}

	if !p.graph.Pause || p.current == nil {
		p.current = frame
	}

	datasets := p.modes.Datasets(p.graph, p.current)
	fps := p.meter.Tick()

	if err := p.out.Draw(p.frame(datasets, fps)); err != nil {
		return false, err
	}

	for !p.quit {
		ev, ok := p.out.PollEvent()
		if !ok {
			break
		}

		p.route(ev)
	}

	return !p.quit, nil
}

func (p *Processor) frame(datasets []display.Dataset, fps int) display.Frame {
	return display.Frame{
		ShowHeader: p.graph.ShowUI,
		Header: display.Header{
			Mode:    p.modes.Name(),
			Status:  p.modes.Header(p.graph),
			Scale:   p.graph.Scale,
			Samples: p.graph.Samples,
			Width:   p.graph.Width,
			FPS:     fps,
			Scatter: p.graph.Scatter,
			Pause:   p.graph.Pause,
		},
		X:           p.modes.Axis(p.graph, display.DimensionX),
		Y:           p.modes.Axis(p.graph, display.DimensionY),
		Datasets:    datasets,
		HeaderColor: p.graph.PaletteColor(0),
		LabelsColor: p.graph.LabelsColor,
		AxisColor:   p.graph.AxisColor,
	}
}

// Modes returns the display modes driven by the processor.
func (p *Processor) Modes() *display.Modes {
	return p.modes
}
