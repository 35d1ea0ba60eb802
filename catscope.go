// Package catscope wires a sample source, the display modes and an output
// into a running visualizer.
package catscope

import (
	"context"

	"github.com/pkg/errors"

	"github.com/noriah/catscope/input"
	"github.com/noriah/catscope/processor"
)

// rated is implemented by sessions that know the real rate of their samples,
// such as decoded files.
type rated interface {
	SampleRate() float64
}

// Run starts the input session and runs the visualizer until the user quits,
// ctx is done or the source fails.
func Run(cfg *Config, ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	backend, err := input.InitBackend(cfg.Backend)
	if err != nil {
		return err
	}
	defer backend.Close()

	sessConfig := input.SessionConfig{
		FrameSize:  cfg.ChannelCount,
		SampleSize: cfg.SampleSize,
		SampleRate: cfg.SampleRate,
	}

	if sessConfig.Device, err = input.GetDevice(backend, cfg.Device); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sess, err := backend.Start(ctx, sessConfig)
	if err != nil {
		return errors.Wrap(err, "failed to start the input backend")
	}

	graph := cfg.Graph
	graph.Width = cfg.SampleSize
	graph.SamplingRate = cfg.SampleRate
	if graph.Samples <= 0 || graph.Samples > graph.MaxSamples() {
		graph.Samples = graph.Width
	}

	if r, ok := sess.(rated); ok && r.SampleRate() > 0 {
		graph.SamplingRate = r.SampleRate()
	}

	var source input.Session = sess
	if cfg.UseThreaded {
		source = processor.NewThreaded(ctx, sess, cfg.Backlog)
	}
	defer source.Close()

	if cfg.SetupFunc != nil {
		if err := cfg.SetupFunc(); err != nil {
			return err
		}
	}

	if cfg.CleanupFunc != nil {
		defer cfg.CleanupFunc()
	}

	proc := processor.New(processor.Config{
		Source: source,
		Output: cfg.Output,
		Graph:  &graph,
		Modes:  cfg.Modes,
	})

	return proc.Process(ctx)
}
