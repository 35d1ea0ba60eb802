package catscope

import (
	"github.com/pkg/errors"

	"github.com/noriah/catscope/display"
	"github.com/noriah/catscope/processor"
)

const (
	// MaxChannelCount is the most channels a session may read.
	MaxChannelCount = 8
	// MaxSampleSize is the largest buffer a session may read.
	MaxSampleSize = 1 << 16
	// DefaultBacklog is the frame backlog of the threaded reader.
	DefaultBacklog = 8
)

type Config struct {
	// The name of the backend from the input package
	Backend string
	// The name of the device to pull data from
	Device string
	// The rate that samples are read
	SampleRate float64
	// The number of samples per batch
	SampleSize int
	// The number of channels to read data from
	ChannelCount int

	// Read frames on a separate goroutine
	UseThreaded bool
	// Frames the threaded reader may queue
	Backlog int

	// Initial drawing state. Width and SamplingRate follow the session.
	Graph display.GraphConfig
	// Initial mode state
	Modes *display.Modes

	// Function to call when setting up the pipeline
	SetupFunc SetupFunc
	// Function to call when cleaning up the pipeline
	CleanupFunc CleanupFunc
	// Where frames are drawn and events come from
	Output processor.Output
}

// SetupFunc runs after the session started and before the first frame.
type SetupFunc func() error

// CleanupFunc runs once the loop is over, before Run returns.
type CleanupFunc func() error

func NewZeroConfig() Config {
	return Config{
		SampleRate:   44100,
		SampleSize:   1024,
		ChannelCount: 2,
		Backlog:      DefaultBacklog,
		Graph:        display.NewGraphConfig(1024, 44100),
	}
}

func (cfg *Config) Validate() error {
	if cfg.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}

	if cfg.SampleSize < 4 {
		return errors.New("sample size too small (4+ required)")
	}

	switch {
	case cfg.ChannelCount > MaxChannelCount:
		return errors.Errorf("too many channels (%d max)", MaxChannelCount)

	case cfg.ChannelCount < 1:
		return errors.New("too few channels (1 min)")

	case cfg.SampleSize > MaxSampleSize:
		return errors.Errorf("sample size too large (%d max)", MaxSampleSize)
	}

	if cfg.Graph.Scale < 0 || cfg.Graph.Scale > display.MaxScale {
		return errors.Errorf("scale out of range [0, %v]", display.MaxScale)
	}

	if cfg.Output == nil {
		return errors.New("no output configured")
	}

	return nil
}
