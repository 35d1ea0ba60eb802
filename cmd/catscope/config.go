package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/noriah/catscope/display"
	"github.com/noriah/catscope/dsp/window"
	"github.com/noriah/catscope/input"
	"github.com/noriah/catscope/music"
)

// Config is a temporary struct to define parameters
type config struct {
	// Backend is the backend name from list-backends
	backend string
	// Device is the device name from list-devices
	device string
	// SampleRate is the rate at which samples are read
	sampleRate float64
	// SampleSize is the number of samples per channel in every frame
	sampleSize int
	// ChannelCount is the number of channels to read
	channelCount int
	// Tune derives the sample size from a note, overriding sampleSize
	tune string
	// LimitRate paces file playback to the sample rate
	limitRate bool
	// Use the threaded reader
	useThreaded bool

	// Mode is the display mode shown first
	mode string
	// Scale is the initial vertical scale
	scale float64
	// Scatter draws points instead of lines
	scatter bool
	// NoReference hides the guide lines
	noReference bool
	// NoUI hides the header and axis titles
	noUI bool
	// NoBraille draws with dots instead of braille
	noBraille bool
	// Palette is a comma separated list of 256-color indexes
	palette string
	// AxisColor and LabelsColor are 256-color indexes
	axisColor   int
	labelsColor int

	// Spectroscope settings
	average   int
	window    string
	logY      bool
	smoothing float64

	// Raw prints frames as numbers instead of drawing them
	raw bool
	// RawBins is the number of values printed per dataset
	rawBins int
	// LogFile receives log output while the terminal is in use
	logFile string
}

// NewZeroConfig returns a zero config
// it is the "default"
func newZeroConfig() config {
	return config{
		backend:      input.DefaultBackend(),
		sampleRate:   44100,
		sampleSize:   1024,
		channelCount: 2,
		mode:         display.KindOscilloscope.String(),
		scale:        1,
		palette:      "1,3,2,5",
		axisColor:    int(display.ColorDarkGray),
		labelsColor:  int(display.ColorCyan),
		average:      1,
		window:       "hann",
		rawBins:      50,
	}
}

// validate checks the config and applies the note tuning.
func (cfg *config) validate() error {
	if cfg.sampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}

	if cfg.tune != "" {
		note, err := music.ParseNote(cfg.tune)
		if err != nil {
			return err
		}

		cfg.sampleSize = note.TuneBufferSize(cfg.sampleRate, 2)
	}

	switch {
	case cfg.sampleSize < 4:
		return errors.New("sample size too small (4+ required)")

	case cfg.channelCount < 1:
		return errors.New("too few channels (1 min)")

	case cfg.scale < 0 || cfg.scale > display.MaxScale:
		return errors.Errorf("scale out of range [0, %v]", display.MaxScale)

	case cfg.average < 1:
		return errors.New("average must be at least 1")

	case cfg.smoothing < 0 || cfg.smoothing > 99:
		return errors.New("smoothing out of range [0, 99]")

	case cfg.rawBins < 1:
		return errors.New("raw bins must be at least 1")
	}

	if _, err := display.ParseKind(cfg.mode); err != nil {
		return errors.Wrapf(err, "valid modes are %s", strings.Join(display.KindNames(), ", "))
	}

	if _, ok := window.Lookup(cfg.window); !ok {
		return errors.Errorf("unknown window %q, valid windows are %s",
			cfg.window, strings.Join(window.Names(), ", "))
	}

	for _, c := range []int{cfg.axisColor, cfg.labelsColor} {
		if err := checkColor(c); err != nil {
			return err
		}
	}

	if _, err := parsePalette(cfg.palette); err != nil {
		return err
	}

	return nil
}

func checkColor(c int) error {
	if c < int(display.ColorDefault) || c > 255 {
		return errors.Errorf("color %d out of range [-1, 255]", c)
	}
	return nil
}

// parsePalette reads a comma separated list of color indexes.
func parsePalette(text string) ([]display.Color, error) {
	var out []display.Color

	for _, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		c, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid palette color %q", field)
		}

		if err := checkColor(c); err != nil {
			return nil, err
		}

		out = append(out, display.Color(c))
	}

	if len(out) == 0 {
		return nil, errors.New("palette is empty")
	}

	return out, nil
}

// graphConfig returns the initial drawing state.
func (cfg *config) graphConfig() display.GraphConfig {
	graph := display.NewGraphConfig(cfg.sampleSize, cfg.sampleRate)

	graph.Scale = cfg.scale
	graph.Scatter = cfg.scatter
	graph.References = !cfg.noReference
	graph.ShowUI = !cfg.noUI
	graph.AxisColor = display.Color(cfg.axisColor)
	graph.LabelsColor = display.Color(cfg.labelsColor)

	if cfg.noBraille {
		graph.Marker = display.MarkerDot
	}

	if palette, err := parsePalette(cfg.palette); err == nil {
		graph.Palette = palette
	}

	return graph
}

// modes returns the initial mode state.
func (cfg *config) modes() *display.Modes {
	kind, _ := display.ParseKind(cfg.mode)

	modes := display.NewModes(kind)
	modes.Spectroscope.Average = cfg.average
	modes.Spectroscope.WindowName = cfg.window
	modes.Spectroscope.LogY = cfg.logY
	modes.Spectroscope.Smoothing = cfg.smoothing / 100

	return modes
}
