package main

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/noriah/catscope/display"
	"github.com/noriah/catscope/processor"
	"github.com/noriah/catscope/util"
)

// Constants
const (
	// ScalingWindow in seconds
	ScalingWindow = 1.5
	// PeakThreshold is the threshold to not rescale if the peak is less.
	PeakThreshold = 0.001
)

// RawOutput prints every frame as one line of numbers, scaled to roughly
// [-100, 100] over a moving window of frame peaks.
type RawOutput struct {
	out       *bufio.Writer
	binCount  int
	trackZero int
	window    *util.MovingWindow
}

var _ processor.Output = &RawOutput{}

// NewRawOutput returns an output writing binCount values per dataset to w.
func NewRawOutput(w io.Writer, binCount int, sampleRate float64, sampleSize int) *RawOutput {
	windowSize := 2
	if sampleSize > 0 {
		windowSize = (int(ScalingWindow*sampleRate) / sampleSize) * 2
	}

	return &RawOutput{
		out:      bufio.NewWriter(w),
		binCount: binCount,
		window:   util.NewMovingWindow(windowSize),
	}
}

// Draw prints the named datasets of the frame, guides are skipped.
func (d *RawOutput) Draw(f display.Frame) error {
	peak := 0.0

	var sets []display.Dataset
	for _, set := range f.Datasets {
		if set.Name == "" || len(set.Points) == 0 {
			continue
		}

		sets = append(sets, set)

		for _, p := range set.Points {
			if v := math.Abs(p.Y); v > peak && !math.IsInf(v, 0) {
				peak = v
			}
		}
	}

	if peak >= PeakThreshold {
		d.trackZero = 0
		d.window.Update(peak)
	} else if d.trackZero++; d.trackZero == 5 {
		d.window.Recalculate()
	}

	scale := 1.0
	if mean, sd := d.window.Stats(); mean+(2.0*sd) > 1.0 {
		scale = mean + (2.0 * sd)
	}

	scale = 100.0 / scale

	fmt.Fprintf(d.out, "%s", f.Header.Mode)

	for _, set := range sets {
		fmt.Fprintf(d.out, " %s:", set.Name)

		count := d.binCount
		if count > len(set.Points) {
			count = len(set.Points)
		}

		for xBin := 0; xBin < count; xBin++ {
			p := set.Points[xBin*len(set.Points)/count]
			fmt.Fprintf(d.out, " %6.3f", p.Y*scale)
		}
	}

	fmt.Fprintln(d.out)

	return d.out.Flush()
}

// PollEvent never has events; the raw output is stopped by a signal or the
// end of the source.
func (d *RawOutput) PollEvent() (display.Event, bool) {
	return display.Event{}, false
}
