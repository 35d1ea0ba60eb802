package display

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/noriah/catscope/dsp"
	"github.com/noriah/catscope/dsp/window"
	"github.com/noriah/catscope/fft"
	"github.com/noriah/catscope/input"
)

const (
	// minMagnitude floors bin magnitudes before the log so silent bins stay finite.
	minMagnitude = 1e-9

	// lowestFrequency is the left edge of the frequency axis.
	lowestFrequency = 20.0
)

// referenceFrequencies are the vertical guides, in Hz.
var referenceFrequencies = []float64{
	20, 30, 40, 50, 60, 70, 80, 90,
	100, 200, 300, 400, 500, 600, 700, 800, 900,
	1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000,
	10000, 20000,
}

// Spectroscope plots the magnitude spectrum of every channel on a logarithmic
// frequency axis. Each channel keeps the last Average frames and transforms
// their concatenation.
type Spectroscope struct {
	Average    int     // frames per transform
	Window     bool    // taper the samples before the transform
	WindowName string  // window function used when Window is set
	LogY       bool    // natural log of the magnitudes
	Smoothing  float64 // weight of the previous spectrum, in [0, 0.99]

	history  []*History
	plans    map[int]*fft.Plan
	scratch  []float64
	smoother *dsp.Smoother
}

// NewSpectroscope returns a spectroscope over single frames with a Hann window
// ready to be toggled on.
func NewSpectroscope() Spectroscope {
	return Spectroscope{Average: 1, WindowName: "hann"}
}

func (s *Spectroscope) average() int {
	if s.Average < 1 {
		return 1
	}
	return s.Average
}

func (s *Spectroscope) windowFunc() (string, window.Function) {
	if fn, ok := window.Lookup(s.WindowName); ok {
		return s.WindowName, fn
	}
	return "hann", window.Hann
}

// resolution is the width of one frequency bin for a transform of size
// samples.
func resolution(cfg *GraphConfig, size int) float64 {
	if size < 1 || cfg.SamplingRate <= 0 {
		return 1
	}
	return cfg.SamplingRate / float64(size)
}

func (s *Spectroscope) header(cfg *GraphConfig) string {
	avg := s.average()
	size := cfg.Width * avg

	seconds := 0.0
	if cfg.SamplingRate > 0 {
		seconds = float64(size) / cfg.SamplingRate
	}

	win := "rect"
	if s.Window {
		win, _ = s.windowFunc()
	}

	status := fmt.Sprintf("%dx avg (%.1fs), %.0f Hz bins, %s",
		avg, seconds, resolution(cfg, size), win)

	if s.LogY {
		status += ", log"
	}

	if s.Smoothing > 0 {
		status += fmt.Sprintf(", %.0f%% smooth", s.Smoothing*100)
	}

	return status
}

func (s *Spectroscope) top(cfg *GraphConfig) float64 {
	size := float64(cfg.Width * s.average())

	if s.LogY {
		return cfg.Scale * math.Log(math.Max(size, math.E))
	}

	return cfg.Scale * size / 2
}

func (s *Spectroscope) axis(cfg *GraphConfig, dim Dimension) Axis {
	if dim == DimensionX {
		hi := cfg.SamplingRate / 2
		if cfg.Width > 0 {
			hi *= float64(cfg.Samples) / float64(cfg.Width)
		}

		return newAxis(cfg, "frequency -",
			math.Log(lowestFrequency), math.Log(math.Max(hi, 2*lowestFrequency)))
	}

	return newAxis(cfg, "| level", 0, s.top(cfg))
}

func (s *Spectroscope) references(cfg *GraphConfig) []Dataset {
	top := s.top(cfg)

	refs := make([]Dataset, 0, len(referenceFrequencies))
	for _, freq := range referenceFrequencies {
		x := math.Log(freq)
		refs = append(refs, line(cfg, Point{x, 0}, Point{x, top}))
	}

	return refs
}

// record pushes the frame into the channel histories, growing, shrinking and
// resizing them to follow the matrix and the averaging count.
func (s *Spectroscope) record(cfg *GraphConfig, data input.Matrix) {
	avg := s.average()

	if len(s.history) > len(data) {
		s.history = s.history[:len(data)]
	}

	for len(s.history) < len(data) {
		s.history = append(s.history, NewHistory(avg))
	}

	for n, h := range s.history {
		h.Resize(avg)

		if !cfg.Pause {
			h.Push(data[n])
		}
	}
}

// restart drops the recorded frames and the smoothing state but keeps the
// settings.
func (s *Spectroscope) restart() {
	for _, h := range s.history {
		h.Clear()
	}

	if s.smoother != nil {
		s.smoother.Reset()
	}
}

// samples returns the concatenated history of channel n, oldest frame first.
// The slice is reused by the next call.
func (s *Spectroscope) samples(n int) []float64 {
	if n < 0 || n >= len(s.history) {
		return nil
	}

	s.scratch = s.history[n].Concat(s.scratch[:0])
	return s.scratch
}

func (s *Spectroscope) plan(size int) *fft.Plan {
	if s.plans == nil {
		s.plans = make(map[int]*fft.Plan)
	}

	p, ok := s.plans[size]
	if !ok {
		p = fft.NewPlan(size)
		s.plans[size] = p
	}

	return p
}

// spectrum transforms channel n and returns one point per bin, skipping DC.
func (s *Spectroscope) spectrum(cfg *GraphConfig, n int) []Point {
	buf := s.samples(n)
	if len(buf) < 2 {
		return nil
	}

	p := s.plan(len(buf))
	copy(p.Input, buf)

	if s.Window {
		_, fn := s.windowFunc()
		fn(p.Input)
	}

	peak := 1.0
	for _, v := range p.Input {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	for i := range p.Input {
		p.Input[i] /= peak
	}

	p.Execute()

	mags := make([]float64, 0, len(p.Output)-1)
	for _, c := range p.Output[1:] {
		mags = append(mags, cmplx.Abs(c))
	}

	if s.Smoothing > 0 {
		if s.smoother == nil {
			s.smoother = dsp.NewSmoother(s.Smoothing)
		}
		s.smoother.SetFactor(s.Smoothing)
		s.smoother.SmoothBuffer(n, mags)
	}

	res := resolution(cfg, len(buf))

	points := make([]Point, len(mags))
	for i, mag := range mags {
		if s.LogY {
			mag = math.Log(math.Max(mag, minMagnitude))
		}

		points[i] = Point{math.Log(float64(i+1) * res), mag}
	}

	return points
}

func (s *Spectroscope) process(cfg *GraphConfig, data input.Matrix) []Dataset {
	s.record(cfg, data)

	out := make([]Dataset, 0, len(data))

	for n := len(data) - 1; n >= 0; n-- {
		out = append(out, Dataset{
			Name:   channelNumber(n),
			Points: s.spectrum(cfg, n),
			Marker: cfg.Marker,
			Graph:  cfg.GraphType(),
			Color:  cfg.PaletteColor(n),
		})
	}

	return out
}

func (s *Spectroscope) handle(ev Event) {
	switch ev.Key {
	case KeyPgUp:
		s.Average = s.average() + 1
	case KeyPgDn:
		s.Average = s.average() - 1
		if s.Average < 1 {
			s.Average = 1
		}
	case KeyEsc:
		s.Average = 1
	case KeyRune:
		switch ev.Rune {
		case 'w':
			s.Window = !s.Window
		case 'l':
			s.LogY = !s.LogY
		}
	}
}
