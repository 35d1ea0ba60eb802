// Package fft provides generic abstractions around fourier transformers.
package fft

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan holds a gonum real-input FFT plan. Input holds the real samples and
// Output receives the len(Input)/2+1 non-redundant coefficients.
type Plan struct {
	Input  []float64
	Output []complex128
	fft    *fourier.FFT
}

// NewPlan returns a plan over size real samples.
func NewPlan(size int) *Plan {
	return &Plan{
		Input:  make([]float64, size),
		Output: make([]complex128, size/2+1),
		fft:    fourier.NewFFT(size),
	}
}

// Len returns the number of real input samples.
func (p *Plan) Len() int {
	return len(p.Input)
}

// Execute executes the gonum plan.
func (p *Plan) Execute() {
	if p.fft == nil {
		p.fft = fourier.NewFFT(len(p.Input))
	}
	p.fft.Coefficients(p.Output, p.Input)
}
