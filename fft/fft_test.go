package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanSizes(t *testing.T) {
	p := NewPlan(8)

	assert.Equal(t, 8, p.Len())
	assert.Len(t, p.Output, 5)
}

func TestPlanFindsTone(t *testing.T) {
	const size = 64
	const bin = 5

	p := NewPlan(size)
	for i := range p.Input {
		p.Input[i] = math.Sin(2 * math.Pi * bin * float64(i) / size)
	}

	p.Execute()

	peak := 0
	for i, c := range p.Output {
		if cmplx.Abs(c) > cmplx.Abs(p.Output[peak]) {
			peak = i
		}
	}

	assert.Equal(t, bin, peak)
	assert.InDelta(t, size/2, cmplx.Abs(p.Output[bin]), 1e-9)
}

func TestPlanDC(t *testing.T) {
	p := NewPlan(4)
	copy(p.Input, []float64{1, 1, 1, 1})

	p.Execute()

	assert.InDelta(t, 4, real(p.Output[0]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(p.Output[1]), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(p.Output[2]), 1e-12)
}

func Benchmark(b *testing.B) {
	reals := generateReals()
	fftpl := NewPlan(len(reals))
	copy(fftpl.Input, reals)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fftpl.Execute()
	}
}

// Adapted from https://github.com/project-gemmi/benchmarking-fft/blob/master/1d-r.cpp

const numReals = 44100

func generateReals() []float64 {
	input := make([]float64, numReals)

	c := 3.1
	for i := range input {
		c += 0.3
		input[i] = 2*c - c*c
	}

	return input
}
