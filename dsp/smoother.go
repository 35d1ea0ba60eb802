// Package dsp holds signal helpers shared by the display modes.
package dsp

import "math"

// Smoother blends every value with the value it replaced at the same channel
// and index.
type Smoother struct {
	values [][]float64 // old values used for smoothing
	factor float64     // weight of the old value, in [0, 1)
}

// NewSmoother returns a smoother keeping factor of the previous value. The
// factor is clamped to [0, 0.99]; zero passes values through.
func NewSmoother(factor float64) *Smoother {
	sm := &Smoother{}
	sm.SetFactor(factor)
	return sm
}

// Factor returns the smoothing factor.
func (sm *Smoother) Factor() float64 {
	return sm.factor
}

// SetFactor changes the smoothing factor.
func (sm *Smoother) SetFactor(factor float64) {
	sm.factor = math.Max(0, math.Min(0.99, factor))
}

// Reset forgets every stored value.
func (sm *Smoother) Reset() {
	sm.values = nil
}

// SmoothBuffer smooths buf in place against the previous buffer of channel
// ch. A buffer of a new size starts over.
func (sm *Smoother) SmoothBuffer(ch int, buf []float64) {
	for len(sm.values) <= ch {
		sm.values = append(sm.values, nil)
	}

	prev := sm.values[ch]
	if len(prev) != len(buf) {
		sm.values[ch] = append([]float64(nil), buf...)
		return
	}

	for idx, v := range buf {
		buf[idx] = sm.SmoothBin(prev[idx], v)
		prev[idx] = buf[idx]
	}
}

// SmoothBin returns value blended with existing.
func (sm *Smoother) SmoothBin(existing, value float64) float64 {
	if math.IsNaN(value) {
		value = 0.0
	}

	if math.IsNaN(existing) {
		existing = 0.0
	}

	value *= 1.0 - sm.factor
	value += existing * sm.factor

	return value
}
