// Package util holds small numeric helpers.
package util

import "math"

// MovingWindow keeps the mean and standard deviation of the last Cap values.
type MovingWindow struct {
	values []float64
	head   int // oldest value
	length int

	sum    float64
	sumSq  float64
	mean   float64
	stddev float64
}

// NewMovingWindow returns a new moving window of at least one value.
func NewMovingWindow(size int) *MovingWindow {
	if size < 1 {
		size = 1
	}

	return &MovingWindow{values: make([]float64, size)}
}

func (mw *MovingWindow) calcFinal() (float64, float64) {
	if mw.length < 1 {
		mw.sum, mw.sumSq = 0, 0
		mw.mean, mw.stddev = 0, 0
		return 0, 0
	}

	n := float64(mw.length)
	mw.mean = mw.sum / n

	if mw.length > 1 {
		variance := (mw.sumSq - n*mw.mean*mw.mean) / (n - 1)
		mw.stddev = math.Sqrt(math.Max(variance, 0))
	} else {
		mw.stddev = 0
	}

	return mw.mean, mw.stddev
}

// Update adds value, evicting the oldest one when full, and returns the new
// mean and standard deviation.
func (mw *MovingWindow) Update(value float64) (float64, float64) {
	if mw.length < len(mw.values) {
		mw.values[(mw.head+mw.length)%len(mw.values)] = value
		mw.length++
	} else {
		old := mw.values[mw.head]
		mw.sum -= old
		mw.sumSq -= old * old

		mw.values[mw.head] = value
		mw.head = (mw.head + 1) % len(mw.values)
	}

	mw.sum += value
	mw.sumSq += value * value

	return mw.calcFinal()
}

// Drop removes the count oldest values.
func (mw *MovingWindow) Drop(count int) (float64, float64) {
	for ; count > 0 && mw.length > 0; count-- {
		old := mw.values[mw.head]
		mw.sum -= old
		mw.sumSq -= old * old

		mw.head = (mw.head + 1) % len(mw.values)
		mw.length--
	}

	return mw.calcFinal()
}

// Recalculate rebuilds the sums from the stored values to shed rounding
// drift.
func (mw *MovingWindow) Recalculate() (float64, float64) {
	mw.sum, mw.sumSq = 0, 0

	for i := 0; i < mw.length; i++ {
		v := mw.values[(mw.head+i)%len(mw.values)]
		mw.sum += v
		mw.sumSq += v * v
	}

	return mw.calcFinal()
}

// Len returns how many items in the window
func (mw *MovingWindow) Len() int {
	return mw.length
}

// Cap returns max size of window
func (mw *MovingWindow) Cap() int {
	return len(mw.values)
}

// Mean is the moving window average
func (mw *MovingWindow) Mean() float64 {
	return mw.mean
}

// StdDev is the moving window standard deviation
func (mw *MovingWindow) StdDev() float64 {
	return mw.stddev
}

// Stats returns the statistics of this window
func (mw *MovingWindow) Stats() (float64, float64) {
	return mw.mean, mw.stddev
}
