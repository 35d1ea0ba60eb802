// Package window provides Window Functions for signal analysis
//
// See https://wikipedia.org/wiki/Window_function
package window

import "math"

// Function is a function that will do window things for you
type Function func(buf []float64)

// Rectangle is just do nothing
func Rectangle(buf []float64) {
	// do nothing
}

// CosSum modifies the buffer to conform to a cosine sum window following a0
func CosSum(buf []float64, a0 float64) {
	var size = len(buf)
	var a1 = 1.0 - a0
	var coef = 2.0 * math.Pi / float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= (a0 - a1*math.Cos(coef*float64(n)))
	}
}

// Hamming modifies the buffer to a Hamming window
func Hamming(buf []float64) {
	CosSum(buf, 25.0/46.0)
}

// Hann modifies the buffer to a Hann window
func Hann(buf []float64) {
	CosSum(buf, 0.5)
}

// Bartlett modifies the buffer to a Bartlett window
func Bartlett(buf []float64) {
	var size = len(buf)
	var fSize = float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= (1.0 - math.Abs((2.0*float64(n)-fSize)/fSize))
	}
}

// Blackman modifies the buffer to a Blackman window
func Blackman(buf []float64) {
	var size = len(buf)
	var coef = 2.0 * math.Pi / float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= 0.42 - 0.5*math.Cos(coef*float64(n)) + 0.08*math.Cos(2*coef*float64(n))
	}
}

var functions = map[string]Function{
	"hann":      Hann,
	"hamming":   Hamming,
	"blackman":  Blackman,
	"bartlett":  Bartlett,
	"rectangle": Rectangle,
}

// Names lists the window functions Lookup knows, in a fixed order.
func Names() []string {
	return []string{"hann", "hamming", "blackman", "bartlett", "rectangle"}
}

// Lookup returns the window function called name.
func Lookup(name string) (Function, bool) {
	fn, ok := functions[name]
	return fn, ok
}
