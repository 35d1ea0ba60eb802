// Package input provides the sample sources the visualizer reads from.
package input

import "github.com/pkg/errors"

// ErrClosed is returned by Next once a session has been closed.
var ErrClosed = errors.New("session closed")

// Matrix is one frame of audio: one sample sequence per channel.
//
// A Matrix is never modified after a session hands it out. Channels normally
// share a length but consumers must not rely on it.
type Matrix [][]float64

// MakeMatrix returns a matrix with count channels of size samples each.
func MakeMatrix(count, size int) Matrix {
	m := make(Matrix, count)
	for idx := range m {
		m[idx] = make([]float64, size)
	}

	return m
}

// Channels returns the number of channels in the frame.
func (m Matrix) Channels() int {
	return len(m)
}

// Len returns the length of the shortest channel.
func (m Matrix) Len() int {
	if len(m) == 0 {
		return 0
	}

	n := len(m[0])
	for _, ch := range m[1:] {
		if len(ch) < n {
			n = len(ch)
		}
	}

	return n
}

// Device is an input device.
type Device interface {
	String() string
}

// SessionConfig is the configuration for an input session.
type SessionConfig struct {
	Device     Device  // device to use
	FrameSize  int     // number of channels per frame
	SampleSize int     // number of samples per channel per frame
	SampleRate float64 // sample rate
}

// Session is a running source of frames.
type Session interface {
	// Next blocks until a full frame is available. It returns io.EOF once the
	// source is exhausted. There is no timeout.
	Next() (Matrix, error)
	Close() error
}

// EnsureConfig checks that a session config describes a usable frame.
func EnsureConfig(cfg SessionConfig) error {
	switch {
	case cfg.FrameSize < 1:
		return errors.New("channel count must be at least 1")
	case cfg.SampleSize < 1:
		return errors.New("sample size must be at least 1")
	case cfg.SampleRate <= 0:
		return errors.New("sample rate must be positive")
	}

	return nil
}
