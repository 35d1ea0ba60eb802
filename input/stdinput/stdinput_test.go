package stdinput

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/noriah/catscope/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32Stream(values ...float32) *bytes.Buffer {
	buf := &bytes.Buffer{}
	for _, v := range values {
		_ = binary.Write(buf, binary.LittleEndian, math.Float32bits(v))
	}
	return buf
}

func TestSessionReadsFramesUntilEOF(t *testing.T) {
	cfg := input.SessionConfig{FrameSize: 2, SampleSize: 2, SampleRate: 8}

	// two full frames and a trailing partial one
	r := f32Stream(0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4, 0.5)

	sess, err := NewSession(r, input.F32LE, cfg)
	require.NoError(t, err)

	frame, err := sess.Next()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.2}, frame[0], 1e-6)
	assert.InDeltaSlice(t, []float64{-0.1, -0.2}, frame[1], 1e-6)

	frame, err = sess.Next()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.3, 0.4}, frame[0], 1e-6)

	_, err = sess.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDevicesNameFormats(t *testing.T) {
	devices, err := StdinBackend{}.Devices()
	require.NoError(t, err)

	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.String()
	}

	assert.Equal(t, []string{"f32le", "s16le", "f64le"}, names)
}

func TestNewSessionRejectsEmptyFrames(t *testing.T) {
	_, err := NewSession(&bytes.Buffer{}, input.F32LE, input.SessionConfig{SampleRate: 1})
	assert.Error(t, err)
}

func TestCloseEndsPendingRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	cfg := input.SessionConfig{FrameSize: 1, SampleSize: 4, SampleRate: 8}
	sess, err := NewSession(pr, input.F32LE, cfg)
	require.NoError(t, err)

	errs := make(chan error, 1)
	go func() {
		_, err := sess.Next()
		errs <- err
	}()

	require.NoError(t, sess.Close())
	assert.ErrorIs(t, <-errs, input.ErrClosed)
}
