package execread

import (
	"context"
	"encoding/binary"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/noriah/catscope/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionReadsCommandOutput(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	raw := make([]byte, 4*4)
	for i, v := range []float32{0.5, -0.5, 0.25, -0.25} {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}

	path := filepath.Join(t.TempDir(), "stream.f32")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg := input.SessionConfig{FrameSize: 2, SampleSize: 2, SampleRate: 48000}
	sess := NewSession([]string{"cat", path}, input.F32LE, cfg)
	require.NoError(t, sess.Start(context.Background()))
	defer sess.Close()

	frame, err := sess.Next()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.25}, frame[0])
	assert.Equal(t, []float64{-0.5, -0.25}, frame[1])

	_, err = sess.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSessionNotStarted(t *testing.T) {
	sess := NewSession([]string{"true"}, input.F32LE, input.SessionConfig{FrameSize: 1, SampleSize: 1, SampleRate: 1})

	_, err := sess.Next()
	assert.Error(t, err)
	assert.NoError(t, sess.Close())
}

func TestSessionRejectsBadConfig(t *testing.T) {
	sess := NewSession([]string{"true"}, input.F32LE, input.SessionConfig{})
	assert.Error(t, sess.Start(context.Background()))
}

func TestNewSessionPanicsWithoutArgv(t *testing.T) {
	assert.Panics(t, func() {
		NewSession(nil, input.F32LE, input.SessionConfig{})
	})
}

func TestCloseUnblocksPendingNext(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	cfg := input.SessionConfig{FrameSize: 1, SampleSize: 4, SampleRate: 48000}
	sess := NewSession([]string{"sleep", "30"}, input.F32LE, cfg)
	sess.DisconnectedStderr = true
	require.NoError(t, sess.Start(context.Background()))

	errs := make(chan error, 1)
	go func() {
		_, err := sess.Next()
		errs <- err
	}()

	require.NoError(t, sess.Close())
	assert.ErrorIs(t, <-errs, input.ErrClosed)
}
