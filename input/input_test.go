package input

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixLen(t *testing.T) {
	assert.Equal(t, 0, Matrix{}.Len())
	assert.Equal(t, 2, Matrix{{1, 2, 3}, {1, 2}}.Len())
	assert.Equal(t, 4, MakeMatrix(3, 4).Len())
	assert.Equal(t, 3, MakeMatrix(3, 4).Channels())
}

func TestFormatDecodeDeinterleaves(t *testing.T) {
	raw := &bytes.Buffer{}
	for _, v := range []int16{100, -100, 200, -200, 300, -300} {
		require.NoError(t, binary.Write(raw, binary.LittleEndian, v))
	}

	dst := MakeMatrix(2, 3)
	S16LE.Decode(raw.Bytes(), dst)

	assert.InDeltaSlice(t, []float64{100.0 / 32768, 200.0 / 32768, 300.0 / 32768}, dst[0], 1e-12)
	assert.InDeltaSlice(t, []float64{-100.0 / 32768, -200.0 / 32768, -300.0 / 32768}, dst[1], 1e-12)
}

func TestFormatDecodeFloats(t *testing.T) {
	raw := make([]byte, 16)
	binary.LittleEndian.PutUint64(raw, math.Float64bits(0.25))
	binary.LittleEndian.PutUint64(raw[8:], math.Float64bits(-0.75))

	dst := MakeMatrix(1, 2)
	F64LE.Decode(raw, dst)
	assert.Equal(t, []float64{0.25, -0.75}, dst[0])

	raw = make([]byte, 8)
	binary.LittleEndian.PutUint32(raw, math.Float32bits(0.5))
	binary.LittleEndian.PutUint32(raw[4:], math.Float32bits(-1))

	dst = MakeMatrix(2, 1)
	F32LE.Decode(raw, dst)
	assert.Equal(t, Matrix{{0.5}, {-1}}, dst)
}

func TestFormatFrameBytes(t *testing.T) {
	cfg := SessionConfig{FrameSize: 2, SampleSize: 1024}

	assert.Equal(t, 4096, S16LE.FrameBytes(cfg))
	assert.Equal(t, 8192, F32LE.FrameBytes(cfg))
	assert.Equal(t, 16384, F64LE.FrameBytes(cfg))
}

func TestStreamSessionFreshFrames(t *testing.T) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint16(raw, 16384)
	binary.LittleEndian.PutUint16(raw[2:], 16384)
	binary.LittleEndian.PutUint16(raw[4:], 8192)
	binary.LittleEndian.PutUint16(raw[6:], 8192)

	sess := NewStreamSession(bytes.NewReader(raw), S16LE, SessionConfig{FrameSize: 1, SampleSize: 2, SampleRate: 1})

	first, err := sess.Next()
	require.NoError(t, err)
	second, err := sess.Next()
	require.NoError(t, err)

	// frames handed out earlier must not be overwritten by later reads
	assert.Equal(t, []float64{0.5, 0.5}, first[0])
	assert.Equal(t, []float64{0.25, 0.25}, second[0])

	_, err = sess.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamSessionClose(t *testing.T) {
	calls := 0
	sess := NewStreamSession(bytes.NewReader(nil), F32LE, SessionConfig{FrameSize: 1, SampleSize: 1, SampleRate: 1})
	sess.OnClose = func() error {
		calls++
		return nil
	}

	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())
	assert.Equal(t, 1, calls)

	_, err := sess.Next()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestEnsureConfig(t *testing.T) {
	assert.NoError(t, EnsureConfig(SessionConfig{FrameSize: 2, SampleSize: 8, SampleRate: 44100}))
	assert.Error(t, EnsureConfig(SessionConfig{FrameSize: 0, SampleSize: 8, SampleRate: 44100}))
	assert.Error(t, EnsureConfig(SessionConfig{FrameSize: 2, SampleSize: 0, SampleRate: 44100}))
	assert.Error(t, EnsureConfig(SessionConfig{FrameSize: 2, SampleSize: 8}))
}

type namedDevice string

func (d namedDevice) String() string { return string(d) }

type listBackend struct {
	devices []Device
}

func (b *listBackend) Init() error                    { return nil }
func (b *listBackend) Close() error                   { return nil }
func (b *listBackend) Devices() ([]Device, error)     { return b.devices, nil }
func (b *listBackend) DefaultDevice() (Device, error) { return b.devices[0], nil }
func (b *listBackend) Start(context.Context, SessionConfig) (Session, error) {
	return nil, nil
}

type lookupBackend struct {
	listBackend
}

func (b *lookupBackend) LookupDevice(name string) (Device, error) {
	return namedDevice("looked up " + name), nil
}

func TestGetDevice(t *testing.T) {
	b := &listBackend{devices: []Device{namedDevice("default"), namedDevice("monitor")}}

	d, err := GetDevice(b, "")
	require.NoError(t, err)
	assert.Equal(t, "default", d.String())

	d, err = GetDevice(b, "monitor")
	require.NoError(t, err)
	assert.Equal(t, "monitor", d.String())

	_, err = GetDevice(b, "missing")
	assert.Error(t, err)

	d, err = GetDevice(&lookupBackend{*b}, "song.wav")
	require.NoError(t, err)
	assert.Equal(t, "looked up song.wav", d.String())
}

func TestRegistry(t *testing.T) {
	saved := Backends
	defer func() { Backends = saved }()
	Backends = nil

	RegisterBackend("test", &listBackend{})

	assert.True(t, HasBackend("test"))
	assert.False(t, HasBackend("other"))
	assert.Equal(t, []string{"test"}, GetAllBackendNames())

	_, err := InitBackend("other")
	assert.Error(t, err)

	b, err := InitBackend("test")
	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestDefaultBackendPreference(t *testing.T) {
	saved := Backends
	defer func() { Backends = saved }()
	Backends = nil

	onPath := map[string]bool{}
	lookPath := func(name string) (string, error) {
		if onPath[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}

	assert.Equal(t, "", defaultBackend("linux", lookPath))

	RegisterBackend("ffmpeg-alsa", &listBackend{})
	RegisterBackend("parec", &listBackend{})
	RegisterBackend("pipewire", &listBackend{})
	assert.Equal(t, "ffmpeg-alsa", defaultBackend("linux", lookPath))

	onPath["parec"] = true
	assert.Equal(t, "parec", defaultBackend("linux", lookPath))

	onPath["pw-cat"] = true
	assert.Equal(t, "pipewire", defaultBackend("linux", lookPath))

	assert.Equal(t, "", defaultBackend("plan9", lookPath))
}

func TestStreamSessionCloseDuringRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sess := NewStreamSession(pr, F32LE, SessionConfig{FrameSize: 1, SampleSize: 4, SampleRate: 1})
	sess.OnClose = pr.Close

	errs := make(chan error, 1)
	go func() {
		_, err := sess.Next()
		errs <- err
	}()

	require.NoError(t, sess.Close())
	assert.ErrorIs(t, <-errs, ErrClosed)
}
