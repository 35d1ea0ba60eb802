//go:build portaudio

// Package portaudio captures audio through a PortAudio callback stream.
//
// The callback runs on a PortAudio thread and hands frames to Next through a
// channel. Frames are dropped when the reader falls behind.
package portaudio

import (
	"context"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/noriah/catscope/input"
	"github.com/pkg/errors"
)

// backlog is the number of frames buffered between the callback and Next.
const backlog = 32

var GlobalBackend = &Backend{}

func init() {
	input.RegisterBackend("portaudio", GlobalBackend)
}

// Backend represents the PortAudio backend. A zero-value instance is a valid
// instance.
type Backend struct {
	once    sync.Once
	initErr error
}

func (b *Backend) Init() error {
	b.once.Do(func() {
		b.initErr = portaudio.Initialize()
	})

	return b.initErr
}

func (b *Backend) Close() error {
	return portaudio.Terminate()
}

func (b *Backend) Devices() ([]input.Device, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	var out []input.Device
	for _, device := range devices {
		if device.MaxInputChannels > 0 {
			out = append(out, Device{device})
		}
	}

	return out, nil
}

func (b *Backend) DefaultDevice() (input.Device, error) {
	device, err := portaudio.DefaultInputDevice()
	if err != nil {
		return nil, errors.Wrap(err, "no default input device found")
	}

	return Device{device}, nil
}

func (b *Backend) Start(_ context.Context, cfg input.SessionConfig) (input.Session, error) {
	return NewSession(cfg)
}

// Device represents a PortAudio device.
type Device struct {
	*portaudio.DeviceInfo
}

// String returns the device name.
func (d Device) String() string {
	return d.Name
}

// Session is an input source fed by a PortAudio callback.
type Session struct {
	stream *portaudio.Stream
	frames chan input.Matrix
	cfg    input.SessionConfig

	closeOnce sync.Once
	closeErr  error
}

// NewSession opens and starts a callback stream on the configured device.
func NewSession(cfg input.SessionConfig) (*Session, error) {
	if err := input.EnsureConfig(cfg); err != nil {
		return nil, err
	}

	dv, ok := cfg.Device.(Device)
	if !ok {
		return nil, fmt.Errorf("device is on unknown type %T", cfg.Device)
	}

	param := portaudio.LowLatencyParameters(dv.DeviceInfo, nil)
	param.Input.Channels = cfg.FrameSize
	param.SampleRate = cfg.SampleRate
	param.FramesPerBuffer = cfg.SampleSize

	s := &Session{
		frames: make(chan input.Matrix, backlog),
		cfg:    cfg,
	}

	stream, err := portaudio.OpenStream(param, s.process)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open stream")
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		return nil, errors.Wrap(err, "failed to start stream")
	}

	s.stream = stream

	return s, nil
}

// process runs on the PortAudio thread. It must never block.
func (s *Session) process(in []float32) {
	channels := s.cfg.FrameSize
	frame := input.MakeMatrix(channels, len(in)/channels)

	for n, v := range in[:len(frame[0])*channels] {
		frame[n%channels][n/channels] = float64(v)
	}

	select {
	case s.frames <- frame:
	default:
	}
}

// Next blocks until the callback has delivered a frame.
func (s *Session) Next() (input.Matrix, error) {
	frame, ok := <-s.frames
	if !ok {
		return nil, input.ErrClosed
	}

	return frame, nil
}

// Close stops the stream and wakes up any waiting reader.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.stream.Stop(); err != nil {
			s.closeErr = err
		}
		if err := s.stream.Close(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
		close(s.frames)
	})

	return s.closeErr
}
