// Package ffmpeg reads audio through an ffmpeg subprocess. Every platform
// capture API is an ffmpeg input demuxer, so the backends here differ only in
// how they list devices and which options precede the input.
package ffmpeg

import (
	"context"
	"fmt"

	"github.com/noriah/catscope/input"
	"github.com/noriah/catscope/input/execread"
	"github.com/pkg/errors"
)

func init() {
	register(alsa)
	register(pulse)
	register(sndio)
}

func register(d demuxer) {
	input.RegisterBackend("ffmpeg-"+d.name, d)
}

// Device is one capture input of a demuxer.
type Device struct {
	Demuxer string // value of -f
	Input   string // value of -i
	Label   string // listed name, Input when empty
}

func (d Device) String() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Input
}

// demuxer is an ffmpeg input format exposed as a backend.
type demuxer struct {
	name string

	// defaultInput is the -i value of the default device. Empty means there
	// is no default and a device has to be named.
	defaultInput string

	// options go between -f and -i. Nil for none.
	options func(cfg input.SessionConfig) []string

	list func() ([]Device, error)
}

func (d demuxer) Init() error {
	return nil
}

func (d demuxer) Close() error {
	return nil
}

func (d demuxer) Devices() ([]input.Device, error) {
	found, err := d.list()
	if err != nil {
		return nil, err
	}

	devices := make([]input.Device, len(found))
	for i, dv := range found {
		devices[i] = dv
	}

	return devices, nil
}

func (d demuxer) DefaultDevice() (input.Device, error) {
	if d.defaultInput == "" {
		return nil, errors.Errorf("%s has no default device; check list-devices", d.name)
	}

	return Device{Demuxer: d.name, Input: d.defaultInput, Label: "default"}, nil
}

func (d demuxer) Start(ctx context.Context, cfg input.SessionConfig) (input.Session, error) {
	sess, err := d.NewSession(cfg)
	if err != nil {
		return nil, err
	}

	if err := sess.Start(ctx); err != nil {
		return nil, err
	}

	return sess, nil
}

// NewSession prepares, but does not start, a session reading cfg.Device.
func (d demuxer) NewSession(cfg input.SessionConfig) (*execread.Session, error) {
	dv, ok := cfg.Device.(Device)
	if !ok || dv.Demuxer != d.name {
		return nil, errors.Errorf("invalid device %v (%T) for ffmpeg-%s", cfg.Device, cfg.Device, d.name)
	}

	var opts []string
	if d.options != nil {
		opts = d.options(cfg)
	}

	return execread.NewSession(Args(dv, opts, cfg), input.F64LE, cfg), nil
}

// Args returns the ffmpeg command line that reads from d and writes raw
// little-endian doubles to stdout.
func Args(d Device, options []string, cfg input.SessionConfig) []string {
	args := []string{"ffmpeg", "-hide_banner", "-loglevel", "panic", "-f", d.Demuxer}
	args = append(args, options...)
	args = append(args,
		"-i", d.Input,
		"-ar", fmt.Sprintf("%.0f", cfg.SampleRate),
		"-ac", fmt.Sprintf("%d", cfg.FrameSize),
		"-f", "f64le",
		"-",
	)

	return args
}

// dshowOptions keeps the DirectShow buffer short and captures at the session
// rate and channel count.
func dshowOptions(cfg input.SessionConfig) []string {
	return []string{
		"-audio_buffer_size", "20",
		"-sample_rate", fmt.Sprintf("%.0f", cfg.SampleRate),
		"-channels", fmt.Sprintf("%d", cfg.FrameSize),
	}
}
