package parec

import (
	"context"
	"fmt"

	"github.com/lawl/pulseaudio"
	"github.com/noriah/catscope/input"
	"github.com/noriah/catscope/input/execread"
	"github.com/pkg/errors"
)

func init() {
	input.RegisterBackend("parec", Backend{})
}

type Backend struct{}

func (p Backend) Init() error {
	return nil
}

func (p Backend) Close() error {
	return nil
}

func (p Backend) Devices() ([]input.Device, error) {
	c, err := pulseaudio.NewClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client")
	}
	defer c.Close()

	s, err := c.Sources()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sources")
	}

	var devices = make([]input.Device, len(s))
	for i, source := range s {
		devices[i] = PulseDevice(source.Name)
	}

	return devices, nil
}

func (p Backend) DefaultDevice() (input.Device, error) {
	return PulseDevice("default"), nil
}

func (p Backend) Start(ctx context.Context, cfg input.SessionConfig) (input.Session, error) {
	sess, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}

	if err := sess.Start(ctx); err != nil {
		return nil, err
	}

	return sess, nil
}

// PulseDevice is the name of a PulseAudio source.
type PulseDevice string

func (d PulseDevice) String() string {
	return string(d)
}

// Args returns the parec command line for cfg.
func Args(d PulseDevice, cfg input.SessionConfig) []string {
	return []string{
		"parec",
		"--format=float32le",
		fmt.Sprintf("--rate=%.0f", cfg.SampleRate),
		fmt.Sprintf("--channels=%d", cfg.FrameSize),
		fmt.Sprintf("--latency=%d", cfg.SampleSize*cfg.FrameSize*input.F32LE.Width()),
		"-d", d.String(),
	}
}

func NewSession(cfg input.SessionConfig) (*execread.Session, error) {
	dv, ok := cfg.Device.(PulseDevice)
	if !ok {
		return nil, fmt.Errorf("invalid device type %T", cfg.Device)
	}

	return execread.NewSession(Args(dv, cfg), input.F32LE, cfg), nil
}
