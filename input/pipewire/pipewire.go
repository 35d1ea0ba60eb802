package pipewire

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/noriah/catscope/input"
	"github.com/noriah/catscope/input/execread"
	"github.com/pkg/errors"
)

func init() {
	input.RegisterBackend("pipewire", Backend{})
}

type Backend struct{}

func (p Backend) Init() error {
	return nil
}

func (p Backend) Close() error {
	return nil
}

func (p Backend) Devices() ([]input.Device, error) {
	names, err := targets(context.Background())
	if err != nil {
		return nil, err
	}

	devices := make([]input.Device, len(names))
	for i, name := range names {
		devices[i] = AudioDevice{name}
	}

	return devices, nil
}

func (p Backend) DefaultDevice() (input.Device, error) {
	return AudioDevice{"auto"}, nil
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

type AudioDevice struct {
	name string
}

func (d AudioDevice) String() string {
	return d.name
}

// NewSession creates a new PipeWire session recording through pw-cat.
func NewSession(cfg input.SessionConfig) (*execread.Session, error) {
	dv, ok := cfg.Device.(AudioDevice)
	if !ok {
		return nil, fmt.Errorf("invalid device type %T", cfg.Device)
	}

	// pw-cat 1.4.0 introduces explicit stdout support, needs --raw arg
	// see https://gitlab.freedesktop.org/pipewire/pipewire/-/issues/4629#top
	useRawArg, err := checkNeedRawArg()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check need of pipewire '--raw' arg")
	}

	return execread.NewSession(args(dv, cfg, useRawArg), input.F32LE, cfg), nil
}

func args(dv AudioDevice, cfg input.SessionConfig, raw bool) []string {
	argv := []string{
		"pw-cat",
		"--record",
		"--format", "f32",
		"--rate", fmt.Sprint(cfg.SampleRate),
		"--latency", fmt.Sprint(cfg.SampleSize),
		"--channels", fmt.Sprint(cfg.FrameSize),
		"--target", dv.name,
		"--quality", "0",
		"--media-category", "Capture",
		"--media-role", "DSP",
		"--properties", `{"application.name":"catscope"}`,
	}

	if raw {
		argv = append(argv, "--raw")
	}

	// output to STDOUT
	return append(argv, "-")
}

func checkNeedRawArg() (bool, error) {
	cmd := exec.Command("pw-cat", "--help")

	out, err := cmd.Output()
	if err != nil {
		return false, err
	}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "--raw") {
			return true, nil
		}
	}

	return false, nil
}
