// Package stdinput reads interleaved samples piped into standard input.
package stdinput

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/noriah/catscope/input"
)

func init() {
	input.RegisterBackend("stdin", StdinBackend{})
}

var formats = []input.Format{input.F32LE, input.S16LE, input.F64LE}

type StdinBackend struct{}

func (b StdinBackend) Init() error {
	return nil
}

func (b StdinBackend) Close() error {
	return nil
}

// Devices lists one device per accepted sample format.
func (b StdinBackend) Devices() ([]input.Device, error) {
	devices := make([]input.Device, len(formats))
	for i, f := range formats {
		devices[i] = StdInputDevice{f}
	}

	return devices, nil
}

func (b StdinBackend) DefaultDevice() (input.Device, error) {
	return StdInputDevice{input.F32LE}, nil
}

func (b StdinBackend) Start(_ context.Context, cfg input.SessionConfig) (input.Session, error) {
	dv, ok := cfg.Device.(StdInputDevice)
	if !ok {
		return nil, fmt.Errorf("invalid device type %T", cfg.Device)
	}

	return NewSession(os.Stdin, dv.Format, cfg)
}

// StdInputDevice is standard input carrying samples in Format.
type StdInputDevice struct {
	Format input.Format
}

func (d StdInputDevice) String() string {
	return d.Format.String()
}

// NewSession reads frames from r until it is exhausted. Closing the session
// closes r when it is an io.Closer, which ends a pending read.
func NewSession(r io.Reader, format input.Format, cfg input.SessionConfig) (*input.StreamSession, error) {
	if err := input.EnsureConfig(cfg); err != nil {
		return nil, err
	}

	sess := input.NewStreamSession(r, format, cfg)
	if c, ok := r.(io.Closer); ok {
		sess.OnClose = c.Close
	}

	return sess, nil
}
