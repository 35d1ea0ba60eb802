// Package file plays audio files or named pipes as a sample source.
//
// WAV and MP3 files are decoded; anything else is read as raw interleaved
// signed 16 bit little endian samples.
package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/noriah/catscope/input"
	"github.com/pkg/errors"
)

// GlobalBackend is the registered file backend.
var GlobalBackend = &Backend{}

func init() {
	input.RegisterBackend("file", GlobalBackend)
}

// Backend opens files by path. A zero-value instance is a valid instance.
type Backend struct {
	// LimitRate paces frames to the sample rate instead of reading as fast as
	// the file allows. Named pipes block on their own and do not need it.
	LimitRate bool
}

func (b *Backend) Init() error {
	return nil
}

func (b *Backend) Close() error {
	return nil
}

func (b *Backend) Devices() ([]input.Device, error) {
	return nil, nil
}

func (b *Backend) DefaultDevice() (input.Device, error) {
	return nil, errors.New("the file backend needs a path as device")
}

// LookupDevice accepts any path that exists.
func (b *Backend) LookupDevice(name string) (input.Device, error) {
	if _, err := os.Stat(name); err != nil {
		return nil, errors.Wrap(err, "failed to stat input file")
	}

	return Device(name), nil
}

func (b *Backend) Start(_ context.Context, cfg input.SessionConfig) (input.Session, error) {
	dv, ok := cfg.Device.(Device)
	if !ok {
		return nil, errors.Errorf("invalid device type %T", cfg.Device)
	}

	if err := input.EnsureConfig(cfg); err != nil {
		return nil, err
	}

	f, err := os.Open(string(dv))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open input file")
	}

	sess, err := openSession(f, dv.Kind(), cfg)
	if err != nil {
		f.Close()
		return nil, err
	}

	if b.LimitRate {
		return newPaced(sess, sess.SampleRate(), cfg.SampleSize), nil
	}

	return sess, nil
}

// Device is the path of a file or pipe.
type Device string

func (d Device) String() string {
	return string(d)
}

// Kind is the container of a file.
type Kind int

const (
	KindRaw Kind = iota
	KindWAV
	KindMP3
)

// Kind guesses the container from the file extension.
func (d Device) Kind() Kind {
	switch strings.ToLower(filepath.Ext(string(d))) {
	case ".wav", ".wave":
		return KindWAV
	case ".mp3":
		return KindMP3
	default:
		return KindRaw
	}
}

// Session is a file backed session that knows its real sample rate.
type Session interface {
	input.Session
	SampleRate() float64
}

func openSession(f *os.File, kind Kind, cfg input.SessionConfig) (Session, error) {
	switch kind {
	case KindWAV:
		return newWAVSession(f, cfg)
	case KindMP3:
		return newMP3Session(f, cfg)
	default:
		return newRawSession(f, cfg), nil
	}
}

type rawSession struct {
	*input.StreamSession
	rate float64
}

func newRawSession(f *os.File, cfg input.SessionConfig) *rawSession {
	stream := input.NewStreamSession(f, input.S16LE, cfg)
	stream.OnClose = f.Close

	return &rawSession{stream, cfg.SampleRate}
}

func (s *rawSession) SampleRate() float64 {
	return s.rate
}

// paced delays every frame so that frames arrive at the rate they would from
// a live device.
type paced struct {
	Session
	ticker *time.Ticker

	stop     chan struct{}
	stopOnce sync.Once
}

func newPaced(sess Session, rate float64, size int) *paced {
	interval := time.Duration(float64(size) / rate * float64(time.Second))
	if interval <= 0 {
		interval = time.Millisecond
	}

	return &paced{
		Session: sess,
		ticker:  time.NewTicker(interval),
		stop:    make(chan struct{}),
	}
}

func (p *paced) Next() (input.Matrix, error) {
	frame, err := p.Session.Next()
	if err != nil {
		return nil, err
	}

	select {
	case <-p.ticker.C:
	case <-p.stop:
		return nil, input.ErrClosed
	}

	return frame, nil
}

func (p *paced) Close() error {
	p.stopOnce.Do(func() {
		p.ticker.Stop()
		close(p.stop)
	})
	return p.Session.Close()
}
