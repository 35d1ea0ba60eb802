package input

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// StreamSession reads interleaved PCM frames from a reader. It is the shared
// base for every backend that ends up with a byte stream.
//
// Close may be called while Next is blocked in a read; OnClose is expected to
// release the reader so that the read returns.
type StreamSession struct {
	// OnClose is called once by Close. Nil by default.
	OnClose func() error

	reader io.Reader
	format Format
	cfg    SessionConfig
	raw    []byte

	closeOnce sync.Once
	closeErr  error
	closed    atomic.Bool
}

// NewStreamSession creates a session that reads cfg.SampleSize samples per
// channel from r for every frame.
func NewStreamSession(r io.Reader, format Format, cfg SessionConfig) *StreamSession {
	return &StreamSession{
		reader: r,
		format: format,
		cfg:    cfg,
		raw:    make([]byte, format.FrameBytes(cfg)),
	}
}

// Next reads one full frame. A partial trailing frame counts as end of stream.
func (s *StreamSession) Next() (Matrix, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	if _, err := io.ReadFull(s.reader, s.raw); err != nil {
		if s.closed.Load() {
			return nil, ErrClosed
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}
		return nil, err
	}

	frame := MakeMatrix(s.cfg.FrameSize, s.cfg.SampleSize)
	s.format.Decode(s.raw, frame)

	return frame, nil
}

// Close runs OnClose once.
func (s *StreamSession) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.OnClose != nil {
			s.closeErr = s.OnClose()
		}
	})

	return s.closeErr
}
