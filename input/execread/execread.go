// Package execread provides a shared session that reads audio from the
// standard output of a command.
package execread

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/noriah/catscope/input"
	"github.com/pkg/errors"
)

// Session is a session that reads interleaved audio values from a Cmd.
type Session struct {
	// OnStart is called when the command has started. Nil by default.
	OnStart func(ctx context.Context, cmd *exec.Cmd) error

	// prevents cmd.Stderr from pointing to os.Stderr. false by default.
	// stderr output would corrupt the terminal while it is drawn.
	DisconnectedStderr bool

	argv   []string
	cfg    input.SessionConfig
	format input.Format

	cancel context.CancelFunc
	cmd    *exec.Cmd
	stream *input.StreamSession

	// held while reading the pipe; Wait must not run before reads return.
	reading sync.Mutex
}

// NewSession creates a new execread session. It never returns an error.
func NewSession(argv []string, format input.Format, cfg input.SessionConfig) *Session {
	if len(argv) < 1 {
		panic("argv has no arg0")
	}

	return &Session{
		argv:   argv,
		cfg:    cfg,
		format: format,
	}
}

// Args returns the command line the session runs.
func (s *Session) Args() []string {
	return s.argv
}

// Start runs the command. The command is killed when ctx is done or the
// session is closed.
func (s *Session) Start(ctx context.Context) error {
	if err := input.EnsureConfig(s.cfg); err != nil {
		return err
	}

	ctx, s.cancel = context.WithCancel(ctx)

	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)

	if !s.DisconnectedStderr {
		cmd.Stderr = os.Stderr
	}

	o, err := cmd.StdoutPipe()
	if err != nil {
		s.cancel()
		return errors.Wrap(err, "failed to get stdout pipe")
	}

	if err := cmd.Start(); err != nil {
		s.cancel()
		return errors.Wrap(err, "failed to start "+s.argv[0])
	}

	if s.OnStart != nil {
		if err := s.OnStart(ctx, cmd); err != nil {
			s.cancel()
			_ = cmd.Wait()
			return err
		}
	}

	s.cmd = cmd
	s.stream = input.NewStreamSession(o, s.format, s.cfg)
	s.stream.OnClose = s.stop

	return nil
}

// Next blocks until the command has written a full frame.
func (s *Session) Next() (input.Matrix, error) {
	if s.stream == nil {
		return nil, errors.New("session not started")
	}

	s.reading.Lock()
	frame, err := s.stream.Next()
	s.reading.Unlock()

	if errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "%s stopped producing audio", s.argv[0])
	}

	return frame, err
}

// Close kills the command and waits for it to exit. It may be called while
// another goroutine is blocked in Next; that read ends with ErrClosed.
func (s *Session) Close() error {
	if s.stream == nil {
		return nil
	}

	return s.stream.Close()
}

func (s *Session) stop() error {
	s.cancel()

	// Killing the command closes the write end, so a pending read returns.
	s.reading.Lock()
	defer s.reading.Unlock()

	// The exit status of a killed recorder is not interesting.
	_ = s.cmd.Wait()

	return nil
}
