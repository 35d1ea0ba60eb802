package processor

import (
	"context"

	"github.com/noriah/catscope/input"
)

type result struct {
	frame input.Matrix
	err   error
}

// Threaded reads a session on its own goroutine and hands the frames over a
// buffered channel, so a slow draw does not stall the capture. Frames are
// never dropped; the reader blocks when the backlog is full.
//
// The wrapped session must allow Close while Next is blocked and must return
// from that Next once closed.
type Threaded struct {
	src    input.Session
	frames chan result
	cancel context.CancelFunc
	done   chan struct{}
}

// NewThreaded starts reading src. The reader stops at the first error, when
// ctx is done or on Close.
func NewThreaded(ctx context.Context, src input.Session, backlog int) *Threaded {
	if backlog < 1 {
		backlog = 1
	}

	ctx, cancel := context.WithCancel(ctx)

	t := &Threaded{
		src:    src,
		frames: make(chan result, backlog),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go t.run(ctx)

	return t
}

func (t *Threaded) run(ctx context.Context) {
	defer close(t.done)
	defer close(t.frames)

	for {
		frame, err := t.src.Next()

		select {
		case t.frames <- result{frame, err}:
		case <-ctx.Done():
			return
		}

		if err != nil {
			return
		}
	}
}

// Next returns the oldest frame not yet consumed.
func (t *Threaded) Next() (input.Matrix, error) {
	r, ok := <-t.frames
	if !ok {
		return nil, input.ErrClosed
	}

	return r.frame, r.err
}

// Close stops the reader, closes the wrapped session and waits for the reader
// to return. Frames still queued are discarded.
func (t *Threaded) Close() error {
	t.cancel()
	err := t.src.Close()
	<-t.done
	return err
}
