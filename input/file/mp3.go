package file

import (
	"os"

	"github.com/hajimehoshi/go-mp3"
	"github.com/noriah/catscope/input"
	"github.com/pkg/errors"
)

// go-mp3 always decodes to interleaved 16 bit little endian stereo.
const mp3Channels = 2

type mp3Session struct {
	*input.StreamSession
	rate float64
}

func newMP3Session(f *os.File, cfg input.SessionConfig) (*mp3Session, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open mp3 decoder")
	}

	cfg.FrameSize = mp3Channels

	stream := input.NewStreamSession(dec, input.S16LE, cfg)
	stream.OnClose = f.Close

	return &mp3Session{
		StreamSession: stream,
		rate:          float64(dec.SampleRate()),
	}, nil
}

func (s *mp3Session) SampleRate() float64 {
	return s.rate
}
