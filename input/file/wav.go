package file

import (
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/noriah/catscope/input"
	"github.com/pkg/errors"
)

type wavSession struct {
	file    *os.File
	dec     *wav.Decoder
	buf     *audio.IntBuffer
	scale   float64
	offset  int
	samples int
	rate    float64
}

// newWAVSession decodes PCM WAV files. Frames carry the channel count of the
// file, not the configured one.
func newWAVSession(f *os.File, cfg input.SessionConfig) (*wavSession, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.New("invalid wav file")
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, errors.Wrap(err, "failed to find wav pcm data")
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, errors.New("wav file has no channels")
	}

	depth := int(dec.BitDepth)
	if depth < 8 {
		return nil, errors.Errorf("unsupported wav bit depth %d", depth)
	}

	// 8-bit PCM is unsigned with silence at 128.
	offset := 0
	if depth == 8 {
		offset = 128
	}

	return &wavSession{
		file: f,
		dec:  dec,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: channels, SampleRate: int(dec.SampleRate)},
			Data:           make([]int, cfg.SampleSize*channels),
			SourceBitDepth: depth,
		},
		scale:   math.Pow(2, float64(depth-1)),
		offset:  offset,
		samples: cfg.SampleSize,
		rate:    float64(dec.SampleRate),
	}, nil
}

func (s *wavSession) Next() (input.Matrix, error) {
	n, err := s.dec.PCMBuffer(s.buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode wav")
	}

	if n < len(s.buf.Data) {
		return nil, io.EOF
	}

	channels := s.buf.Format.NumChannels
	frame := input.MakeMatrix(channels, s.samples)

	for i, v := range s.buf.Data {
		frame[i%channels][i/channels] = float64(v-s.offset) / s.scale
	}

	return frame, nil
}

func (s *wavSession) SampleRate() float64 {
	return s.rate
}

func (s *wavSession) Close() error {
	return s.file.Close()
}
