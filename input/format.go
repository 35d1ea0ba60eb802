package input

import (
	"encoding/binary"
	"math"
)

// Format is an interleaved PCM sample encoding.
type Format int

// Supported sample formats. Integer formats are normalized into [-1, 1).
const (
	S16LE Format = iota
	F32LE
	F64LE
)

// Width returns the number of bytes per sample.
func (f Format) Width() int {
	switch f {
	case S16LE:
		return 2
	case F32LE:
		return 4
	default:
		return 8
	}
}

func (f Format) String() string {
	switch f {
	case S16LE:
		return "s16le"
	case F32LE:
		return "f32le"
	case F64LE:
		return "f64le"
	default:
		return "unknown"
	}
}

// FrameBytes returns the size in bytes of one interleaved frame.
func (f Format) FrameBytes(cfg SessionConfig) int {
	return f.Width() * cfg.FrameSize * cfg.SampleSize
}

// Decode splits raw interleaved samples (L R L R ...) into dst, one row per
// channel. raw must hold exactly len(dst)*len(dst[0]) samples.
func (f Format) Decode(raw []byte, dst Matrix) {
	channels := len(dst)
	if channels == 0 {
		return
	}

	width := f.Width()
	count := len(raw) / width

	for n := 0; n < count; n++ {
		dst[n%channels][n/channels] = f.sample(raw[n*width : (n+1)*width])
	}
}

func (f Format) sample(b []byte) float64 {
	order := binary.LittleEndian

	switch f {
	case S16LE:
		return float64(int16(order.Uint16(b))) / 32768.0
	case F32LE:
		return float64(math.Float32frombits(order.Uint32(b)))
	default:
		return math.Float64frombits(order.Uint64(b))
	}
}
