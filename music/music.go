// Package music maps note names to frequencies and buffer sizes.
package music

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Note is a pitch class with an octave.
type Note struct {
	Name   string // C, Db, D ... B
	Octave int
}

// Octave zero frequencies in Hz.
var baseFrequencies = map[string]float64{
	"C":  16.35,
	"Db": 17.32,
	"D":  18.35,
	"Eb": 19.45,
	"E":  20.60,
	"F":  21.83,
	"Gb": 23.12,
	"G":  24.50,
	"Ab": 25.96,
	"A":  27.50,
	"Bb": 29.14,
	"B":  30.87,
}

var sharps = map[string]string{
	"C#": "Db",
	"D#": "Eb",
	"F#": "Gb",
	"G#": "Ab",
	"A#": "Bb",
}

// ParseNote reads a note such as "A", "Bb4" or "F#2". The octave defaults to
// zero.
func ParseNote(text string) (Note, error) {
	text = strings.TrimSpace(text)

	split := len(text)
	for split > 0 && text[split-1] >= '0' && text[split-1] <= '9' {
		split--
	}

	name, octave := text[:split], 0

	if split < len(text) {
		var err error
		if octave, err = strconv.Atoi(text[split:]); err != nil {
			return Note{}, errors.Wrapf(err, "invalid octave in note %q", text)
		}
	}

	if flat, ok := sharps[name]; ok {
		name = flat
	}

	if _, ok := baseFrequencies[name]; !ok {
		return Note{}, errors.Errorf("unrecognized note %q", text)
	}

	return Note{Name: name, Octave: octave}, nil
}

// Frequency returns the pitch in Hz.
func (n Note) Frequency() float64 {
	return baseFrequencies[n.Name] * math.Pow(2, float64(n.Octave))
}

func (n Note) String() string {
	return n.Name + strconv.Itoa(n.Octave)
}

// TuneBufferSize returns the number of samples holding four periods of the
// note at rate, rounded up to a multiple of align.
func (n Note) TuneBufferSize(rate float64, align int) int {
	freq := n.Frequency()
	if freq <= 0 || rate <= 0 {
		return 0
	}

	size := int(math.Round(rate / freq * 4))

	if align > 1 {
		if rem := size % align; rem != 0 {
			size += align - rem
		}
	}

	return size
}
