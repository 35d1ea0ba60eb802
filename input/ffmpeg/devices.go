package ffmpeg

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/noriah/catscope/input/parec"
	"github.com/pkg/errors"
)

var alsa = demuxer{
	name:         "alsa",
	defaultInput: "default",
	list: func() ([]Device, error) {
		f, err := os.Open("/proc/asound/pcm")
		if err != nil {
			return nil, errors.Wrap(err, "failed to open pcm")
		}
		defer f.Close()

		return parseALSAPCM(f)
	},
}

var pulse = demuxer{
	name:         "pulse",
	defaultInput: "default",
	list: func() ([]Device, error) {
		sources, err := parec.Backend{}.Devices()
		if err != nil {
			return nil, err
		}

		devices := make([]Device, len(sources))
		for i, src := range sources {
			devices[i] = Device{Demuxer: "pulse", Input: src.String()}
		}

		return devices, nil
	},
}

// sndio devices are the /dev/audioN nodes; only known to work on OpenBSD.
var sndio = demuxer{
	name:         "sndio",
	defaultInput: "/dev/audio0",
	list: func() ([]Device, error) {
		paths, err := filepath.Glob("/dev/audio*")
		if err != nil {
			return nil, errors.Wrap(err, "failed to glob /dev/audio")
		}

		devices := make([]Device, len(paths))
		for i, path := range paths {
			devices[i] = Device{Demuxer: "sndio", Input: path}
		}

		return devices, nil
	},
}

// parseALSAPCM reads /proc/asound/pcm, whose lines start with "CC-DD:".
func parseALSAPCM(r io.Reader) ([]Device, error) {
	var devices []Device

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		prefix, _, _ := strings.Cut(scanner.Text(), ":")

		hw, err := ParseALSADevice(prefix)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse device %q", prefix)
		}

		devices = append(devices, Device{Demuxer: "alsa", Input: hw})
	}

	return devices, errors.Wrap(scanner.Err(), "failed to read pcm")
}

// ParseALSADevice turns a card-device pair such as "00-01" into "hw:0,1".
func ParseALSADevice(pair string) (string, error) {
	parts := strings.Split(pair, "-")
	if pair == "" || len(parts) > 2 {
		return "", errors.Errorf("mismatch alsa format %q", pair)
	}

	hw := "hw:" + trimZeros(parts[0])
	if len(parts) == 2 {
		hw += "," + trimZeros(parts[1])
	}

	return hw, nil
}

func trimZeros(s string) string {
	if t := strings.TrimLeft(s, "0"); t != "" {
		return t
	}
	return "0"
}
