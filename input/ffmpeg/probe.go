//go:build darwin || windows

package ffmpeg

import (
	"os/exec"

	"github.com/pkg/errors"
)

// probeDevices asks ffmpeg to list the devices of demuxer and parses them.
func probeDevices(demuxer string, parse func([]byte) []Device) ([]Device, error) {
	cmd := exec.Command(
		"ffmpeg", "-hide_banner", "-loglevel", "info",
		"-f", demuxer, "-list_devices", "true",
		"-i", "",
	)

	// ffmpeg always fails on the empty input; the listing is still printed.
	out, _ := cmd.CombinedOutput()

	devices := parse(out)
	if len(devices) == 0 {
		return nil, errors.Errorf("no devices found; ffmpeg output:\n%s", indent(out))
	}

	return devices, nil
}
