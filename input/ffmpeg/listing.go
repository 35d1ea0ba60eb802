package ffmpeg

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// listLines strips the "[demuxer @ 0x...] " prefix ffmpeg puts on every line
// of a -list_devices run.
func listLines(out []byte, tag string) []string {
	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(text, "["+tag) {
			if _, rest, ok := strings.Cut(text, "] "); ok {
				text = rest
			}
		}
		lines = append(lines, text)
	}

	return lines
}

// parseAVFoundation reads the "[N] name" entries of the audio section.
func parseAVFoundation(out []byte) []Device {
	var devices []Device
	var audio bool

	for _, text := range listLines(out, "AVFoundation") {
		if text == "AVFoundation audio devices:" {
			audio = true
			continue
		}

		if !strings.HasPrefix(text, "[") {
			audio = false
			continue
		}

		if !audio {
			continue
		}

		index, name, ok := strings.Cut(text, " ")
		if !ok {
			continue
		}

		n, err := strconv.Atoi(strings.Trim(index, "[]"))
		if err != nil {
			continue
		}

		devices = append(devices, Device{
			Demuxer: "avfoundation",
			Input:   fmt.Sprintf("none:%d", n),
			Label:   fmt.Sprintf("%d:%s", n, name),
		})
	}

	return devices
}

// parseDShow reads the `"name" (audio)` entries.
func parseDShow(out []byte) []Device {
	var devices []Device

	for _, text := range listLines(out, "dshow") {
		text = strings.TrimSpace(text)
		if !strings.HasPrefix(text, `"`) {
			continue
		}

		name, kind, ok := strings.Cut(text[1:], `" (`)
		if !ok || !strings.HasPrefix(kind, "audio") {
			continue
		}

		devices = append(devices, Device{
			Demuxer: "dshow",
			Input:   "audio=" + name,
			Label:   name,
		})
	}

	return devices
}

// indent prefixes every line of out with a tab.
func indent(out []byte) string {
	lines := strings.Split(string(out), "\n")
	for i, line := range lines {
		lines[i] = "\t" + line
	}
	return strings.Join(lines, "\n")
}
