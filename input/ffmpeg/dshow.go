//go:build windows

package ffmpeg

func init() {
	register(demuxer{
		name:    "dshow",
		options: dshowOptions,
		list: func() ([]Device, error) {
			return probeDevices("dshow", parseDShow)
		},
	})
}
