//go:build darwin

package ffmpeg

func init() {
	register(demuxer{
		name:         "avfoundation",
		defaultInput: "none:default",
		list: func() ([]Device, error) {
			return probeDevices("avfoundation", parseAVFoundation)
		},
	})
}
