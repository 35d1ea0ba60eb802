//go:build portaudio

package all

import (
	_ "github.com/noriah/catscope/input/portaudio"
)
