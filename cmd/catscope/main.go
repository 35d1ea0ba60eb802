package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	"github.com/noriah/catscope"
	"github.com/noriah/catscope/graphic"
	"github.com/noriah/catscope/input"
	"github.com/noriah/catscope/input/file"

	_ "github.com/noriah/catscope/input/all"
)

// AppName is the app name
const AppName = "catscope"

// AppDesc is the app description
const AppDesc = "terminal oscilloscope, vectorscope and spectroscope"

// AppSite is the app website
const AppSite = "https://github.com/noriah/catscope"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	if doFlags(&cfg) {
		return
	}

	chk(cfg.validate(), "invalid config")

	file.GlobalBackend.LimitRate = cfg.limitRate

	scopeCfg := catscope.Config{
		Backend:      cfg.backend,
		Device:       cfg.device,
		SampleRate:   cfg.sampleRate,
		SampleSize:   cfg.sampleSize,
		ChannelCount: cfg.channelCount,
		UseThreaded:  cfg.useThreaded,
		Backlog:      catscope.DefaultBacklog,
		Graph:        cfg.graphConfig(),
		Modes:        cfg.modes(),
	}

	if cfg.raw {
		scopeCfg.Output = NewRawOutput(os.Stdout, cfg.rawBins, cfg.sampleRate, cfg.sampleSize)
	} else {
		screen := graphic.NewDisplay(nil)
		scopeCfg.Output = screen

		logOutput, err := openLog(cfg.logFile)
		chk(err, "failed to open log file")
		defer logOutput.Close()

		scopeCfg.SetupFunc = func() error {
			log.SetOutput(logOutput)
			return screen.Init()
		}

		scopeCfg.CleanupFunc = func() error {
			err := screen.Close()
			log.SetOutput(os.Stderr)
			return err
		}
	}

	// Root Context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	chk(catscope.Run(&scopeCfg, ctx), "failed to run catscope")
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog returns where logs go while the terminal is drawn on.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func doFlags(cfg *config) bool {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	listBackendsCmd := flaggy.Subcommand{
		Name:                 "list-backends",
		ShortName:            "lb",
		Description:          "list all supported backends",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listBackendsCmd, 1)

	listDevicesCmd := flaggy.Subcommand{
		Name:                 "list-devices",
		ShortName:            "ld",
		Description:          "list all devices for a backend",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listDevicesCmd, 1)

	parser.String(&cfg.backend, "b", "backend", "backend name")
	parser.String(&cfg.device, "d", "device", "device name (a path for the file backend)")
	parser.Float64(&cfg.sampleRate, "r", "rate", "sample rate")
	parser.Int(&cfg.sampleSize, "n", "samples", "samples per channel in every frame")
	parser.Int(&cfg.channelCount, "ch", "channels", "channel count")
	parser.String(&cfg.tune, "", "tune", "size frames to four periods of a note (A, Bb4, F#2)")
	parser.Bool(&cfg.limitRate, "", "limit-rate", "play files at the sample rate")
	parser.Bool(&cfg.useThreaded, "t", "threaded", "read frames on a separate thread")

	parser.String(&cfg.mode, "m", "mode", "first mode (oscillo, vector, spectro)")
	parser.Float64(&cfg.scale, "s", "scale", "vertical scale [0, 10]")
	parser.Bool(&cfg.scatter, "", "scatter", "draw points instead of lines")
	parser.Bool(&cfg.noReference, "", "no-reference", "hide guide lines")
	parser.Bool(&cfg.noUI, "", "no-ui", "hide the header and axis titles")
	parser.Bool(&cfg.noBraille, "", "no-braille", "draw with dots instead of braille")
	parser.String(&cfg.palette, "", "palette", "channel colors, comma separated 256-color indexes")
	parser.Int(&cfg.axisColor, "", "axis-color", "axis color within the 256-color range, -1 for default")
	parser.Int(&cfg.labelsColor, "", "labels-color", "labels color within the 256-color range, -1 for default")

	parser.Int(&cfg.average, "a", "average", "frames combined by the spectroscope")
	parser.String(&cfg.window, "w", "window", "spectroscope window function")
	parser.Bool(&cfg.logY, "", "log-y", "logarithmic spectroscope levels")
	parser.Float64(&cfg.smoothing, "sf", "smoothing", "spectroscope smooth factor (0-99)")

	parser.Bool(&cfg.raw, "", "raw", "print frames as numbers instead of drawing")
	parser.Int(&cfg.rawBins, "", "raw-bins", "values printed per dataset with --raw")
	parser.String(&cfg.logFile, "", "log", "write logs to this file while drawing")

	chk(parser.Parse(), "failed to parse arguments")

	switch {
	case listBackendsCmd.Used:
		for _, backend := range input.Backends {
			fmt.Printf("- %s\n", backend.Name)
		}

		return true

	case listDevicesCmd.Used:
		backend, err := input.InitBackend(cfg.backend)
		chk(err, "failed to init backend")

		devices, err := backend.Devices()
		chk(err, "failed to get devices")

		// We don't really need the default device to be indicated.
		defaultDevice, _ := backend.DefaultDevice()

		fmt.Printf("all devices for %q backend. '*' marks default\n", cfg.backend)

		for idx := range devices {
			star := ' '
			if defaultDevice != nil && devices[idx].String() == defaultDevice.String() {
				star = '*'
			}

			fmt.Printf("- %v %c\n", devices[idx], star)
		}

		return true
	}

	return false
}

func chk(err error, wrap string) {
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalln(wrap+": ", err)
	}
}
