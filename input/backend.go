package input

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
)

// Backend is a family of capture devices.
type Backend interface {
	// Init should do nothing if called more than once.
	Init() error
	Close() error

	Devices() ([]Device, error)
	DefaultDevice() (Device, error)
	Start(context.Context, SessionConfig) (Session, error)
}

// DeviceLookup is implemented by backends whose devices cannot be listed,
// such as files. GetDevice prefers it over scanning Devices.
type DeviceLookup interface {
	LookupDevice(name string) (Device, error)
}

type NamedBackend struct {
	Name string
	Backend
}

// Backends holds every registered backend in registration order.
var Backends []NamedBackend

// RegisterBackend registers a backend globally. It is not safe for concurrent
// use; packages call it from init.
func RegisterBackend(name string, b Backend) {
	Backends = append(Backends, NamedBackend{Name: name, Backend: b})
}

// GetAllBackendNames lists the registered backend names.
func GetAllBackendNames() []string {
	out := make([]string, len(Backends))
	for i, backend := range Backends {
		out[i] = backend.Name
	}
	return out
}

type preferred struct {
	backend string
	program string // must be on PATH, empty when none is needed
}

// preference lists the capture backends per GOOS, best first.
var preference = map[string][]preferred{
	"windows": {{"ffmpeg-dshow", ""}},
	"darwin":  {{"portaudio", ""}, {"ffmpeg-avfoundation", ""}},
	"linux": {
		{"pipewire", "pw-cat"},
		{"parec", "parec"},
		{"ffmpeg-alsa", ""},
	},
}

// DefaultBackend picks a capture backend for the current platform. It
// returns "" when nothing usable is registered.
func DefaultBackend() string {
	return defaultBackend(runtime.GOOS, exec.LookPath)
}

func defaultBackend(goos string, lookPath func(string) (string, error)) string {
	for _, p := range preference[goos] {
		if !HasBackend(p.backend) {
			continue
		}

		if p.program != "" {
			if _, err := lookPath(p.program); err != nil {
				continue
			}
		}

		return p.backend
	}

	return ""
}

// FindBackend returns the backend called name, or nil.
func FindBackend(name string) Backend {
	for _, backend := range Backends {
		if backend.Name == name {
			return backend
		}
	}
	return nil
}

func HasBackend(name string) bool {
	return FindBackend(name) != nil
}

// InitBackend finds and initializes the backend called name.
func InitBackend(name string) (Backend, error) {
	backend := FindBackend(name)
	if backend == nil {
		return nil, errors.Errorf("backend not found: %q; check list-backends", name)
	}

	if err := backend.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize input backend")
	}

	return backend, nil
}

// GetDevice resolves a device name on backend. An empty name means the
// backend's default device.
func GetDevice(backend Backend, name string) (Device, error) {
	if name == "" {
		def, err := backend.DefaultDevice()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get default device")
		}
		return def, nil
	}

	if lookup, ok := backend.(DeviceLookup); ok {
		return lookup.LookupDevice(name)
	}

	devices, err := backend.Devices()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get devices")
	}

	for _, dv := range devices {
		if dv.String() == name {
			return dv, nil
		}
	}

	return nil, errors.Errorf("device %q not found; check list-devices", name)
}
