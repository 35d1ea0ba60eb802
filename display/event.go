package display

// Key identifies a non-printable key. Printable keys are KeyRune.
type Key int

const (
	KeyRune Key = iota
	KeyTab
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPgUp
	KeyPgDn
	KeyUnknown
)

// Modifier is a bit set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt

	ModNone Modifier = 0
)

// Event is a single key press.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// RuneEvent returns the event for a printable key.
func RuneEvent(r rune, mod Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Mod: mod}
}

// KeyEvent returns the event for a special key.
func KeyEvent(k Key, mod Modifier) Event {
	return Event{Key: k, Mod: mod}
}

// IsRune reports whether the event is the printable key r.
func (ev Event) IsRune(r rune) bool {
	return ev.Key == KeyRune && ev.Rune == r
}

// Magnitude is the step multiplier chosen by the held modifier. Combinations
// of modifiers step by one.
func (ev Event) Magnitude() float64 {
	switch ev.Mod {
	case ModShift:
		return 10
	case ModCtrl:
		return 5
	case ModAlt:
		return 0.2
	default:
		return 1
	}
}
