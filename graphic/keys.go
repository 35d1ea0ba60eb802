package graphic

import (
	"github.com/gdamore/tcell/v2"

	"github.com/noriah/catscope/display"
)

func translateMod(m tcell.ModMask) display.Modifier {
	var mod display.Modifier
	if m&tcell.ModShift != 0 {
		mod |= display.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= display.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= display.ModAlt
	}
	return mod
}

// translateKey maps a tcell key press to a display event. Control letters
// become their lowercase rune with the control modifier.
func translateKey(ev *tcell.EventKey) display.Event {
	mod := translateMod(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		return display.RuneEvent(ev.Rune(), mod)
	case k == tcell.KeyTab:
		return display.KeyEvent(display.KeyTab, mod)
	case k == tcell.KeyEnter:
		return display.KeyEvent(display.KeyEnter, mod)
	case k == tcell.KeyBackspace, k == tcell.KeyBackspace2:
		return display.KeyEvent(display.KeyBackspace, mod)
	case k == tcell.KeyEscape:
		return display.KeyEvent(display.KeyEsc, mod)
	case k == tcell.KeyUp:
		return display.KeyEvent(display.KeyUp, mod)
	case k == tcell.KeyDown:
		return display.KeyEvent(display.KeyDown, mod)
	case k == tcell.KeyLeft:
		return display.KeyEvent(display.KeyLeft, mod)
	case k == tcell.KeyRight:
		return display.KeyEvent(display.KeyRight, mod)
	case k == tcell.KeyPgUp:
		return display.KeyEvent(display.KeyPgUp, mod)
	case k == tcell.KeyPgDn:
		return display.KeyEvent(display.KeyPgDn, mod)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return display.RuneEvent(rune('a'+(k-tcell.KeyCtrlA)), mod|display.ModCtrl)
	}

	return display.KeyEvent(display.KeyUnknown, mod)
}
