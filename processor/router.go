package processor

import "github.com/noriah/catscope/display"

const (
	scaleStep   = 0.01
	samplesStep = 25
)

// route applies a global shortcut or forwards ev to the active mode.
func (p *Processor) route(ev display.Event) {
	mag := ev.Magnitude()

	switch ev.Key {
	case display.KeyTab:
		p.modes.Cycle()
		return

	case display.KeyUp:
		p.graph.AdjustScale(scaleStep * mag)
		return

	case display.KeyDown:
		p.graph.AdjustScale(-scaleStep * mag)
		return

	case display.KeyRight:
		p.graph.AdjustSamples(int(samplesStep * mag))
		return

	case display.KeyLeft:
		p.graph.AdjustSamples(-int(samplesStep * mag))
		return

	case display.KeyEsc:
		// reset the zoom, then let the mode reset itself too
		p.graph.Reset()

	case display.KeyRune:
		if ev.Mod&display.ModCtrl != 0 {
			switch ev.Rune {
			case 'c', 'q', 'w':
				p.quit = true
				return
			}
		}

		switch ev.Rune {
		case 'q':
			p.quit = true
			return
		case ' ':
			p.graph.Pause = !p.graph.Pause
			return
		case 's':
			p.graph.Scatter = !p.graph.Scatter
			return
		case 'h':
			p.graph.ShowUI = !p.graph.ShowUI
			return
		case 'r':
			p.graph.References = !p.graph.References
			return
		}
	}

	p.modes.Handle(ev)
}
