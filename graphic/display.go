// Package graphic draws display frames on a terminal through tcell and turns
// terminal key presses into display events.
package graphic

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/noriah/catscope/display"
)

// headerGap is the blank space between header columns.
const headerGap = 2

// Display handles drawing our visualizer
type Display struct {
	screen  tcell.Screen
	canvas  *Canvas
	restore func()
}

// NewDisplay returns a display on screen. A nil screen opens the terminal.
func NewDisplay(screen tcell.Screen) *Display {
	return &Display{screen: screen, canvas: NewCanvas(0, 0)}
}

// Init takes over the terminal.
func (d *Display) Init() error {
	if d.screen == nil {
		restore, err := normalizeTerminal()
		if err != nil {
			return errors.Wrap(err, "failed to prepare terminal")
		}
		d.restore = restore

		if d.screen, err = tcell.NewScreen(); err != nil {
			d.restoreEnv()
			return errors.Wrap(err, "failed to open terminal")
		}
	}

	if err := d.screen.Init(); err != nil {
		d.restoreEnv()
		return errors.Wrap(err, "failed to initialize terminal")
	}

	d.screen.DisableMouse()
	d.screen.HideCursor()
	d.screen.Clear()

	return nil
}

// Close will stop display and clean up the terminal
func (d *Display) Close() error {
	if d.screen != nil {
		d.screen.Fini()
	}

	d.restoreEnv()
	return nil
}

func (d *Display) restoreEnv() {
	if d.restore != nil {
		d.restore()
		d.restore = nil
	}
}

// PollEvent returns the next queued key press without blocking. Resizes are
// handled here and never returned.
func (d *Display) PollEvent() (display.Event, bool) {
	if d.screen == nil {
		return display.Event{}, false
	}

	for d.screen.HasPendingEvent() {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			return display.Event{}, false

		case *tcell.EventKey:
			return translateKey(ev), true

		case *tcell.EventResize:
			d.screen.Sync()
		}
	}

	return display.Event{}, false
}

// Draw renders one frame: the header line, the datasets in order and the
// axis titles.
func (d *Display) Draw(f display.Frame) error {
	if d.screen == nil {
		return errors.New("display is not initialized")
	}

	d.screen.Clear()

	width, height := d.screen.Size()

	top := 0
	if f.ShowHeader && height > 1 {
		d.drawHeader(f, width)
		top = 1
	}

	rows := height - top
	if width > 0 && rows > 0 {
		d.canvas.Resize(width, rows)

		for _, set := range f.Datasets {
			d.canvas.Plot(set, f.X.Bounds, f.Y.Bounds)
		}

		for row := 0; row < rows; row++ {
			for col := 0; col < width; col++ {
				if r, c, ok := d.canvas.Cell(col, row); ok {
					d.screen.SetContent(col, row+top, r, nil, style(c))
				}
			}
		}

		labels := style(f.LabelsColor)
		d.putString(0, top, width, f.Y.Title, labels)
		d.putString(width-len([]rune(f.X.Title)), height-1, width, f.X.Title, labels)
	}

	d.screen.Show()

	return nil
}

func (d *Display) drawHeader(f display.Frame, width int) {
	col := 0

	for i, text := range f.Header.Cells() {
		if text == "" {
			continue
		}

		st := style(f.LabelsColor)
		if i == 0 {
			st = style(f.HeaderColor).Bold(true)
		}

		col = d.putString(col, 0, width-col, text, st) + headerGap
		if col >= width {
			return
		}
	}
}

// putString writes text from col, at most limit cells wide, and returns the
// column after the last cell written.
func (d *Display) putString(col, row, limit int, text string, st tcell.Style) int {
	if col < 0 {
		col = 0
	}

	for _, r := range text {
		if limit <= 0 {
			break
		}

		d.screen.SetContent(col, row, r, nil, st)
		col++
		limit--
	}

	return col
}

func style(c display.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(color(c))
}

func color(c display.Color) tcell.Color {
	if c < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c))
}
