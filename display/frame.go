package display

import "fmt"

// Header is the status line shown above the chart.
type Header struct {
	Mode    string // mode name
	Status  string // mode specific status
	Scale   float64
	Samples int
	Width   int
	FPS     int
	Scatter bool
	Pause   bool
}

// Cells returns the header split into the columns it is drawn in.
func (h Header) Cells() []string {
	style := "---"
	if h.Scatter {
		style = "***"
	}

	state := "|>"
	if h.Pause {
		state = "||"
	}

	return []string{
		h.Mode + "::catscope",
		h.Status,
		fmt.Sprintf("-%.2fx+", h.Scale),
		fmt.Sprintf("%d/%d spf", h.Samples, h.Width),
		fmt.Sprintf("%dfps", h.FPS),
		style,
		state,
	}
}

// Frame is everything the renderer needs to draw one iteration.
type Frame struct {
	ShowHeader bool
	Header     Header

	X, Y     Axis
	Datasets []Dataset // drawn in order, later sets paint on top

	HeaderColor Color
	LabelsColor Color
	AxisColor   Color
}
