package display

// MaxScale is the largest vertical scale reachable from the keyboard.
const MaxScale = 10.0

// Color is an entry of the terminal's 256-color palette. ColorDefault leaves
// the terminal's own foreground in place.
type Color int16

// Palette colors.
const (
	ColorDefault Color = iota - 1
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorDarkGray
)

// Marker is the glyph set used to plot points.
type Marker int

const (
	MarkerBraille Marker = iota
	MarkerDot
)

// GraphConfig is the shared drawing state. It is mutated only by the event
// router and read by the modes and the renderer.
type GraphConfig struct {
	Scale        float64 // vertical amplitude scale, never negative
	Samples      int     // visible window, within [0, 2*Width]
	Width        int     // native buffer width
	SamplingRate float64

	Scatter    bool // points instead of lines
	References bool // draw guide lines
	ShowUI     bool // draw header and axis titles
	Pause      bool // freeze sample intake

	Marker      Marker
	Palette     []Color
	AxisColor   Color
	LabelsColor Color
}

// DefaultPalette is the channel palette used unless configured otherwise.
var DefaultPalette = []Color{ColorRed, ColorYellow, ColorGreen, ColorMagenta}

// NewGraphConfig returns the startup configuration for a buffer of width
// samples read at rate.
func NewGraphConfig(width int, rate float64) GraphConfig {
	return GraphConfig{
		Scale:        1,
		Samples:      width,
		Width:        width,
		SamplingRate: rate,
		References:   true,
		ShowUI:       true,
		Marker:       MarkerBraille,
		Palette:      append([]Color(nil), DefaultPalette...),
		AxisColor:    ColorDarkGray,
		LabelsColor:  ColorCyan,
	}
}

// PaletteColor returns the color for channel index, cycling the palette.
func (cfg *GraphConfig) PaletteColor(index int) Color {
	if len(cfg.Palette) == 0 {
		return ColorWhite
	}

	return cfg.Palette[index%len(cfg.Palette)]
}

// GraphType returns how signal traces are drawn.
func (cfg *GraphConfig) GraphType() GraphType {
	if cfg.Scatter {
		return GraphScatter
	}

	return GraphLine
}

// AdjustScale moves the scale by delta within [0, MaxScale].
func (cfg *GraphConfig) AdjustScale(delta float64) {
	cfg.Scale = clampFloat(cfg.Scale+delta, 0, MaxScale)
}

// AdjustSamples moves the visible window by delta within [0, 2*Width].
func (cfg *GraphConfig) AdjustSamples(delta int) {
	cfg.Samples = clampInt(cfg.Samples+delta, 0, cfg.MaxSamples())
}

// MaxSamples is the upper bound of the visible window.
func (cfg *GraphConfig) MaxSamples() int {
	if cfg.Width < 0 {
		return 0
	}

	return cfg.Width * 2
}

// Reset restores the zoom to the native buffer.
func (cfg *GraphConfig) Reset() {
	cfg.Samples = cfg.Width
	cfg.Scale = 1
}

func clampFloat(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
