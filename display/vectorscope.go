package display

import "github.com/noriah/catscope/input"

// Vectorscope plots channel pairs against each other.
type Vectorscope struct{}

func (v *Vectorscope) header(_ *GraphConfig) string {
	return "live"
}

func (v *Vectorscope) axis(cfg *GraphConfig, dim Dimension) Axis {
	if dim == DimensionX {
		return newAxis(cfg, "left -", -cfg.Scale, cfg.Scale)
	}

	return newAxis(cfg, "| right", -cfg.Scale, cfg.Scale)
}

func (v *Vectorscope) references(cfg *GraphConfig) []Dataset {
	return []Dataset{
		line(cfg, Point{-cfg.Scale, 0}, Point{cfg.Scale, 0}),
		line(cfg, Point{0, -cfg.Scale}, Point{0, cfg.Scale}),
	}
}

// process pairs channels (0,1), (2,3), ... A trailing unpaired channel is
// plotted against its sample index. Each pair is split in two halves so the
// newer samples get their own color.
func (v *Vectorscope) process(cfg *GraphConfig, data input.Matrix) []Dataset {
	var out []Dataset

	for n := 0; n < len(data); n += 2 {
		var points []Point

		if n+1 < len(data) {
			points = pairPoints(data[n], data[n+1], cfg.Samples)
		} else {
			points = indexPoints(data[n], cfg.Samples)
		}

		pivot := len(points) / 2

		out = append(out,
			Dataset{
				Name:   channelNumber(n),
				Points: points[:pivot],
				Marker: cfg.Marker,
				Graph:  cfg.GraphType(),
				Color:  cfg.PaletteColor(n),
			},
			Dataset{
				Name:   channelNumber(n + 1),
				Points: points[pivot:],
				Marker: cfg.Marker,
				Graph:  cfg.GraphType(),
				Color:  cfg.PaletteColor(n + 1),
			},
		)
	}

	return out
}

func pairPoints(a, b []float64, limit int) []Point {
	size := len(a)
	if len(b) < size {
		size = len(b)
	}
	if limit < size {
		size = limit
	}
	if size < 0 {
		size = 0
	}

	points := make([]Point, size)
	for idx := range points {
		points[idx] = Point{a[idx], b[idx]}
	}

	return points
}

func indexPoints(a []float64, limit int) []Point {
	size := len(a)
	if limit < size {
		size = limit
	}
	if size < 0 {
		size = 0
	}

	points := make([]Point, size)
	for idx := range points {
		points[idx] = Point{a[idx], float64(idx)}
	}

	return points
}

func (v *Vectorscope) handle(Event) {}
