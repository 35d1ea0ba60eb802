package display

import "strconv"

// Point is one plotted coordinate.
type Point struct {
	X, Y float64
}

// GraphType is how the points of a dataset are joined.
type GraphType int

const (
	GraphLine GraphType = iota
	GraphScatter
)

// Dataset is a named, colored series of points built fresh every frame.
type Dataset struct {
	Name   string // may be empty
	Points []Point
	Marker Marker
	Graph  GraphType
	Color  Color
}

// Dimension selects an axis.
type Dimension int

const (
	DimensionX Dimension = iota
	DimensionY
)

// Axis describes one axis of the chart.
type Axis struct {
	Title  string
	Bounds [2]float64
}

func newAxis(cfg *GraphConfig, title string, lo, hi float64) Axis {
	a := Axis{Bounds: [2]float64{lo, hi}}
	if cfg.ShowUI {
		a.Title = title
	}

	return a
}

// line returns a two point guide line in the axis color.
func line(cfg *GraphConfig, from, to Point) Dataset {
	return Dataset{
		Points: []Point{from, to},
		Marker: cfg.Marker,
		Graph:  GraphLine,
		Color:  cfg.AxisColor,
	}
}

func channelNumber(index int) string {
	return strconv.Itoa(index)
}
