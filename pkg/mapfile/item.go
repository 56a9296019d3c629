// Package mapfile implements the map annotation file format: a line-oriented
// text format describing labeled points and colored line segments in a flat
// 2D projection of 3D coordinates.
//
// Each line of a map file describes one item:
//
//	P <x>, <y>, <z>, <r>, <g>, <b>, <pointType>, <label>
//	L <fx>, <fy>, <fz>, <tx>, <ty>, <tz>, <r>, <g>, <b>
//
// The package provides parsing of single lines (Parser), loading and
// aggregation across multiple files (LoadFiles), and bounding-box
// computation over the loaded items (Bounds).
package mapfile

import "fmt"

// Point is a 3D coordinate. Z is carried for format fidelity but all
// geometry in this package projects onto (X, Y).
type Point struct {
	X, Y, Z float32
}

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// String returns the CSS rgb() form used in SVG attributes.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// PointItem is a labeled point annotation.
type PointItem struct {
	Point Point
	Color Color
	Label string
}

// LineItem is a colored line segment between two points.
type LineItem struct {
	From  Point
	To    Point
	Color Color
}

// MapItem is a single parsed annotation: either a PointItem or a LineItem.
// The set of implementations is closed; consumers dispatch with a type
// switch.
type MapItem interface {
	mapItem()
}

func (PointItem) mapItem() {}
func (LineItem) mapItem()  {}

// MapItems is an ordered collection of items. Order is insertion order and
// is meaningful: later items draw over earlier ones.
type MapItems []MapItem

// Points returns the number of PointItems in the collection.
func (m MapItems) Points() int {
	n := 0
	for _, item := range m {
		if _, ok := item.(PointItem); ok {
			n++
		}
	}
	return n
}

// Lines returns the number of LineItems in the collection.
func (m MapItems) Lines() int {
	return len(m) - m.Points()
}
