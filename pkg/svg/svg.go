// Package svg builds the vector document for a set of map items.
//
// The document is self-contained: its width/height match the bounding box
// extents and its viewBox is anchored at the bounding box origin, so items
// render within visible bounds regardless of coordinate sign or magnitude.
package svg

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/mapforge/mapforge/pkg/mapfile"
)

// pointRadius is the fixed circle radius for point annotations.
const pointRadius = 3

// Build renders the items into a complete SVG document. One primitive is
// emitted per item, in collection order; later items draw over earlier
// ones. Labels are parsed but not rendered.
func Build(items mapfile.MapItems, box mapfile.Box) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<svg width=\"%s\" height=\"%s\" viewBox=\"%s %s %s %s\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		coord(box.W), coord(box.H), coord(box.X), coord(box.Y), coord(box.W), coord(box.H))

	for _, item := range items {
		switch it := item.(type) {
		case mapfile.LineItem:
			writeLine(&buf, it)
		case mapfile.PointItem:
			writePoint(&buf, it)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeLine(buf *bytes.Buffer, line mapfile.LineItem) {
	fmt.Fprintf(buf, "<path d=\"M %s %s L %s %s\" stroke=\"%s\" fill=\"none\" class=\"line-item\" />\n",
		coord(line.From.X), coord(line.From.Y), coord(line.To.X), coord(line.To.Y), line.Color)
}

func writePoint(buf *bytes.Buffer, point mapfile.PointItem) {
	fmt.Fprintf(buf, "<circle cx=\"%s\" cy=\"%s\" r=\"%d\" fill=\"%s\" class=\"point-item-circle\" />\n",
		coord(point.Point.X), coord(point.Point.Y), pointRadius, point.Color)
}

// coord formats a float32 coordinate with the shortest exact representation.
func coord(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
