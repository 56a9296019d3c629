package mapfile

// Box is an axis-aligned bounding rectangle. X and Y are the origin
// (minimum corner); W and H are the extents.
type Box struct {
	X, Y, W, H float32
}

// Bounds computes the minimal rectangle enclosing the (x, y) projection of
// every point referenced by the items: one coordinate pair per PointItem,
// two per LineItem. An empty collection yields the zero Box. Coordinates
// are finite by parser construction, so plain comparison is a total order.
func Bounds(items MapItems) Box {
	if len(items) == 0 {
		return Box{}
	}

	first := true
	var minX, minY, maxX, maxY float32

	expand := func(x, y float32) {
		if first {
			minX, maxX = x, x
			minY, maxY = y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	for _, item := range items {
		switch it := item.(type) {
		case PointItem:
			expand(it.Point.X, it.Point.Y)
		case LineItem:
			expand(it.From.X, it.From.Y)
			expand(it.To.X, it.To.Y)
		}
	}

	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
