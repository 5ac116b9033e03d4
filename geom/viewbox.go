package geom

import "math"

// ViewBox is an axis-aligned bounding box. Its width and
// height are always derived from the extrema.
// The zero value is the degenerate box reduced to the origin;
// use EmptyViewBox for a box with no extent at all.
type ViewBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewViewBox returns the box spanning the given extrema.
// Inverted bounds are swapped so that the width and height
// are never negative.
func NewViewBox(minX, minY, maxX, maxY float64) ViewBox {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return ViewBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// EmptyViewBox returns the identity element of Union.
func EmptyViewBox() ViewBox {
	return ViewBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// PointViewBox returns the degenerate box containing only p.
func PointViewBox(p Point) ViewBox {
	return ViewBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// BoundingBox returns the smallest box containing every point,
// or an empty box for no points.
func BoundingBox(points ...Point) ViewBox {
	box := EmptyViewBox()
	for _, p := range points {
		box = box.Union(PointViewBox(p))
	}
	return box
}

// IsEmpty returns true if the box contains no point at all.
func (v ViewBox) IsEmpty() bool { return v.MinX > v.MaxX || v.MinY > v.MaxY }

// Width returns MaxX - MinX, or 0 for an empty box.
func (v ViewBox) Width() float64 {
	if v.IsEmpty() {
		return 0
	}
	return v.MaxX - v.MinX
}

// Height returns MaxY - MinY, or 0 for an empty box.
func (v ViewBox) Height() float64 {
	if v.IsEmpty() {
		return 0
	}
	return v.MaxY - v.MinY
}

// Union returns the smallest box containing both v and other.
func (v ViewBox) Union(other ViewBox) ViewBox {
	if v.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return v
	}
	return ViewBox{
		MinX: math.Min(v.MinX, other.MinX),
		MinY: math.Min(v.MinY, other.MinY),
		MaxX: math.Max(v.MaxX, other.MaxX),
		MaxY: math.Max(v.MaxY, other.MaxY),
	}
}

// WithMargin grows the box by m on every side.
// An empty box stays empty.
func (v ViewBox) WithMargin(m float64) ViewBox {
	if v.IsEmpty() {
		return v
	}
	return ViewBox{
		MinX: v.MinX - m,
		MinY: v.MinY - m,
		MaxX: v.MaxX + m,
		MaxY: v.MaxY + m,
	}
}

// Origin returns the top left corner, or the origin for an empty box.
func (v ViewBox) Origin() Point {
	if v.IsEmpty() {
		return Point{}
	}
	return Point{v.MinX, v.MinY}
}

// String returns the four space separated numbers of
// the SVG viewBox attribute : "minX minY width height".
func (v ViewBox) String() string {
	o := v.Origin()
	return FormatFloat(o.X) + " " + FormatFloat(o.Y) + " " +
		FormatFloat(v.Width()) + " " + FormatFloat(v.Height())
}
