// Implements an abstract representation of
// svg paths, which can be written as path data
// or consumed by a painting driver.
package svgpath

import (
	"strings"

	"github.com/benoitkugler/svgsmooth/geom"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations.
// Transformations are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)
}

// Operation groups the different SVG commands
type Operation interface {
	// String returns the path data of the command, such as "L 1,2"
	String() string

	// add itself on the driver `d`, after applying the transform `m`
	drawTo(d Drawer, m geom.Matrix2D)
}

// MoveTo starts a new sub-path.
type MoveTo geom.Point

// LineTo draws a straight line.
type LineTo geom.Point

// CubicTo holds the two control points and the end point.
type CubicTo [3]geom.Point

// Close joins the current point to the start of the sub-path.
type Close struct{}

func (op MoveTo) String() string { return "M " + geom.Point(op).String() }
func (op LineTo) String() string { return "L " + geom.Point(op).String() }
func (op CubicTo) String() string {
	return "C " + op[0].String() + " " + op[1].String() + " " + op[2].String()
}
func (Close) String() string { return "Z" }

func tr(m geom.Matrix2D, p geom.Point) fixed.Point26_6 {
	return geom.ToFixed(m.Transform(p))
}

func (op MoveTo) drawTo(d Drawer, m geom.Matrix2D) { d.Start(tr(m, geom.Point(op))) }
func (op LineTo) drawTo(d Drawer, m geom.Matrix2D) { d.Line(tr(m, geom.Point(op))) }
func (op CubicTo) drawTo(d Drawer, m geom.Matrix2D) {
	d.CubeBezier(tr(m, op[0]), tr(m, op[1]), tr(m, op[2]))
}
func (Close) drawTo(d Drawer, _ geom.Matrix2D) { d.Stop(true) }

// Path describes a sequence of basic SVG operations.
// A well formed path starts with a MoveTo.
type Path []Operation

// Format returns the path data, with commands joined by `sep`.
func (p Path) Format(sep string) string {
	chunks := make([]string, len(p))
	for i, op := range p {
		chunks[i] = op.String()
	}
	return strings.Join(chunks, sep)
}

// String returns the path data, with space separated commands.
func (p Path) String() string { return p.Format(" ") }

// Start starts a new sub-path at the given point.
func (p *Path) Start(a geom.Point) { *p = append(*p, MoveTo(a)) }

// Line adds a linear segment to the current sub-path.
func (p *Path) Line(b geom.Point) { *p = append(*p, LineTo(b)) }

// CubeBezier adds a cubic segment to the current sub-path.
func (p *Path) CubeBezier(b, c, d geom.Point) { *p = append(*p, CubicTo{b, c, d}) }

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Points returns the on-curve points of the path, in order.
// Control points and Close commands are ignored.
func (p Path) Points() []geom.Point {
	out := make([]geom.Point, 0, len(p))
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out = append(out, geom.Point(op))
		case LineTo:
			out = append(out, geom.Point(op))
		case CubicTo:
			out = append(out, op[2])
		}
	}
	return out
}

// Bounds returns the tight bounding box of the path,
// taking into account the extrema of the cubic segments.
func (p Path) Bounds() geom.ViewBox {
	box := geom.EmptyViewBox()
	var first, current geom.Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			first, current = geom.Point(op), geom.Point(op)
			box = box.Union(geom.PointViewBox(current))
		case LineTo:
			box = box.Union(geom.LineBounds(current, geom.Point(op)))
			current = geom.Point(op)
		case CubicTo:
			box = box.Union(geom.CubicBounds(current, op[0], op[1], op[2]))
			current = op[2]
		case Close:
			current = first
		}
	}
	return box
}

// AddTo replays the path on the driver `d`, applying
// the transform `m` to every point.
func (p Path) AddTo(d Drawer, m geom.Matrix2D) {
	started := false
	for _, op := range p {
		if _, isMove := op.(MoveTo); isMove && started {
			d.Stop(false) // implicit end of the current sub-path
		}
		op.drawTo(d, m)
		started = true
	}
	if started {
		d.Stop(false)
	}
}

// Transform returns a copy of the path with `m`
// applied to every point.
func (p Path) Transform(m geom.Matrix2D) Path {
	out := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out[i] = MoveTo(m.Transform(geom.Point(op)))
		case LineTo:
			out[i] = LineTo(m.Transform(geom.Point(op)))
		case CubicTo:
			out[i] = CubicTo{m.Transform(op[0]), m.Transform(op[1]), m.Transform(op[2])}
		default:
			out[i] = op
		}
	}
	return out
}
