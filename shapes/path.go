// Package shapes provides the concrete drawables
// placed in a scene: paths built from point sequences
// and point markers.
package shapes

import (
	"html"
	"strings"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/smooth"
	"github.com/benoitkugler/svgsmooth/svgpath"
	"github.com/benoitkugler/svgsmooth/svgstyle"
)

// Path is a drawable <path> element.
type Path struct {
	Data    svgpath.Path
	compact bool // commands written without separator
}

// NewPath returns a drawable for `data`, written
// with space separated commands.
func NewPath(data svgpath.Path) Path {
	return Path{Data: data}
}

// SmoothPath returns the smoothed path going through `points`.
func SmoothPath(points []geom.Point, s smooth.Smoother) (Path, error) {
	data, err := s.Path(points)
	if err != nil {
		return Path{}, err
	}
	return Path{Data: data}, nil
}

// FilterPath returns the straight path through `points`, without
// its sharp vertices, and true if some vertices have been dropped.
func FilterPath(points []geom.Point, f smooth.AngleFilter) (Path, bool, error) {
	data, dropped, err := f.FilterPath(points)
	if err != nil {
		return Path{}, false, err
	}
	return Path{Data: data, compact: true}, dropped, nil
}

// D returns the path data.
func (p Path) D() string {
	if p.compact {
		return p.Data.Format("")
	}
	return p.Data.String()
}

// Closed returns a copy of the path ending with a Z command.
// A path already closed is returned unchanged.
func (p Path) Closed() Path {
	if n := len(p.Data); n == 0 || isClose(p.Data[n-1]) {
		return p
	}
	out := p
	out.Data = append(append(svgpath.Path(nil), p.Data...), svgpath.Close{})
	return out
}

func isClose(op svgpath.Operation) bool {
	_, ok := op.(svgpath.Close)
	return ok
}

// Render returns the <path> element. When the style carries
// a text and an id, the text is written along the path,
// starting at the style text offset.
func (p Path) Render(style svgstyle.Style) string {
	var b strings.Builder
	b.WriteString(`<path d="`)
	b.WriteString(p.D())
	b.WriteByte('"')
	b.WriteString(style.Attrs())
	b.WriteString("/>")

	if style.Text != "" && style.ID != "" {
		b.WriteString(`<text><textPath href="#`)
		b.WriteString(html.EscapeString(style.ID))
		b.WriteByte('"')
		if style.TextStartOffset != nil {
			b.WriteString(` startOffset="`)
			b.WriteString(geom.FormatFloat(*style.TextStartOffset))
			b.WriteString(`%"`)
		}
		b.WriteByte('>')
		b.WriteString(html.EscapeString(style.Text))
		b.WriteString("</textPath></text>")
	}
	return b.String()
}

// Bounds returns the extent of the path, grown by
// half the stroke width when one is set.
func (p Path) Bounds(style svgstyle.Style) geom.ViewBox {
	box := p.Data.Bounds()
	if style.StrokeWidth != nil {
		box = box.WithMargin(*style.StrokeWidth / 2)
	}
	return box
}

// Trace returns the outline to paint.
func (p Path) Trace(svgstyle.Style) svgpath.Path { return p.Data }
