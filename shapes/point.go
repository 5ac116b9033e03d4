package shapes

import (
	"html"
	"strings"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/scene"
	"github.com/benoitkugler/svgsmooth/svgpath"
	"github.com/benoitkugler/svgsmooth/svgstyle"
)

// Point is a drawable marker, whose appearance
// is selected by the style point type.
type Point geom.Point

// Markers returns one marker per point, ready
// to be added to a scene node.
func Markers(points []geom.Point) []scene.Drawable {
	out := make([]scene.Drawable, len(points))
	for i, p := range points {
		out[i] = Point(p)
	}
	return out
}

func ff(f float64) string { return geom.FormatFloat(f) }

// symbolBox returns the area covered by the icon, centered
// on the point, and false if the style has no icon
func (p Point) symbolBox(style svgstyle.Style) (geom.ViewBox, bool) {
	if style.Icon == nil {
		return geom.ViewBox{}, false
	}
	w, h := style.Icon.Width/2, style.Icon.Height/2
	return geom.NewViewBox(p.X-w, p.Y-h, p.X+w, p.Y+h), true
}

func (p Point) writeCircle(b *strings.Builder, style svgstyle.Style, attrs string) {
	b.WriteString(`<circle cx="` + ff(p.X) + `" cy="` + ff(p.Y) + `" r="` + ff(style.Radius) + `"`)
	b.WriteString(attrs)
	b.WriteString("/>")
}

func (p Point) writeText(b *strings.Builder, at geom.Point, text, attrs string) {
	b.WriteString(`<text x="` + ff(at.X) + `" y="` + ff(at.Y) + `"`)
	b.WriteString(attrs)
	b.WriteByte('>')
	b.WriteString(html.EscapeString(text))
	b.WriteString("</text>")
}

// Render returns the marker element :
//   - PointCircle : a circle of the style radius
//   - PointSymbol : the style icon, centered on the point, or a circle without icon
//   - PointText : the style text, anchored at the point
//   - PointPoi : a circle, labelled by the style text
func (p Point) Render(style svgstyle.Style) string {
	var b strings.Builder
	switch style.PointType {
	case svgstyle.PointSymbol:
		box, ok := p.symbolBox(style)
		if !ok {
			p.writeCircle(&b, style, style.Attrs())
			break
		}
		b.WriteString(`<svg x="` + ff(box.MinX) + `" y="` + ff(box.MinY) +
			`" width="` + ff(box.Width()) + `" height="` + ff(box.Height()) +
			`" viewBox="` + style.Icon.ViewBox.String() + `"`)
		b.WriteString(style.Attrs())
		b.WriteString(`><path d="` + style.Icon.Path + `"/></svg>`)
	case svgstyle.PointText:
		p.writeText(&b, geom.Point(p), style.Text, style.Attrs())
	case svgstyle.PointPoi:
		b.WriteString("<g")
		b.WriteString(style.Attrs())
		b.WriteByte('>')
		p.writeCircle(&b, style, "")
		if style.Text != "" {
			p.writeText(&b, geom.Pt(p.X+style.Radius, p.Y-style.Radius), style.Text, "")
		}
		b.WriteString("</g>")
	default:
		p.writeCircle(&b, style, style.Attrs())
	}
	return b.String()
}

// Bounds returns the area covered by the marker. Text extents
// are not measured: a text marker is reduced to its anchor.
func (p Point) Bounds(style svgstyle.Style) geom.ViewBox {
	switch style.PointType {
	case svgstyle.PointSymbol:
		if box, ok := p.symbolBox(style); ok {
			return box
		}
	case svgstyle.PointText:
		return geom.PointViewBox(geom.Point(p))
	}
	r := style.Radius
	return geom.NewViewBox(p.X-r, p.Y-r, p.X+r, p.Y+r)
}

// Trace returns the outline to paint : a circle, or the
// icon path mapped onto the symbol area. Text is not traced.
func (p Point) Trace(style svgstyle.Style) svgpath.Path {
	var out svgpath.Path
	switch style.PointType {
	case svgstyle.PointText:
		return nil
	case svgstyle.PointSymbol:
		box, ok := p.symbolBox(style)
		if !ok {
			break
		}
		icon, err := svgpath.ParseData(style.Icon.Path)
		if err != nil || style.Icon.ViewBox.Width() == 0 || style.Icon.ViewBox.Height() == 0 {
			return nil
		}
		vb := style.Icon.ViewBox
		m := geom.Identity.Translate(box.MinX, box.MinY).
			Scale(box.Width()/vb.Width(), box.Height()/vb.Height()).
			Translate(-vb.MinX, -vb.MinY)
		return icon.Transform(m)
	}
	out.AddCircle(geom.Point(p), style.Radius)
	return out
}
