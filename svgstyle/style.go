// Package svgstyle defines the presentation attributes
// shared by the drawables of a scene: colors, opacities,
// stroke width, point markers and transforms.
package svgstyle

import (
	"html"
	"strings"

	"github.com/benoitkugler/svgsmooth/geom"
)

// PointType selects how a point is drawn.
// The zero value draws a circle.
type PointType uint8

const (
	PointCircle PointType = iota
	PointSymbol           // the style icon, centered on the point
	PointText             // the style text
	PointPoi              // a circle with a text label
)

func (pt PointType) String() string {
	switch pt {
	case PointCircle:
		return "circle"
	case PointSymbol:
		return "symbol"
	case PointText:
		return "text"
	case PointPoi:
		return "poi"
	default:
		return "<invalid point type>"
	}
}

// Icon is an SVG path drawn at each point with the
// PointSymbol type.
type Icon struct {
	Path          string       // path data
	ViewBox       geom.ViewBox // coordinates system of Path
	Width, Height float64      // rendered size
}

// Style holds the presentation attributes applied to a drawable.
// Nil pointers, nil colors and empty strings are absent fields :
// they are inherited from the enclosing element and never written.
type Style struct {
	Opacity       *float64
	Fill          Color
	FillOpacity   *float64
	Stroke        Color
	StrokeWidth   *float64
	StrokeOpacity *float64

	Radius float64 // radius of point markers

	Class string // css classes
	ID    string

	PointType       PointType
	Icon            *Icon
	Text            string
	TextStartOffset *float64 // in percent of the path length
	Transform       Transform
}

// DefaultStyle has no presentation attribute
// and a unit marker radius.
var DefaultStyle = Style{Radius: 1}

// Float returns a pointer to v, to fill the optional fields of a Style.
func Float(v float64) *float64 { return &v }

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

// Attrs returns the present attributes, each prefixed by a space,
// in the fixed order opacity, fill, fill-opacity, stroke, stroke-width,
// stroke-opacity, class, id, transform. For instance
//
//	opacity="0.5" stroke="#ff0000"
func (s Style) Attrs() string {
	var b strings.Builder
	if s.Opacity != nil {
		writeAttr(&b, "opacity", geom.FormatFloat(*s.Opacity))
	}
	if s.Fill != nil {
		writeAttr(&b, "fill", s.Fill.String())
	}
	if s.FillOpacity != nil {
		writeAttr(&b, "fill-opacity", geom.FormatFloat(*s.FillOpacity))
	}
	if s.Stroke != nil {
		writeAttr(&b, "stroke", s.Stroke.String())
	}
	if s.StrokeWidth != nil {
		writeAttr(&b, "stroke-width", geom.FormatFloat(*s.StrokeWidth))
	}
	if s.StrokeOpacity != nil {
		writeAttr(&b, "stroke-opacity", geom.FormatFloat(*s.StrokeOpacity))
	}
	if s.Class != "" {
		writeAttr(&b, "class", html.EscapeString(s.Class))
	}
	if s.ID != "" {
		writeAttr(&b, "id", html.EscapeString(s.ID))
	}
	if len(s.Transform) != 0 {
		writeAttr(&b, "transform", s.Transform.String())
	}
	return b.String()
}

// String is the same as Attrs.
func (s Style) String() string { return s.Attrs() }
