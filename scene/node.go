// Package scene composes drawables into a tree of nodes,
// sharing a cascading style and an accumulated view box,
// and renders the tree as one SVG document.
//
// Nodes are immutable values : every builder method
// returns a new Node and leaves its receiver, and the
// children of its receiver, unchanged.
package scene

import (
	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/svgstyle"
)

// Drawable is an item which can be placed in a scene,
// such as a path or a point marker.
// The style is the one of the node holding the item.
type Drawable interface {
	// Render returns the SVG fragment of the item.
	Render(style svgstyle.Style) string
	// Bounds returns the area covered by the item.
	Bounds(style svgstyle.Style) geom.ViewBox
}

// Node groups items and children nodes under a common style.
type Node struct {
	items    []Drawable
	children []Node
	style    svgstyle.Style
	base     geom.ViewBox  // extended by the items and children
	margin   float64       // applied to the computed box, when base is empty
	custom   *geom.ViewBox // overrides the computed box in documents
}

// New returns a node holding `items`, with the default style.
// Its base view box covers the items, as drawn with the default style.
func New(items ...Drawable) Node {
	out := Node{
		items: append([]Drawable(nil), items...),
		style: svgstyle.DefaultStyle,
		base:  geom.EmptyViewBox(),
	}
	for _, item := range items {
		out.base = out.base.Union(item.Bounds(out.style))
	}
	return out
}

// Items returns the items directly held by the node.
// The returned slice must not be modified.
func (n Node) Items() []Drawable { return n.items }

// Children returns the children nodes.
// The returned slice must not be modified.
func (n Node) Children() []Node { return n.children }

// Style returns the style used to render the items of the node.
func (n Node) Style() svgstyle.Style { return n.style }

// And returns a copy of the node with `children` appended.
func (n Node) And(children ...Node) Node {
	out := n
	out.children = make([]Node, 0, len(n.children)+len(children))
	out.children = append(out.children, n.children...)
	out.children = append(out.children, children...)
	return out
}

// cascade applies `set` to the style of the node and of
// all its descendants.
func (n Node) cascade(set func(*svgstyle.Style)) Node {
	out := n.local(set)
	if len(n.children) != 0 {
		out.children = make([]Node, len(n.children))
		for i, child := range n.children {
			out.children[i] = child.cascade(set)
		}
	}
	return out
}

// local applies `set` to the style of the node only.
func (n Node) local(set func(*svgstyle.Style)) Node {
	out := n
	set(&out.style)
	return out
}

// WithStyle replaces the style of the whole subtree.
func (n Node) WithStyle(style svgstyle.Style) Node {
	return n.cascade(func(s *svgstyle.Style) { *s = style })
}

// WithColor sets both the fill and stroke colors of the subtree.
func (n Node) WithColor(c svgstyle.Color) Node {
	return n.cascade(func(s *svgstyle.Style) { s.Fill, s.Stroke = c, c })
}

// WithFillColor sets the fill color of the subtree.
func (n Node) WithFillColor(c svgstyle.Color) Node {
	return n.cascade(func(s *svgstyle.Style) { s.Fill = c })
}

// WithFillOpacity sets the fill opacity of the subtree.
func (n Node) WithFillOpacity(v float64) Node {
	return n.cascade(func(s *svgstyle.Style) { s.FillOpacity = svgstyle.Float(v) })
}

// WithStrokeColor sets the stroke color of the subtree.
func (n Node) WithStrokeColor(c svgstyle.Color) Node {
	return n.cascade(func(s *svgstyle.Style) { s.Stroke = c })
}

// WithStrokeWidth sets the stroke width of the subtree.
func (n Node) WithStrokeWidth(v float64) Node {
	return n.cascade(func(s *svgstyle.Style) { s.StrokeWidth = svgstyle.Float(v) })
}

// WithStrokeOpacity sets the stroke opacity of the subtree.
func (n Node) WithStrokeOpacity(v float64) Node {
	return n.cascade(func(s *svgstyle.Style) { s.StrokeOpacity = svgstyle.Float(v) })
}

// WithOpacity sets the opacity of the subtree.
func (n Node) WithOpacity(v float64) Node {
	return n.cascade(func(s *svgstyle.Style) { s.Opacity = svgstyle.Float(v) })
}

// WithRadius sets the marker radius of the subtree.
func (n Node) WithRadius(r float64) Node {
	return n.cascade(func(s *svgstyle.Style) { s.Radius = r })
}

// WithClass sets the css classes of the subtree.
func (n Node) WithClass(class string) Node {
	return n.cascade(func(s *svgstyle.Style) { s.Class = class })
}

// WithID sets the id of the subtree.
func (n Node) WithID(id string) Node {
	return n.cascade(func(s *svgstyle.Style) { s.ID = id })
}

// WithText sets the text drawn by the items of this node only,
// with its optional start offset (in percent) and transform.
func (n Node) WithText(text string, startOffset *float64, transform svgstyle.Transform) Node {
	return n.local(func(s *svgstyle.Style) {
		s.Text, s.TextStartOffset, s.Transform = text, startOffset, transform
	})
}

// WithIcon sets the icon drawn by the PointSymbol markers of this node only.
func (n Node) WithIcon(icon svgstyle.Icon) Node {
	return n.local(func(s *svgstyle.Style) { s.Icon = &icon })
}

// WithPointType sets the marker type of this node only.
func (n Node) WithPointType(pt svgstyle.PointType) Node {
	return n.local(func(s *svgstyle.Style) { s.PointType = pt })
}

// WithMargin grows the base view box of this node by `margin`
// on every side. When the base box is empty, as for a node
// grouping children only, the margin is applied to the view box
// computed from the items and children.
func (n Node) WithMargin(margin float64) Node {
	out := n
	if n.base.IsEmpty() {
		out.margin += margin
	} else {
		out.base = n.base.WithMargin(margin)
	}
	return out
}

// WithCustomViewBox sets the view box used when the node is written
// as a document, in place of the computed one.
func (n Node) WithCustomViewBox(box geom.ViewBox) Node {
	out := n
	out.custom = &box
	return out
}
