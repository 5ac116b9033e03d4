package scene

import (
	"io"
	"strings"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/svgstyle"
)

// ViewBox returns the union of the base box of the node,
// the bounds of its items and the view boxes of its children,
// grown by the pending margin if any.
// It is computed on each call.
func (n Node) ViewBox() geom.ViewBox {
	box := n.base
	for _, item := range n.items {
		box = box.Union(item.Bounds(n.style))
	}
	for _, child := range n.children {
		box = box.Union(child.ViewBox())
	}
	if n.margin != 0 {
		box = box.WithMargin(n.margin)
	}
	return box
}

// DocumentViewBox returns the custom view box if any,
// or the computed one.
func (n Node) DocumentViewBox() geom.ViewBox {
	if n.custom != nil {
		return *n.custom
	}
	return n.ViewBox()
}

func (n Node) writeFragment(b *strings.Builder) {
	for _, item := range n.items {
		b.WriteString(item.Render(n.style))
	}
	for _, child := range n.children {
		child.writeFragment(b)
	}
}

// Fragment returns the content of the node, without root element :
// the items rendered with the node style, followed by the
// fragments of the children.
func (n Node) Fragment() string {
	var b strings.Builder
	n.writeFragment(&b)
	return b.String()
}

// String returns the complete SVG document.
func (n Node) String() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="xMidYMid meet" viewBox="`)
	b.WriteString(n.DocumentViewBox().String())
	b.WriteString(`">`)
	n.writeFragment(&b)
	b.WriteString("</svg>")
	return b.String()
}

// WriteTo writes the SVG document to `w`.
func (n Node) WriteTo(w io.Writer) (int64, error) {
	written, err := io.WriteString(w, n.String())
	return int64(written), err
}

// Walk calls `fn` for each item of the tree, depth first :
// the items of a node are visited before its children.
// It stops at the first error returned by `fn`.
func (n Node) Walk(fn func(item Drawable, style svgstyle.Style) error) error {
	for _, item := range n.items {
		if err := fn(item, n.style); err != nil {
			return err
		}
	}
	for _, child := range n.children {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}
