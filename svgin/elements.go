package svgin

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/svgpath"
	"github.com/benoitkugler/svgsmooth/svgstyle"
	"go.uber.org/zap"
)

// docCursor is used while parsing SVG files
type docCursor struct {
	doc        *Document
	transforms []geom.Matrix2D // current transform on top
	errorMode  ErrorMode
	logger     *zap.Logger

	inTitleText bool
	inDefs      int // depth of nested <defs>, whose content is not drawn
}

func (c *docCursor) transform() geom.Matrix2D { return c.transforms[len(c.transforms)-1] }

// pushTransform reads the transform attribute, if any, and
// push the resulting matrix on the stack.
func (c *docCursor) pushTransform(attrs []xml.Attr) error {
	m := c.transform()
	for _, attr := range attrs {
		if attr.Name.Local != "transform" {
			continue
		}
		tr, err := svgstyle.ParseTransform(attr.Value)
		if err != nil {
			return err
		}
		m = m.Mult(tr.ToMatrix())
	}
	c.transforms = append(c.transforms, m)
	return nil
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	if se.Name.Local == "defs" {
		c.inDefs++
		return nil
	}
	if c.inDefs > 0 {
		return nil
	}
	df, ok := elementFuncs[se.Name.Local]
	if !ok {
		if c.errorMode == StrictErrorMode {
			return fmt.Errorf("%w: %s", ErrUnsupported, se.Name.Local)
		} else if c.errorMode == WarnErrorMode {
			c.logger.Warn("cannot process svg element", zap.String("element", se.Name.Local))
		}
		return nil
	}
	return df(c, se.Attr)
}

// addPolyline stores the points, after applying the current transform.
func (c *docCursor) addPolyline(tag string, attrs []xml.Attr, points []geom.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	m := c.transform()
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = m.Transform(p)
	}
	c.doc.Polylines = append(c.doc.Polylines, Polyline{
		ID:     attrValue(attrs, "id"),
		Tag:    tag,
		Points: out,
		Closed: closed,
	})
}

func attrValue(attrs []xml.Attr, name string) string {
	for _, attr := range attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// parseFloat accepts an optional px unit
func parseFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("svgin: invalid number %q", s)
	}
	return f, nil
}

type elementFunc func(c *docCursor, attrs []xml.Attr) error

var elementFuncs = map[string]elementFunc{
	"svg":      svgF,
	"g":        gF,
	"title":    titleF,
	"desc":     gF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"line":     lineF,
	"path":     pathF,
}

func svgF(c *docCursor, attrs []xml.Attr) error {
	if !c.doc.ViewBox.IsEmpty() { // nested documents keep the root box
		return nil
	}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			var points []float64
			points, err = svgpath.ParseNumbers(attr.Value)
			if err == nil && len(points) != 4 {
				err = fmt.Errorf("svgin: viewBox expects 4 numbers, got %d", len(points))
			}
			if err == nil {
				c.doc.ViewBox = geom.NewViewBox(points[0], points[1], points[0]+points[2], points[1]+points[3])
			}
		case "width":
			width, err = parseFloat(attr.Value)
		case "height":
			height, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.doc.ViewBox.IsEmpty() && width > 0 && height > 0 {
		c.doc.ViewBox = geom.NewViewBox(0, 0, width, height)
	}
	return nil
}

func gF(*docCursor, []xml.Attr) error { return nil } // g does nothing but push the transform

func titleF(c *docCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.doc.Titles = append(c.doc.Titles, "")
	return nil
}

func readPoints(attrs []xml.Attr) ([]geom.Point, error) {
	points, err := svgpath.ParsePoints(attrValue(attrs, "points"))
	if err != nil {
		return nil, fmt.Errorf("svgin: invalid points attribute: %w", err)
	}
	return points, nil
}

func polylineF(c *docCursor, attrs []xml.Attr) error {
	points, err := readPoints(attrs)
	if err != nil {
		return err
	}
	c.addPolyline("polyline", attrs, points, false)
	return nil
}

func polygonF(c *docCursor, attrs []xml.Attr) error {
	points, err := readPoints(attrs)
	if err != nil {
		return err
	}
	c.addPolyline("polygon", attrs, points, true)
	return nil
}

func lineF(c *docCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseFloat(attr.Value)
		case "x2":
			x2, err = parseFloat(attr.Value)
		case "y1":
			y1, err = parseFloat(attr.Value)
		case "y2":
			y2, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	c.addPolyline("line", attrs, []geom.Point{{x1, y1}, {x2, y2}}, false)
	return nil
}

// pathF adds one sequence per sub-path. The curves
// and arcs contribute their end points only.
func pathF(c *docCursor, attrs []xml.Attr) error {
	subPaths, err := svgpath.ParseSubPaths(attrValue(attrs, "d"))
	if err != nil {
		return err
	}
	for _, sub := range subPaths {
		c.addPolyline("path", attrs, sub.Points, sub.Closed)
	}
	return nil
}
