// Package svgin reads point sequences from existing SVG
// documents, to be smoothed or filtered.
//
// Only a sub-set of SVG is supported: <polyline>, <polygon>,
// <line> and <path> elements, possibly nested in groups with
// transforms. The points are returned in user space, that is
// with the transforms applied.
package svgin

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgsmooth/geom"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how the parser reacts to
// elements it does not handle.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported elements, logging a warning.
	WarnErrorMode
	// StrictErrorMode returns an error for unsupported elements.
	StrictErrorMode
)

var (
	errInvalidSVG = errors.New("svgin: invalid svg document")
	// ErrUnsupported is returned in StrictErrorMode for unsupported elements.
	ErrUnsupported = errors.New("svgin: unsupported element")
)

// Polyline is an ordered sequence of points read from one element.
type Polyline struct {
	ID     string // id attribute of the element, if any
	Tag    string // element name, such as "polyline"
	Points []geom.Point
	Closed bool // true for polygons and closed paths
}

// Document holds the data read from an SVG file.
type Document struct {
	ViewBox   geom.ViewBox // empty if not specified
	Polylines []Polyline
	Titles    []string // Title elements collect here
}

// ReadPolylines reads the point sequences of the SVG document
// read from `stream`. The `logger` (which may be nil) receives
// the warnings of WarnErrorMode.
func ReadPolylines(stream io.Reader, errMode ErrorMode, logger *zap.Logger) (*Document, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	doc := &Document{ViewBox: geom.EmptyViewBox()}
	cursor := &docCursor{
		doc:        doc,
		transforms: []geom.Matrix2D{geom.Identity},
		errorMode:  errMode,
		logger:     logger,
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errInvalidSVG
				}
				break
			}
			return doc, fmt.Errorf("svgin: %w", err)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// reads the transform attribute and places it
			// on top of the stack
			if err = cursor.pushTransform(se.Attr); err != nil {
				return doc, err
			}
			if err = cursor.readStartElement(se); err != nil {
				return doc, err
			}
		case xml.EndElement:
			cursor.transforms = cursor.transforms[:len(cursor.transforms)-1]
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "defs":
				cursor.inDefs--
			}
		case xml.CharData:
			if cursor.inTitleText {
				doc.Titles[len(doc.Titles)-1] += string(se)
			}
		}
	}
	return doc, nil
}

// ReadFile reads the point sequences of the named file.
// See ReadPolylines for the details.
func ReadFile(filename string, errMode ErrorMode, logger *zap.Logger) (*Document, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadPolylines(fin, errMode, logger)
}
