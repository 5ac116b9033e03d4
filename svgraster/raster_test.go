package svgraster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/scene"
	"github.com/benoitkugler/svgsmooth/shapes"
	"github.com/benoitkugler/svgsmooth/svgpath"
	"github.com/benoitkugler/svgsmooth/svgstyle"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func horizontalLine(y float64) shapes.Path {
	return shapes.NewPath(svgpath.Path{svgpath.MoveTo{0, y}, svgpath.LineTo{10, y}})
}

func TestViewMatrix(t *testing.T) {
	m, err := ViewMatrix(geom.NewViewBox(0, 0, 10, 5), 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Transform(geom.Pt(0, 0)); got != geom.Pt(0, 25) {
		t.Errorf("unexpected origin %v", got)
	}
	if got := m.Transform(geom.Pt(10, 5)); got != geom.Pt(100, 75) {
		t.Errorf("unexpected corner %v", got)
	}
	if _, err := ViewMatrix(geom.EmptyViewBox(), 10, 10); !errors.Is(err, ErrEmptyViewBox) {
		t.Errorf("expected ErrEmptyViewBox, got %v", err)
	}
	if _, err := ViewMatrix(geom.NewViewBox(0, 0, 0, 3), 10, 10); !errors.Is(err, ErrEmptyViewBox) {
		t.Errorf("expected ErrEmptyViewBox, got %v", err)
	}
}

func isRed(img *image.RGBA, x, y int) bool {
	c := img.RGBAAt(x, y)
	return c.R > 200 && c.G < 50 && c.B < 50 && c.A > 200
}

func isBlank(img *image.RGBA, x, y int) bool { return img.RGBAAt(x, y).A == 0 }

func TestRasterizeStroke(t *testing.T) {
	node := scene.New(horizontalLine(5)).
		WithFillColor(svgstyle.None).
		WithStrokeColor(svgstyle.Named("red")).
		WithStrokeWidth(2).
		WithCustomViewBox(geom.NewViewBox(0, 0, 10, 10))

	img, err := Rasterize(node, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !isRed(img, 50, 50) {
		t.Errorf("expected a stroked pixel, got %v", img.RGBAAt(50, 50))
	}
	if !isBlank(img, 50, 20) || !isBlank(img, 50, 80) {
		t.Errorf("expected blank pixels away from the line")
	}

	if _, err := toPngBytes(img); err != nil {
		t.Fatal(err)
	}
}

func TestRasterizeTransform(t *testing.T) {
	node := scene.New(horizontalLine(5)).
		WithFillColor(svgstyle.None).
		WithStrokeColor(svgstyle.RGB{255, 0, 0}).
		WithText("", nil, svgstyle.Transform{}.Translate(0, 3)).
		WithCustomViewBox(geom.NewViewBox(0, 0, 10, 10))

	img, err := Rasterize(node, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !isRed(img, 50, 80) || !isBlank(img, 50, 50) {
		t.Errorf("the line should be moved by the transform")
	}
}

type label struct{}

func (label) Render(svgstyle.Style) string            { return "<text>label</text>" }
func (label) Bounds(svgstyle.Style) geom.ViewBox      { return geom.NewViewBox(0, 0, 1, 1) }
func (label) Trace(svgstyle.Style) (out svgpath.Path) { return out }

type untraceable struct{}

func (untraceable) Render(svgstyle.Style) string       { return "" }
func (untraceable) Bounds(svgstyle.Style) geom.ViewBox { return geom.NewViewBox(0, 0, 1, 1) }

func TestRasterizeMarkers(t *testing.T) {
	markers := scene.New(shapes.Markers([]geom.Point{{2, 2}, {8, 8}})...).
		WithRadius(1).
		WithFillColor(svgstyle.Named("red"))
	node := scene.New(label{}, untraceable{}).And(markers)

	img, err := Rasterize(node, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	// the view box spans from (0,0) to (9,9)
	for _, p := range []image.Point{{22, 22}, {88, 88}} {
		if !isRed(img, p.X, p.Y) {
			t.Errorf("expected a filled marker at %v, got %v", p, img.RGBAAt(p.X, p.Y))
		}
	}
	if !isBlank(img, 55, 55) {
		t.Errorf("expected a blank pixel between the markers")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	if _, err := Rasterize(scene.New(), 10, 10); !errors.Is(err, ErrEmptyViewBox) {
		t.Errorf("expected ErrEmptyViewBox, got %v", err)
	}
}

func TestNewRendererDefaultScanner(t *testing.T) {
	rd := NewRenderer(10, 10, nil)
	var p svgpath.Path
	p.AddRect(geom.NewViewBox(1, 1, 9, 9))
	// no destination image to check: only the replay is exercised
	rd.DrawPath(p, svgstyle.DefaultStyle, geom.Identity)
}
