// Implements a raster backend to preview scenes,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/scene"
	"github.com/benoitkugler/svgsmooth/svgpath"
	"github.com/benoitkugler/svgsmooth/svgstyle"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgpath.Drawer = (*Renderer)(nil) // assert interface conformance

// ErrEmptyViewBox is returned when the scene has no extent to map
// onto the image.
var ErrEmptyViewBox = errors.New("svgraster: empty view box")

// Tracer is implemented by the drawables which can be
// painted: they provide their outline, in user space.
type Tracer interface {
	Trace(style svgstyle.Style) svgpath.Path
}

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// If scanner is nil, a default scanner rasterx.ScannerGV is used,
// painting into a new image.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

func (rd *Renderer) SetFillColor(c color.Color, opacity float64) {
	rd.filler.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (rd *Renderer) SetStrokeColor(c color.Color, opacity float64) {
	rd.dasher.Scanner.SetColor(rasterx.ApplyOpacity(c, opacity))
}

// SetStrokeWidth must be called before the path is added.
func (rd *Renderer) SetStrokeWidth(width float64) {
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64), rasterx.RoundCap,
		rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0,
	)
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.dasher.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.dasher.Line(b)
}

func (rd *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.dasher.Stop(closeLoop)
}

func (rd *Renderer) Fill() {
	rd.filler.Draw()
}

func (rd *Renderer) Stroke() {
	rd.dasher.Draw()
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// DrawPath paints `path` with the fill and stroke of `style`, after
// applying the transform `m`.
// As in SVG, an absent fill is black and an absent stroke is not painted.
func (rd *Renderer) DrawPath(path svgpath.Path, style svgstyle.Style, m geom.Matrix2D) {
	if len(path) == 0 {
		return
	}
	fill := style.Fill
	if fill == nil {
		fill = svgstyle.Named("black")
	}
	fillColor, willFill := svgstyle.ToColor(fill)
	strokeColor, willStroke := svgstyle.ToColor(style.Stroke)
	if !willFill && !willStroke {
		return
	}

	opacity := valueOr(style.Opacity, 1)
	// stroke width in device space, assuming a uniform scale
	scale := math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))

	rd.Clear()
	rd.SetStrokeWidth(valueOr(style.StrokeWidth, 1) * scale)
	path.AddTo(rd, m)
	if willFill {
		rd.SetFillColor(fillColor, opacity*valueOr(style.FillOpacity, 1))
		rd.Fill()
	}
	if willStroke {
		rd.SetStrokeColor(strokeColor, opacity*valueOr(style.StrokeOpacity, 1))
		rd.Stroke()
	}
}

// ViewMatrix maps `box` onto a width x height image, preserving its
// aspect ratio and centering it (xMidYMid meet).
func ViewMatrix(box geom.ViewBox, width, height int) (geom.Matrix2D, error) {
	if box.Width() == 0 || box.Height() == 0 {
		return geom.Matrix2D{}, fmt.Errorf("%w: %s", ErrEmptyViewBox, box)
	}
	w, h := float64(width), float64(height)
	scale := math.Min(w/box.Width(), h/box.Height())
	tx := (w-box.Width()*scale)/2 - box.MinX*scale
	ty := (h-box.Height()*scale)/2 - box.MinY*scale
	return geom.Identity.Translate(tx, ty).Scale(scale, scale), nil
}

// Rasterize paints the scene into a new width x height image,
// mapping its document view box onto the image.
// Drawables which do not implement Tracer are ignored.
func Rasterize(node scene.Node, width, height int) (*image.RGBA, error) {
	view, err := ViewMatrix(node.DocumentViewBox(), width, height)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)

	err = node.Walk(func(item scene.Drawable, style svgstyle.Style) error {
		tracer, ok := item.(Tracer)
		if !ok {
			return nil
		}
		renderer.DrawPath(tracer.Trace(style), style, view.Mult(style.Transform.ToMatrix()))
		return nil
	})
	return img, err
}
