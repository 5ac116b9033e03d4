// Package convert implements the svgsmooth command: it reads the
// point sequences of an SVG file and writes them back as smoothed
// (or filtered) paths.
package convert

import (
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/benoitkugler/svgsmooth/internal/config"
	"github.com/benoitkugler/svgsmooth/scene"
	"github.com/benoitkugler/svgsmooth/shapes"
	"github.com/benoitkugler/svgsmooth/smooth"
	"github.com/benoitkugler/svgsmooth/svgin"
	"github.com/benoitkugler/svgsmooth/svgraster"
	"github.com/benoitkugler/svgsmooth/svgstyle"
	"go.uber.org/zap"
)

// Scene builds one node per polyline of `doc`, under a root
// carrying the stroke settings and the margin of `cfg`.
// Closed polylines give closed paths.
// Polylines with less than two points are skipped.
func Scene(doc *svgin.Document, cfg config.Config, logger *zap.Logger) (scene.Node, error) {
	stroke, err := cfg.StrokeColor()
	if err != nil {
		return scene.Node{}, err
	}
	smoother := smooth.Smoother{Factor: cfg.Factor}
	filter := smooth.AngleFilter{MinAngle: cfg.MinAngle, Debug: cfg.Debug, Logger: logger}

	var (
		paths   []scene.Node
		markers []scene.Node
	)
	for i, line := range doc.Polylines {
		if len(line.Points) < 2 {
			logger.Warn("skipping short polyline", zap.Int("index", i), zap.String("id", line.ID))
			continue
		}
		var path shapes.Path
		switch cfg.Mode {
		case config.ModeFilter:
			var dropped bool
			path, dropped, err = shapes.FilterPath(line.Points, filter)
			if dropped {
				logger.Info("sharp vertices dropped", zap.Int("index", i), zap.String("id", line.ID))
			}
		default:
			path, err = shapes.SmoothPath(line.Points, smoother)
		}
		if err != nil {
			return scene.Node{}, fmt.Errorf("polyline %d: %w", i, err)
		}
		if line.Closed {
			path = path.Closed()
		}
		node := scene.New(path)
		if line.ID != "" {
			node = node.WithID(line.ID)
		}
		paths = append(paths, node)
		if cfg.Markers {
			markers = append(markers, scene.New(shapes.Markers(line.Points)...))
		}
	}

	root := scene.New().And(paths...).
		WithFillColor(svgstyle.None).
		WithStrokeColor(stroke).
		WithStrokeWidth(cfg.StrokeWidth)
	if len(markers) != 0 {
		root = root.And(scene.New().And(markers...).
			WithFillColor(stroke).
			WithRadius(cfg.StrokeWidth).
			WithClass("markers"))
	}
	root = root.WithMargin(cfg.Margin)
	if cfg.KeepViewBox && !doc.ViewBox.IsEmpty() {
		root = root.WithCustomViewBox(doc.ViewBox)
	}
	return root, nil
}

// pngHeight keeps the aspect ratio of the document.
func pngHeight(node scene.Node, width int) int {
	box := node.DocumentViewBox()
	if box.Width() == 0 {
		return width
	}
	h := int(math.Round(float64(width) * box.Height() / box.Width()))
	if h < 1 {
		h = 1
	}
	return h
}

// Run converts the file `input` into `output`. If `pngOutput`
// is not empty, a raster preview is also written.
func Run(cfg config.Config, logger *zap.Logger, input, output, pngOutput string) error {
	errMode, err := cfg.SVGErrorMode()
	if err != nil {
		return err
	}
	doc, err := svgin.ReadFile(input, errMode, logger)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	logger.Debug("input read", zap.Int("polylines", len(doc.Polylines)), zap.Strings("titles", doc.Titles))

	root, err := Scene(doc, cfg, logger)
	if err != nil {
		return err
	}

	if err = writeSVG(root, output); err != nil {
		return err
	}
	logger.Info("svg written", zap.String("file", output))

	if pngOutput == "" {
		return nil
	}
	img, err := svgraster.Rasterize(root, cfg.PNGWidth, pngHeight(root, cfg.PNGWidth))
	if err != nil {
		return err
	}
	f, err := os.Create(pngOutput)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	logger.Info("png written", zap.String("file", pngOutput))
	return nil
}

func writeSVG(root scene.Node, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if _, err = root.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
