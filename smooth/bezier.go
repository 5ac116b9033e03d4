// Package smooth turns ordered point sequences into path data,
// either as a smoothed cubic path (Smoother) or as a straight
// path dropping its sharpest vertices (AngleFilter).
package smooth

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/svgpath"
)

var (
	// ErrTooFewPoints is returned when less than 2 points are given.
	ErrTooFewPoints = errors.New("smooth: at least 2 points are required")
	// ErrZeroIndex is returned when a curve command is requested for the
	// first point, which has no previous point to start from.
	ErrZeroIndex = errors.New("smooth: curve index must be positive")
	// ErrIndexOutOfRange is returned for a curve index past the last point.
	ErrIndexOutOfRange = errors.New("smooth: curve index out of range")
)

// DefaultFactor is the smoothing ratio applied to the
// tangent length.
const DefaultFactor = 0.001

// Smoother estimates cubic control points with a
// Catmull-Rom like tangent : the control point of a vertex
// follows the line joining its two neighbours, scaled by Factor.
type Smoother struct {
	Factor float64
}

// NewSmoother returns a smoother using DefaultFactor.
func NewSmoother() Smoother { return Smoother{Factor: DefaultFactor} }

// ControlPoint returns the control point of `current`.
// A nil neighbour is replaced by `current` itself.
// When reverse is true, the direction is rotated by π, as needed
// for the control point ending a curve.
func (s Smoother) ControlPoint(current geom.Point, previous, next *geom.Point, reverse bool) geom.Point {
	p, n := current, current
	if previous != nil {
		p = *previous
	}
	if next != nil {
		n = *next
	}

	o := geom.Line(p, n)
	angle := o.Angle
	if reverse {
		angle += math.Pi
	}
	length := o.Length * s.Factor
	return geom.Pt(current.X+math.Cos(angle)*length, current.Y+math.Sin(angle)*length)
}

// at returns a pointer to points[i], or nil when i is out of bounds
func at(points []geom.Point, i int) *geom.Point {
	if i < 0 || i >= len(points) {
		return nil
	}
	return &points[i]
}

// Command returns the curve going from points[i-1] to points[i].
// All the coordinates are rounded to the nearest integer.
func (s Smoother) Command(points []geom.Point, i int) (svgpath.CubicTo, error) {
	if i == 0 {
		return svgpath.CubicTo{}, ErrZeroIndex
	}
	if i < 0 || i >= len(points) {
		return svgpath.CubicTo{}, fmt.Errorf("index %d for %d points: %w", i, len(points), ErrIndexOutOfRange)
	}
	point := points[i]
	start := s.ControlPoint(points[i-1], at(points, i-2), &point, false)
	end := s.ControlPoint(point, &points[i-1], at(points, i+1), true)
	return svgpath.CubicTo{start.Round(), end.Round(), point.Round()}, nil
}

// Path returns the smoothed path going through `points` :
// a move to the first point, followed by one curve per point.
func (s Smoother) Path(points []geom.Point) (svgpath.Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("smoothing %d point(s): %w", len(points), ErrTooFewPoints)
	}
	out := make(svgpath.Path, 0, len(points))
	out.Start(points[0])
	for i := 1; i < len(points); i++ {
		cmd, err := s.Command(points, i)
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// Smooth returns the path data of the smoothed path, such as
// "M 0,0 C 0,0 1,1 1,1".
func (s Smoother) Smooth(points []geom.Point) (string, error) {
	p, err := s.Path(points)
	if err != nil {
		return "", err
	}
	return p.Format(" "), nil
}
