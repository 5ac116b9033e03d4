// Provides the 2-D primitives shared by the path
// algorithms: points, line segments, turn angles
// and axis-aligned bounding boxes.
package geom

import (
	"math"
	"strconv"
)

// Point is a location in user space.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Round rounds both coordinates to the nearest integer,
// halfway cases away from zero (see math.Round).
// Negative zero is normalized to 0.
func (p Point) Round() Point { return Point{roundInt(p.X), roundInt(p.Y)} }

func roundInt(f float64) float64 {
	r := math.Round(f)
	if r == 0 {
		return 0
	}
	return r
}

// String returns "x,y" with the shortest decimal representation
// of each coordinate, as used in path data.
func (p Point) String() string {
	return FormatFloat(p.X) + "," + FormatFloat(p.Y)
}

// Segment describes the line going from one point to another.
type Segment struct {
	Length float64 // euclidean distance, never negative
	Angle  float64 // direction in radians, in (-π, π]
}

// Line returns the segment from a to b.
func Line(a, b Point) Segment {
	dx, dy := b.X-a.X, b.Y-a.Y
	return Segment{
		Length: math.Sqrt(dx*dx + dy*dy),
		Angle:  math.Atan2(dy, dx),
	}
}

const radToDeg = 180 / math.Pi

// TurnAngle returns the interior angle, in degrees, at the joint
// between prev and next, where prev ends where next starts.
// The result is in [0, 180] : 180 means the three points are
// collinear, values close to 0 mean the path reverses on itself.
func TurnAngle(prev, next Segment) float64 {
	a1, a2 := prev.Angle, next.Angle
	if (a1 >= 0) == (a2 >= 0) {
		return 180 - math.Abs(a1-a2)*radToDeg
	}
	// the directions are on both sides of the x axis. |a1|+|a2| may
	// exceed π (when both point towards negative x), which would make
	// the difference negative: the absolute value keeps the result in
	// [0, 180]. See TestTurnAngleAcrossNegativeX.
	return math.Abs(180 - (math.Abs(a1)+math.Abs(a2))*radToDeg)
}

// FormatFloat returns the shortest decimal representation of f,
// without exponent.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
