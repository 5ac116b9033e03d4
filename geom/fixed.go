package geom

import "golang.org/x/image/math/fixed"

// ToFixed converts p to the 26.6 fixed point representation
// used by the rasterizers.
func ToFixed(p Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// FromFixed is the inverse of ToFixed, up to the 1/64 precision.
func FromFixed(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
