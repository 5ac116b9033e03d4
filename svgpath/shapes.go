package svgpath

import (
	"math"

	"github.com/benoitkugler/svgsmooth/geom"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an ellipse.
const maxDx float64 = math.Pi / 8

// AddRect adds the closed rectangle spanned by `box`.
// Nothing is added for an empty box.
func (p *Path) AddRect(box geom.ViewBox) {
	if box.IsEmpty() {
		return
	}
	p.Start(geom.Pt(box.MinX, box.MinY))
	p.Line(geom.Pt(box.MaxX, box.MinY))
	p.Line(geom.Pt(box.MaxX, box.MaxY))
	p.Line(geom.Pt(box.MinX, box.MaxY))
	p.Stop(true)
}

// AddEllipse adds a closed ellipse centered at `c`, with radii rx and ry,
// approximated by cubic bezier splines.
// Nothing is added if one of the radii is not positive.
func (p *Path) AddEllipse(c geom.Point, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	segs := int(math.Ceil(2 * math.Pi / maxDx))
	dEta := 2 * math.Pi / float64(segs)
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3

	last := ellipsePointAt(rx, ry, 0, 1, 0, c)
	lastD := ellipsePrime(rx, ry, 0, 1, 0)
	p.Start(last)
	for i := 1; i <= segs; i++ {
		eta := dEta * float64(i)
		pt := ellipsePointAt(rx, ry, 0, 1, eta, c)
		if i == segs {
			pt = ellipsePointAt(rx, ry, 0, 1, 0, c) // exact closing point
		}
		d := ellipsePrime(rx, ry, 0, 1, eta)
		p.CubeBezier(
			geom.Pt(last.X+alpha*lastD.X, last.Y+alpha*lastD.Y),
			geom.Pt(pt.X-alpha*d.X, pt.Y-alpha*d.Y),
			pt,
		)
		last, lastD = pt, d
	}
	p.Stop(true)
}

// AddCircle is a shortcut for AddEllipse(c, r, r).
func (p *Path) AddCircle(c geom.Point, r float64) { p.AddEllipse(c, r, r) }

// addArc adds the elliptical arc from `start` to `end`, centered at `c`,
// with radii a, b and x-axis rotation rotX (in radians), and
// returns the end point.
func (p *Path) addArc(a, b, rotX float64, largeArc, sweep bool, c, start, end geom.Point) geom.Point {
	startAngle := math.Atan2(start.Y-c.Y, start.X-c.X) - rotX
	endAngle := math.Atan2(end.Y-c.Y, end.X-c.X) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/b, math.Cos(startAngle)/a)
	etaEnd := math.Atan2(math.Sin(endAngle)/b, math.Cos(endAngle)/a)
	deltaEta := etaEnd - etaStart
	if arcBig != largeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// needed when the center is the midpoint of start and end
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	last := start
	lastD := ellipsePrime(a, b, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		pt := end // exact end point, without roundoff
		if i != segs {
			pt = ellipsePointAt(a, b, sinTheta, cosTheta, eta, c)
		}
		d := ellipsePrime(a, b, sinTheta, cosTheta, eta)
		p.CubeBezier(
			geom.Pt(last.X+alpha*lastD.X, last.Y+alpha*lastD.Y),
			geom.Pt(pt.X-alpha*d.X, pt.Y-alpha*d.Y),
			pt,
		)
		last, lastD = pt, d
	}
	return last
}

// ellipsePrime gives tangent vectors for parameterized ellipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) geom.Point {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	return geom.Pt(-aSinEta*cosTheta-bCosEta*sinTheta, -aSinEta*sinTheta+bCosEta*cosTheta)
}

// ellipsePointAt gives points for parameterized ellipse; a, b, radii, eta parameter, center c
func ellipsePointAt(a, b, sinTheta, cosTheta, eta float64, c geom.Point) geom.Point {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	return geom.Pt(c.X+aCosEta*cosTheta-bSinEta*sinTheta, c.Y+aCosEta*sinTheta+bSinEta*cosTheta)
}

// findEllipseCenter locates the center of the ellipse going through start
// and end. If it does not exist, the radii are increased minimally
// for a solution to be possible, preserving the ra to rb ratio.
// The problem is reduced to finding the center of a circle
// going through the origin and one point.
func findEllipseCenter(ra, rb *float64, rotX float64, start, end geom.Point, sweep, smallArc bool) geom.Point {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// move origin to start point
	nx, ny := end.X-start.X, end.Y-start.Y
	// rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// scale X dimension so that ra = rb
	nx *= *rb / *ra

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// the span is wider than the ellipse: scale the radii
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	var cx, cy float64
	if sweep == smallArc {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	cx *= *ra / *rb
	return geom.Pt(cx*cos-cy*sin+start.X, cx*sin+cy*cos+start.Y)
}
