package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestLineReversed(t *testing.T) {
	for _, pts := range [][2]Point{
		{Pt(0, 0), Pt(3, 4)},
		{Pt(-2, 5), Pt(7, -1)},
		{Pt(1.5, 1.5), Pt(1.5, -8)},
		{Pt(10, 0), Pt(-10, 3)},
	} {
		ab, ba := Line(pts[0], pts[1]), Line(pts[1], pts[0])
		if ab.Length != ba.Length {
			t.Errorf("%v: length %v != %v", pts, ab.Length, ba.Length)
		}
		// reversing the direction rotates the angle by π
		diff := math.Abs(ab.Angle - ba.Angle)
		if math.Abs(diff-math.Pi) > eps {
			t.Errorf("%v: angles %v and %v are not opposite", pts, ab.Angle, ba.Angle)
		}
	}
	if l := Line(Pt(0, 0), Pt(3, 4)).Length; l != 5 {
		t.Errorf("expected euclidean length 5, got %v", l)
	}
}

func turn(a, b, c, d Point) float64 {
	return math.Round(TurnAngle(Line(a, b), Line(c, d)))
}

func TestTurnAngle(t *testing.T) {
	for _, test := range []struct {
		a, b, c, d Point
		want       float64
	}{
		// both positive
		{Pt(0, 0), Pt(3, 1), Pt(3, 1), Pt(4, 4), 127},
		{Pt(0, 0), Pt(3, 1), Pt(3, 1), Pt(2, 4), 90},
		{Pt(0, 0), Pt(3, 0), Pt(3, 0), Pt(3, 3), 90},
		{Pt(0, 0), Pt(-1, 3), Pt(-1, 3), Pt(0, 5), 135},
		{Pt(0, 0), Pt(-1, 3), Pt(-1, 3), Pt(-4, 4), 127},
		{Pt(0, 0), Pt(2, 1), Pt(2, 1), Pt(0, 2), 53},
		{Pt(0, 0), Pt(3, 0), Pt(3, 0), Pt(0, 3), 45},
		// both negative, disjoint segments
		{Pt(0, 0), Pt(3, -1), Pt(3, 1), Pt(3, -4), 108},
		// opposite signs
		{Pt(0, 0), Pt(3, -2), Pt(3, -2), Pt(4, 0), 83},
		{Pt(0, 0), Pt(-1, 2), Pt(-1, 2), Pt(1, 0), 18},
	} {
		if got := turn(test.a, test.b, test.c, test.d); got != test.want {
			t.Errorf("turn %v->%v / %v->%v: expected %v, got %v", test.a, test.b, test.c, test.d, test.want, got)
		}
	}
}

func TestTurnAngleStraight(t *testing.T) {
	for _, pts := range [][3]Point{
		{Pt(0, 0), Pt(1, 0), Pt(2, 0)},
		{Pt(2, 0), Pt(1, 0), Pt(0, 0)},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2)},
		{Pt(0, 0), Pt(1, -1), Pt(2, -2)},
		{Pt(0, 0), Pt(0, 5), Pt(0, 9)},
	} {
		got := TurnAngle(Line(pts[0], pts[1]), Line(pts[1], pts[2]))
		if math.Abs(got-180) > eps {
			t.Errorf("%v: expected a straight angle, got %v", pts, got)
		}
	}
}

func TestViewBoxUnion(t *testing.T) {
	a := NewViewBox(0, 0, 2, 3)
	b := NewViewBox(-1, 1, 1, 5)
	c := NewViewBox(4, -2, 6, 0)

	if a.Union(b) != b.Union(a) {
		t.Errorf("union is not commutative")
	}
	if a.Union(b).Union(c) != a.Union(b.Union(c)) {
		t.Errorf("union is not associative")
	}
	if got, want := a.Union(b), NewViewBox(-1, 0, 2, 5); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if a.Union(EmptyViewBox()) != a || EmptyViewBox().Union(a) != a {
		t.Errorf("empty box should be the identity of union")
	}
	if w, h := a.Union(c).Width(), a.Union(c).Height(); w != 6 || h != 5 {
		t.Errorf("unexpected size %v x %v", w, h)
	}
}

func TestViewBoxMargin(t *testing.T) {
	box := NewViewBox(1.5, -3, 10, 7.25)
	back := box.WithMargin(2.5).WithMargin(-2.5)
	if math.Abs(back.MinX-box.MinX) > eps || math.Abs(back.MinY-box.MinY) > eps ||
		math.Abs(back.MaxX-box.MaxX) > eps || math.Abs(back.MaxY-box.MaxY) > eps {
		t.Errorf("expected %v, got %v", box, back)
	}
	if got := box.WithMargin(1); got.Width() != box.Width()+2 || got.Height() != box.Height()+2 {
		t.Errorf("unexpected margin box %v", got)
	}
	if !EmptyViewBox().WithMargin(3).IsEmpty() {
		t.Errorf("margin should not give an extent to an empty box")
	}
}

func TestViewBoxString(t *testing.T) {
	if s := NewViewBox(-1, 2, 3, 4.5).String(); s != "-1 2 4 2.5" {
		t.Errorf("unexpected viewBox attribute %q", s)
	}
	if s := EmptyViewBox().String(); s != "0 0 0 0" {
		t.Errorf("unexpected viewBox attribute %q", s)
	}
	if NewViewBox(3, 3, 1, 1) != NewViewBox(1, 1, 3, 3) {
		t.Errorf("inverted bounds should be normalized")
	}
}

func TestCubicBounds(t *testing.T) {
	// symmetric arch : the top is reached at t = 0.5
	box := CubicBounds(Pt(0, 0), Pt(0, 4), Pt(4, 4), Pt(4, 0))
	if box.MinX != 0 || box.MaxX != 4 || box.MinY != 0 || math.Abs(box.MaxY-3) > eps {
		t.Errorf("unexpected bounds %v", box)
	}
	// straight cubic : control points on the chord
	box = CubicBounds(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	if box != NewViewBox(0, 0, 3, 3) {
		t.Errorf("unexpected bounds %v", box)
	}
	if box := LineBounds(Pt(2, -1), Pt(-3, 4)); box != NewViewBox(-3, -1, 2, 4) {
		t.Errorf("unexpected bounds %v", box)
	}
}

func TestFixed(t *testing.T) {
	p := Pt(12.5, -3.25)
	if back := FromFixed(ToFixed(p)); back != p {
		t.Errorf("expected %v, got %v", p, back)
	}
	if f := ToFixed(Pt(1, -0.5)); f.X != 64 || f.Y != -32 {
		t.Errorf("unexpected fixed point %v", f)
	}
}

func TestTurnAngleAcrossNegativeX(t *testing.T) {
	// heading left, with a small bend across the negative x axis
	got := TurnAngle(Line(Pt(0, 0), Pt(-10, 1)), Line(Pt(-10, 1), Pt(-20, 0)))
	want := 180 - 2*math.Atan2(1, 10)*180/math.Pi
	if math.Abs(got-want) > eps {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRound(t *testing.T) {
	p := Pt(-0.4, 2.5).Round()
	if p != Pt(0, 3) || math.Signbit(p.X) {
		t.Errorf("unexpected rounding %v", p)
	}
	if s := Pt(-1e-18, -2.5).Round().String(); s != "0,-3" {
		t.Errorf("unexpected rounding %s", s)
	}
}
