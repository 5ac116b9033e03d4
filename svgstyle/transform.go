package svgstyle

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/svgpath"
)

var errTransform = errors.New("svgstyle: invalid transform")

// TransformFunc is one function of a transform list,
// such as rotate(45,10,10).
type TransformFunc struct {
	Name string // one of matrix, translate, scale, rotate, skewX, skewY
	Args []float64
}

func (f TransformFunc) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = geom.FormatFloat(a)
	}
	return f.Name + "(" + strings.Join(args, ",") + ")"
}

// Transform is the ordered list of functions of
// a transform attribute. The zero value is the empty list.
//
// The builder methods return a new list and never modify
// the receiver.
type Transform []TransformFunc

func (t Transform) with(name string, args ...float64) Transform {
	out := make(Transform, len(t), len(t)+1)
	copy(out, t)
	return append(out, TransformFunc{Name: name, Args: args})
}

// Matrix appends a matrix(a,b,c,d,e,f) function.
func (t Transform) Matrix(a, b, c, d, e, f float64) Transform {
	return t.with("matrix", a, b, c, d, e, f)
}

// Translate appends a translation. The optional `y` is
// only written when given.
func (t Transform) Translate(x float64, y ...float64) Transform {
	if len(y) != 0 {
		return t.with("translate", x, y[0])
	}
	return t.with("translate", x)
}

// Scale appends a scaling. The optional `y` is
// only written when given.
func (t Transform) Scale(x float64, y ...float64) Transform {
	if len(y) != 0 {
		return t.with("scale", x, y[0])
	}
	return t.with("scale", x)
}

// Rotate appends a rotation of `angle` degrees, around
// the origin or around the point (center[0], center[1]) when given.
func (t Transform) Rotate(angle float64, center ...float64) Transform {
	if len(center) >= 2 {
		return t.with("rotate", angle, center[0], center[1])
	}
	return t.with("rotate", angle)
}

// SkewX appends a skew along the x axis, in degrees.
func (t Transform) SkewX(angle float64) Transform { return t.with("skewX", angle) }

// SkewY appends a skew along the y axis, in degrees.
func (t Transform) SkewY(angle float64) Transform { return t.with("skewY", angle) }

// String returns the transform attribute value: the
// functions are concatenated without separator.
func (t Transform) String() string {
	var b strings.Builder
	for _, f := range t {
		b.WriteString(f.String())
	}
	return b.String()
}

// canonical names and accepted argument counts,
// indexed by lower case names
var transformFuncs = map[string]struct {
	name    string
	arities []int
}{
	"matrix":    {"matrix", []int{6}},
	"translate": {"translate", []int{1, 2}},
	"scale":     {"scale", []int{1, 2}},
	"rotate":    {"rotate", []int{1, 3}},
	"skewx":     {"skewX", []int{1}},
	"skewy":     {"skewY", []int{1}},
}

// ParseTransform reads a transform list, such as
// "translate(10,20) rotate(45)".
func ParseTransform(s string) (Transform, error) {
	var out Transform
	for _, t := range strings.Split(s, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return nil, fmt.Errorf("%w: badly formed function %q", errTransform, t)
		}
		key := strings.ToLower(strings.Trim(d[0], " ,\t\n\r"))
		fn, ok := transformFuncs[key]
		if !ok {
			return nil, fmt.Errorf("%w: unknown function %q", errTransform, d[0])
		}
		args, err := svgpath.ParseNumbers(d[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errTransform, err)
		}
		if !validArity(fn.arities, len(args)) {
			return nil, fmt.Errorf("%w: %s expects %v arguments, got %d", errTransform, fn.name, fn.arities, len(args))
		}
		out = append(out, TransformFunc{Name: fn.name, Args: args})
	}
	return out, nil
}

func validArity(arities []int, n int) bool {
	for _, a := range arities {
		if a == n {
			return true
		}
	}
	return false
}

func degToRad(a float64) float64 { return a * math.Pi / 180 }

// ToMatrix evaluates the list into an affine matrix,
// the first function being the outermost.
// Malformed functions are ignored.
func (t Transform) ToMatrix() geom.Matrix2D {
	m := geom.Identity
	for _, f := range t {
		a := f.Args
		switch f.Name {
		case "matrix":
			if len(a) == 6 {
				m = m.Mult(geom.Matrix2D{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]})
			}
		case "translate":
			if len(a) == 1 {
				m = m.Translate(a[0], 0)
			} else if len(a) == 2 {
				m = m.Translate(a[0], a[1])
			}
		case "scale":
			if len(a) == 1 {
				m = m.Scale(a[0], a[0])
			} else if len(a) == 2 {
				m = m.Scale(a[0], a[1])
			}
		case "rotate":
			if len(a) == 1 {
				m = m.Rotate(degToRad(a[0]))
			} else if len(a) == 3 {
				m = m.Translate(a[1], a[2]).
					Rotate(degToRad(a[0])).
					Translate(-a[1], -a[2])
			}
		case "skewX":
			if len(a) == 1 {
				m = m.SkewX(degToRad(a[0]))
			}
		case "skewY":
			if len(a) == 1 {
				m = m.SkewY(degToRad(a[0]))
			}
		}
	}
	return m
}
