package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/benoitkugler/svgsmooth/geom"
)

var errParamMismatch = errors.New("svgpath: param mismatch")

// pathCursor is used while parsing path data
type pathCursor struct {
	path           Path
	points         []float64 // arguments of the current command
	start, current geom.Point
	hasStart       bool

	// control point of the previous curve, reflected by S and T
	lastCubic, lastQuad *geom.Point

	subPaths []SubPath // end points of the segments
}

// SubPath is the sequence of segment end points of one
// sub-path, ignoring the curve control points.
type SubPath struct {
	Points []geom.Point
	Closed bool
}

// vertex records the end of a segment
func (c *pathCursor) vertex(p geom.Point) {
	last := &c.subPaths[len(c.subPaths)-1]
	last.Points = append(last.Points, p)
}

// isNumberStart returns true if c may start a number.
func isNumberStart(c byte) bool {
	return c == '-' || c == '+' || c == '.' || ('0' <= c && c <= '9')
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r'
}

// readNumber reads the float starting at s[i] and returns
// the index following it.
func readNumber(s string, i int) (float64, int, error) {
	j := i
	if j < len(s) && (s[j] == '-' || s[j] == '+') {
		j++
	}
	seenDot, seenExp := false, false
scan:
	for ; j < len(s); j++ {
		c := s[j]
		switch {
		case '0' <= c && c <= '9':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp:
			seenExp = true
			if j+1 < len(s) && (s[j+1] == '-' || s[j+1] == '+') {
				j++
			}
		default:
			break scan
		}
	}
	f, err := strconv.ParseFloat(s[i:j], 64)
	if err != nil {
		return 0, j, fmt.Errorf("svgpath: invalid number %q: %w", s[i:j], err)
	}
	return f, j, nil
}

// ParseNumbers reads a list of numbers separated by
// spaces or commas.
func ParseNumbers(s string) ([]float64, error) {
	var c pathCursor
	if err := c.getPoints(s); err != nil {
		return nil, err
	}
	return c.points, nil
}

// ParsePoints reads a list of coordinates pairs, such as
// the `points` attribute of a <polyline> element.
func ParsePoints(s string) ([]geom.Point, error) {
	var c pathCursor
	if err := c.getPoints(s); err != nil {
		return nil, err
	}
	if len(c.points)%2 != 0 {
		return nil, fmt.Errorf("svgpath: odd number of coordinates (%d)", len(c.points))
	}
	out := make([]geom.Point, len(c.points)/2)
	for i := range out {
		out[i] = geom.Pt(c.points[2*i], c.points[2*i+1])
	}
	return out, nil
}

// getPoints reads all the numbers in `s`
func (c *pathCursor) getPoints(s string) error {
	c.points = c.points[:0]
	for i := 0; i < len(s); {
		if isSeparator(s[i]) {
			i++
			continue
		}
		if !isNumberStart(s[i]) {
			return fmt.Errorf("svgpath: unexpected character %q", s[i])
		}
		f, next, err := readNumber(s, i)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
		i = next
	}
	return nil
}

// ParseData compiles the path data `d` into a Path.
// Supported commands are M, L, H, V, C, S, Q, T, A and Z, in their
// absolute and relative forms. Quadratic curves and arcs
// are converted to cubic curves.
func ParseData(d string) (Path, error) {
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

// ParseSubPaths compiles the path data `d` and returns the end points
// of its segments, one sequence per sub-path. An arc, drawn with
// several curves, contributes its end point only.
func ParseSubPaths(d string) ([]SubPath, error) {
	var c pathCursor
	if err := c.compilePath(d); err != nil {
		return nil, err
	}
	return c.subPaths, nil
}

func (c *pathCursor) compilePath(d string) error {
	start := -1
	for i := 0; i <= len(d); i++ {
		if i < len(d) && !isCommand(d[i]) {
			continue
		}
		if start >= 0 {
			if err := c.getPoints(d[start+1 : i]); err != nil {
				return err
			}
			if err := c.addSeg(d[start]); err != nil {
				return err
			}
		} else if i > 0 {
			if err := c.getPoints(d[:i]); err != nil || len(c.points) > 0 {
				return fmt.Errorf("svgpath: path data must start with a command: %q", d)
			}
		}
		start = i
	}
	return nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (c *pathCursor) abs(rel bool, x, y float64) geom.Point {
	if rel {
		return geom.Pt(c.current.X+x, c.current.Y+y)
	}
	return geom.Pt(x, y)
}

// addSeg decodes the command `key` using the arguments
// stored in c.points
func (c *pathCursor) addSeg(key byte) error {
	rel := 'a' <= key && key <= 'z'
	l := len(c.points)
	upper := key &^ 0x20
	if upper != 'M' && !c.hasStart {
		return fmt.Errorf("svgpath: command %c before any move: %w", key, errParamMismatch)
	}
	lastCubic, lastQuad := c.lastCubic, c.lastQuad
	c.lastCubic, c.lastQuad = nil, nil
	switch upper {
	case 'M':
		if l < 2 || l%2 != 0 {
			return fmt.Errorf("svgpath: M expects pairs of coordinates: %w", errParamMismatch)
		}
		c.current = c.abs(rel, c.points[0], c.points[1])
		c.start, c.hasStart = c.current, true
		c.path.Start(c.current)
		c.subPaths = append(c.subPaths, SubPath{Points: []geom.Point{c.current}})
		// following pairs are implicit line commands
		for i := 2; i < l; i += 2 {
			c.current = c.abs(rel, c.points[i], c.points[i+1])
			c.path.Line(c.current)
			c.vertex(c.current)
		}
	case 'L':
		if l < 2 || l%2 != 0 {
			return fmt.Errorf("svgpath: L expects pairs of coordinates: %w", errParamMismatch)
		}
		for i := 0; i < l; i += 2 {
			c.current = c.abs(rel, c.points[i], c.points[i+1])
			c.path.Line(c.current)
			c.vertex(c.current)
		}
	case 'H':
		if l == 0 {
			return fmt.Errorf("svgpath: H expects coordinates: %w", errParamMismatch)
		}
		for _, x := range c.points {
			if rel {
				x += c.current.X
			}
			c.current = geom.Pt(x, c.current.Y)
			c.path.Line(c.current)
			c.vertex(c.current)
		}
	case 'V':
		if l == 0 {
			return fmt.Errorf("svgpath: V expects coordinates: %w", errParamMismatch)
		}
		for _, y := range c.points {
			if rel {
				y += c.current.Y
			}
			c.current = geom.Pt(c.current.X, y)
			c.path.Line(c.current)
			c.vertex(c.current)
		}
	case 'C':
		if l == 0 || l%6 != 0 {
			return fmt.Errorf("svgpath: C expects groups of 6 coordinates: %w", errParamMismatch)
		}
		for i := 0; i < l; i += 6 {
			c1 := c.abs(rel, c.points[i], c.points[i+1])
			c2 := c.abs(rel, c.points[i+2], c.points[i+3])
			end := c.abs(rel, c.points[i+4], c.points[i+5])
			c.path.CubeBezier(c1, c2, end)
			c.current = end
			c.vertex(end)
			lastCubic = &c2
		}
		c.lastCubic = lastCubic
	case 'S':
		if l == 0 || l%4 != 0 {
			return fmt.Errorf("svgpath: S expects groups of 4 coordinates: %w", errParamMismatch)
		}
		for i := 0; i < l; i += 4 {
			c1 := reflect(lastCubic, c.current)
			c2 := c.abs(rel, c.points[i], c.points[i+1])
			end := c.abs(rel, c.points[i+2], c.points[i+3])
			c.path.CubeBezier(c1, c2, end)
			c.current = end
			c.vertex(end)
			lastCubic = &c2
		}
		c.lastCubic = lastCubic
	case 'Q':
		if l == 0 || l%4 != 0 {
			return fmt.Errorf("svgpath: Q expects groups of 4 coordinates: %w", errParamMismatch)
		}
		for i := 0; i < l; i += 4 {
			ctrl := c.abs(rel, c.points[i], c.points[i+1])
			end := c.abs(rel, c.points[i+2], c.points[i+3])
			c.addQuad(ctrl, end)
			lastQuad = &ctrl
		}
		c.lastQuad = lastQuad
	case 'T':
		if l == 0 || l%2 != 0 {
			return fmt.Errorf("svgpath: T expects pairs of coordinates: %w", errParamMismatch)
		}
		for i := 0; i < l; i += 2 {
			ctrl := reflect(lastQuad, c.current)
			end := c.abs(rel, c.points[i], c.points[i+1])
			c.addQuad(ctrl, end)
			lastQuad = &ctrl
		}
		c.lastQuad = lastQuad
	case 'A':
		if l == 0 || l%7 != 0 {
			return fmt.Errorf("svgpath: A expects groups of 7 values: %w", errParamMismatch)
		}
		for i := 0; i < l; i += 7 {
			c.addArc(c.points[i:i+5], c.abs(rel, c.points[i+5], c.points[i+6]))
		}
	case 'Z':
		if l != 0 {
			return fmt.Errorf("svgpath: Z takes no argument: %w", errParamMismatch)
		}
		c.path.Stop(true)
		c.current = c.start
		c.subPaths[len(c.subPaths)-1].Closed = true
	}
	return nil
}

// reflect returns the reflection of `ctrl` about `current`,
// or `current` when there is no previous control point.
func reflect(ctrl *geom.Point, current geom.Point) geom.Point {
	if ctrl == nil {
		return current
	}
	return geom.Pt(2*current.X-ctrl.X, 2*current.Y-ctrl.Y)
}

// addQuad adds the quadratic curve as the equivalent cubic one.
func (c *pathCursor) addQuad(ctrl, end geom.Point) {
	start := c.current
	c1 := geom.Pt(start.X+2*(ctrl.X-start.X)/3, start.Y+2*(ctrl.Y-start.Y)/3)
	c2 := geom.Pt(end.X+2*(ctrl.X-end.X)/3, end.Y+2*(ctrl.Y-end.Y)/3)
	c.path.CubeBezier(c1, c2, end)
	c.current = end
	c.vertex(end)
}

// addArc adds an arc command, whose arguments are
// rx, ry, x-axis rotation (degrees), large-arc and sweep flags.
// Degenerate arcs are drawn as lines, or skipped.
func (c *pathCursor) addArc(args []float64, end geom.Point) {
	start := c.current
	c.current = end
	if start == end {
		return
	}
	c.vertex(end)
	rx, ry := math.Abs(args[0]), math.Abs(args[1])
	if rx == 0 || ry == 0 {
		c.path.Line(end)
		return
	}
	rotX := args[2] * math.Pi / 180
	largeArc, sweep := args[3] != 0, args[4] != 0
	center := findEllipseCenter(&rx, &ry, rotX, start, end, sweep, !largeArc)
	c.path.addArc(rx, ry, rotX, largeArc, sweep, center, start, end)
}
