package svgstyle

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errInvalidColor = errors.New("svgstyle: invalid color")

// Color is any value which can be written
// as an SVG color, such as "#ff0000" or "red".
type Color interface {
	String() string
}

// RGB is an opaque color, written in hexadecimal form.
// It also implements color.Color.
type RGB struct{ R, G, B uint8 }

func (c RGB) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Named is an SVG 1.1 color keyword, such as "steelblue".
// It also implements color.Color; unknown names and
// None are mapped to the transparent color.
type Named string

// None disables the painting of a fill or a stroke.
const None Named = "none"

func (c Named) String() string { return string(c) }

// RGBA implements color.Color.
func (c Named) RGBA() (r, g, b, a uint32) {
	return colornames.Map[strings.ToLower(string(c))].RGBA()
}

// ToColor returns the color.Color to use when painting `c`,
// and false if nothing should be painted.
func ToColor(c Color) (color.Color, bool) {
	switch c := c.(type) {
	case nil:
		return nil, false
	case Named:
		cn, ok := colornames.Map[strings.ToLower(string(c))]
		return cn, ok
	case color.Color:
		return c, true
	default:
		parsed, err := ParseColor(c.String())
		if err != nil {
			return nil, false
		}
		return ToColor(parsed)
	}
}

// ParseColor reads an SVG color, in one of the forms
// "#rgb", "#rrggbb", "rgb(r, g, b)" (with integers or percentages),
// a color keyword or "none".
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == string(None) {
		return None, nil
	}
	if _, ok := colornames.Map[v]; ok {
		return Named(v), nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	if args := strings.TrimPrefix(v, "rgb("); args != v && strings.HasSuffix(args, ")") {
		vals := strings.Split(strings.TrimSuffix(args, ")"), ",")
		if len(vals) != 3 {
			return nil, fmt.Errorf("%w: %q", errInvalidColor, s)
		}
		var cvals [3]uint8
		for i, val := range vals {
			c, err := parseColorValue(val)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", errInvalidColor, s)
			}
			cvals[i] = c
		}
		return RGB{cvals[0], cvals[1], cvals[2]}, nil
	}
	return nil, fmt.Errorf("%w: %q", errInvalidColor, s)
}

func parseHexColor(hex string) (RGB, error) {
	if len(hex) == 3 {
		// duplicate characters for the short form
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: #%s", errInvalidColor, hex)
	}
	var out [3]uint8
	for i := range out {
		t, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: #%s", errInvalidColor, hex)
		}
		out[i] = uint8(t)
	}
	return RGB{out[0], out[1], out[2]}, nil
}

// parseColorValue reads an integer in [0, 255] or a percentage
func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil || f < 0 || f > 100 {
			return 0, errInvalidColor
		}
		return uint8(f*0xff/100 + 0.5), nil
	}
	n, err := strconv.ParseUint(v, 10, 8)
	if err != nil {
		return 0, errInvalidColor
	}
	return uint8(n), nil
}
