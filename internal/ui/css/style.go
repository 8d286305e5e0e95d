package css

import (
	"image/color"
	"strconv"
	"strings"
)

const defaultPadding = 4

// Length is a pixel or percentage value. Percentages position a box within the free space
// of the screen, so 100% on left pins it to the right edge.
type Length struct {
	Value   int32
	Percent bool
	Set     bool
}

// Resolve returns the pixel offset for a box of size within a container of size total.
func (l Length) Resolve(size, total int32) int32 {
	if l.Percent {
		return (total - size) * l.Value / 100
	}
	return l.Value
}

// Style is the resolved look of a node.
type Style struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       Length
	Top        Length
	Padding    int32
	FontSize   int32
	LineHeight int32
}

// DefaultStyle is white text on a transparent background.
func DefaultStyle() Style {
	return Style{
		Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border:   color.RGBA{A: 255},
		Padding:  defaultPadding,
		FontSize: 20,
	}
}

// Resolve turns cascaded declarations into a Style. Unparseable values keep the default.
func Resolve(props map[string]string) Style {
	out := DefaultStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left":
			if l, ok := ParseLength(v); ok {
				out.Left = l
			}
		case "top":
			if l, ok := ParseLength(v); ok {
				out.Top = l
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "line-height":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.LineHeight = n
			}
		}
	}
	if out.LineHeight == 0 {
		out.LineHeight = out.FontSize + 4
	}
	return out
}

// ParseColor accepts #RGB, #RRGGBB and #RRGGBBAA.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

// ParsePx parses "12" or "12px".
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParseLength parses a pixel value or a 0-100 percentage.
func ParseLength(s string) (Length, bool) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 100 {
			return Length{}, false
		}
		return Length{Value: int32(n), Percent: true, Set: true}, true
	}
	n, ok := ParsePx(s)
	if !ok {
		return Length{}, false
	}
	return Length{Value: n, Set: true}, true
}
