// Package bounds derives the safe rectangle atoms are confined to.
package bounds

import (
	"math"
	"strconv"
	"strings"
)

// Names of the padding values read from the display layer.
const (
	PadTop    = "padTop"
	PadBottom = "padBottom"
	PadLeft   = "padLeft"
	PadRight  = "padRight"
)

type Padding struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

var DefaultPadding = Padding{Top: 90, Bottom: 90, Left: 150, Right: 150}

// Bounds is the padded rectangle, in viewport pixels.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func Compute(viewportW, viewportH float64, p Padding) Bounds {
	return Bounds{
		MinX: p.Left,
		MaxX: viewportW - p.Right,
		MinY: p.Top,
		MaxY: viewportH - p.Bottom,
	}
}

// PaddingFrom reads the four named padding values through lookup. A value that
// is missing, unparseable or zero keeps the default for its side.
func PaddingFrom(lookup func(name string) string) Padding {
	if lookup == nil {
		return DefaultPadding
	}
	return Padding{
		Top:    parseOr(lookup(PadTop), DefaultPadding.Top),
		Bottom: parseOr(lookup(PadBottom), DefaultPadding.Bottom),
		Left:   parseOr(lookup(PadLeft), DefaultPadding.Left),
		Right:  parseOr(lookup(PadRight), DefaultPadding.Right),
	}
}

// Normalize replaces zero or non-finite sides with their defaults.
func (p Padding) Normalize() Padding {
	return Padding{
		Top:    orDefault(p.Top, DefaultPadding.Top),
		Bottom: orDefault(p.Bottom, DefaultPadding.Bottom),
		Left:   orDefault(p.Left, DefaultPadding.Left),
		Right:  orDefault(p.Right, DefaultPadding.Right),
	}
}

// Width and Height may be negative when padding exceeds the viewport.
func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether a size×size box at (x, y) lies fully inside b.
func (b Bounds) Contains(x, y, size float64) bool {
	return x >= b.MinX && x <= b.MaxX-size && y >= b.MinY && y <= b.MaxY-size
}

// Fits reports whether a box of the given size can be placed inside b at all.
func (b Bounds) Fits(size float64) bool {
	return b.Width() >= size && b.Height() >= size
}

func parseOr(raw string, def float64) float64 {
	return orDefault(leadingFloat(raw), def)
}

func orDefault(v, def float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// leadingFloat parses the longest numeric prefix of s ("120px" -> 120).
// It returns NaN when no prefix parses.
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	for end := len(s); end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
	}
	return math.NaN()
}
