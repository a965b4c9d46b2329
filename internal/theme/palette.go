package theme

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/harmonica"
)

// Palette colours are "#rrggbb" strings so lipgloss can take them as-is.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Atom       string
	Button     string
	ButtonText string
}

var (
	Day = Palette{
		Background: "#f4efe6",
		Surface:    "#e8e0d2",
		Text:       "#2b2621",
		Muted:      "#8a8076",
		Accent:     "#d9573b",
		Atom:       "#3a6ea5",
		Button:     "#2b2621",
		ButtonText: "#f4efe6",
	}

	Night = Palette{
		Background: "#0f1117",
		Surface:    "#1b1f2a",
		Text:       "#e6e2da",
		Muted:      "#6b7080",
		Accent:     "#f2b84b",
		Atom:       "#8fb8ff",
		Button:     "#e6e2da",
		ButtonText: "#0f1117",
	}
)

func PaletteFor(m Mode) Palette {
	if m == Dark {
		return Night
	}
	return Day
}

// RGBA parses "#rrggbb". Malformed input yields opaque black.
func RGBA(hex string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Blend mixes a (f=0) and b (f=1).
func Blend(a, b color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Fader eases a 0 (day) .. 1 (night) blend factor toward the active mode.
type Fader struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func NewFader(fps int, initial Mode) *Fader {
	f := &Fader{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
	if initial == Dark {
		f.pos = 1
	}
	return f
}

// Update advances one frame toward m and returns the new blend factor.
func (f *Fader) Update(m Mode) float64 {
	target := 0.0
	if m == Dark {
		target = 1
	}
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, target)
	return f.Value()
}

func (f *Fader) Value() float64 {
	if f.pos < 0 {
		return 0
	}
	if f.pos > 1 {
		return 1
	}
	return f.pos
}

// Color blends one palette slot between Day and Night at the current factor.
func (f *Fader) Color(slot func(Palette) string) color.RGBA {
	return Blend(RGBA(slot(Day)), RGBA(slot(Night)), f.Value())
}
