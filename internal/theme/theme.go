// Package theme holds the two display modes of the scene, the switch that
// flips between them and the colours each mode paints with.
package theme

import (
	"strings"

	"github.com/muesli/termenv"
)

type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode maps "dark" to Dark and every other input to Light.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return Dark
	}
	return Light
}

// Detect picks the mode matching the terminal background.
func Detect() Mode {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Resolve turns a configured theme name into a mode; "auto" asks the terminal.
func Resolve(name string) Mode {
	if strings.EqualFold(strings.TrimSpace(name), "auto") {
		return Detect()
	}
	return ParseMode(name)
}

// State is what the display root and the two selector controls show.
type State struct {
	Mode        Mode
	Light       bool
	Dark        bool
	DayActive   bool
	NightActive bool
}

type Switcher struct {
	state State
}

func NewSwitcher(initial Mode) *Switcher {
	s := &Switcher{}
	s.SetMode(initial)
	return s
}

// SetMode overwrites the whole display state for m. Exactly one root flag and
// one control end up set.
func (s *Switcher) SetMode(m Mode) {
	dark := m == Dark
	if !dark {
		m = Light
	}
	s.state = State{
		Mode:        m,
		Light:       !dark,
		Dark:        dark,
		DayActive:   !dark,
		NightActive: dark,
	}
}

func (s *Switcher) Mode() Mode       { return s.state.Mode }
func (s *Switcher) State() State     { return s.state }
func (s *Switcher) Palette() Palette { return PaletteFor(s.state.Mode) }
