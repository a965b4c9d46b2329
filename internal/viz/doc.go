// Package viz renders the atom scene in a terminal with Bubble Tea.
//
// Atoms are drawn as braille circles on a [Canvas]. Terminal cells are
// scaled to scene pixels by the configured cell size, so the padding and
// atom sizes mean the same thing here as in the window host.
//
// # Key Bindings
//
//	d / n    - Day or night theme
//	Space    - Pause/Resume
//	g        - Toggle the speed chart
//	q        - Quit
//
// The mouse drives the repulsion cursor. Clicking the Day and Night buttons
// in the header switches the theme.
package viz
