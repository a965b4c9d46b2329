package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/storage"
	"github.com/san-kum/atomscene/internal/theme"
)

// Path is one atom's recorded centre positions.
type Path struct {
	ID     string
	Size   float64
	Points []struct{ X, Y float64 }
}

func header(sb *strings.Builder, w, h float64, bg string) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, bg)
}

func atomSVG(sb *strings.Builder, id string, cx, cy, size float64, p theme.Palette) {
	fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, size/2, p.Atom)
	fmt.Fprintf(sb, `<text x="%.1f" y="%.1f" font-size="%.0f" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>
`, cx, cy, max(size/6, 10), p.Background, html.EscapeString(id))
}

// SceneSVG draws the atoms at their current positions on a viewport of
// w x h, coloured from p.
func SceneSVG(list []*atoms.Atom, w, h float64, p theme.Palette) string {
	var sb strings.Builder
	header(&sb, w, h, p.Background)
	for _, a := range list {
		cx, cy := a.Center()
		atomSVG(&sb, a.ID, cx, cy, a.Size, p)
	}
	sb.WriteString("</svg>")
	return sb.String()
}

// RunPaths turns recorded states into per-atom centre paths. Atoms without a
// recorded size are treated as points.
func RunPaths(meta *storage.RunMetadata, states [][]float64) []Path {
	paths := make([]Path, 0, len(meta.Atoms))
	for i, id := range meta.Atoms {
		size := 0.0
		if i < len(meta.Sizes) {
			size = meta.Sizes[i]
		}
		xs := storage.Series(states, i, 0)
		ys := storage.Series(states, i, 1)
		path := Path{ID: id, Size: size}
		for j := range xs {
			if j >= len(ys) {
				break
			}
			path.Points = append(path.Points, struct{ X, Y float64 }{xs[j] + size/2, ys[j] + size/2})
		}
		paths = append(paths, path)
	}
	return paths
}

// TrajectorySVG draws every path in scene coordinates and the atoms at their
// last recorded position.
func TrajectorySVG(paths []Path, w, h float64, p theme.Palette) string {
	var sb strings.Builder
	header(&sb, w, h, p.Background)

	for _, path := range paths {
		if len(path.Points) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-opacity="0.6" stroke-width="1.5" d="M`, p.Accent)
		for i, pt := range path.Points {
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", pt.X, pt.Y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", pt.X, pt.Y)
			}
		}
		sb.WriteString("\"/>\n")
	}
	for _, path := range paths {
		if len(path.Points) == 0 {
			continue
		}
		last := path.Points[len(path.Points)-1]
		atomSVG(&sb, path.ID, last.X, last.Y, path.Size, p)
	}

	sb.WriteString("</svg>")
	return sb.String()
}
