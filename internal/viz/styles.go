package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/atomscene/internal/theme"
)

type Styles struct {
	Scene        lipgloss.Style
	Header       lipgloss.Style
	Clock        lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	Graph        lipgloss.Style
	Help         lipgloss.Style
	Paused       lipgloss.Style
}

// StylesFor builds the lipgloss styles for one palette.
func StylesFor(p theme.Palette) Styles {
	bg := lipgloss.Color(p.Background)
	return Styles{
		Scene:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Atom)).Background(bg),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Surface)),
		Clock:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Background(lipgloss.Color(p.Surface)).Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Background(lipgloss.Color(p.Surface)),
		ActiveButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.ButtonText)).
			Background(lipgloss.Color(p.Button)).
			Bold(true),
		Graph:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Italic(true),
		Paused: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)).Bold(true),
	}
}

var (
	dayStyles   = StylesFor(theme.Day)
	nightStyles = StylesFor(theme.Night)
)

func stylesFor(m theme.Mode) Styles {
	if m == theme.Dark {
		return nightStyles
	}
	return dayStyles
}
