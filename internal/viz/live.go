package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomscene/internal/atoms"
	"github.com/san-kum/atomscene/internal/bounds"
	"github.com/san-kum/atomscene/internal/clock"
	"github.com/san-kum/atomscene/internal/scene"
	"github.com/san-kum/atomscene/internal/theme"
)

const (
	headerRows      = 1
	helpRows        = 1
	chartRows       = 6
	historyCapacity = 300
	dayLabel        = " Day "
	nightLabel      = " Night "
)

type (
	FrameMsg time.Time
	ClockMsg time.Time
)

// speedTrace records the mean atom speed after every engine step.
type speedTrace struct {
	values []float64
}

func (s *speedTrace) OnFrame(list []*atoms.Atom, b bounds.Bounds, dt float64) {
	if len(list) == 0 {
		return
	}
	sum := 0.0
	for _, a := range list {
		sum += a.Speed()
	}
	s.values = append(s.values, sum/float64(len(list)))
	if len(s.values) > historyCapacity {
		s.values = s.values[len(s.values)-historyCapacity:]
	}
}

type Options struct {
	Scene      *scene.Scene
	Clock      *clock.Formatter
	CellWidth  float64
	CellHeight float64
	FPS        int
}

// Model hosts a scene inside a terminal. Terminal cells map to scene pixels
// by CellWidth x CellHeight.
type Model struct {
	sc         *scene.Scene
	clk        *clock.Formatter
	cellW      float64
	cellH      float64
	fps        int
	cols, rows int
	canvas     *Canvas
	trace      *speedTrace
	reading    clock.Reading
	running    bool
	showChart  bool
}

func NewModel(opts Options) Model {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 10
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 20
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	trace := &speedTrace{values: make([]float64, 0, historyCapacity)}
	opts.Scene.Engine.AddObserver(trace)

	m := Model{
		sc:      opts.Scene,
		clk:     opts.Clock,
		cellW:   opts.CellWidth,
		cellH:   opts.CellHeight,
		fps:     opts.FPS,
		canvas:  NewCanvas(0, 0),
		trace:   trace,
		running: true,
	}
	m.reading = m.clk.Read(time.Now())
	return m
}

// Run starts the terminal host and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}

func (m Model) frameTick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return ClockMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.frameTick(), clockTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "d":
			m.sc.SetMode(theme.Light)
		case "n":
			m.sc.SetMode(theme.Dark)
		case "g":
			m.showChart = !m.showChart
			m.layout()
		}
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.layout()
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.BlurMsg:
		m.sc.PointerLeave()
	case FrameMsg:
		if m.running {
			m.sc.Frame(time.Time(msg))
		}
		return m, m.frameTick()
	case ClockMsg:
		m.reading = m.clk.Read(time.Time(msg))
		return m, clockTick()
	}
	return m, nil
}

func (m *Model) sceneRows() int {
	n := m.rows - headerRows - helpRows
	if m.showChart {
		n -= chartRows
	}
	if n < 0 {
		n = 0
	}
	return n
}

// layout sizes the canvas to the scene area and resizes the scene to match.
func (m *Model) layout() {
	rows := m.sceneRows()
	m.canvas.Resize(m.cols, rows)
	m.sc.Resize(float64(m.cols)*m.cellW, float64(rows)*m.cellH)
}

// buttons returns the half-open column spans of the Day and Night buttons.
func (m *Model) buttons() (day, night [2]int) {
	nightStart := m.cols - len(nightLabel)
	dayStart := nightStart - 1 - len(dayLabel)
	return [2]int{dayStart, dayStart + len(dayLabel)}, [2]int{nightStart, m.cols}
}

func (m *Model) mouse(msg tea.MouseMsg) {
	row := msg.Y - headerRows
	if msg.Y < headerRows {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			day, night := m.buttons()
			switch {
			case msg.X >= day[0] && msg.X < day[1]:
				m.sc.SetMode(theme.Light)
			case msg.X >= night[0] && msg.X < night[1]:
				m.sc.SetMode(theme.Dark)
			}
		}
		m.sc.PointerLeave()
		return
	}
	if row >= m.sceneRows() || msg.X < 0 || msg.X >= m.cols {
		m.sc.PointerLeave()
		return
	}
	x, y := m.toScene(msg.X, row)
	m.sc.PointerMove(x, y)
}

// toScene maps a cell to the scene pixel at its centre.
func (m *Model) toScene(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * m.cellW, (float64(row) + 0.5) * m.cellH
}

func (m *Model) draw() {
	m.canvas.Clear()
	sx, sy := m.cellW/2, m.cellH/4
	for _, a := range m.sc.Registry.All() {
		cx, cy := a.Center()
		r := a.Size / 2
		m.canvas.Circle(cx/sx, cy/sy, r/sx)
		label := a.ID
		col := int(cx/m.cellW) - len(label)/2
		m.canvas.Label(col, int(cy/m.cellH), label)
	}
}

func (m Model) header(st Styles) string {
	clockText := st.Clock.Render(" " + m.reading.Date + "  " + m.reading.Time + " ")
	dayStyle, nightStyle := st.Button, st.ActiveButton
	if m.sc.Theme.Mode() == theme.Light {
		dayStyle, nightStyle = st.ActiveButton, st.Button
	}
	buttons := dayStyle.Render(dayLabel) + st.Header.Render(" ") + nightStyle.Render(nightLabel)
	gap := m.cols - lipgloss.Width(clockText) - lipgloss.Width(buttons)
	if gap < 0 {
		gap = 0
	}
	return clockText + st.Header.Render(strings.Repeat(" ", gap)) + buttons
}

func (m Model) View() string {
	if m.cols == 0 || m.rows == 0 {
		return "starting..."
	}
	st := stylesFor(m.sc.Theme.Mode())
	m.draw()

	var s strings.Builder
	s.WriteString(m.header(st) + "\n")
	s.WriteString(st.Scene.Width(m.cols).Render(m.canvas.String()) + "\n")
	if m.showChart {
		if len(m.trace.values) > 1 {
			chart := asciigraph.Plot(m.trace.values,
				asciigraph.Height(chartRows-2),
				asciigraph.Width(m.cols-10),
				asciigraph.Caption("mean speed (px/s)"))
			s.WriteString(st.Graph.Render(chart) + "\n")
		} else {
			s.WriteString(strings.Repeat("\n", chartRows))
		}
	}
	status := ""
	if !m.running {
		status = st.Paused.Render("PAUSED ")
	}
	s.WriteString(status + st.Help.Render(fmt.Sprintf("d/n: theme  space: pause  g: chart  q: quit  frames %d", m.sc.Frames())))
	return s.String()
}
