package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/wqcharts/bizchart/pkg/animation"
	"github.com/wqcharts/bizchart/pkg/chart"
	"github.com/wqcharts/bizchart/pkg/config"
	"github.com/wqcharts/bizchart/pkg/geom"
	"github.com/wqcharts/bizchart/pkg/render/term"
	"github.com/wqcharts/bizchart/pkg/scroll"
)

const (
	chartZone  = "chart"
	frameRate  = time.Second / 60
	statusRows = 1
	pageFactor = 0.9
)

var (
	viewerStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	viewerKeyStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	viewerErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// viewCommand creates the interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [chart.toml]",
		Short: "Scroll a chart in the terminal",
		Long: `View opens the chart in a full-screen terminal viewer.

Keys: arrows/hjkl scroll, pgup/pgdn page, t plays the transform (again to
reverse it), r reloads the file, q quits. The mouse wheel scrolls while
the pointer is over the chart; shift+wheel scrolls sideways.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := config.Load(args[0])
			if err != nil {
				return err
			}
			zones := zone.New()
			defer zones.Close()

			m := newViewer(args[0], ch, zones, loggerFromContext(cmd.Context()))
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// frameMsg drives settling and transform playback.
type frameMsg time.Time

// viewer is the bubbletea model of the view command. The chart view lays
// out into the scroll surface, which doubles as its content-size sink.
type viewer struct {
	path    string
	chart   *config.Chart
	view    *chart.View
	surface *scroll.Surface
	zones   *zone.Manager
	logger  *log.Logger

	player    *animation.Player
	reverse   bool // next transform runs from 1 to 0
	animating bool // a frame tick is scheduled
	err       error
}

func newViewer(path string, ch *config.Chart, zones *zone.Manager, logger *log.Logger) *viewer {
	m := &viewer{
		path:    path,
		chart:   ch,
		surface: scroll.NewSurface(ch.Viewport.Geom()),
		zones:   zones,
		logger:  logger,
	}
	m.build()
	return m
}

// build creates the view from the current chart. The debug logger is not
// passed down: the engine's per-frame output would tear the alt screen.
func (m *viewer) build() {
	m.view, _ = m.chart.Build(chart.WithContentSizeSink(m.surface))
	m.view.Layout(m.surface.Viewport())
}

func (m *viewer) Init() tea.Cmd { return nil }

func (m *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.surface.SetViewport(geom.Size{
			Width:  float64(msg.Width),
			Height: float64(max(msg.Height-statusRows, 0)),
		})
		m.view.Layout(m.surface.Viewport())
		return m, m.startFrames()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		return m, m.frame()
	}
	return m, nil
}

func (m *viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := m.surface.Viewport()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.surface.ScrollBy(0, -1)
	case "down", "j":
		m.surface.ScrollBy(0, 1)
	case "left", "h":
		m.surface.ScrollBy(-1, 0)
	case "right", "l":
		m.surface.ScrollBy(1, 0)
	case "pgup":
		m.surface.ScrollBy(0, -vp.Height*pageFactor)
	case "pgdown", " ":
		m.surface.ScrollBy(0, vp.Height*pageFactor)
	case "home", "g":
		m.surface.ScrollTo(geom.Point{})
	case "end", "G":
		m.surface.ScrollTo(m.surface.MaxOffset())
	case "t":
		m.playTransform()
	case "r":
		m.reload()
	default:
		return m, nil
	}
	return m, m.startFrames()
}

func (m *viewer) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || !m.zones.Get(chartZone).InBounds(msg) {
		return m, nil
	}
	dx, dy := 0.0, 0.0
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		dy = -1
	case tea.MouseButtonWheelDown:
		dy = 1
	case tea.MouseButtonWheelLeft:
		dx = -1
	case tea.MouseButtonWheelRight:
		dx = 1
	default:
		return m, nil
	}
	if msg.Shift {
		dx, dy = dy, dx
	}
	m.surface.ScrollBy(dx, dy)
	return m, m.startFrames()
}

// playTransform starts the chart's transform, alternating direction on
// each press. Without a transform it does nothing.
func (m *viewer) playTransform() {
	if m.chart.Transform.IsZero() {
		return
	}
	m.player = animation.NewPlayer(m.view, m.chart.Transform.Source(m.reverse))
	m.reverse = !m.reverse
}

// reload re-reads the chart file and rebuilds the view from it. The scroll
// offset is kept and settles back into range if the content shrank. A file
// that fails to load leaves the current chart in place.
func (m *viewer) reload() {
	ch, err := config.Load(m.path)
	if err != nil {
		m.err = err
		m.logger.Debug("reload failed", "err", err)
		return
	}
	m.err = nil
	m.chart = ch
	m.player = nil
	m.reverse = false
	m.build()
}

// startFrames schedules a frame tick unless one is pending.
func (m *viewer) startFrames() tea.Cmd {
	if m.animating || !m.needsFrames() {
		return nil
	}
	m.animating = true
	return tick()
}

func (m *viewer) needsFrames() bool {
	return m.surface.Overscrolled() || (m.player != nil && !m.player.Done())
}

// frame advances settling and playback by one tick.
func (m *viewer) frame() tea.Cmd {
	m.animating = false
	if m.player != nil && m.player.Tick(frameRate) {
		m.animating = true
	}
	if m.surface.Settle() {
		m.animating = true
	}
	m.view.Layout(m.surface.Viewport())
	if m.animating {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// View draws the visible rows into a terminal canvas.
func (m *viewer) View() string {
	bounds := m.surface.Bounds()
	m.view.Layout(bounds.Size())
	c := term.New(bounds)
	m.view.Draw(c, bounds)

	body := m.zones.Mark(chartZone, c.View())
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, body, m.status()))
}

func (m *viewer) status() string {
	if m.err != nil {
		return viewerErrorStyle.Render(iconError + " " + m.err.Error())
	}
	off := m.surface.Offset()
	size := m.view.ContentSize()
	return viewerStatusStyle.Render(fmt.Sprintf("%s  offset %.0f,%.0f  content %.0fx%.0f  rows %d  ",
		m.path, off.X, off.Y, size.Width, size.Height, len(m.view.Rows()))) +
		viewerKeyStyle.Render("t") + viewerStatusStyle.Render(" transform  ") +
		viewerKeyStyle.Render("r") + viewerStatusStyle.Render(" reload  ") +
		viewerKeyStyle.Render("q") + viewerStatusStyle.Render(" quit")
}
