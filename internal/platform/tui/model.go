package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wheel/internal/core"
	"github.com/vovakirdan/tui-wheel/internal/render"
	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

const (
	panelWidth     = 42
	minWheelCols   = 16
	minWheelRows   = 8
	chromeRows     = 3 // status line, spin label, help
	optionColWidth = 16
)

// Options configures a Model.
type Options struct {
	Wheel         *wheel.Wheel
	Clock         wheel.Clock   // nil uses the system clock
	TickRate      int           // frames per second
	Layout        render.Layout // terminal layout
	ImageLayout   render.Layout // layout for PNG screenshots
	ImageWidth    int
	ImageHeight   int
	ScreenshotDir string // empty disables screenshots
	Logger        *log.Logger
	Width         int
	Height        int
}

// Model is the Bubble Tea model for one wheel.
type Model struct {
	opts     Options
	wheel    *wheel.Wheel
	animator *wheel.Animator
	renderer *render.Renderer
	surface  *render.CellSurface
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	table    table.Model
	logger   *log.Logger
	width    int
	height   int
	last     *wheel.StopEvent
	notice   string
	quitting bool
}

// NewModel creates a model around an existing wheel.
func NewModel(opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:     opts,
		wheel:    opts.Wheel,
		animator: wheel.NewAnimator(opts.Wheel, opts.Clock),
		renderer: render.NewRenderer(opts.Layout),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   opts.Logger,
	}
	m.table = newStandingsTable()
	m.resize(opts.Width, opts.Height)
	return m
}

func newStandingsTable() table.Model {
	t := table.New(
		table.WithColumns(StandingsColumns(optionColWidth)),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// resize lays out the wheel area: square in pixels, so twice as many
// columns as rows.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	rows := max(height-chromeRows, 4)
	cols := width
	if width-panelWidth >= minWheelCols {
		cols = width - panelWidth
	}
	cols = min(cols, rows*2)

	if m.screen == nil {
		m.screen = core.NewScreen(cols, rows)
		m.surface = render.NewCellSurface(cols, rows)
	} else {
		m.screen.Resize(cols, rows)
		m.surface.Resize(cols, rows)
	}
	m.table.SetHeight(max(rows-10, 3))
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionSpin:
		if m.animator.Spin() {
			m.notice = ""
		}

	case core.ActionReset:
		m.wheel.Reset()
		m.last = nil
		m.notice = "Wheel reset"
		m.refreshStandings()

	case core.ActionScreenshot:
		m.notice = m.saveScreenshot()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the spin to the frame time.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if ev := m.animator.FrameAt(t); ev != nil {
		m.last = ev
		m.refreshStandings()
		m.logger.Info("wheel stopped",
			"mode", ev.Mode,
			"round", ev.Round,
			"segment", ev.Segment.Text,
			"finished", ev.Finished,
		)
	}
	return m, tickCmd(m.opts.TickRate)
}

func (m *Model) refreshStandings() {
	records := m.wheel.EliminationOrder()
	if m.wheel.Finished() {
		records = m.wheel.Standings()
	}
	m.table.SetRows(StandingsRows(records, m.wheel.Finished()))
	m.table.GotoTop()
}

// saveScreenshot renders the current wheel to a PNG and returns a notice.
func (m *Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "Screenshots are disabled"
	}
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Error("screenshot dir", "error", err)
		return "Screenshot failed"
	}

	surface, err := render.NewImageSurface(m.opts.ImageWidth, m.opts.ImageHeight, true)
	if err != nil {
		m.logger.Error("screenshot surface", "error", err)
		return "Screenshot failed"
	}
	render.NewRenderer(m.opts.ImageLayout).Draw(surface, m.wheel.Segments(), m.wheel.Angle())

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("wheel_%s.png", timestamp))
	if err := surface.SavePNG(path); err != nil {
		m.logger.Error("screenshot save", "error", err)
		return "Screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "Saved " + path
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	winnerStyle = lipgloss.NewStyle().Bold(true)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minWheelCols || m.height-chromeRows < minWheelRows {
		return tooSmallView(m.width, m.height)
	}

	m.screen.Clear()
	m.renderer.Draw(m.surface, m.wheel.Segments(), m.wheel.Angle())
	m.surface.Flush(m.screen, 0, 0)

	wheelView := lipgloss.JoinVertical(lipgloss.Center,
		RenderScreen(m.screen),
		titleStyle.Render(SpinLabel(m.wheel)),
	)

	body := wheelView
	if m.width-m.screen.Width() >= panelWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, wheelView, " ", m.panelView())
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(StatusLine(m.wheel)))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("  ")
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tooSmallView asks for a bigger terminal.
func tooSmallView(width, height int) string {
	s := core.NewScreen(max(width, 1), max(height, 1))
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()))
	s.DrawTextCentered(s.Height()/2, "Terminal too small")
	return s.String()
}

// panelView shows the pointer segment, the last result and the standings.
func (m Model) panelView() string {
	var b strings.Builder

	if w := m.wheel.Winner(); w.Index >= 0 {
		b.WriteString(dimStyle.Render("Pointer: "))
		b.WriteString(swatch(w.Segment.Color))
		b.WriteString(" ")
		b.WriteString(w.Segment.Text)
		b.WriteString("\n\n")
	}

	if m.last != nil {
		ev := *m.last
		headline := ev.Segment
		if ev.Champion != nil {
			headline = ev.Champion.Segment
		}

		lines := ResultLines(ev, len(m.wheel.Segments()))
		b.WriteString(titleStyle.Render(ResultTitle(ev)))
		b.WriteString("\n")
		b.WriteString(swatch(headline.Color))
		b.WriteString(" ")
		b.WriteString(winnerStyle.Render(lines[0]))
		b.WriteString("\n")
		for _, line := range lines[1:] {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.wheel.Mode() == wheel.ModeElimination && len(m.table.Rows()) > 0 {
		b.WriteString("\n")
		if m.wheel.Finished() {
			b.WriteString(titleStyle.Render("Final classification"))
		} else {
			b.WriteString(titleStyle.Render("📋 Eliminated (from last to first)"))
		}
		b.WriteString("\n")
		b.WriteString(m.table.View())
	}

	return panelStyle.Width(panelWidth - 4).Render(strings.TrimRight(b.String(), "\n"))
}

// swatch renders a two-cell color sample.
func swatch(hex string) string {
	c := render.ToCore(render.SegmentColor(hex))
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
}

// LastStop returns the most recent stop event shown by the model.
func (m Model) LastStop() (wheel.StopEvent, bool) {
	if m.last == nil {
		return wheel.StopEvent{}, false
	}
	return *m.last, true
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
