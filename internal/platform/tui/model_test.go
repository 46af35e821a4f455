package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wheel/internal/render"
	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

var start = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, mode wheel.Mode, dir string) (Model, *wheel.ManualClock) {
	t.Helper()

	w, err := wheel.New([]wheel.Segment{
		{Text: "Alpha", Color: "#FF6B6B"},
		{Text: "Beta", Color: "#4ECDC4"},
		{Text: "Gamma", Color: "#45B7D1"},
		{Text: "Delta", Color: "#96CEB4"},
	}, mode, wheel.WithSeed(3))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	clock := wheel.NewManualClock(start)
	m := NewModel(Options{
		Wheel:         w,
		Clock:         clock,
		Layout:        render.CompactLayout(),
		ImageLayout:   render.DefaultLayout(),
		ImageWidth:    200,
		ImageHeight:   200,
		ScreenshotDir: dir,
		Width:         100,
		Height:        30,
	})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

// spinToStop presses space and feeds frames until the wheel stops.
func spinToStop(t *testing.T, m Model, clock *wheel.ManualClock) Model {
	t.Helper()
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.wheel.Spinning() {
		t.Fatal("space did not start a spin")
	}

	frame := time.Second / 60
	for i := 0; i < 5000 && m.wheel.Spinning(); i++ {
		clock.Advance(frame)
		m = update(t, m, TickMsg(clock.Now()))
	}
	if m.wheel.Spinning() {
		t.Fatal("wheel never stopped")
	}
	return m
}

func TestModelNormalSpin(t *testing.T) {
	m, clock := newTestModel(t, wheel.ModeNormal, "")

	m = spinToStop(t, m, clock)
	ev, ok := m.LastStop()
	if !ok {
		t.Fatal("no stop event recorded")
	}
	if got := m.wheel.Winner(); got.Index != ev.Index {
		t.Errorf("pointer on %d, stop event says %d", got.Index, ev.Index)
	}

	view := m.View()
	if !strings.Contains(view, "Result!") || !strings.Contains(view, ev.Segment.Text) {
		t.Errorf("view does not show the result:\n%s", view)
	}
}

func TestModelEliminationAndReset(t *testing.T) {
	m, clock := newTestModel(t, wheel.ModeElimination, "")

	m = spinToStop(t, m, clock)
	if n := len(m.wheel.Segments()); n != 3 {
		t.Fatalf("segments after one elimination = %d, want 3", n)
	}
	if rows := m.table.Rows(); len(rows) != 1 {
		t.Errorf("standings rows = %d, want 1", len(rows))
	}
	if view := m.View(); !strings.Contains(view, "Eliminated!") {
		t.Errorf("view does not show the elimination:\n%s", view)
	}

	m = spinToStop(t, m, clock)
	m = spinToStop(t, m, clock)
	if !m.wheel.Finished() {
		t.Fatal("tournament not finished after three eliminations")
	}
	if rows := m.table.Rows(); len(rows) != 4 || rows[0][2] != "WINNER" {
		t.Errorf("final standings = %v", rows)
	}

	// Further spins are refused.
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.wheel.Spinning() {
		t.Error("spin accepted after the tournament finished")
	}

	m = update(t, m, runes("r"))
	if n := len(m.wheel.Segments()); n != 4 {
		t.Errorf("segments after reset = %d, want 4", n)
	}
	if _, ok := m.LastStop(); ok {
		t.Error("reset kept the last result")
	}
	if rows := m.table.Rows(); len(rows) != 0 {
		t.Errorf("standings after reset = %v", rows)
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, wheel.ModeNormal, "")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.notice != "Screenshots are disabled" {
		t.Errorf("notice = %q", m.notice)
	}

	dir := filepath.Join(t.TempDir(), "shots")
	m, _ = newTestModel(t, wheel.ModeNormal, dir)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.notice, "Saved ") {
		t.Fatalf("notice = %q", m.notice)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || filepath.Ext(entries[0].Name()) != ".png" {
		t.Errorf("screenshot dir = %v", entries)
	}
}

func TestModelResizeAndQuit(t *testing.T) {
	m, _ := newTestModel(t, wheel.ModeNormal, "")

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if w := m.screen.Width(); w != 34 {
		t.Errorf("wheel width = %d, want 34 (two columns per row)", w)
	}
	if m.screen.Height() != 17 {
		t.Errorf("wheel height = %d, want 17", m.screen.Height())
	}

	small := update(t, m, tea.WindowSizeMsg{Width: 20, Height: 8})
	if view := small.View(); !strings.Contains(view, "Terminal too small") {
		t.Errorf("tiny terminal view:\n%s", view)
	}

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}
