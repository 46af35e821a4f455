package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

// Medal returns the short position marker used in lists.
func Medal(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", position)
	}
}

// PlaceText returns the spelled-out final place.
func PlaceText(position int) string {
	if position == 1 {
		return "WINNER"
	}
	return strings.ToUpper(ordinal(position)) + " PLACE"
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// ResultTitle is the headline for a stop event.
func ResultTitle(ev wheel.StopEvent) string {
	switch {
	case ev.Mode != wheel.ModeElimination:
		return "🎉 Result!"
	case ev.Finished:
		return "🎉 We Have a Winner!"
	default:
		return "🚫 Eliminated!"
	}
}

// ResultLines describes a stop event. remaining is the segment count left
// on the wheel after the event was applied.
func ResultLines(ev wheel.StopEvent, remaining int) []string {
	if ev.Mode != wheel.ModeElimination {
		return []string{ev.Segment.Text}
	}

	if ev.Finished && ev.Champion != nil {
		return []string{
			ev.Champion.Segment.Text,
			fmt.Sprintf("Last out: %s (round %d)", ev.Segment.Text, ev.Round),
		}
	}

	lines := []string{ev.Segment.Text}
	if ev.Record != nil {
		lines = append(lines, fmt.Sprintf("Final position: %s %s", Medal(ev.Record.Position), PlaceText(ev.Record.Position)))
	}
	lines = append(lines, fmt.Sprintf("Eliminated in: round %d", ev.Round))

	noun := "options"
	if remaining == 1 {
		noun = "finalist"
	}
	lines = append(lines, fmt.Sprintf("Remaining: %d %s", remaining, noun))
	return lines
}

// SpinLabel is the call to action shown under the wheel.
func SpinLabel(w *wheel.Wheel) string {
	switch {
	case w.Spinning():
		return "Spinning..."
	case w.Finished():
		return "🏆 Game Finished"
	case w.Mode() == wheel.ModeElimination && len(w.Segments()) == 2:
		return "🏆 Final Round"
	case w.Mode() == wheel.ModeElimination:
		return fmt.Sprintf("🎲 Round %d", w.Round())
	default:
		return "🎲 Spin"
	}
}

// StatusLine summarises an elimination wheel, or the segment count in normal mode.
func StatusLine(w *wheel.Wheel) string {
	if w.Mode() != wheel.ModeElimination {
		return fmt.Sprintf("Normal mode · %d options", len(w.Segments()))
	}
	return fmt.Sprintf("🏆 Elimination · Round %d · %d remaining · %d eliminated",
		w.Round(), len(w.Segments()), len(w.EliminationOrder()))
}

// StandingsColumns are the table columns for standings.
func StandingsColumns(textWidth int) []table.Column {
	return []table.Column{
		{Title: "Pos", Width: 4},
		{Title: "Option", Width: max(textWidth, 6)},
		{Title: "Place", Width: 11},
		{Title: "Rnd", Width: 4},
	}
}

// StandingsRows builds table rows. While a tournament runs the eliminated
// segments are listed from last place up; once it is finished the full
// classification is listed from the winner down.
func StandingsRows(records []wheel.EliminationRecord, finished bool) []table.Row {
	sorted := make([]wheel.EliminationRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if finished {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].Position > sorted[j].Position
	})

	rows := make([]table.Row, len(sorted))
	for i, r := range sorted {
		rows[i] = table.Row{
			Medal(r.Position),
			r.Segment.Text,
			PlaceText(r.Position),
			fmt.Sprintf("R%d", r.Round),
		}
	}
	return rows
}
