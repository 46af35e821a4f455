package wheel

import "sort"

// EliminationRecord is one line of the final standings.
type EliminationRecord struct {
	Round      int     // round in which the segment left the wheel (or won)
	Position   int     // final place; 1 is the champion
	Segment    Segment // the segment itself
	Eliminated bool    // false only for the champion
}

// Outcome is what a single stop did to the tournament.
type Outcome struct {
	Index    int
	Segment  Segment
	Record   *EliminationRecord // set in elimination mode
	Champion *EliminationRecord // set when this stop decided the tournament
	Finished bool
}

// Tournament tracks rounds, remaining segments and standings.
//
// In normal mode it only reports the landed segment. In elimination mode the
// landed segment is removed, and the tournament finishes as soon as one
// segment is left.
type Tournament struct {
	mode      Mode
	original  []Segment
	remaining []Segment
	order     []EliminationRecord // eliminated segments only, chronological
	champion  *EliminationRecord
	round     int
	finished  bool
}

// NewTournament starts round 1 over the given (already active) segments.
func NewTournament(mode Mode, segments []Segment) *Tournament {
	original := make([]Segment, len(segments))
	copy(original, segments)

	t := &Tournament{
		mode:     mode,
		original: original,
	}
	t.Reset()
	return t
}

// Reset restores the original segments, clears standings and returns to round 1.
func (t *Tournament) Reset() {
	t.remaining = make([]Segment, len(t.original))
	copy(t.remaining, t.original)
	t.order = nil
	t.champion = nil
	t.round = 1
	t.finished = false
}

// Mode returns the tournament mode.
func (t *Tournament) Mode() Mode {
	return t.mode
}

// Round returns the current round, starting at 1.
func (t *Tournament) Round() int {
	return t.round
}

// Finished reports whether an elimination tournament has a champion.
// Normal mode never finishes.
func (t *Tournament) Finished() bool {
	return t.finished
}

// Total returns the number of segments the tournament started with.
func (t *Tournament) Total() int {
	return len(t.original)
}

// Remaining returns a copy of the segments still on the wheel.
func (t *Tournament) Remaining() []Segment {
	out := make([]Segment, len(t.remaining))
	copy(out, t.remaining)
	return out
}

// Original returns a copy of the segments the tournament started with.
func (t *Tournament) Original() []Segment {
	out := make([]Segment, len(t.original))
	copy(out, t.original)
	return out
}

// Len returns the number of segments still on the wheel.
func (t *Tournament) Len() int {
	return len(t.remaining)
}

// EliminationOrder returns the eliminated segments in the order they left.
// The champion is not part of it; see Champion and Standings.
func (t *Tournament) EliminationOrder() []EliminationRecord {
	out := make([]EliminationRecord, len(t.order))
	copy(out, t.order)
	return out
}

// Champion returns the position-1 record once the tournament is finished.
func (t *Tournament) Champion() (EliminationRecord, bool) {
	if t.champion == nil {
		return EliminationRecord{}, false
	}
	return *t.champion, true
}

// Standings returns every record sorted by final position, champion first.
func (t *Tournament) Standings() []EliminationRecord {
	out := t.EliminationOrder()
	if t.champion != nil {
		out = append(out, *t.champion)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// Apply processes a stop on the segment at index.
func (t *Tournament) Apply(index int) Outcome {
	if t.finished || index < 0 || index >= len(t.remaining) {
		return Outcome{Index: -1, Finished: t.finished}
	}

	seg := t.remaining[index]
	out := Outcome{Index: index, Segment: seg}

	if t.mode != ModeElimination || len(t.remaining) < 2 {
		return out
	}

	// Position is the count before removal: the first out places last.
	rec := EliminationRecord{
		Round:      t.round,
		Position:   len(t.remaining),
		Segment:    seg,
		Eliminated: true,
	}
	t.order = append(t.order, rec)
	out.Record = &rec

	t.remaining = append(t.remaining[:index:index], t.remaining[index+1:]...)
	t.round++

	if len(t.remaining) == 1 {
		champ := EliminationRecord{
			Round:    t.round,
			Position: 1,
			Segment:  t.remaining[0],
		}
		t.champion = &champ
		t.finished = true
		out.Champion = &champ
		out.Finished = true
	}

	return out
}
