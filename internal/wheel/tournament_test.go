package wheel

import (
	"math/rand"
	"sort"
	"testing"
)

func segs(names ...string) []Segment {
	out := make([]Segment, len(names))
	for i, n := range names {
		out[i] = Segment{Text: n, Color: "#FF6B6B"}
	}
	return out
}

func TestTournamentEliminationExample(t *testing.T) {
	tour := NewTournament(ModeElimination, segs("A", "B", "C", "D"))

	// Land on B, then D, then A.
	steps := []struct {
		index     int
		want      string
		position  int
		remaining int
	}{
		{1, "B", 4, 3},
		{2, "D", 3, 2},
		{0, "A", 2, 1},
	}

	for i, st := range steps {
		out := tour.Apply(st.index)
		if out.Segment.Text != st.want {
			t.Fatalf("step %d: landed on %q, want %q", i, out.Segment.Text, st.want)
		}
		if out.Record == nil {
			t.Fatalf("step %d: no elimination record", i)
		}
		if out.Record.Round != i+1 || out.Record.Position != st.position || !out.Record.Eliminated {
			t.Errorf("step %d: record = %+v", i, *out.Record)
		}
		if tour.Len() != st.remaining {
			t.Errorf("step %d: %d segments remain, want %d", i, tour.Len(), st.remaining)
		}
	}

	if !tour.Finished() {
		t.Fatal("tournament not finished with one segment left")
	}

	champ, ok := tour.Champion()
	if !ok {
		t.Fatal("no champion")
	}
	if champ.Segment.Text != "C" || champ.Position != 1 || champ.Round != 4 || champ.Eliminated {
		t.Errorf("champion = %+v", champ)
	}

	order := tour.EliminationOrder()
	if len(order) != 3 {
		t.Fatalf("elimination order has %d entries, want 3", len(order))
	}

	standings := tour.Standings()
	wantOrder := []string{"C", "A", "D", "B"}
	for i, rec := range standings {
		if rec.Segment.Text != wantOrder[i] || rec.Position != i+1 {
			t.Errorf("standings[%d] = %s at %d, want %s at %d", i, rec.Segment.Text, rec.Position, wantOrder[i], i+1)
		}
	}

	// Further stops are ignored.
	if out := tour.Apply(0); out.Index != -1 || !out.Finished {
		t.Errorf("Apply after finish = %+v", out)
	}
}

func TestTournamentPositionsArePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 2; n <= 20; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		tour := NewTournament(ModeElimination, segs(names...))

		for !tour.Finished() {
			tour.Apply(rng.Intn(tour.Len()))
		}

		standings := tour.Standings()
		if len(standings) != n {
			t.Fatalf("n=%d: %d standings", n, len(standings))
		}
		if len(tour.EliminationOrder()) != n-1 {
			t.Fatalf("n=%d: %d eliminations, want %d", n, len(tour.EliminationOrder()), n-1)
		}

		positions := make([]int, 0, n)
		seen := make(map[string]bool, n)
		for _, rec := range standings {
			positions = append(positions, rec.Position)
			if seen[rec.Segment.Text] {
				t.Fatalf("n=%d: %q appears twice", n, rec.Segment.Text)
			}
			seen[rec.Segment.Text] = true
		}
		sort.Ints(positions)
		for i, p := range positions {
			if p != i+1 {
				t.Fatalf("n=%d: positions %v are not 1..%d", n, positions, n)
			}
		}
	}
}

func TestTournamentRoundsMatchRemaining(t *testing.T) {
	tour := NewTournament(ModeElimination, segs("a", "b", "c", "d", "e"))
	for !tour.Finished() {
		if tour.Round() != tour.Total()-tour.Len()+1 {
			t.Fatalf("round %d with %d of %d left", tour.Round(), tour.Len(), tour.Total())
		}
		tour.Apply(tour.Len() - 1)
	}
}

func TestTournamentReset(t *testing.T) {
	tour := NewTournament(ModeElimination, segs("A", "B", "C"))
	tour.Apply(0)
	tour.Apply(0)
	if !tour.Finished() {
		t.Fatal("expected finished tournament")
	}

	tour.Reset()

	if tour.Finished() || tour.Round() != 1 || tour.Len() != 3 {
		t.Errorf("after reset: finished=%v round=%d len=%d", tour.Finished(), tour.Round(), tour.Len())
	}
	if len(tour.EliminationOrder()) != 0 || len(tour.Standings()) != 0 {
		t.Error("standings survived reset")
	}
	if _, ok := tour.Champion(); ok {
		t.Error("champion survived reset")
	}
	for i, s := range tour.Remaining() {
		if s.Text != []string{"A", "B", "C"}[i] {
			t.Errorf("segment %d = %q after reset", i, s.Text)
		}
	}
}

func TestTournamentNormalModeKeepsSegments(t *testing.T) {
	tour := NewTournament(ModeNormal, segs("x", "y", "z"))

	for i := 0; i < 5; i++ {
		out := tour.Apply(i % 3)
		if out.Record != nil || out.Finished {
			t.Fatalf("normal mode produced elimination: %+v", out)
		}
	}

	if tour.Len() != 3 || tour.Round() != 1 || tour.Finished() {
		t.Errorf("normal mode changed state: len=%d round=%d finished=%v", tour.Len(), tour.Round(), tour.Finished())
	}
}

func TestTournamentRemainingIsCopy(t *testing.T) {
	tour := NewTournament(ModeElimination, segs("A", "B"))
	r := tour.Remaining()
	r[0].Text = "changed"
	if tour.Remaining()[0].Text != "A" {
		t.Error("Remaining exposed internal slice")
	}
}
