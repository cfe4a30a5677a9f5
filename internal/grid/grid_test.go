package grid

import (
	"errors"
	"testing"
)

// scenario4 is a 4x4 puzzle with a unique solution.
var scenario4 = [][]int{
	{1, 0, 0, 4},
	{0, 0, 1, 0},
	{0, 1, 0, 0},
	{4, 0, 0, 1},
}

func mustNew(t *testing.T, values [][]int) *Grid {
	t.Helper()
	g, err := New(values)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([][]int{{1, 2, 3, 4}, {0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	if !errors.Is(err, ErrDimension) {
		t.Fatalf("err = %v, want ErrDimension", err)
	}
}

func TestNewRejectsBadSide(t *testing.T) {
	values := [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	if _, err := New(values); !errors.Is(err, ErrDimension) {
		t.Fatalf("err = %v, want ErrDimension", err)
	}
}

func TestNewRejectsOutOfRangeValue(t *testing.T) {
	values := [][]int{
		{5, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if _, err := New(values); !errors.Is(err, ErrValue) {
		t.Fatalf("err = %v, want ErrValue", err)
	}
}

func TestNewRejectsSeedConflict(t *testing.T) {
	values := make([][]int, 9)
	for i := range values {
		values[i] = make([]int, 9)
	}
	values[2][1] = 5
	values[2][7] = 5 // same row
	if _, err := New(values); !errors.Is(err, ErrSeedConflict) {
		t.Fatalf("err = %v, want ErrSeedConflict", err)
	}
}

func TestNewReducesCandidates(t *testing.T) {
	g := mustNew(t, scenario4)
	geo := g.Geometry()

	// (0,1) shares a row with 1 and 4, a column with 1, a box with 1.
	c := g.Candidates(geo.Pos(0, 1))
	if c.Has(1) || c.Has(4) {
		t.Fatalf("candidates of (0,1) not reduced: %v", c.Values())
	}
	if !c.Has(2) || !c.Has(3) {
		t.Fatalf("candidates of (0,1) over-reduced: %v", c.Values())
	}

	// Given cells carry their value as a singleton set.
	if v, ok := g.SoleCandidate(geo.Pos(0, 0)); ok || v != 0 {
		t.Fatal("SoleCandidate must not report assigned cells")
	}
	if !g.HasCandidate(geo.Pos(0, 0), 1) || g.CandidateCount(geo.Pos(0, 0)) != 1 {
		t.Fatal("assigned cell should hold a singleton candidate set")
	}
}

func TestAssignRejectsNonCandidate(t *testing.T) {
	g := mustNew(t, scenario4)
	pos := g.Geometry().Pos(0, 1) // candidates {2,3}
	before := g.Candidates(pos)

	if err := g.Assign(pos, 4); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if g.Assigned(pos) || !g.Candidates(pos).Equal(before) {
		t.Fatal("rejected assignment must not mutate the grid")
	}
}

func TestAssignEliminatesFromPeers(t *testing.T) {
	g := mustNew(t, scenario4)
	geo := g.Geometry()
	pos := geo.Pos(0, 1)

	if err := g.Assign(pos, 2); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if g.Value(pos) != 2 {
		t.Fatalf("Value = %d, want 2", g.Value(pos))
	}
	for _, peer := range geo.Peers(pos) {
		if !g.Assigned(peer) && g.HasCandidate(peer, 2) {
			t.Fatalf("peer %d still has candidate 2", peer)
		}
	}
}

func TestAssignKeepsStateOnEmptiedPeer(t *testing.T) {
	// 1 2 . . — after assigning 3 at (0,2), cell (0,3) keeps only 4;
	// assigning 4 at (1,3) then leaves (0,3) with nothing.
	values := [][]int{
		{1, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := mustNew(t, values)
	geo := g.Geometry()

	if err := g.Assign(geo.Pos(0, 2), 3); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	err := g.Assign(geo.Pos(1, 3), 4)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	// The assignment stays applied; the dead branch shows up as inconsistency.
	if g.Value(geo.Pos(1, 3)) != 4 {
		t.Fatal("conflicting assignment should remain applied")
	}
	if g.IsConsistent() {
		t.Fatal("grid with an emptied candidate set must be inconsistent")
	}
	if g.Conflicting() {
		t.Fatal("an emptied candidate set is not a duplicate-value conflict")
	}
}

func TestEliminate(t *testing.T) {
	g := mustNew(t, scenario4)
	pos := g.Geometry().Pos(0, 1)

	if !g.Eliminate(pos, 2) {
		t.Fatal("Eliminate should report change")
	}
	if g.Eliminate(pos, 2) {
		t.Fatal("Eliminate twice should report no change")
	}
	if g.Eliminate(g.Geometry().Pos(0, 0), 1) {
		t.Fatal("Eliminate must ignore assigned cells")
	}
}

func TestCloneIsolation(t *testing.T) {
	g := mustNew(t, scenario4)
	geo := g.Geometry()
	c := g.Clone()

	if err := c.Assign(geo.Pos(0, 1), 2); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if g.Assigned(geo.Pos(0, 1)) {
		t.Fatal("assignment on the clone leaked into the original")
	}
	if g.EmptyCount() == c.EmptyCount() {
		t.Fatal("clone's empty count should diverge after assignment")
	}
	// Candidate storage must not be shared either.
	c.Eliminate(geo.Pos(1, 0), 2)
	if !g.HasCandidate(geo.Pos(1, 0), 2) {
		t.Fatal("candidate elimination on the clone leaked into the original")
	}
}

func TestCompletionAndConsistency(t *testing.T) {
	solved := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	g := mustNew(t, solved)
	if !g.IsComplete() || !g.IsConsistent() {
		t.Fatal("a full valid grid must be complete and consistent")
	}
	if g.EmptyCount() != 0 {
		t.Fatalf("EmptyCount = %d, want 0", g.EmptyCount())
	}

	p := mustNew(t, scenario4)
	if p.IsComplete() {
		t.Fatal("a partial grid must not be complete")
	}
	if !p.IsConsistent() {
		t.Fatal("a viable partial grid must be consistent")
	}
}

func TestValuesRoundTrip(t *testing.T) {
	g := mustNew(t, scenario4)
	got := g.Values()
	for r := range scenario4 {
		for c := range scenario4[r] {
			if got[r][c] != scenario4[r][c] {
				t.Fatalf("Values()[%d][%d] = %d, want %d", r, c, got[r][c], scenario4[r][c])
			}
		}
	}
}
