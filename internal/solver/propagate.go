package solver

import "github.com/clbarnes/solve-sudoku/internal/grid"

// Outcome reports the effect of running propagation to a fixed point.
type Outcome int

const (
	// NoChange means the grid was already at a fixed point.
	NoChange Outcome = iota
	// Progressed means at least one candidate was eliminated or a cell
	// assigned, and the grid is still consistent.
	Progressed
	// Contradiction means some cell was left without candidates or a group
	// cannot hold one of its values; the branch is dead.
	Contradiction
)

func (o Outcome) String() string {
	switch o {
	case NoChange:
		return "no change"
	case Progressed:
		return "progressed"
	case Contradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// A rule applies a single deduction pass over the whole grid.
// It reports whether it changed the grid and whether the grid is still
// viable afterwards.
type rule func(g *grid.Grid) (changed, ok bool)

// defaultRules is the minimum rule set: naked singles and hidden singles.
// Peer elimination happens inside grid.Assign, so every assignment made by
// a rule cascades immediately.
var defaultRules = []rule{nakedSingles, hiddenSingles}

// Propagate eliminates impossible candidates until no rule changes the
// grid, or a contradiction is found. The fixed point does not depend on
// rule order, only the work to reach it does.
func Propagate(g *grid.Grid) Outcome {
	return runRules(g, defaultRules)
}

func runRules(g *grid.Grid, rules []rule) Outcome {
	progressed := false
	for {
		changed := false
		for _, r := range rules {
			ch, ok := r(g)
			if ch {
				changed = true
				progressed = true
			}
			if !ok {
				return Contradiction
			}
		}
		if !changed {
			break
		}
	}
	if progressed {
		return Progressed
	}
	return NoChange
}

// nakedSingles assigns every unassigned cell whose candidate set has
// collapsed to a single value. A cell with zero candidates is a
// contradiction.
func nakedSingles(g *grid.Grid) (changed, ok bool) {
	geo := g.Geometry()
	for pos := 0; pos < geo.CellCount; pos++ {
		if g.Assigned(pos) {
			continue
		}
		switch g.CandidateCount(pos) {
		case 0:
			return changed, false
		case 1:
			v, _ := g.SoleCandidate(pos)
			if err := g.Assign(pos, v); err != nil {
				return true, false
			}
			changed = true
		}
	}
	return changed, true
}

// hiddenSingles assigns, within each group, any value that has exactly one
// candidate cell left. A value with no candidate cell and no assignment in
// the group is a contradiction.
func hiddenSingles(g *grid.Grid) (changed, ok bool) {
	geo := g.Geometry()
	n := geo.Side
	count := make([]int, n+1)
	home := make([]int, n+1)
	placed := make([]bool, n+1)

	for gi := 0; gi < geo.GroupCount(); gi++ {
		for v := 1; v <= n; v++ {
			count[v], home[v], placed[v] = 0, -1, false
		}
		for _, pos := range geo.GroupCells(gi) {
			if v := g.Value(pos); v != grid.Empty {
				placed[v] = true
				continue
			}
			for v := g.NextCandidate(pos, 0); v != 0; v = g.NextCandidate(pos, v) {
				count[v]++
				home[v] = pos
			}
		}
		for v := 1; v <= n; v++ {
			if placed[v] {
				continue
			}
			switch count[v] {
			case 0:
				// No cell in the group can hold v anymore.
				return changed, false
			case 1:
				pos := home[v]
				// An earlier assignment in this pass may have settled the
				// cell or stripped the candidate; the next sweep recounts.
				if g.Assigned(pos) || !g.HasCandidate(pos, v) {
					continue
				}
				if err := g.Assign(pos, v); err != nil {
					return true, false
				}
				changed = true
			}
		}
	}
	return changed, true
}
