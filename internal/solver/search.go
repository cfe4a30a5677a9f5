package solver

import (
	"context"

	"github.com/clbarnes/solve-sudoku/internal/grid"
)

// engine carries the state of one backtracking run.
type engine struct {
	opts  Options
	stats Stats

	// want is how many solutions to find before stopping: 1 for plain
	// solving, 2 when checking uniqueness.
	want  int
	found []*grid.Grid

	cancelled bool
}

// search explores the branch rooted at g, which must already be propagated
// to a fixed point. It reports whether the whole run should stop: enough
// solutions found, or cancelled.
//
// Every recursion assigns at least one cell, so depth never exceeds the
// number of initially unassigned cells.
func (e *engine) search(ctx context.Context, g *grid.Grid, depth int) bool {
	e.stats.Nodes++
	if depth > e.stats.Deepest {
		e.stats.Deepest = depth
	}
	if ctx.Err() != nil || (e.opts.Continue != nil && !e.opts.Continue()) {
		e.cancelled = true
		return true
	}
	if e.opts.Progress != nil {
		total := g.Geometry().CellCount
		e.opts.Progress(float64(total-g.EmptyCount()) / float64(total))
	}

	if g.IsComplete() {
		e.found = append(e.found, g)
		return len(e.found) >= e.want
	}

	pos := mrvCell(g)
	for v := g.NextCandidate(pos, 0); v != 0; v = g.NextCandidate(pos, v) {
		branch := g.Clone()
		if branch.Assign(pos, v) != nil {
			continue
		}
		if Propagate(branch) == Contradiction {
			continue
		}
		if e.search(ctx, branch, depth+1) {
			return true
		}
	}
	return false
}

// mrvCell returns the unassigned cell with the fewest remaining candidates,
// ties broken by lowest position so the search is deterministic.
func mrvCell(g *grid.Grid) int {
	geo := g.Geometry()
	best, bestCount := -1, geo.Side+1
	for pos := 0; pos < geo.CellCount; pos++ {
		if g.Assigned(pos) {
			continue
		}
		c := g.CandidateCount(pos)
		if c < bestCount {
			best, bestCount = pos, c
			// At a propagation fixed point no unassigned cell has fewer
			// than two candidates.
			if c <= 2 {
				break
			}
		}
	}
	return best
}
