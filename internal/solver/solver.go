// Package solver implements constraint propagation and backtracking search
// over generalized sudoku grids of arbitrary square-of-a-square side length.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clbarnes/solve-sudoku/internal/grid"
)

var (
	ErrNoSolution        = errors.New("puzzle has no solution")
	ErrMultipleSolutions = errors.New("puzzle has multiple solutions")
	ErrInvalidPuzzle     = errors.New("puzzle violates constraints")
	ErrCancelled         = errors.New("solve cancelled")
)

// Status classifies the outcome of a solve.
type Status int

const (
	StatusSolved Status = iota
	StatusUnsolvable
	StatusAmbiguous
	StatusInvalid
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusAmbiguous:
		return "ambiguous"
	case StatusInvalid:
		return "invalid"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Stats captures the work done by a solve.
type Stats struct {
	Nodes    int
	Deepest  int
	Duration time.Duration
}

// Result is the verdict of a solve. Grid is non-nil for StatusSolved and
// StatusAmbiguous (the first solution found); Err carries the reason for
// failure statuses and is nil for StatusSolved.
type Result struct {
	Status Status
	Grid   *grid.Grid
	Stats  Stats
	Err    error
}

// Options configures solving behavior.
type Options struct {
	// CheckUnique keeps searching after the first solution and reports
	// StatusAmbiguous if a second one exists. Off by default since it can
	// double the worst-case cost.
	CheckUnique bool

	// Continue, when non-nil, is consulted before exploring each branch;
	// returning false stops the search with StatusCancelled. It is the only
	// external coordination point besides the context.
	Continue func() bool

	// Progress, when non-nil, receives the assigned-cell fraction at every
	// search node.
	Progress func(done float64)
}

// Solver solves grids. The zero value solves with default options.
type Solver struct {
	opts Options
}

// New creates a solver with the given options. A nil options uses defaults.
func New(opts *Options) *Solver {
	s := &Solver{}
	if opts != nil {
		s.opts = *opts
	}
	return s
}

// SolveValues builds a grid from a square matrix (0 = unknown) and solves
// it. Dimension, value-range and given-conflict problems are reported as
// StatusInvalid rather than an error, so callers handle one verdict type.
func (s *Solver) SolveValues(ctx context.Context, values [][]int) Result {
	g, err := grid.New(values)
	if err != nil {
		return Result{Status: StatusInvalid, Err: fmt.Errorf("%w: %w", ErrInvalidPuzzle, err)}
	}
	return s.Solve(ctx, g)
}

// Solve runs propagation and, if ambiguity remains, backtracking search.
// The input grid is never mutated; solutions are independent copies.
func (s *Solver) Solve(ctx context.Context, g *grid.Grid) Result {
	start := time.Now()
	work := g.Clone()

	if work.Conflicting() {
		return Result{
			Status: StatusInvalid,
			Err:    fmt.Errorf("%w: duplicate given value in a group", ErrInvalidPuzzle),
			Stats:  Stats{Duration: time.Since(start)},
		}
	}

	if Propagate(work) == Contradiction {
		return Result{
			Status: StatusUnsolvable,
			Err:    ErrNoSolution,
			Stats:  Stats{Duration: time.Since(start)},
		}
	}
	if work.IsComplete() {
		// Propagation never discards a valid completion, so a grid it
		// completes has exactly this one solution.
		return Result{
			Status: StatusSolved,
			Grid:   work,
			Stats:  Stats{Duration: time.Since(start)},
		}
	}

	e := &engine{opts: s.opts, want: 1}
	if s.opts.CheckUnique {
		e.want = 2
	}
	e.search(ctx, work, 0)

	st := e.stats
	st.Duration = time.Since(start)

	switch {
	case e.cancelled:
		return Result{Status: StatusCancelled, Err: ErrCancelled, Stats: st}
	case len(e.found) == 0:
		return Result{Status: StatusUnsolvable, Err: ErrNoSolution, Stats: st}
	case len(e.found) > 1:
		return Result{Status: StatusAmbiguous, Grid: e.found[0], Err: ErrMultipleSolutions, Stats: st}
	default:
		return Result{Status: StatusSolved, Grid: e.found[0], Stats: st}
	}
}
