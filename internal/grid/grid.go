package grid

import (
	"fmt"
	"strings"
)

// Empty marks an unassigned cell.
const Empty = 0

// Grid represents the state of a puzzle of arbitrary square-of-a-square
// side length: assigned cell values plus the candidate set of every
// unassigned cell.
//
// An assigned cell's candidate set is kept as the singleton of its value,
// so candidate queries are meaningful for every cell.
type Grid struct {
	geo *Geometry

	cells []int
	cand  []ValueSet

	// emptyCount tracks unassigned cells for quick completion checks.
	// Once initialized it is only touched inside Assign.
	emptyCount int
}

// New creates a Grid from a square matrix of values, where 0 marks an
// unassigned cell. It validates the dimension (square of an integer ≥ 2),
// the value range (0..side), and that no two assigned cells in a group
// share a value; then it reduces every candidate set by the assigned
// values of its peers.
//
// A grid whose seed leaves some cell with no candidates is still
// constructed — that is an unsolvable grid, not an invalid one.
func New(values [][]int) (*Grid, error) {
	side := len(values)
	geo, err := NewGeometry(side)
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		if len(row) != side {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrDimension, r, len(row), side)
		}
		for c, v := range row {
			if v < 0 || v > side {
				return nil, fmt.Errorf("%w: %d at row %d col %d (must be 0..%d)", ErrValue, v, r, c, side)
			}
		}
	}

	g := &Grid{
		geo:        geo,
		cells:      make([]int, geo.CellCount),
		cand:       make([]ValueSet, geo.CellCount),
		emptyCount: geo.CellCount,
	}
	for r, row := range values {
		for c, v := range row {
			if v != Empty {
				g.cells[geo.Pos(r, c)] = v
				g.emptyCount--
			}
		}
	}

	// Seed conflicts are reported before candidate reduction so that a
	// duplicated given surfaces as Invalid rather than as a dead search.
	if pos, other, ok := g.findSeedConflict(); ok {
		r1, c1 := geo.RowCol(pos)
		r2, c2 := geo.RowCol(other)
		return nil, fmt.Errorf("%w: value %d at (%d,%d) and (%d,%d) share a group",
			ErrSeedConflict, g.cells[pos], r1, c1, r2, c2)
	}

	for pos := range g.cand {
		if v := g.cells[pos]; v != Empty {
			s := NewValueSet(side)
			s.Add(v)
			g.cand[pos] = s
			continue
		}
		s := FullValueSet(side)
		for _, peer := range geo.Peers(pos) {
			if pv := g.cells[peer]; pv != Empty {
				s.Remove(pv)
			}
		}
		g.cand[pos] = s
	}
	return g, nil
}

// findSeedConflict scans every group for two assigned cells with the same
// value, returning the clashing positions.
func (g *Grid) findSeedConflict() (pos, other int, ok bool) {
	n := g.geo.Side
	last := make([]int, n+1)
	for gi := 0; gi < g.geo.GroupCount(); gi++ {
		for i := range last {
			last[i] = -1
		}
		for _, p := range g.geo.GroupCells(gi) {
			v := g.cells[p]
			if v == Empty {
				continue
			}
			if last[v] >= 0 {
				return p, last[v], true
			}
			last[v] = p
		}
	}
	return 0, 0, false
}

// Geometry returns the grid's constraint structure.
func (g *Grid) Geometry() *Geometry {
	return g.geo
}

// Value returns the assigned value at pos, or Empty.
func (g *Grid) Value(pos int) int {
	return g.cells[pos]
}

// Assigned reports whether the cell at pos holds a value.
func (g *Grid) Assigned(pos int) bool {
	return g.cells[pos] != Empty
}

// Assign places val at pos and removes val from the candidate sets of all
// peers of pos.
//
// If val is not currently a candidate of pos, nothing is mutated and
// ErrConflict is returned. If the assignment empties some peer's candidate
// set, the assignment is kept — that state is a dead search branch, not
// corruption — and ErrConflict is returned; IsConsistent reports it too.
func (g *Grid) Assign(pos, val int) error {
	if pos < 0 || pos >= g.geo.CellCount {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrPosition, pos, g.geo.CellCount)
	}
	if val < 1 || val > g.geo.Side {
		return fmt.Errorf("%w: %d (must be 1..%d)", ErrValue, val, g.geo.Side)
	}
	if !g.cand[pos].Has(val) {
		return fmt.Errorf("%w: %d is not a candidate of cell %d", ErrConflict, val, pos)
	}

	if g.cells[pos] == Empty {
		g.emptyCount--
	}
	g.cells[pos] = val
	s := g.cand[pos]
	for v := s.Next(0); v != 0; v = s.Next(v) {
		if v != val {
			s.Remove(v)
		}
	}

	emptied := -1
	for _, peer := range g.geo.Peers(pos) {
		if g.cells[peer] != Empty {
			continue
		}
		if g.cand[peer].Remove(val) && g.cand[peer].IsEmpty() {
			emptied = peer
		}
	}
	if emptied >= 0 {
		return fmt.Errorf("%w: assigning %d to cell %d leaves cell %d without candidates",
			ErrConflict, val, pos, emptied)
	}
	return nil
}

// Eliminate removes val from the candidate set of an unassigned cell.
// It reports whether the set changed. Eliminating the last candidate is
// allowed; the resulting empty set marks a dead branch via IsConsistent.
func (g *Grid) Eliminate(pos, val int) bool {
	if g.cells[pos] != Empty {
		return false
	}
	return g.cand[pos].Remove(val)
}

// Candidates returns a copy of the candidate set at pos.
func (g *Grid) Candidates(pos int) ValueSet {
	return g.cand[pos].Clone()
}

// HasCandidate reports whether val is a candidate of pos.
func (g *Grid) HasCandidate(pos, val int) bool {
	return g.cand[pos].Has(val)
}

// CandidateCount returns the size of the candidate set at pos.
func (g *Grid) CandidateCount(pos int) int {
	return g.cand[pos].Count()
}

// NextCandidate returns the smallest candidate of pos strictly greater
// than after, or 0 when exhausted. NextCandidate(pos, 0) starts a scan.
func (g *Grid) NextCandidate(pos, after int) int {
	return g.cand[pos].Next(after)
}

// SoleCandidate returns the single remaining candidate of an unassigned
// cell, or (0, false) if the cell is assigned or has zero or several
// candidates left.
func (g *Grid) SoleCandidate(pos int) (int, bool) {
	if g.cells[pos] != Empty {
		return 0, false
	}
	return g.cand[pos].Sole()
}

// EmptyCount returns the number of unassigned cells.
func (g *Grid) EmptyCount() int {
	return g.emptyCount
}

// IsComplete reports whether every cell is assigned.
func (g *Grid) IsComplete() bool {
	return g.emptyCount == 0
}

// Conflicting reports whether some group holds the same assigned value in
// two cells. Unlike IsConsistent it ignores emptied candidate sets, which
// mark dead search branches rather than invalid input.
func (g *Grid) Conflicting() bool {
	_, _, ok := g.findSeedConflict()
	return ok
}

// IsConsistent reports whether no group holds a duplicated assigned value
// and no unassigned cell has an empty candidate set.
func (g *Grid) IsConsistent() bool {
	if _, _, conflict := g.findSeedConflict(); conflict {
		return false
	}
	for pos := range g.cells {
		if g.cells[pos] == Empty && g.cand[pos].IsEmpty() {
			return false
		}
	}
	return true
}

// Clone creates an independent copy of the Grid.
// The Geometry pointer is shared — Geometry is immutable after construction.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		geo:        g.geo,
		cells:      make([]int, len(g.cells)),
		cand:       make([]ValueSet, len(g.cand)),
		emptyCount: g.emptyCount,
	}
	copy(c.cells, g.cells)
	for i, s := range g.cand {
		c.cand[i] = s.Clone()
	}
	return c
}

// Values returns the grid as a square matrix, 0 for unassigned cells.
func (g *Grid) Values() [][]int {
	n := g.geo.Side
	out := make([][]int, n)
	for r := range out {
		out[r] = make([]int, n)
		for c := range out[r] {
			out[r][c] = g.cells[g.geo.Pos(r, c)]
		}
	}
	return out
}

// String returns a compact single-line representation: cell values in row
// order separated by spaces, '.' for unassigned cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for pos, v := range g.cells {
		if pos > 0 {
			sb.WriteByte(' ')
		}
		if v == Empty {
			sb.WriteByte('.')
		} else {
			fmt.Fprintf(&sb, "%d", v)
		}
	}
	return sb.String()
}
