package grid

import (
	"fmt"
	"sync"
)

// Group family indices into Geometry.groupsOf.
const (
	RowGroup = 0
	ColGroup = 1
	BoxGroup = 2
)

// Geometry describes the constraint structure of a board with side length
// Side = Order². It precomputes the 3·Side groups (rows, columns, boxes),
// the three groups each cell belongs to, and each cell's distinct peers.
//
// Geometry is immutable after construction — it is safe to share the same
// pointer across Grid clones.
type Geometry struct {
	// Order is the box side length b; Side = b², CellCount = Side².
	Order     int
	Side      int
	CellCount int

	// groups holds the 3·Side constraint groups: rows first, then columns,
	// then boxes. Each group lists its Side cell positions in ascending order.
	groups [][]int

	// groupsOf maps a cell position to its row, column and box group indices.
	groupsOf [][3]int

	// peers maps a cell position to every other cell sharing at least one
	// group with it, deduplicated.
	peers [][]int
}

var (
	geometriesMu sync.Mutex
	geometries   = map[int]*Geometry{}
)

// NewGeometry returns the Geometry for the given side length.
// The side must be a perfect square of an integer ≥ 2.
// Geometries are memoized per side length since they never change.
func NewGeometry(side int) (*Geometry, error) {
	order, ok := intSqrt(side)
	if !ok || order < 2 {
		return nil, fmt.Errorf("%w: side %d is not the square of an integer >= 2", ErrDimension, side)
	}

	geometriesMu.Lock()
	defer geometriesMu.Unlock()
	if g, ok := geometries[side]; ok {
		return g, nil
	}

	g := &Geometry{
		Order:     order,
		Side:      side,
		CellCount: side * side,
	}
	g.buildGroups()
	g.buildPeers()
	geometries[side] = g
	return g, nil
}

// MustGeometry is NewGeometry for side lengths known to be valid.
func MustGeometry(side int) *Geometry {
	g, err := NewGeometry(side)
	if err != nil {
		panic(err)
	}
	return g
}

// buildGroups fills groups and groupsOf for rows, columns and boxes.
func (g *Geometry) buildGroups() {
	n, b := g.Side, g.Order
	g.groups = make([][]int, 3*n)
	g.groupsOf = make([][3]int, g.CellCount)

	for i := range g.groups {
		g.groups[i] = make([]int, n)
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pos := row*n + col
			box := (row/b)*b + col/b
			g.groups[row][col] = pos
			g.groups[n+col][row] = pos
			boxSlot := (row%b)*b + col%b
			g.groups[2*n+box][boxSlot] = pos
			g.groupsOf[pos] = [3]int{row, n + col, 2*n + box}
		}
	}
}

// buildPeers derives the deduplicated peer list of every cell from its
// three groups.
func (g *Geometry) buildPeers() {
	g.peers = make([][]int, g.CellCount)
	seen := make([]int, g.CellCount)
	for i := range seen {
		seen[i] = -1
	}
	for pos := 0; pos < g.CellCount; pos++ {
		peers := make([]int, 0, 3*(g.Side-1)-2*(g.Order-1))
		for _, gi := range g.groupsOf[pos] {
			for _, other := range g.groups[gi] {
				if other != pos && seen[other] != pos {
					seen[other] = pos
					peers = append(peers, other)
				}
			}
		}
		g.peers[pos] = peers
	}
}

// GroupCount returns the number of constraint groups (3·Side).
func (g *Geometry) GroupCount() int {
	return len(g.groups)
}

// GroupCells returns the cell positions of the given group.
// The returned slice must not be modified.
func (g *Geometry) GroupCells(group int) []int {
	return g.groups[group]
}

// GroupsOf returns the row, column and box group indices of a cell.
func (g *Geometry) GroupsOf(pos int) [3]int {
	return g.groupsOf[pos]
}

// Peers returns every cell sharing a group with pos, excluding pos itself.
// The returned slice must not be modified.
func (g *Geometry) Peers(pos int) []int {
	return g.peers[pos]
}

// Pos transforms a row and column into a linear position.
func (g *Geometry) Pos(row, col int) int {
	return row*g.Side + col
}

// RowCol transforms a linear position into a row and column.
func (g *Geometry) RowCol(pos int) (row, col int) {
	return pos / g.Side, pos % g.Side
}

// intSqrt returns the integer square root of n, and whether n is a
// perfect square.
func intSqrt(n int) (int, bool) {
	for i := 1; i*i <= n; i++ {
		if i*i == n {
			return i, true
		}
	}
	return 0, false
}
