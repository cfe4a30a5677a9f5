// Package render formats grids for output, either round-tripping the input
// delimiter style or producing a human-readable bordered layout.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clbarnes/solve-sudoku/internal/parse"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	givenStyle  = lipgloss.NewStyle().Bold(true)
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

// Plain renders values in the delimiter style the puzzle was read in,
// one row per line, 0 for unknown cells.
func Plain(values [][]int, f parse.Format) string {
	var sb strings.Builder
	sep := f.Delimiter.String()
	for r, row := range values {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// Pretty renders a bordered grid with '|' between boxes and a rule of '-'
// between box rows, values space-padded to a uniform width, blanks for
// unknown cells. The given mask, when non-nil, marks cells to render in
// bold (the original givens, as opposed to solved-in values).
func Pretty(values [][]int, order int, given [][]bool) string {
	side := order * order
	width := len(strconv.Itoa(side))

	var sb strings.Builder
	lineWidth := side*(width+2) + order - 1
	rule := borderStyle.Render(strings.Repeat("-", lineWidth))

	for r, row := range values {
		if r > 0 {
			sb.WriteByte('\n')
			if r%order == 0 {
				sb.WriteString(rule)
				sb.WriteByte('\n')
			}
		}
		for c, v := range row {
			if c > 0 && c%order == 0 {
				sb.WriteString(borderStyle.Render("|"))
			}
			cell := strings.Repeat(" ", width)
			if v != 0 {
				cell = fmt.Sprintf("%*d", width, v)
				if given != nil && given[r][c] {
					cell = givenStyle.Render(cell)
				} else {
					cell = solvedStyle.Render(cell)
				}
			}
			sb.WriteByte(' ')
			sb.WriteString(cell)
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// GivenMask derives the given-cell mask from an initial grid: true where
// the puzzle supplied a value.
func GivenMask(values [][]int) [][]bool {
	mask := make([][]bool, len(values))
	for r, row := range values {
		mask[r] = make([]bool, len(row))
		for c, v := range row {
			mask[r][c] = v != 0
		}
	}
	return mask
}
