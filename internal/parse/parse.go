// Package parse reads puzzle grids from text. It accepts tab-separated,
// comma-separated and one-rune-per-cell rows, with 0 or blank marking an
// unknown cell, and remembers the delimiter so output can be rendered in
// the same style.
package parse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformed reports input that cannot be read as a grid of numbers.
var ErrMalformed = errors.New("malformed puzzle input")

// Delimiter identifies the cell separator style of a puzzle file.
type Delimiter int

const (
	// Tab separates cells with a tab character.
	Tab Delimiter = iota
	// Comma separates cells with a comma.
	Comma
	// None packs one rune per cell with no separator.
	None
)

func (d Delimiter) String() string {
	switch d {
	case Tab:
		return "\t"
	case Comma:
		return ","
	default:
		return ""
	}
}

// Format records how a puzzle was written so a solution can be rendered
// back in the same style.
type Format struct {
	Delimiter Delimiter
}

// Parse reads a grid from text. The delimiter is sniffed the same way for
// every row: tab if the text contains one, else comma, else one rune per
// cell. Empty tokens and 0 mark unknown cells. Shape and value-range
// validation is left to the grid.
func Parse(text string) ([][]int, Format, error) {
	text = strings.TrimRight(strings.TrimLeft(text, "\n"), " \t\n")
	if text == "" {
		return nil, Format{}, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	var f Format
	switch {
	case strings.Contains(text, "\t"):
		f.Delimiter = Tab
	case strings.Contains(text, ","):
		f.Delimiter = Comma
	default:
		f.Delimiter = None
	}

	lines := strings.Split(text, "\n")
	values := make([][]int, 0, len(lines))
	for i, line := range lines {
		row, err := parseRow(line, f.Delimiter)
		if err != nil {
			return nil, f, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+1, err)
		}
		values = append(values, row)
	}
	return values, f, nil
}

func parseRow(line string, d Delimiter) ([]int, error) {
	var tokens []string
	switch d {
	case None:
		for _, r := range strings.TrimSpace(line) {
			tokens = append(tokens, string(r))
		}
	default:
		tokens = strings.Split(strings.TrimSpace(line), d.String())
	}

	row := make([]int, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || tok == "." {
			continue // unknown cell
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %q is not a number", i+1, tok)
		}
		row[i] = v
	}
	return row, nil
}

// ParseFile reads a grid from a file, or from r when path is "-".
func ParseFile(path string, stdin io.Reader) ([][]int, Format, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, Format{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Parse(string(data))
}
