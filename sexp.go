package sexp

import "fmt"

// --- Positions -------------------------------------------------------------

// Position is a location in the input text, measured in characters.
// Both line and column are 1-based. A reader starts at Position{1, 1} and
// advances it for every character it consumes.
type Position struct {
	Line int
	Col  int
}

// StartPosition returns the position of the first character of an input.
func StartPosition() Position {
	return Position{Line: 1, Col: 1}
}

// Advance returns the position behind character r.
// A newline starts a new line, every other character moves one column to the right.
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		p.Line++
		p.Col = 1
		return p
	}
	p.Col++
	return p
}

// IsNull is true for the zero value, which is not a valid position.
func (p Position) IsNull() bool {
	return p == Position{}
}

func (p Position) String() string {
	return fmt.Sprintf("line %d column %d", p.Line, p.Col)
}
