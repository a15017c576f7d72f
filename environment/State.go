package environment

import "fmt"

// State is a cell of a grid environment. States are values: they are
// created fresh on each transition and never mutated.
type State struct {
	Row int
	Col int
}

// NewState returns the state at (row, col)
func NewState(row, col int) State {
	return State{Row: row, Col: col}
}

// Equal returns whether two states refer to the same cell
func (s State) Equal(other State) bool {
	return s.Row == other.Row && s.Col == other.Col
}

// In returns whether the state lies within a grid with the given number
// of rows and columns
func (s State) In(rows, cols int) bool {
	return s.Row >= 0 && s.Row < rows && s.Col >= 0 && s.Col < cols
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}
