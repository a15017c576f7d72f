package environment

import "fmt"

// Action is one of the nine king's moves available in a grid environment.
// The integer value of an Action is its index: it is used both to address
// action values and to break ties between equally valued actions, so the
// order of the constants below is fixed.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
	RightUp
	RightDown
	LeftUp
	LeftDown
	NoChange
)

// NumActions is the number of actions in the action space
const NumActions int = 9

var (
	rowDeltas = [NumActions]int{-1, 1, 0, 0, -1, 1, -1, 1, 0}
	colDeltas = [NumActions]int{0, 0, -1, 1, 1, 1, -1, -1, 0}
	labels    = [NumActions]string{"U", "D", "L", "R", "RU", "RD", "LU", "LD",
		"-"}
	names = [NumActions]string{"UP", "DOWN", "LEFT", "RIGHT", "RIGHT_UP",
		"RIGHT_DOWN", "LEFT_UP", "LEFT_DOWN", "NO_CHANGE"}
)

// Actions returns every action, ordered by index
func Actions() []Action {
	actions := make([]Action, NumActions)
	for i := range actions {
		actions[i] = Action(i)
	}
	return actions
}

// Valid returns whether a is one of the NumActions actions
func (a Action) Valid() bool {
	return a >= 0 && int(a) < NumActions
}

// Delta returns the row and column offsets of the action. Rows grow
// downwards, so Up has a row offset of -1.
func (a Action) Delta() (dRow, dCol int) {
	a.mustBeValid()
	return rowDeltas[a], colDeltas[a]
}

// Label returns the short label used when drawing policies
func (a Action) Label() string {
	a.mustBeValid()
	return labels[a]
}

func (a Action) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return names[a]
}

func (a Action) mustBeValid() {
	if !a.Valid() {
		panic(fmt.Sprintf("action: index %d out of range [0, %d)", int(a),
			NumActions))
	}
}
