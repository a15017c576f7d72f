// Package tabular implements action-value storage for tabular agents
package tabular

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/utils/matutils"
)

// ActionValues stores one value for every (state, action) pair of a grid
// environment.
//
// Values are stored densely in a matrix with one row per cell, in row-major
// order, and one column per action. Every entry exists from construction
// and starts at 0.0. Accessing a state outside of the grid or an invalid
// action panics.
type ActionValues struct {
	rows, cols int
	actions    int
	values     *mat.Dense
}

// NewActionValues returns a new zero-initialized ActionValues for a grid
// with rows rows and cols columns, and the given number of actions
func NewActionValues(rows, cols, actions int) *ActionValues {
	if rows <= 0 || cols <= 0 || actions <= 0 {
		panic(fmt.Sprintf("newActionValues: dimensions must be positive, "+
			"got (%d, %d, %d)", rows, cols, actions))
	}

	return &ActionValues{
		rows:    rows,
		cols:    cols,
		actions: actions,
		values:  mat.NewDense(rows*cols, actions, nil),
	}
}

// At returns the value of taking action a in state s
func (q *ActionValues) At(s env.State, a env.Action) float64 {
	return q.values.At(q.index(s), q.action(a))
}

// Set sets the value of taking action a in state s
func (q *ActionValues) Set(s env.State, a env.Action, value float64) {
	q.values.Set(q.index(s), q.action(a), value)
}

// Values returns the values of all actions in state s, ordered by action
// index. The returned slice is a copy.
func (q *ActionValues) Values(s env.State) []float64 {
	return mat.Row(nil, q.index(s), q.values)
}

// Greedy returns the action with the highest value in state s. If
// multiple actions share the highest value, the one with the lowest index
// is returned.
func (q *ActionValues) Greedy(s env.State) env.Action {
	return env.Action(matutils.MaxRow(q.values, q.index(s)))
}

// Dims returns the number of rows and columns of the grid as well as the
// number of actions
func (q *ActionValues) Dims() (rows, cols, actions int) {
	return q.rows, q.cols, q.actions
}

// Matrix returns the underlying values with one row per state. The
// returned matrix should not be modified.
func (q *ActionValues) Matrix() mat.Matrix {
	return q.values
}

// Reset sets every value back to 0.0
func (q *ActionValues) Reset() {
	q.values.Zero()
}

func (q *ActionValues) String() string {
	return matutils.Format(q.values)
}

// index returns the row of the value matrix storing the values of s
func (q *ActionValues) index(s env.State) int {
	if !s.In(q.rows, q.cols) {
		panic(fmt.Sprintf("actionValues: state %v outside of %dx%d grid", s,
			q.rows, q.cols))
	}
	return s.Row*q.cols + s.Col
}

func (q *ActionValues) action(a env.Action) int {
	if a < 0 || int(a) >= q.actions {
		panic(fmt.Sprintf("actionValues: action %d out of range [0, %d)",
			int(a), q.actions))
	}
	return int(a)
}
