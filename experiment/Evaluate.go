package experiment

import (
	"github.com/samuelfneumann/windygrid/agent/tabular"
	env "github.com/samuelfneumann/windygrid/environment"
)

// Evaluate follows the greedy policy with respect to values from the
// start state of e without learning, taking at most maxSteps steps. It
// returns the states visited, starting with the start state, and whether
// the goal was reached.
//
// Ties between equally valued actions are broken in favour of the lowest
// action index, so Evaluate is deterministic.
func Evaluate(e env.Environment, values *tabular.ActionValues,
	maxSteps int) ([]env.State, bool) {
	state := e.Start()
	path := []env.State{state}

	for steps := 0; steps < maxSteps && !e.AtGoal(state); steps++ {
		state = e.Next(state, values.Greedy(state))
		path = append(path, state)
	}

	return path, e.AtGoal(state)
}
