// Package environment outlines the interfaces and types needed to implement
// concrete tabular environments
package environment

// Starter implements a distribution of starting states and samples starting
// states for environments. All environments in this module have a single,
// fixed starting state.
type Starter interface {
	Start() State
}

// Task implements the reward scheme for taking actions in some environment
// as well as the condition under which an episode ends
type Task interface {
	GetReward(s State, a Action, next State) float64
	AtGoal(s State) bool
	Goal() State
}

// Environment implements a simulated environment, which includes a Task to
// complete.
//
// Next is a pure transition function: it does not track an agent position,
// so the same Environment can be queried for any (state, action) pair.
// Learners keep track of where they are themselves.
type Environment interface {
	Task
	Starter
	Next(s State, a Action) State
	Discount() float64
	Dims() (rows, cols int)
}
