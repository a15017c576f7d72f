// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/windygrid/agent/tabular"
	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// action values the Policy reads.
type Agent interface {
	Learner
	Policy
}

// StepObserver is called with every TimeStep a Learner generates
type StepObserver func(timestep.TimeStep)

// Learner implements a learning algorithm that defines how action values
// are updated.
type Learner interface {
	// RunEpisode runs a single episode from the start state to the goal,
	// updating action values along the way, and returns the number of
	// steps taken
	RunEpisode() int

	// TDError returns the TD error of a transition, scaled by the
	// learning rate
	TDError(s env.State, a env.Action, next env.State,
		nextAction env.Action) float64

	// ActionValues returns the action values being learned
	ActionValues() *tabular.ActionValues

	// Register adds an observer of the TimeSteps generated by the Learner
	Register(StepObserver)
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. For a given agent, the
// Policy and Learner should point to the same action values so that any
// changes the learner makes are reflected in the actions the Policy
// chooses
type Policy interface {
	SelectAction(s env.State) env.Action
}
