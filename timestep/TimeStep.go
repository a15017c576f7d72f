// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	env "github.com/samuelfneumann/windygrid/environment"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	stepType    StepType
	Reward      float64
	Discount    float64
	Observation env.State
	Number      int
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o env.State, n int) TimeStep {
	return TimeStep{t, r, d, o, n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

// StepType returns the type of the TimeStep
func (t *TimeStep) StepType() StepType {
	return t.stepType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"State: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Discount, t.Observation,
		t.Number)
}

// Transition records a single Sarsa update: the (s, a, r, s', a') tuple
// together with the action value of (s, a) before and after the update
type Transition struct {
	State      env.State
	Action     env.Action
	Reward     float64
	NextState  env.State
	NextAction env.Action

	Value        float64 // value of (State, Action) before the update
	TDError      float64 // scaled by the learning rate
	UpdatedValue float64

	Number int // number of the step within its episode, starting at 1
}

func (t Transition) String() string {
	str := "step %d: %v %v -> %v (next %v) | Q %.4f + %.4f = %.4f"

	return fmt.Sprintf(str, t.Number, t.State, t.Action.Label(), t.NextState,
		t.NextAction.Label(), t.Value, t.TDError, t.UpdatedValue)
}
