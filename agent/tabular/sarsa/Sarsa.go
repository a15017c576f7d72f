// Package sarsa implements the tabular Sarsa algorithm
package sarsa

import (
	"fmt"
	"io"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/windygrid/agent"
	"github.com/samuelfneumann/windygrid/agent/tabular"
	"github.com/samuelfneumann/windygrid/agent/tabular/policy"
	env "github.com/samuelfneumann/windygrid/environment"
	ts "github.com/samuelfneumann/windygrid/timestep"
)

// Sarsa implements the online, one-step, on-policy Sarsa algorithm with
// an ε-greedy behaviour policy over tabular action values.
//
// The action values persist across episodes: every call to RunEpisode
// continues learning from where the last one stopped.
type Sarsa struct {
	agent.Policy // Behaviour

	env          env.Environment
	values       *tabular.ActionValues
	learningRate float64

	trace     io.Writer
	observers []agent.StepObserver
}

// New creates a new Sarsa agent for environment e. All randomness used
// by the agent's behaviour policy is drawn from src, so two agents
// created with equal sources take equal trajectories.
func New(e env.Environment, c Config, src rand.Source) (*Sarsa, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("sarsa: invalid config: %v", err)
	}

	r, cols := e.Dims()
	values := tabular.NewActionValues(r, cols, env.NumActions)

	behaviour, err := policy.NewEGreedy(c.Epsilon, values, src)
	if err != nil {
		return nil, fmt.Errorf("sarsa: invalid behaviour policy: %v", err)
	}

	return &Sarsa{
		Policy:       behaviour,
		env:          e,
		values:       values,
		learningRate: c.LearningRate,
	}, nil
}

// SetTrace sets the writer that receives one line per update. A nil
// writer disables tracing.
func (s *Sarsa) SetTrace(w io.Writer) {
	s.trace = w
}

// Register adds an observer which is called with every TimeStep of every
// episode, including the first
func (s *Sarsa) Register(o agent.StepObserver) {
	s.observers = append(s.observers, o)
}

// ActionValues returns the action values learned by the agent
func (s *Sarsa) ActionValues() *tabular.ActionValues {
	return s.values
}

// TDError returns the TD error of the transition (state, action) ->
// (next, nextAction), scaled by the learning rate:
//
//	α (r + γ Q(next, nextAction) - Q(state, action))
func (s *Sarsa) TDError(state env.State, action env.Action, next env.State,
	nextAction env.Action) float64 {
	reward := s.env.GetReward(state, action, next)
	discount := s.env.Discount()

	target := reward + discount*s.values.At(next, nextAction)
	return s.learningRate * (target - s.values.At(state, action))
}

// RunEpisode runs a single episode from the start state of the
// environment and returns the number of steps taken to reach the goal.
//
// The goal is checked before every step, so if the start state is the
// goal state no steps are taken. There is no step limit: if the goal
// cannot be reached from the start state, RunEpisode never returns.
func (s *Sarsa) RunEpisode() int {
	discount := s.env.Discount()

	state := s.env.Start()
	action := s.SelectAction(state)

	if s.env.AtGoal(state) {
		s.track(ts.New(ts.Last, 0, discount, state, 0))
		return 0
	}
	s.track(ts.New(ts.First, 0, discount, state, 0))

	steps := 0
	for !s.env.AtGoal(state) {
		next := s.env.Next(state, action)
		nextAction := s.SelectAction(next)

		value := s.values.At(state, action)
		tdError := s.TDError(state, action, next, nextAction)
		s.values.Set(state, action, value+tdError)
		steps++

		reward := s.env.GetReward(state, action, next)
		if s.trace != nil {
			fmt.Fprintln(s.trace, ts.Transition{
				State:        state,
				Action:       action,
				Reward:       reward,
				NextState:    next,
				NextAction:   nextAction,
				Value:        value,
				TDError:      tdError,
				UpdatedValue: value + tdError,
				Number:       steps,
			})
		}

		stepType := ts.Mid
		if s.env.AtGoal(next) {
			stepType = ts.Last
		}
		s.track(ts.New(stepType, reward, discount, next, steps))

		state, action = next, nextAction
	}

	return steps
}

// track sends a TimeStep to each registered observer
func (s *Sarsa) track(t ts.TimeStep) {
	for _, o := range s.observers {
		o(t)
	}
}
