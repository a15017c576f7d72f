// Package windygrid implements the Windy Gridworld environment.
//
// The Windy Gridworld is a rectangular grid in which each column pushes
// the agent some number of cells upwards whenever the agent moves out of
// it. Every transition costs the same flat reward, so the task is to reach
// the goal cell in as few moves as possible.
package windygrid

import (
	"fmt"
	"strings"

	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/utils/intutils"
)

// WindyGrid represents a Windy Gridworld. A WindyGrid is immutable once
// created and implements environment.Environment.
type WindyGrid struct {
	r, c     int
	start    env.State
	goal     env.State
	wind     []int
	reward   float64
	discount float64
}

// New creates a new WindyGrid from a Config. The Config is validated
// before the WindyGrid is created.
func New(c Config) (*WindyGrid, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("windygrid: invalid config: %v", err)
	}

	wind := make([]int, len(c.Wind))
	copy(wind, c.Wind)

	return &WindyGrid{
		r:        c.Height,
		c:        c.Width,
		start:    c.Start,
		goal:     c.Goal,
		wind:     wind,
		reward:   c.Reward,
		discount: c.Discount,
	}, nil
}

// Next returns the state reached by taking action a in state s.
//
// The row offset of the action is applied together with the wind of the
// column the move starts in, then each coordinate is clipped to the grid
// independently. Wind applies to every action, including NoChange.
func (g *WindyGrid) Next(s env.State, a env.Action) env.State {
	dRow, dCol := a.Delta()

	row := s.Row + dRow - g.wind[s.Col]
	col := s.Col + dCol

	return env.State{
		Row: intutils.Clip(row, 0, g.r-1),
		Col: intutils.Clip(col, 0, g.c-1),
	}
}

// Start returns the starting state
func (g *WindyGrid) Start() env.State {
	return g.start
}

// Goal returns the goal state
func (g *WindyGrid) Goal() env.State {
	return g.goal
}

// AtGoal returns whether s is the goal state
func (g *WindyGrid) AtGoal(s env.State) bool {
	return s.Equal(g.goal)
}

// GetReward returns the reward for a transition. The reward is the same
// for every transition.
func (g *WindyGrid) GetReward(env.State, env.Action, env.State) float64 {
	return g.reward
}

// Discount returns the discount factor of the environment
func (g *WindyGrid) Discount() float64 {
	return g.discount
}

// Dims gets the rows and columns of the WindyGrid
func (g *WindyGrid) Dims() (r, c int) {
	return g.r, g.c
}

// Wind returns a copy of the per-column wind strength
func (g *WindyGrid) Wind() []int {
	wind := make([]int, len(g.wind))
	copy(wind, g.wind)
	return wind
}

func (g *WindyGrid) String() string {
	wind := make([]string, len(g.wind))
	for i, w := range g.wind {
		wind[i] = fmt.Sprint(w)
	}

	str := "WindyGrid | Start: %v  |  Goal: %v  |  Bounds: (%d, %d)  |  " +
		"Wind: [%v]"
	return fmt.Sprintf(str, g.start, g.goal, g.r, g.c,
		strings.Join(wind, " "))
}
