package windygrid

import (
	"fmt"
	"math"

	env "github.com/samuelfneumann/windygrid/environment"
)

// Default configuration of the Windy Gridworld benchmark
const (
	DefaultHeight   int     = 7
	DefaultWidth    int     = 10
	DefaultReward   float64 = -1.0
	DefaultDiscount float64 = 0.9
)

var (
	DefaultStart = env.State{Row: 3, Col: 0}
	DefaultGoal  = env.State{Row: 3, Col: 7}
)

// DefaultWind returns the upward push applied in each column of the
// default gridworld
func DefaultWind() []int {
	return []int{0, 0, 0, 1, 1, 1, 2, 2, 1, 0}
}

// Config represents a configuration of a WindyGrid. Configs are JSON
// serializable.
type Config struct {
	Height int
	Width  int
	Start  env.State
	Goal   env.State

	// Wind holds the number of rows an agent is pushed upwards when
	// moving out of each column. It must have exactly Width entries.
	Wind []int

	Reward   float64 // reward for every transition
	Discount float64
}

// DefaultConfig returns the configuration of the standard Windy Gridworld
func DefaultConfig() Config {
	return Config{
		Height:   DefaultHeight,
		Width:    DefaultWidth,
		Start:    DefaultStart,
		Goal:     DefaultGoal,
		Wind:     DefaultWind(),
		Reward:   DefaultReward,
		Discount: DefaultDiscount,
	}
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if !c.Start.In(c.Height, c.Width) {
		return fmt.Errorf("start %v outside of %dx%d grid", c.Start,
			c.Height, c.Width)
	}
	if !c.Goal.In(c.Height, c.Width) {
		return fmt.Errorf("goal %v outside of %dx%d grid", c.Goal,
			c.Height, c.Width)
	}
	if len(c.Wind) != c.Width {
		return fmt.Errorf("wind has %d entries, want one per column (%d)",
			len(c.Wind), c.Width)
	}
	for i, w := range c.Wind {
		if w < 0 {
			return fmt.Errorf("wind[%d] = %d cannot be negative", i, w)
		}
	}
	if math.IsNaN(c.Reward) || math.IsInf(c.Reward, 0) {
		return fmt.Errorf("reward %v must be finite", c.Reward)
	}
	if !(c.Discount >= 0 && c.Discount <= 1) {
		return fmt.Errorf("discount %v must be in [0, 1]", c.Discount)
	}
	return nil
}
