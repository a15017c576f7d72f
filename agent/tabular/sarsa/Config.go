package sarsa

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/windygrid/agent"
	env "github.com/samuelfneumann/windygrid/environment"
)

// Default hyperparameters of the Sarsa agent
const (
	DefaultEpsilon      float64 = 0.1
	DefaultLearningRate float64 = 0.5
)

var _ agent.Config = Config{}

// Config represents a configuration for the Sarsa agent
type Config struct {
	Epsilon      float64 // epsilon of the behaviour policy
	LearningRate float64
}

// DefaultConfig returns the default Sarsa configuration
func DefaultConfig() Config {
	return Config{Epsilon: DefaultEpsilon, LearningRate: DefaultLearningRate}
}

// CreateAgent creates the agent from the Config. Action values are
// always initialized to zero.
func (c Config) CreateAgent(e env.Environment,
	src rand.Source) (agent.Agent, error) {
	return New(e, c, src)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.Epsilon >= 0 && c.Epsilon <= 1) {
		return fmt.Errorf("epsilon %v must be in [0, 1]", c.Epsilon)
	}
	if !(c.LearningRate > 0 && c.LearningRate <= 1) {
		return fmt.Errorf("learning rate %v must be in (0, 1]",
			c.LearningRate)
	}
	return nil
}
