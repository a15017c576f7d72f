package agent

import (
	"golang.org/x/exp/rand"

	env "github.com/samuelfneumann/windygrid/environment"
)

// Config represents a configuration for creating an agent
type Config interface {
	// CreateAgent creates the agent that the config describes. All
	// randomness of the agent is drawn from src.
	CreateAgent(e env.Environment, src rand.Source) (Agent, error)

	// Validate returns an error if the Config is invalid
	Validate() error
}
