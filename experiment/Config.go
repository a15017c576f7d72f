package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/windygrid/agent"
	"github.com/samuelfneumann/windygrid/agent/tabular/sarsa"
	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/environment/windygrid"
	"github.com/samuelfneumann/windygrid/experiment/trackers"
)

// Default settings of an experiment
const (
	DefaultEpisodes int    = 100
	DefaultSeed     uint64 = 192382
)

// Config represents a configuration of an experiment. Configs are JSON
// serializable, and any field missing from a JSON file keeps its default
// value when loaded with LoadConfig.
type Config struct {
	Grid  windygrid.Config
	Agent sarsa.Config

	Episodes int
	Seed     uint64

	// RenderEvery determines how often the action values are rendered.
	// A value of n renders after every n-th episode, 0 never renders.
	RenderEvery int

	Trace bool // print every update
}

// DefaultConfig returns the configuration of the classic Windy Gridworld
// experiment
func DefaultConfig() Config {
	return Config{
		Grid:        windygrid.DefaultConfig(),
		Agent:       sarsa.DefaultConfig(),
		Episodes:    DefaultEpisodes,
		Seed:        DefaultSeed,
		RenderEvery: 1,
	}
}

// LoadConfig loads a Config from a JSON file. Fields not present in the
// file are taken from DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loadConfig: could not read %v",
			filename)
	}

	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "loadConfig: could not decode %v",
			filename)
	}

	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "loadConfig: invalid config in %v",
			filename)
	}
	return c, nil
}

// Save saves the Config as JSON to a file
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return errors.Wrap(err, "save: could not encode config")
	}

	if err := os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "save: could not write %v", filename)
	}
	return nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid: %v", err)
	}
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("agent: %v", err)
	}
	if c.Episodes < 0 {
		return fmt.Errorf("episodes %d cannot be negative", c.Episodes)
	}
	if c.RenderEvery < 0 {
		return fmt.Errorf("render every %d cannot be negative",
			c.RenderEvery)
	}
	return nil
}

func (c Config) String() string {
	wind := make([]string, len(c.Grid.Wind))
	for i, w := range c.Grid.Wind {
		wind[i] = fmt.Sprint(w)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "grid: %dx%d\n", c.Grid.Height, c.Grid.Width)
	fmt.Fprintf(&b, "start: %v\n", c.Grid.Start)
	fmt.Fprintf(&b, "goal: %v\n", c.Grid.Goal)
	fmt.Fprintf(&b, "wind: [%v]\n", strings.Join(wind, " "))
	fmt.Fprintf(&b, "reward: %v\n", c.Grid.Reward)
	fmt.Fprintf(&b, "epsilon: %v\n", c.Agent.Epsilon)
	fmt.Fprintf(&b, "alpha: %v\n", c.Agent.LearningRate)
	fmt.Fprintf(&b, "gamma: %v\n", c.Grid.Discount)
	fmt.Fprintf(&b, "episodes: %d\n", c.Episodes)
	fmt.Fprintf(&b, "seed: %d", c.Seed)
	return b.String()
}

// CreateExp creates the gridworld and Sarsa agent described by the
// Config and returns an Online experiment running them, together with the
// gridworld. All randomness in the experiment is drawn from a single
// source seeded with c.Seed.
func (c Config) CreateExp(t ...trackers.Tracker) (*Online,
	*windygrid.WindyGrid, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("createExp: invalid config: %v", err)
	}

	grid, err := windygrid.New(c.Grid)
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: could not create "+
			"environment: %v", err)
	}

	learner, err := createAgent(c.Agent, grid, rand.NewSource(c.Seed))
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: could not create agent: %v",
			err)
	}

	return NewOnline(grid, learner, t...), grid, nil
}

// createAgent validates an agent configuration and creates the agent it
// describes
func createAgent(c agent.Config, e env.Environment,
	src rand.Source) (agent.Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.CreateAgent(e, src)
}
