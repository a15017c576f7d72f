// Package experiment implements functionality for running an experiment
package experiment

import (
	"io"

	"github.com/samuelfneumann/windygrid/agent/tabular"
	"github.com/samuelfneumann/windygrid/experiment/trackers"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments pass each TimeStep generated by their agent to Trackers,
// which cache data in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method runs a
// number of episodes and the RunEpisode() method runs a single episode.
type Experiment interface {
	Run(episodes int) int // Returns the total number of steps taken
	RunEpisode() int      // Returns the number of steps taken

	// Save all tracked data to disk
	Save() error

	// Adds a new trackers.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker)
}

// Renderer draws the state of learned action values after an episode
type Renderer interface {
	Render(w io.Writer, values *tabular.ActionValues, episode int) error
}
