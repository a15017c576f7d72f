package experiment

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/samuelfneumann/windygrid/agent"
	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/experiment/trackers"
	ts "github.com/samuelfneumann/windygrid/timestep"
	"github.com/samuelfneumann/windygrid/utils/progressbar"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// All episodes of an Online experiment share the agent's action values,
// so learning carries over from one episode to the next.
type Online struct {
	agent.Learner
	environment env.Environment
	runID       string

	trackers []trackers.Tracker

	out         io.Writer
	renderer    Renderer
	renderEvery int
	progress    *progressbar.ManualProgressBar

	episodeLengths []int
	totalSteps     int
}

// tracer is implemented by learners which can write a line for every
// update they make
type tracer interface {
	SetTrace(w io.Writer)
}

// NewOnline creates and returns a new online experiment with a given
// environment and a learner acting in it. The t parameter is a slice of
// trackers.Tracker which determine what data is saved.
func NewOnline(e env.Environment, l agent.Learner,
	t ...trackers.Tracker) *Online {
	o := &Online{
		Learner:     l,
		environment: e,
		runID:       uuid.NewString(),
		trackers:    t,
	}
	l.Register(o.track)
	return o
}

// Register registers a trackers.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// SetOutput sets the writer that receives a summary line after each
// episode and the rendered action values. A nil writer disables output.
func (o *Online) SetOutput(w io.Writer) {
	o.out = w
}

// SetTrace sets the writer that receives one line for every update the
// learner makes. An error is returned if the learner cannot be traced.
func (o *Online) SetTrace(w io.Writer) error {
	l, ok := o.Learner.(tracer)
	if !ok {
		return fmt.Errorf("setTrace: learner %T does not support tracing",
			o.Learner)
	}
	l.SetTrace(w)
	return nil
}

// SetRenderer sets the Renderer used to draw the action values after
// every n-th episode. If n <= 0, nothing is rendered.
func (o *Online) SetRenderer(r Renderer, n int) {
	o.renderer = r
	o.renderEvery = n
}

// SetProgressBar sets a progress bar which is incremented and displayed
// after each episode
func (o *Online) SetProgressBar(p *progressbar.ManualProgressBar) {
	o.progress = p
}

// Environment returns the environment the learner acts in
func (o *Online) Environment() env.Environment {
	return o.environment
}

// Evaluate follows the greedy policy with respect to the learned action
// values for at most maxSteps steps. See the package-level Evaluate.
func (o *Online) Evaluate(maxSteps int) ([]env.State, bool) {
	return Evaluate(o.environment, o.ActionValues(), maxSteps)
}

// RunID returns the unique identifier of the experiment
func (o *Online) RunID() string {
	return o.runID
}

// RunEpisode runs a single episode of the experiment and returns the
// number of steps taken
func (o *Online) RunEpisode() int {
	steps := o.Learner.RunEpisode()

	o.episodeLengths = append(o.episodeLengths, steps)
	o.totalSteps += steps
	episode := len(o.episodeLengths)

	if o.out != nil {
		fmt.Fprintf(o.out, "episode %d: steps %d\n", episode, steps)
		if o.renderer != nil && o.renderEvery > 0 &&
			episode%o.renderEvery == 0 {
			if err := o.renderer.Render(o.out, o.ActionValues(),
				episode); err != nil {
				fmt.Fprintf(o.out, "could not render episode %d: %v\n",
					episode, err)
			}
		}
	}

	if o.progress != nil {
		o.progress.Increment()
		o.progress.Display()
	}

	return steps
}

// Run runs the given number of episodes and returns the total number of
// steps taken over those episodes
func (o *Online) Run(episodes int) int {
	total := 0
	for i := 0; i < episodes; i++ {
		total += o.RunEpisode()
	}

	if o.out != nil {
		fmt.Fprintf(o.out, "total steps %d\n", total)
	}
	return total
}

// EpisodeLengths returns the number of steps taken in each episode run
// so far
func (o *Online) EpisodeLengths() []int {
	lengths := make([]int, len(o.episodeLengths))
	copy(lengths, o.episodeLengths)
	return lengths
}

// TotalSteps returns the number of steps taken over all episodes run so
// far
func (o *Online) TotalSteps() int {
	return o.totalSteps
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, tracker := range o.trackers {
		if err := tracker.Save(); err != nil {
			return err
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
