package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/windygrid/experiment"
	"github.com/samuelfneumann/windygrid/experiment/render"
	"github.com/samuelfneumann/windygrid/experiment/trackers"
	"github.com/samuelfneumann/windygrid/utils/progressbar"
)

// evaluationSteps is the longest greedy rollout attempted after training
const evaluationSteps int = 1000

var (
	configFile  string
	outputFile  string
	artifactDir string
	episodes    int
	seed        uint64
	epsilon     float64
	alpha       float64
	gamma       float64
	renderEvery int
	trace       bool
	colours     bool
	progress    bool
)

// TrainCommand returns the command which trains a Sarsa agent on the
// Windy Gridworld
func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Sarsa agent on the Windy Gridworld",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := trainConfig(cmd)
			if err != nil {
				return err
			}
			return train(c, cmd.OutOrStdout())
		},
	}

	defaults := experiment.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "JSON configuration file")
	flags.StringVarP(&outputFile, "output", "o", "",
		"write the run output to this file instead of stdout")
	flags.StringVar(&artifactDir, "artifacts", "",
		"directory to save episode data, the policy image and charts to")
	flags.IntVarP(&episodes, "episodes", "n", defaults.Episodes,
		"number of episodes")
	flags.Uint64Var(&seed, "seed", defaults.Seed, "random seed")
	flags.Float64Var(&epsilon, "epsilon", defaults.Agent.Epsilon,
		"exploration rate")
	flags.Float64Var(&alpha, "alpha", defaults.Agent.LearningRate,
		"learning rate")
	flags.Float64Var(&gamma, "gamma", defaults.Grid.Discount,
		"discount factor")
	flags.IntVar(&renderEvery, "render-every", defaults.RenderEvery,
		"draw the greedy policy after every n-th episode, 0 to disable")
	flags.BoolVar(&trace, "trace", defaults.Trace, "print every update")
	flags.BoolVar(&colours, "color", false, "colour the policy diagram")
	flags.BoolVar(&progress, "progress", false,
		"display a progress bar on stderr")

	return cmd
}

// trainConfig builds the experiment configuration from the configuration
// file, if any, overridden by the flags set on the command line
func trainConfig(cmd *cobra.Command) (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if configFile != "" {
		var err error
		if c, err = experiment.LoadConfig(configFile); err != nil {
			return experiment.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("episodes") {
		c.Episodes = episodes
	}
	if flags.Changed("seed") {
		c.Seed = seed
	}
	if flags.Changed("epsilon") {
		c.Agent.Epsilon = epsilon
	}
	if flags.Changed("alpha") {
		c.Agent.LearningRate = alpha
	}
	if flags.Changed("gamma") {
		c.Grid.Discount = gamma
	}
	if flags.Changed("render-every") {
		c.RenderEvery = renderEvery
	}
	if flags.Changed("trace") {
		c.Trace = trace
	}

	if err := c.Validate(); err != nil {
		return experiment.Config{}, fmt.Errorf("train: invalid config: %v",
			err)
	}
	return c, nil
}

func train(c experiment.Config, stdout io.Writer) error {
	out := stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return errors.Wrap(err, "train: could not create output file")
		}
		defer file.Close()
		out = file
		logger.Printf("writing output to %v", outputFile)
	}

	exp, grid, err := c.CreateExp()
	if err != nil {
		return err
	}
	logger.Printf("run %v", exp.RunID())
	fmt.Fprintln(out, c)

	exp.SetOutput(out)
	exp.SetRenderer(render.NewDiagram(grid, colours), c.RenderEvery)
	if c.Trace {
		if err := exp.SetTrace(out); err != nil {
			return err
		}
	}

	var dir string
	if artifactDir != "" {
		dir = filepath.Join(artifactDir, exp.RunID())
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "train: could not create artifact "+
				"directory")
		}
		exp.Register(trackers.NewEpisodeLength(filepath.Join(dir,
			"lengths.bin")))
		exp.Register(trackers.NewReturn(filepath.Join(dir, "returns.bin")))
	}

	if progress {
		bar := progressbar.NewManualProgressBar(os.Stderr, 40, c.Episodes)
		exp.SetProgressBar(bar)
		defer bar.Close()
	}

	exp.Run(c.Episodes)

	path, ok := exp.Evaluate(evaluationSteps)
	if ok {
		logger.Printf("greedy policy reaches the goal in %d steps",
			len(path)-1)
	} else {
		logger.Printf("greedy policy does not reach the goal within %d "+
			"steps", evaluationSteps)
	}
	logger.Println(exp.Summary())

	if dir == "" {
		return nil
	}
	if err := exp.Save(); err != nil {
		return errors.Wrap(err, "train: could not save episode data")
	}
	if err := c.Save(filepath.Join(dir, "config.json")); err != nil {
		return err
	}
	if err := render.SavePolicyImage(filepath.Join(dir, "policy.png"), grid,
		exp.ActionValues()); err != nil {
		return err
	}
	values := []byte(exp.ActionValues().String() + "\n")
	if err := os.WriteFile(filepath.Join(dir, "values.txt"), values,
		0644); err != nil {
		return errors.Wrap(err, "train: could not save action values")
	}
	if err := render.SaveEpisodeChart(filepath.Join(dir, "episodes.html"),
		"Sarsa on the Windy Gridworld", exp.EpisodeLengths()); err != nil {
		return err
	}
	logger.Printf("saved artifacts to %v", dir)
	return nil
}
