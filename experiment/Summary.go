package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds statistics over the episode lengths of an experiment
type Summary struct {
	RunID      string
	Episodes   int
	TotalSteps int

	MeanSteps   float64
	StdDevSteps float64 // sample standard deviation
	MinSteps    int
	MaxSteps    int
	LastSteps   int
}

// NewSummary computes a Summary from the number of steps taken in each
// episode of the run with id runID
func NewSummary(runID string, episodeLengths []int) Summary {
	s := Summary{RunID: runID, Episodes: len(episodeLengths)}
	if len(episodeLengths) == 0 {
		return s
	}

	lengths := make([]float64, len(episodeLengths))
	for i, l := range episodeLengths {
		lengths[i] = float64(l)
	}

	s.TotalSteps = int(floats.Sum(lengths))
	s.MinSteps = int(floats.Min(lengths))
	s.MaxSteps = int(floats.Max(lengths))
	s.LastSteps = episodeLengths[len(episodeLengths)-1]

	if len(lengths) > 1 {
		s.MeanSteps, s.StdDevSteps = stat.MeanStdDev(lengths, nil)
	} else {
		s.MeanSteps = lengths[0]
	}
	return s
}

// Summary returns a Summary of all episodes run so far
func (o *Online) Summary() Summary {
	return NewSummary(o.runID, o.episodeLengths)
}

func (s Summary) String() string {
	str := "run %v | episodes: %d | total steps: %d | steps per episode: " +
		"%.2f ± %.2f (min %d, max %d, last %d)"
	return fmt.Sprintf(str, s.RunID, s.Episodes, s.TotalSteps, s.MeanSteps,
		s.StdDevSteps, s.MinSteps, s.MaxSteps, s.LastSteps)
}
