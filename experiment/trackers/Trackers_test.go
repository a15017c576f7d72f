package trackers

import (
	"path/filepath"
	"testing"

	env "github.com/samuelfneumann/windygrid/environment"
	ts "github.com/samuelfneumann/windygrid/timestep"
)

// episode returns the timesteps of an episode with the given number of
// steps, each with a reward of -1
func episode(steps int) []ts.TimeStep {
	s := env.NewState(0, 0)
	if steps == 0 {
		return []ts.TimeStep{ts.New(ts.Last, 0, 0.9, s, 0)}
	}

	episode := []ts.TimeStep{ts.New(ts.First, 0, 0.9, s, 0)}
	for i := 1; i <= steps; i++ {
		stepType := ts.Mid
		if i == steps {
			stepType = ts.Last
		}
		episode = append(episode, ts.New(stepType, -1, 0.9, s, i))
	}
	return episode
}

func TestEpisodeLengthAndReturn(t *testing.T) {
	dir := t.TempDir()
	lengths := NewEpisodeLength(filepath.Join(dir, "lengths.bin"))
	returns := NewReturn(filepath.Join(dir, "returns.bin"))

	for _, steps := range []int{5, 0, 3} {
		for _, step := range episode(steps) {
			lengths.Track(step)
			returns.Track(step)
		}
	}

	wantLengths := []float64{5, 0, 3}
	wantReturns := []float64{-5, 0, -3}
	for i := range wantLengths {
		if lengths.Data()[i] != wantLengths[i] {
			t.Errorf("length %d: want %v, have %v", i, wantLengths[i],
				lengths.Data()[i])
		}
		if returns.Data()[i] != wantReturns[i] {
			t.Errorf("return %d: want %v, have %v", i, wantReturns[i],
				returns.Data()[i])
		}
	}

	for _, tracker := range []Tracker{lengths, returns} {
		if err := tracker.Save(); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	data, err := LoadData(filepath.Join(dir, "lengths.bin"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data) != 3 || data[0] != 5 || data[2] != 3 {
		t.Errorf("loaded lengths %v, want %v", data, wantLengths)
	}
}

func TestReturnPanicsOnGap(t *testing.T) {
	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 1, env.NewState(0, 0), 0))

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on non-sequential timesteps")
		}
	}()
	r.Track(ts.New(ts.Mid, -1, 1, env.NewState(0, 0), 2))
}

func TestLoadDataMissingFile(t *testing.T) {
	if _, err := LoadData(filepath.Join(t.TempDir(), "missing.bin")); err ==
		nil {
		t.Error("expected an error loading a missing file")
	}
}
