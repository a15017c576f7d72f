package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/windygrid/experiment"
)

func TestConfigCommand(t *testing.T) {
	cmd := ConfigCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("could not execute: %v", err)
	}

	var c experiment.Config
	if err := json.Unmarshal(out.Bytes(), &c); err != nil {
		t.Fatalf("output is not a config: %v", err)
	}
	if c.String() != experiment.DefaultConfig().String() {
		t.Errorf("want default config, have %v", c)
	}
}

func TestTrainFlags(t *testing.T) {
	cmd := TrainCommand()
	for flag, value := range map[string]string{
		"episodes": "3",
		"epsilon":  "0.2",
		"gamma":    "1",
		"seed":     "7",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatalf("could not set %v: %v", flag, err)
		}
	}

	c, err := trainConfig(cmd)
	if err != nil {
		t.Fatalf("could not build config: %v", err)
	}
	if c.Episodes != 3 || c.Agent.Epsilon != 0.2 || c.Grid.Discount != 1 ||
		c.Seed != 7 {
		t.Errorf("flags not applied: %v", c)
	}
	if c.Agent.LearningRate != experiment.DefaultConfig().Agent.LearningRate {
		t.Errorf("unset flag changed the learning rate to %v",
			c.Agent.LearningRate)
	}

	for _, invalid := range []struct{ flag, value string }{
		{"epsilon", "2"},
		{"epsilon", "NaN"},
		{"alpha", "NaN"},
		{"alpha", "+Inf"},
		{"gamma", "NaN"},
	} {
		cmd := TrainCommand()
		if err := cmd.Flags().Set(invalid.flag, invalid.value); err != nil {
			t.Fatal(err)
		}
		if _, err := trainConfig(cmd); err == nil {
			t.Errorf("--%v %v should be rejected", invalid.flag,
				invalid.value)
		}
	}
}

func TestTrain(t *testing.T) {
	dir := t.TempDir()
	artifactDir = dir
	outputFile = ""
	defer func() { artifactDir = "" }()

	c := experiment.DefaultConfig()
	c.Episodes = 5
	c.RenderEvery = 5

	var out bytes.Buffer
	if err := train(c, &out); err != nil {
		t.Fatalf("could not train: %v", err)
	}

	for _, want := range []string{"episode 5: steps", "total steps",
		"Result of episode 5"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%q missing from output", want)
		}
	}

	runs, err := os.ReadDir(dir)
	if err != nil || len(runs) != 1 {
		t.Fatalf("want one run directory, have %v (%v)", runs, err)
	}
	for _, name := range []string{"lengths.bin", "returns.bin",
		"config.json", "policy.png", "episodes.html", "values.txt"} {
		if _, err := os.Stat(filepath.Join(dir, runs[0].Name(),
			name)); err != nil {
			t.Errorf("%v not saved: %v", name, err)
		}
	}
}
