package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/stratzilla/id3-decision-tree/pkg/errors"
)

// Experiment describes one evaluation run in a YAML config file, as an
// alternative to spelling everything out in flags.
//
// Example:
//
//	mode: crossval
//	data:
//	  file: iris.csv
//	crossval:
//	  folds: 5
//	  shuffle: true
//	seed: 42
//	print_tree: false
type Experiment struct {
	Mode string `yaml:"mode"` // holdout, traintest, crossval

	Data struct {
		File  string `yaml:"file"`  // holdout and crossval modes
		Train string `yaml:"train"` // traintest mode
		Test  string `yaml:"test"`  // traintest mode
	} `yaml:"data"`

	Holdout struct {
		TrainRatio float64 `yaml:"train_ratio"`
	} `yaml:"holdout"`

	Crossval struct {
		Folds   int  `yaml:"folds"`
		Shuffle bool `yaml:"shuffle"`
	} `yaml:"crossval"`

	Seed      int64 `yaml:"seed"`
	PrintTree bool  `yaml:"print_tree"`
}

// Validate checks mode-specific required fields before any file is read or
// induction work begins. Range checks on ratio and folds stay with the
// harness, which owns those contracts.
func (e *Experiment) Validate() error {
	switch e.Mode {
	case "holdout", "crossval":
		if e.Data.File == "" {
			return errors.NewValidationError("data.file", "required for mode "+e.Mode, e.Data.File)
		}
	case "traintest":
		if e.Data.Train == "" || e.Data.Test == "" {
			return errors.NewValidationError("data.train/data.test", "both required for mode traintest", e.Data)
		}
	default:
		return errors.NewValidationError("mode", "must be one of holdout, traintest, crossval", e.Mode)
	}
	return nil
}

// LoadExperiment reads and validates a YAML experiment file.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config %q", path)
	}
	exp := &Experiment{}
	exp.Holdout.TrainRatio = 0.7
	exp.Crossval.Folds = 5
	exp.Crossval.Shuffle = true
	if err := yaml.Unmarshal(data, exp); err != nil {
		return nil, errors.Wrapf(err, "could not parse config %q", path)
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	return exp, nil
}

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute an experiment described by a YAML config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return errors.NewValidationError("config", "a config file is required", configPath)
			}
			exp, err := LoadExperiment(configPath)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch exp.Mode {
			case "holdout":
				return runHoldout(w, exp.Data.File, exp.Holdout.TrainRatio, exp.Seed, exp.PrintTree)
			case "traintest":
				return runTrainTest(w, exp.Data.Train, exp.Data.Test, exp.PrintTree)
			default:
				return runCrossval(w, exp.Data.File, exp.Crossval.Folds, exp.Seed, exp.Crossval.Shuffle)
			}
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the experiment YAML file")
	return cmd
}
