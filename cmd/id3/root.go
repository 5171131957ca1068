package main

import (
	"github.com/spf13/cobra"

	"github.com/stratzilla/id3-decision-tree/pkg/errors"
	"github.com/stratzilla/id3-decision-tree/pkg/log"
)

var logLevel string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "ID3 decision tree induction and evaluation",
		Long: `id3 builds a classification decision tree from a delimited table of
discrete examples (header row, decision column last) and evaluates its
predictive accuracy.

Evaluation strategies:
  holdout    random train/test split of a single file
  traintest  separately supplied train and test files
  crossval   k-fold cross-validation of a single file
  run        execute an experiment described by a YAML config`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := log.ParseLevel(logLevel); err != nil {
				return errors.NewValidationError("log-level", "must be one of debug, info, warn, error", logLevel)
			}
			log.SetupLogger(logLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New("a command is required")
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newHoldoutCmd())
	rootCmd.AddCommand(newTrainTestCmd())
	rootCmd.AddCommand(newCrossvalCmd())
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}
