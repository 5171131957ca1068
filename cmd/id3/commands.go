package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/stratzilla/id3-decision-tree/dataset"
	"github.com/stratzilla/id3-decision-tree/model_selection"
	"github.com/stratzilla/id3-decision-tree/pkg/log"
)

func newHoldoutCmd() *cobra.Command {
	var (
		ratio     float64
		seed      int64
		printTree bool
	)
	cmd := &cobra.Command{
		Use:   "holdout <file>",
		Short: "Evaluate with a random holdout split of a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHoldout(cmd.OutOrStdout(), args[0], ratio, seed, printTree)
		},
	}
	cmd.Flags().Float64Var(&ratio, "ratio", 0.7, "proportion of examples used for training (0.0..1.0)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the shuffle")
	cmd.Flags().BoolVar(&printTree, "print", false, "print the tree mapping and pretty dump")
	return cmd
}

func newTrainTestCmd() *cobra.Command {
	var printTree bool
	cmd := &cobra.Command{
		Use:   "traintest <train-file> <test-file>",
		Short: "Evaluate with separately supplied train and test files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrainTest(cmd.OutOrStdout(), args[0], args[1], printTree)
		},
	}
	cmd.Flags().BoolVar(&printTree, "print", false, "print the tree mapping and pretty dump")
	return cmd
}

func newCrossvalCmd() *cobra.Command {
	var (
		folds   int
		seed    int64
		shuffle bool
	)
	cmd := &cobra.Command{
		Use:   "crossval <file>",
		Short: "Evaluate with k-fold cross-validation of a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossval(cmd.OutOrStdout(), args[0], folds, seed, shuffle)
		},
	}
	cmd.Flags().IntVar(&folds, "folds", 5, "number of folds (2..10)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the shuffle")
	cmd.Flags().BoolVar(&shuffle, "shuffle", true, "shuffle examples before fold assignment")
	return cmd
}

func runHoldout(w io.Writer, file string, ratio float64, seed int64, printTree bool) error {
	tbl, err := dataset.Load(file)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Using holdout style training, %.1f%% training data.\n", ratio*100)

	report, err := model_selection.EvaluateHoldout(tbl, ratio,
		model_selection.WithSeed(seed),
		model_selection.WithEvalLogger(log.NewSlogLogger(nil)),
	)
	if err != nil {
		return err
	}
	printReport(w, report, printTree)
	return nil
}

func runTrainTest(w io.Writer, trainFile, testFile string, printTree bool) error {
	train, err := dataset.Load(trainFile)
	if err != nil {
		return err
	}
	test, err := dataset.Load(testFile)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Using separate training and testing sets.")

	report, err := model_selection.Evaluate(train, test,
		model_selection.WithEvalLogger(log.NewSlogLogger(nil)),
	)
	if err != nil {
		return err
	}
	printReport(w, report, printTree)
	return nil
}

func runCrossval(w io.Writer, file string, folds int, seed int64, shuffle bool) error {
	tbl, err := dataset.Load(file)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Using %d-fold cross-validation.\n", folds)

	report, err := model_selection.CrossValidate(tbl, folds,
		model_selection.WithSeed(seed),
		model_selection.WithShuffle(shuffle),
		model_selection.WithEvalLogger(log.NewSlogLogger(nil)),
	)
	if err != nil {
		return err
	}
	for i, acc := range report.FoldAccuracies {
		fmt.Fprintf(w, "Fold %d/%d accuracy: %s\n", i+1, report.K, formatAccuracy(acc))
	}
	fmt.Fprintf(w, "Mean accuracy across %d folds: %s (std %.1f%%)\n",
		report.K, formatAccuracy(report.MeanAccuracy), report.StdAccuracy*100)
	return nil
}

// printReport writes the evaluation summary, preceded by the two tree
// renderings when requested: the verbatim node/child mapping and the
// indented pretty dump.
func printReport(w io.Writer, report *model_selection.Report, printTree bool) {
	if printTree && report.Tree != nil {
		if mapping, err := report.Tree.ExportMapping(); err == nil {
			fmt.Fprintln(w, mapping)
			fmt.Fprintln(w)
		}
		if text, err := report.Tree.ExportText(); err == nil {
			fmt.Fprint(w, text)
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "Using %d training examples and %d testing examples.\n",
		report.TrainSize, report.TestSize)
	fmt.Fprintf(w, "Tree contains %d non-leaf nodes and %d leaf nodes.\n",
		report.NNodes, report.NLeaves)
	fmt.Fprintf(w, "Took %.2f seconds to generate.\n", report.FitDuration.Seconds())
	fmt.Fprintf(w, "Was able to classify %s of training data.\n", formatAccuracy(report.TrainAccuracy))
	fmt.Fprintf(w, "Was able to classify %s of testing data.\n", formatAccuracy(report.TestAccuracy))
}

// formatAccuracy renders an accuracy as a percentage. An empty partition
// has no defined accuracy; that is reported explicitly rather than as a
// division-by-zero artifact.
func formatAccuracy(acc float64) string {
	if math.IsNaN(acc) {
		return "undefined% (empty example set)"
	}
	return fmt.Sprintf("%.1f%%", acc*100)
}
