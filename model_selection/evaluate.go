package model_selection

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/stratzilla/id3-decision-tree/dataset"
	"github.com/stratzilla/id3-decision-tree/pkg/errors"
	"github.com/stratzilla/id3-decision-tree/pkg/log"
	"github.com/stratzilla/id3-decision-tree/tree"
)

// Report holds the outcome of one train/test evaluation: a single fresh
// tree fitted on the training view and scored against both views.
//
// TestAccuracy is NaN when the test view is empty, and both accuracies are
// NaN when the training view is empty (no tree can be induced); an
// UndefinedMetricWarning is emitted in either case instead of an error.
type Report struct {
	TrainSize int
	TestSize  int

	TrainAccuracy float64
	TestAccuracy  float64

	// Shape of the induced tree; zero values when no tree was built.
	Depth   int
	NLeaves int
	NNodes  int

	FitDuration time.Duration

	// Tree is the fitted classifier, nil when the training view was
	// empty. Exposed so callers can export renderings.
	Tree *tree.ID3Classifier
}

// CVReport aggregates a k-fold cross-validation run.
type CVReport struct {
	K              int
	FoldAccuracies []float64
	MeanAccuracy   float64
	StdAccuracy    float64
	FoldReports    []*Report
}

type options struct {
	seed     int64
	shuffle  bool
	logger   log.Logger
	treeOpts []tree.Option
}

// EvalOption configures the evaluation harness.
type EvalOption func(*options)

// WithSeed sets the random seed used for shuffling. Runs with the same
// seed and inputs produce identical partitions, trees, and accuracies.
func WithSeed(seed int64) EvalOption {
	return func(o *options) { o.seed = seed }
}

// WithShuffle enables shuffling before fold assignment in cross-validation.
// Holdout splitting always shuffles.
func WithShuffle(shuffle bool) EvalOption {
	return func(o *options) { o.shuffle = shuffle }
}

// WithEvalLogger attaches a structured logger to the harness and to every
// tree it builds.
func WithEvalLogger(logger log.Logger) EvalOption {
	return func(o *options) { o.logger = logger }
}

// WithTreeOptions forwards options to each fresh classifier the harness
// constructs.
func WithTreeOptions(opts ...tree.Option) EvalOption {
	return func(o *options) { o.treeOpts = append(o.treeOpts, opts...) }
}

func buildOptions(opts []EvalOption) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger != nil {
		o.treeOpts = append(o.treeOpts, tree.WithLogger(o.logger))
	}
	return o
}

// Evaluate trains one fresh tree on train and scores it against both train
// and test. The two tables must share a feature schema. test may be empty
// (TestAccuracy reported as NaN); an empty train view yields a treeless
// report with NaN accuracies rather than an error, so degenerate holdout
// ratios still run and report.
func Evaluate(train, test *dataset.Table, opts ...EvalOption) (*Report, error) {
	o := buildOptions(opts)
	return evaluate(train, test, o)
}

func evaluate(train, test *dataset.Table, o *options) (*Report, error) {
	if train == nil || test == nil {
		return nil, errors.NewValueError("model_selection.Evaluate", "train and test tables must be non-nil")
	}
	if train.NumExamples() > 0 && test.NumExamples() > 0 {
		if err := train.CheckSchema("model_selection.Evaluate", test); err != nil {
			return nil, err
		}
	}

	report := &Report{
		TrainSize:     train.NumExamples(),
		TestSize:      test.NumExamples(),
		TrainAccuracy: math.NaN(),
		TestAccuracy:  math.NaN(),
	}

	if train.NumExamples() == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("accuracy", "empty training set, no tree induced", math.NaN()))
		return report, nil
	}

	clf := tree.NewID3Classifier(o.treeOpts...)
	if err := clf.Fit(train); err != nil {
		return nil, err
	}
	report.Tree = clf
	report.Depth = clf.GetDepth()
	report.NLeaves = clf.GetNLeaves()
	report.NNodes = clf.GetNNodes()
	report.FitDuration = clf.FitDuration()

	trainAcc, err := clf.Score(train)
	if err != nil {
		return nil, err
	}
	report.TrainAccuracy = trainAcc

	if test.NumExamples() == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("accuracy", "empty test set", math.NaN()))
		return report, nil
	}

	testAcc, err := clf.Score(test)
	if err != nil {
		return nil, err
	}
	report.TestAccuracy = testAcc

	if o.logger != nil {
		o.logger.Info("evaluation complete",
			log.ComponentKey, "model_selection",
			log.SamplesKey, report.TrainSize,
			log.AccuracyKey, report.TestAccuracy,
			log.LeavesKey, report.NLeaves,
			log.NodesKey, report.NNodes,
		)
	}
	return report, nil
}

// EvaluateHoldout shuffles the table once, trains on the first
// round(trainRatio * N) examples, and tests on the remainder.
func EvaluateHoldout(t *dataset.Table, trainRatio float64, opts ...EvalOption) (*Report, error) {
	o := buildOptions(opts)
	train, test, err := TrainTestSplit(t, trainRatio, o.seed)
	if err != nil {
		return nil, err
	}
	if o.logger != nil {
		o.logger.Debug("holdout split",
			log.TrainRatioKey, trainRatio,
			log.SeedKey, o.seed,
			log.SamplesKey, t.NumExamples(),
		)
	}
	return evaluate(train, test, o)
}

// CrossValidate partitions the table into k folds and evaluates each fold
// as the test set against a tree trained on the union of the others. k
// must lie in [2, 10] and not exceed the number of examples. The mean and
// standard deviation of the per-fold test accuracies are reported.
func CrossValidate(t *dataset.Table, k int, opts ...EvalOption) (*CVReport, error) {
	o := buildOptions(opts)

	if t == nil || t.NumExamples() == 0 {
		return nil, errors.NewEmptyDatasetError("model_selection.CrossValidate", "")
	}
	if k < 2 || k > 10 {
		return nil, errors.NewValidationError("folds", "must be within [2, 10]", k)
	}
	if k > t.NumExamples() {
		return nil, errors.NewValidationError("folds", "must not exceed the number of examples", k)
	}

	kf := NewKFold(k, o.shuffle, o.seed)
	folds := kf.Split(t.NumExamples())

	report := &CVReport{
		K:              k,
		FoldAccuracies: make([]float64, 0, k),
		FoldReports:    make([]*Report, 0, k),
	}
	for i, fold := range folds {
		foldReport, err := evaluate(t.Select(fold.TrainIndices), t.Select(fold.TestIndices), o)
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d", i)
		}
		report.FoldAccuracies = append(report.FoldAccuracies, foldReport.TestAccuracy)
		report.FoldReports = append(report.FoldReports, foldReport)

		if o.logger != nil {
			o.logger.Debug("fold evaluated",
				log.FoldKey, i,
				log.FoldsKey, k,
				log.AccuracyKey, foldReport.TestAccuracy,
			)
		}
	}

	report.MeanAccuracy = stat.Mean(report.FoldAccuracies, nil)
	report.StdAccuracy = stat.StdDev(report.FoldAccuracies, nil)

	if o.logger != nil {
		o.logger.Info("cross-validation complete",
			log.FoldsKey, k,
			log.AccuracyKey, report.MeanAccuracy,
		)
	}
	return report, nil
}
