// Package model_selection provides train/test partitioning strategies and
// the evaluation harness that drives tree induction over them.
//
// Three strategies are supported: random holdout, independently supplied
// train/test tables, and k-fold cross-validation. Every strategy builds
// exactly one fresh tree per train/test pair; trees are never cached or
// reused across folds or runs.
package model_selection

import (
	"math"
	"math/rand/v2"

	"github.com/stratzilla/id3-decision-tree/dataset"
	"github.com/stratzilla/id3-decision-tree/pkg/errors"
)

// TrainTestSplit shuffles the table once and assigns the first
// round(trainRatio * N) examples to the training view, the remainder to the
// test view. The source table is never mutated; both results are index
// views over it.
//
// trainRatio must lie in [0.0, 1.0]. The degenerate ratios are accepted and
// produce an empty train or test view; the evaluation harness documents how
// accuracy is reported in those cases.
func TrainTestSplit(t *dataset.Table, trainRatio float64, seed int64) (train, test *dataset.Table, err error) {
	if t == nil || t.NumExamples() == 0 {
		return nil, nil, errors.NewEmptyDatasetError("model_selection.TrainTestSplit", "")
	}
	if trainRatio < 0.0 || trainRatio > 1.0 {
		return nil, nil, errors.NewValidationError("train_ratio", "must be within [0.0, 1.0]", trainRatio)
	}

	n := t.NumExamples()
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	indices := r.Perm(n)

	nTrain := int(math.Round(trainRatio * float64(n)))
	return t.Select(indices[:nTrain]), t.Select(indices[nTrain:]), nil
}
