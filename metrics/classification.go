// Package metrics provides classification metrics over discrete labels.
package metrics

import (
	"github.com/stratzilla/id3-decision-tree/pkg/errors"
)

// AccuracyScore computes the fraction of predictions matching the true
// labels: (TP+TN) / (TP+TN+FP+FN). Both slices must be non-empty and of
// equal length; callers that can legitimately see an empty test partition
// handle that case before calling (see model_selection).
func AccuracyScore(yTrue, yPred []string) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("AccuracyScore", "empty label slice")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("AccuracyScore", n, len(yPred), 0)
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ConfusionMatrix tallies predictions per true label. The outer key is the
// true label, the inner key the predicted label.
func ConfusionMatrix(yTrue, yPred []string) (map[string]map[string]int, error) {
	n := len(yTrue)
	if n == 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "empty label slice")
	}
	if len(yPred) != n {
		return nil, errors.NewDimensionError("ConfusionMatrix", n, len(yPred), 0)
	}

	cm := make(map[string]map[string]int)
	for i := range yTrue {
		row := cm[yTrue[i]]
		if row == nil {
			row = make(map[string]int)
			cm[yTrue[i]] = row
		}
		row[yPred[i]]++
	}
	return cm, nil
}
