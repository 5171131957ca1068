// Package core defines the estimator contracts shared by models in this
// module. Concrete models compose core/model.StateManager for their fitted
// state and satisfy these interfaces.
package core

import "github.com/stratzilla/id3-decision-tree/dataset"

// Fitter is a model that can be trained on a table of examples.
type Fitter interface {
	Fit(train *dataset.Table) error
}

// Predictor classifies examples with a fitted model.
type Predictor interface {
	Predict(x dataset.Example) (string, error)
	PredictTable(t *dataset.Table) ([]string, error)
}

// Scorer reports a fitted model's accuracy over a labeled table.
type Scorer interface {
	Score(t *dataset.Table) (float64, error)
}

// Classifier is the full supervised contract.
type Classifier interface {
	Fitter
	Predictor
	Scorer
	IsFitted() bool
}
