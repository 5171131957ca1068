// Package tree implements an ID3 decision-tree classifier over discrete
// feature domains.
//
// ID3 grows the tree top-down, at each step splitting the training subset
// on the feature with maximal information gain and recursing until a
// subset is label-pure or the feature schema is exhausted. Feature domains
// and the label domain are inferred from the data; continuous features and
// pruning are out of scope.
package tree

import (
	"time"

	"github.com/stratzilla/id3-decision-tree/core"
	"github.com/stratzilla/id3-decision-tree/core/model"
	"github.com/stratzilla/id3-decision-tree/dataset"
	"github.com/stratzilla/id3-decision-tree/metrics"
	"github.com/stratzilla/id3-decision-tree/pkg/errors"
	"github.com/stratzilla/id3-decision-tree/pkg/log"
)

// ID3Classifier induces a classification tree from labeled discrete
// examples using entropy-based recursive partitioning.
//
// The classifier follows the usual estimator shape: construct, Fit on a
// training table, then Predict or Score. The fitted tree is read-only;
// Predict is safe to call repeatedly and concurrently.
type ID3Classifier struct {
	state  *model.StateManager
	logger log.Logger

	// Fitted attributes.
	features_   []string
	featurePos_ map[string]int
	classes_    []string
	root        *node
	fitTime_    time.Duration
}

var _ core.Classifier = (*ID3Classifier)(nil)

// Option is a functional option for ID3Classifier.
type Option func(*ID3Classifier)

// WithLogger attaches a structured logger; fit and predict diagnostics are
// emitted through it. Without this option the classifier is silent.
func WithLogger(logger log.Logger) Option {
	return func(c *ID3Classifier) {
		c.logger = logger
	}
}

// NewID3Classifier creates an unfitted ID3 classifier.
func NewID3Classifier(opts ...Option) *ID3Classifier {
	c := &ID3Classifier{
		state: model.NewStateManager(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fit induces a decision tree from the training table. The table is read
// but never mutated, and the resulting tree holds no references to it
// beyond copied label strings.
func (c *ID3Classifier) Fit(train *dataset.Table) (err error) {
	defer errors.Recover(&err, "ID3Classifier.Fit")

	if train == nil {
		return errors.NewValueError("ID3Classifier.Fit", "training table is nil")
	}
	if train.NumExamples() == 0 {
		return errors.NewEmptyDatasetError("ID3Classifier.Fit", train.Source())
	}

	start := time.Now()
	c.features_ = train.Features()
	c.featurePos_ = make(map[string]int, len(c.features_))
	for i, f := range c.features_ {
		c.featurePos_[f] = i
	}
	c.classes_ = train.ClassValues()
	c.root = c.build(train, c.features_)
	c.fitTime_ = time.Since(start)

	c.state.SetDimensions(len(c.features_), train.NumExamples())
	c.state.SetFitted()

	if c.logger != nil {
		c.logger.Info("fit complete",
			log.ModelNameKey, "ID3Classifier",
			log.OperationKey, "fit",
			log.SamplesKey, train.NumExamples(),
			log.FeaturesKey, len(c.features_),
			log.ClassesKey, len(c.classes_),
			log.DepthKey, c.root.depth(),
			log.LeavesKey, c.root.countLeaves(),
			log.DurationMsKey, c.fitTime_.Milliseconds(),
		)
	}
	return nil
}

// build recursively partitions view by the best-gain feature. Recursion
// terminates because each level removes the chosen feature from the
// remaining schema.
func (c *ID3Classifier) build(view *dataset.Table, features []string) *node {
	classes := view.ClassValues()
	if len(classes) == 1 {
		return &node{label: classes[0], samples: view.NumExamples()}
	}
	if len(features) == 0 {
		return &node{label: view.MajorityLabel(), samples: view.NumExamples()}
	}

	best := bestFeature(view, features)
	parts, values := view.Partition(best)

	remaining := make([]string, 0, len(features)-1)
	for _, f := range features {
		if f != best {
			remaining = append(remaining, f)
		}
	}

	n := &node{
		feature:  best,
		children: make(map[string]*node, len(values)),
		majority: view.MajorityLabel(),
		samples:  view.NumExamples(),
	}
	for _, v := range values {
		sub := parts[v]
		if sub.NumExamples() == 0 {
			// Unreachable: Partition only yields observed values.
			n.children[v] = &node{label: n.majority}
			continue
		}
		n.children[v] = c.build(sub, remaining)
	}
	return n
}

// Predict classifies a single example, which must follow the training
// schema (label column optional). When traversal meets a feature value
// never observed on that branch during training, the prediction falls back
// to the majority label of the decision node's training subset.
func (c *ID3Classifier) Predict(x dataset.Example) (string, error) {
	if !c.state.IsFitted() {
		return "", errors.NewNotFittedError("ID3Classifier", "Predict")
	}
	if len(x) < len(c.features_) {
		return "", errors.NewDimensionError("ID3Classifier.Predict", len(c.features_), len(x), 1)
	}

	n := c.root
	for !n.isLeaf() {
		v := x[c.featurePos_[n.feature]]
		child, ok := n.children[v]
		if !ok {
			if c.logger != nil {
				c.logger.Debug("unseen feature value, using majority fallback",
					log.OperationKey, "predict",
					"feature", n.feature,
					"value", v,
				)
			}
			return n.majority, nil
		}
		n = child
	}
	return n.label, nil
}

// PredictTable classifies every example of a table sharing the training
// schema and returns the predicted labels in table order.
func (c *ID3Classifier) PredictTable(t *dataset.Table) ([]string, error) {
	if !c.state.IsFitted() {
		return nil, errors.NewNotFittedError("ID3Classifier", "PredictTable")
	}
	if err := c.checkSchema("ID3Classifier.PredictTable", t); err != nil {
		return nil, err
	}
	preds := make([]string, t.NumExamples())
	for i := 0; i < t.NumExamples(); i++ {
		p, err := c.Predict(t.Example(i))
		if err != nil {
			return nil, err
		}
		preds[i] = p
	}
	return preds, nil
}

// Score returns the classification accuracy over a labeled table.
func (c *ID3Classifier) Score(t *dataset.Table) (float64, error) {
	preds, err := c.PredictTable(t)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyScore(t.Labels(), preds)
}

func (c *ID3Classifier) checkSchema(op string, t *dataset.Table) error {
	got := t.Features()
	if len(got) != len(c.features_) {
		return errors.NewSchemaMismatchError(op, c.features_, got)
	}
	for i := range got {
		if got[i] != c.features_[i] {
			return errors.NewSchemaMismatchError(op, c.features_, got)
		}
	}
	return nil
}

// IsFitted reports whether Fit has completed successfully.
func (c *ID3Classifier) IsFitted() bool {
	return c.state.IsFitted()
}

// Classes returns the decision labels in order of first appearance in the
// training table.
func (c *ID3Classifier) Classes() []string {
	out := make([]string, len(c.classes_))
	copy(out, c.classes_)
	return out
}

// Features returns the training feature schema in order.
func (c *ID3Classifier) Features() []string {
	out := make([]string, len(c.features_))
	copy(out, c.features_)
	return out
}

// GetDepth returns the depth of the fitted tree (a single leaf has
// depth 0).
func (c *ID3Classifier) GetDepth() int {
	if !c.state.IsFitted() {
		return 0
	}
	return c.root.depth()
}

// GetNLeaves returns the number of leaf nodes of the fitted tree.
func (c *ID3Classifier) GetNLeaves() int {
	if !c.state.IsFitted() {
		return 0
	}
	return c.root.countLeaves()
}

// GetNNodes returns the number of internal (decision) nodes of the fitted
// tree.
func (c *ID3Classifier) GetNNodes() int {
	if !c.state.IsFitted() {
		return 0
	}
	return c.root.countInternal()
}

// FitDuration returns the wall-clock time the last Fit took.
func (c *ID3Classifier) FitDuration() time.Duration {
	return c.fitTime_
}
