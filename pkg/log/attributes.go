// Standard attribute keys for induction and evaluation logging. Using these
// keys keeps field names consistent across packages and makes run logs easy
// to filter.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "ID3Classifier".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "score", "cross_validate".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "tree", "model_selection", "dataset".
	ComponentKey = "ml.component"
)

// Data shape.
const (
	// SamplesKey is the number of examples in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features in the schema.
	FeaturesKey = "data.features"

	// ClassesKey is the number of distinct decision labels.
	ClassesKey = "data.classes"

	// SourceKey is the file or reader the dataset was loaded from.
	SourceKey = "data.source"
)

// Evaluation results.
const (
	// AccuracyKey is a classification accuracy in [0, 1].
	AccuracyKey = "metric.accuracy"

	// FoldKey is the zero-based index of a cross-validation fold.
	FoldKey = "cv.fold"

	// FoldsKey is the total number of cross-validation folds.
	FoldsKey = "cv.folds"

	// TrainRatioKey is the holdout training proportion.
	TrainRatioKey = "split.train_ratio"

	// SeedKey is the random seed used for shuffling.
	SeedKey = "split.seed"
)

// Tree shape and performance.
const (
	// DepthKey is the depth of a fitted tree.
	DepthKey = "tree.depth"

	// LeavesKey is the number of leaf nodes in a fitted tree.
	LeavesKey = "tree.leaves"

	// NodesKey is the number of internal (decision) nodes.
	NodesKey = "tree.nodes"

	// DurationMsKey is the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
