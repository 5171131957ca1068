// Package id3 provides ID3 decision-tree induction and evaluation for
// discrete tabular data.
//
// The library grows a classification tree by entropy-based recursive
// partitioning, classifies novel examples by traversing it, and measures
// predictive accuracy with random holdout splits, pre-supplied train/test
// tables, or k-fold cross-validation.
//
// # Quick start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/stratzilla/id3-decision-tree/dataset"
//	    "github.com/stratzilla/id3-decision-tree/model_selection"
//	)
//
//	func main() {
//	    tbl, err := dataset.Load("examples.csv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    report, err := model_selection.EvaluateHoldout(tbl, 0.7,
//	        model_selection.WithSeed(42))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Printf("test accuracy: %.3f\n", report.TestAccuracy)
//	}
//
// # Packages
//
//   - dataset: example tables, CSV ingestion, immutable views
//   - tree: the ID3 classifier, entropy/gain criterion, tree exports
//   - metrics: classification metrics (accuracy, confusion matrix)
//   - model_selection: holdout and k-fold splitters, evaluation harness
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging interface and slog setup
//
// The id3 command under cmd/id3 exposes the same strategies on the
// command line.
package id3
