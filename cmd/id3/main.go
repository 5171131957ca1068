// Command id3 induces a decision tree from a delimited table of discrete
// examples and reports its predictive accuracy under a chosen evaluation
// strategy: random holdout, separate train/test files, or k-fold
// cross-validation.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
