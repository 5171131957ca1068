package tree

import (
	"math"

	"github.com/stratzilla/id3-decision-tree/dataset"
)

// entropy computes the Shannon entropy (base 2) of the decision-label
// distribution in t:
//
//	H(S) = Σ -p(x) * log2(p(x))
//
// A set with a single distinct label has entropy 0. Callers guarantee a
// non-empty view.
func entropy(t *dataset.Table) float64 {
	counts := make(map[string]int)
	for _, label := range t.Labels() {
		counts[label]++
	}
	n := float64(t.NumExamples())
	var h float64
	for _, c := range counts {
		p := float64(c) / n
		h += -p * math.Log2(p)
	}
	return h
}

// informationGain computes the entropy reduction achieved by partitioning t
// on a feature:
//
//	IG(S,A) = H(S) - Σ |S_v|/|S| * H(S_v)
//
// The result is never negative: partitioning cannot increase entropy.
func informationGain(t *dataset.Table, feature string) float64 {
	parts, _ := t.Partition(feature)
	n := float64(t.NumExamples())
	var weighted float64
	for _, part := range parts {
		weighted += float64(part.NumExamples()) / n * entropy(part)
	}
	return entropy(t) - weighted
}

// bestFeature returns the feature with maximal information gain. Gain ties
// break toward the feature listed first in the schema: the loop keeps the
// earliest maximum by replacing only on strictly greater gain. Floating
// point gains can compare exactly equal, so the rule matters for
// reproducible trees.
func bestFeature(t *dataset.Table, features []string) string {
	best := features[0]
	bestGain := math.Inf(-1)
	for _, f := range features {
		if gain := informationGain(t, f); gain > bestGain {
			best = f
			bestGain = gain
		}
	}
	return best
}
