// Package dataset provides the in-memory example table consumed by tree
// induction and evaluation. A Table is an immutable view over rows of
// discrete string-valued cells; the decision label is always the last
// column. Subsetting operations (Select, Partition) share the backing rows
// and never copy or mutate cell data.
package dataset

import (
	"github.com/stratzilla/id3-decision-tree/pkg/errors"
)

// Example is one row of feature values, with the decision label in the
// last position. Test examples passed to a classifier may carry the label;
// prediction only reads the feature positions.
type Example []string

// Table is an immutable set of examples sharing one feature schema.
type Table struct {
	header  []string       // all column names, decision last
	rows    [][]string     // backing rows, shared between views
	idx     []int          // view into rows
	colPos  map[string]int // column name -> position
	nameTag string         // source name for error reporting, may be empty
}

// New creates a Table from a header row and data rows. The last header
// column names the decision; the rest name features in schema order. Every
// row must have exactly len(header) cells.
func New(header []string, rows [][]string) (*Table, error) {
	return newTable(header, rows, "")
}

func newTable(header []string, rows [][]string, source string) (*Table, error) {
	if len(header) < 2 {
		return nil, errors.NewValueError("dataset.New", "header must name at least one feature and the decision column")
	}
	for _, row := range rows {
		if len(row) != len(header) {
			return nil, errors.NewDimensionError("dataset.New", len(header), len(row), 1)
		}
	}
	colPos := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := colPos[name]; dup {
			return nil, errors.NewValueError("dataset.New", "duplicate column name: "+name)
		}
		colPos[name] = i
	}
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	return &Table{
		header:  header,
		rows:    rows,
		idx:     idx,
		colPos:  colPos,
		nameTag: source,
	}, nil
}

// NumExamples returns the number of examples in this view.
func (t *Table) NumExamples() int {
	return len(t.idx)
}

// NumFeatures returns the number of features, excluding the decision column.
func (t *Table) NumFeatures() int {
	return len(t.header) - 1
}

// Features returns the ordered feature schema, excluding the decision
// column. The returned slice is a copy.
func (t *Table) Features() []string {
	features := make([]string, t.NumFeatures())
	copy(features, t.header[:len(t.header)-1])
	return features
}

// DecisionName returns the name of the decision column.
func (t *Table) DecisionName() string {
	return t.header[len(t.header)-1]
}

// Source returns the origin of the table (e.g. a file path), if recorded.
func (t *Table) Source() string {
	return t.nameTag
}

// Example returns the i-th example of this view, label included.
func (t *Table) Example(i int) Example {
	return Example(t.rows[t.idx[i]])
}

// Label returns the decision label of the i-th example of this view.
func (t *Table) Label(i int) string {
	return t.rows[t.idx[i]][len(t.header)-1]
}

// Labels returns the decision labels of all examples in view order.
func (t *Table) Labels() []string {
	labels := make([]string, len(t.idx))
	for i := range t.idx {
		labels[i] = t.Label(i)
	}
	return labels
}

// Value returns the i-th example's value for the named feature.
// It panics if the feature is not part of the schema; callers resolve
// feature names against the same table they index into.
func (t *Table) Value(i int, feature string) string {
	return t.rows[t.idx[i]][t.colPos[feature]]
}

// Select returns a view containing the examples at the given positions of
// this view. The backing rows are shared, never copied.
func (t *Table) Select(positions []int) *Table {
	idx := make([]int, len(positions))
	for i, p := range positions {
		idx[i] = t.idx[p]
	}
	return &Table{
		header:  t.header,
		rows:    t.rows,
		idx:     idx,
		colPos:  t.colPos,
		nameTag: t.nameTag,
	}
}

// Partition splits this view by the distinct observed values of a feature.
// It returns one sub-view per value plus the values in order of first
// appearance, so iteration can stay deterministic.
func (t *Table) Partition(feature string) (map[string]*Table, []string) {
	byValue := make(map[string][]int)
	var order []string
	for i := range t.idx {
		v := t.Value(i, feature)
		if _, seen := byValue[v]; !seen {
			order = append(order, v)
		}
		byValue[v] = append(byValue[v], i)
	}
	parts := make(map[string]*Table, len(byValue))
	for v, positions := range byValue {
		parts[v] = t.Select(positions)
	}
	return parts, order
}

// ClassValues returns the distinct decision labels in order of first
// appearance within this view.
func (t *Table) ClassValues() []string {
	seen := make(map[string]bool)
	var classes []string
	for i := range t.idx {
		label := t.Label(i)
		if !seen[label] {
			seen[label] = true
			classes = append(classes, label)
		}
	}
	return classes
}

// MajorityLabel returns the most frequent decision label in this view.
// Ties break toward the label appearing first in view order, which is
// fixed for the lifetime of the view.
func (t *Table) MajorityLabel() string {
	counts := make(map[string]int)
	for i := range t.idx {
		counts[t.Label(i)]++
	}
	var best string
	bestCount := -1
	for _, label := range t.ClassValues() {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// CheckSchema verifies that other shares this table's feature schema (same
// names, same order). The decision column name is not compared; only its
// position matters.
func (t *Table) CheckSchema(op string, other *Table) error {
	want := t.Features()
	got := other.Features()
	if len(want) != len(got) {
		return errors.NewSchemaMismatchError(op, want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			return errors.NewSchemaMismatchError(op, want, got)
		}
	}
	return nil
}
