package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratzilla/id3-decision-tree/pkg/errors"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := New(
		[]string{"F1", "F2", "D"},
		[][]string{
			{"a", "x", "yes"},
			{"a", "y", "no"},
			{"b", "x", "no"},
			{"b", "y", "no"},
			{"a", "x", "yes"},
		})
	require.NoError(t, err)
	return tbl
}

func TestNew_Validation(t *testing.T) {
	_, err := New([]string{"D"}, nil)
	assert.Error(t, err, "a lone decision column is not a schema")

	_, err = New([]string{"F1", "F1", "D"}, nil)
	assert.Error(t, err, "duplicate column names must be rejected")

	_, err = New([]string{"F1", "D"}, [][]string{{"a", "yes", "extra"}})
	assert.Error(t, err, "row width must match the header")
}

func TestTable_Schema(t *testing.T) {
	tbl := sampleTable(t)

	assert.Equal(t, 5, tbl.NumExamples())
	assert.Equal(t, 2, tbl.NumFeatures())
	assert.Equal(t, []string{"F1", "F2"}, tbl.Features())
	assert.Equal(t, "D", tbl.DecisionName())
}

func TestTable_Accessors(t *testing.T) {
	tbl := sampleTable(t)

	assert.Equal(t, Example{"a", "x", "yes"}, tbl.Example(0))
	assert.Equal(t, "no", tbl.Label(1))
	assert.Equal(t, "b", tbl.Value(2, "F1"))
	assert.Equal(t, []string{"yes", "no", "no", "no", "yes"}, tbl.Labels())
}

func TestTable_Select(t *testing.T) {
	tbl := sampleTable(t)
	view := tbl.Select([]int{0, 2, 4})

	assert.Equal(t, 3, view.NumExamples())
	assert.Equal(t, []string{"yes", "no", "yes"}, view.Labels())

	// Selecting from a view composes positions, not backing indices.
	sub := view.Select([]int{1})
	assert.Equal(t, []string{"no"}, sub.Labels())
	assert.Equal(t, "b", sub.Value(0, "F1"))

	// The source view is untouched.
	assert.Equal(t, 5, tbl.NumExamples())
}

func TestTable_Partition(t *testing.T) {
	tbl := sampleTable(t)
	parts, order := tbl.Partition("F1")

	assert.Equal(t, []string{"a", "b"}, order, "values in order of first appearance")
	require.Len(t, parts, 2)
	assert.Equal(t, 3, parts["a"].NumExamples())
	assert.Equal(t, 2, parts["b"].NumExamples())
	assert.Equal(t, []string{"yes", "no", "yes"}, parts["a"].Labels())
}

func TestTable_ClassValues(t *testing.T) {
	tbl := sampleTable(t)
	assert.Equal(t, []string{"yes", "no"}, tbl.ClassValues())
}

func TestTable_MajorityLabel(t *testing.T) {
	tbl := sampleTable(t)
	assert.Equal(t, "no", tbl.MajorityLabel())

	// Ties break toward the label appearing first.
	tied, err := New(
		[]string{"F1", "D"},
		[][]string{
			{"a", "b-label"},
			{"a", "a-label"},
			{"a", "a-label"},
			{"a", "b-label"},
		})
	require.NoError(t, err)
	assert.Equal(t, "b-label", tied.MajorityLabel())
}

func TestTable_CheckSchema(t *testing.T) {
	tbl := sampleTable(t)

	same, err := New([]string{"F1", "F2", "Decision"}, [][]string{{"a", "x", "1"}})
	require.NoError(t, err)
	assert.NoError(t, tbl.CheckSchema("test", same),
		"decision column name is irrelevant, only features are compared")

	different, err := New([]string{"F1", "F3", "D"}, [][]string{{"a", "x", "1"}})
	require.NoError(t, err)
	err = tbl.CheckSchema("test", different)
	require.Error(t, err)
	var sm *errors.SchemaMismatchError
	assert.True(t, errors.As(err, &sm))
}
