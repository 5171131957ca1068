package model_selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFold_EqualFolds(t *testing.T) {
	kf := NewKFold(5, false, 0)
	folds := kf.Split(150)

	require.Len(t, folds, 5)
	seen := make(map[int]int)
	for _, fold := range folds {
		assert.Len(t, fold.TestIndices, 30)
		assert.Len(t, fold.TrainIndices, 120)
		for _, idx := range fold.TestIndices {
			seen[idx]++
		}
	}

	// Every example appears in exactly one test fold.
	require.Len(t, seen, 150)
	for idx, count := range seen {
		assert.Equalf(t, 1, count, "index %d tested %d times", idx, count)
	}
}

func TestKFold_Remainder(t *testing.T) {
	kf := NewKFold(3, false, 0)
	folds := kf.Split(10)

	// 10 mod 3 = 1 extra example goes to the first fold.
	assert.Len(t, folds[0].TestIndices, 4)
	assert.Len(t, folds[1].TestIndices, 3)
	assert.Len(t, folds[2].TestIndices, 3)
}

func TestKFold_TrainTestDisjoint(t *testing.T) {
	kf := NewKFold(4, true, 9)
	folds := kf.Split(21)

	for i, fold := range folds {
		inTest := make(map[int]bool, len(fold.TestIndices))
		for _, idx := range fold.TestIndices {
			inTest[idx] = true
		}
		for _, idx := range fold.TrainIndices {
			assert.Falsef(t, inTest[idx], "fold %d: index %d in both train and test", i, idx)
		}
		assert.Len(t, fold.TrainIndices, 21-len(fold.TestIndices))
	}
}

func TestKFold_ShuffleDeterministicPerSeed(t *testing.T) {
	first := NewKFold(5, true, 42).Split(50)
	second := NewKFold(5, true, 42).Split(50)
	assert.Equal(t, first, second)

	third := NewKFold(5, true, 43).Split(50)
	assert.NotEqual(t, first, third, "different seeds should shuffle differently")
}

func TestNewKFold_ClampsLowSplits(t *testing.T) {
	kf := NewKFold(1, false, 0)
	assert.Equal(t, 5, kf.GetNSplits())
}
