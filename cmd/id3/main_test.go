package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTennisCSV(t *testing.T) string {
	t.Helper()
	content := "Outlook,Temperature,Humidity,Wind,PlayTennis\n" +
		"sunny,hot,high,weak,no\n" +
		"sunny,hot,high,strong,no\n" +
		"overcast,hot,high,weak,yes\n" +
		"rain,mild,high,weak,yes\n" +
		"rain,cool,normal,weak,yes\n" +
		"rain,cool,normal,strong,no\n" +
		"overcast,cool,normal,strong,yes\n" +
		"sunny,mild,high,weak,no\n" +
		"sunny,cool,normal,weak,yes\n" +
		"rain,mild,normal,weak,yes\n" +
		"sunny,mild,normal,strong,yes\n" +
		"overcast,mild,high,strong,yes\n" +
		"overcast,hot,normal,weak,yes\n" +
		"rain,mild,high,strong,no\n"
	path := filepath.Join(t.TempDir(), "tennis.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, err := execute(t)
	assert.Error(t, err, "no arguments must produce a usage reminder and an error")
	assert.Contains(t, out, "Usage:")
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	file := writeTennisCSV(t)
	_, err := execute(t, "--log-level", "bogus", "holdout", file)
	require.Error(t, err, "an unknown level name must fail the run, not crash it")
	assert.Contains(t, err.Error(), "log-level")
}

func TestHoldoutCmd(t *testing.T) {
	file := writeTennisCSV(t)
	out, err := execute(t, "holdout", file, "--ratio", "0.7", "--seed", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Using holdout style training, 70.0% training data.")
	assert.Contains(t, out, "Using 10 training examples and 4 testing examples.")
	assert.Contains(t, out, "of training data.")
	assert.Contains(t, out, "of testing data.")
}

func TestHoldoutCmd_PrintTree(t *testing.T) {
	file := writeTennisCSV(t)
	out, err := execute(t, "holdout", file, "--ratio", "1.0", "--print")
	require.NoError(t, err)

	// Full training data: the canonical tennis tree is induced and both
	// renderings are printed.
	assert.Contains(t, out, "{Outlook: {")
	assert.Contains(t, out, "Outlook\n")
	assert.Contains(t, out, "undefined% (empty example set)")
}

func TestHoldoutCmd_InvalidRatio(t *testing.T) {
	file := writeTennisCSV(t)
	_, err := execute(t, "holdout", file, "--ratio", "1.5")
	assert.Error(t, err)
}

func TestHoldoutCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "holdout", filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestTrainTestCmd(t *testing.T) {
	train := writeTennisCSV(t)
	test := writeTennisCSV(t)
	out, err := execute(t, "traintest", train, test)
	require.NoError(t, err)

	assert.Contains(t, out, "Using separate training and testing sets.")
	assert.Contains(t, out, "Using 14 training examples and 14 testing examples.")
	assert.Contains(t, out, "Was able to classify 100.0% of testing data.")
}

func TestCrossvalCmd(t *testing.T) {
	file := writeTennisCSV(t)
	out, err := execute(t, "crossval", file, "--folds", "7", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Using 7-fold cross-validation.")
	assert.Contains(t, out, "Fold 1/7 accuracy:")
	assert.Contains(t, out, "Mean accuracy across 7 folds:")
}

func TestCrossvalCmd_FoldsOutOfRange(t *testing.T) {
	file := writeTennisCSV(t)
	_, err := execute(t, "crossval", file, "--folds", "11")
	assert.Error(t, err)
}

func TestRunCmd_Config(t *testing.T) {
	file := writeTennisCSV(t)
	config := "mode: crossval\n" +
		"data:\n" +
		"  file: " + file + "\n" +
		"crossval:\n" +
		"  folds: 2\n" +
		"  shuffle: true\n" +
		"seed: 7\n"
	configPath := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	out, err := execute(t, "run", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Mean accuracy across 2 folds:")
}

func TestRunCmd_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "exp.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("mode: bogus\n"), 0o644))

	_, err := execute(t, "run", "--config", configPath)
	assert.Error(t, err)
}

func TestExperiment_Validate(t *testing.T) {
	exp := &Experiment{Mode: "holdout"}
	assert.Error(t, exp.Validate(), "holdout mode requires data.file")

	exp.Data.File = "x.csv"
	assert.NoError(t, exp.Validate())

	tt := &Experiment{Mode: "traintest"}
	tt.Data.Train = "train.csv"
	assert.Error(t, tt.Validate(), "traintest mode requires both files")
	tt.Data.Test = "test.csv"
	assert.NoError(t, tt.Validate())
}
