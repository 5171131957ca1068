package tree

import (
	"math"
	"testing"

	"github.com/stratzilla/id3-decision-tree/dataset"
)

// tennisTable builds the classic 14-example play-tennis dataset.
func tennisTable(t *testing.T) *dataset.Table {
	t.Helper()
	header := []string{"Outlook", "Temperature", "Humidity", "Wind", "PlayTennis"}
	rows := [][]string{
		{"sunny", "hot", "high", "weak", "no"},
		{"sunny", "hot", "high", "strong", "no"},
		{"overcast", "hot", "high", "weak", "yes"},
		{"rain", "mild", "high", "weak", "yes"},
		{"rain", "cool", "normal", "weak", "yes"},
		{"rain", "cool", "normal", "strong", "no"},
		{"overcast", "cool", "normal", "strong", "yes"},
		{"sunny", "mild", "high", "weak", "no"},
		{"sunny", "cool", "normal", "weak", "yes"},
		{"rain", "mild", "normal", "weak", "yes"},
		{"sunny", "mild", "normal", "strong", "yes"},
		{"overcast", "mild", "high", "strong", "yes"},
		{"overcast", "hot", "normal", "weak", "yes"},
		{"rain", "mild", "high", "strong", "no"},
	}
	tbl, err := dataset.New(header, rows)
	if err != nil {
		t.Fatalf("failed to build tennis table: %v", err)
	}
	return tbl
}

func mustTable(t *testing.T, header []string, rows [][]string) *dataset.Table {
	t.Helper()
	tbl, err := dataset.New(header, rows)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return tbl
}

func TestEntropy(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   float64
	}{
		{
			name:   "Single label is pure",
			labels: []string{"yes", "yes", "yes", "yes"},
			want:   0.0,
		},
		{
			name:   "Even binary split is one bit",
			labels: []string{"yes", "no", "yes", "no"},
			want:   1.0,
		},
		{
			name:   "Tennis distribution 9/5",
			labels: []string{"yes", "yes", "yes", "yes", "yes", "yes", "yes", "yes", "yes", "no", "no", "no", "no", "no"},
			want:   0.940286,
		},
		{
			name:   "Uniform four labels is two bits",
			labels: []string{"a", "b", "c", "d"},
			want:   2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([][]string, len(tt.labels))
			for i, label := range tt.labels {
				rows[i] = []string{"x", label}
			}
			tbl := mustTable(t, []string{"F1", "D"}, rows)

			got := entropy(tbl)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInformationGain_Tennis(t *testing.T) {
	tbl := tennisTable(t)

	gain := informationGain(tbl, "Outlook")
	if math.Abs(gain-0.246750) > 1e-6 {
		t.Errorf("informationGain(Outlook) = %v, want 0.246750", gain)
	}

	// The canonical tennis feature ranking.
	outlook := informationGain(tbl, "Outlook")
	humidity := informationGain(tbl, "Humidity")
	wind := informationGain(tbl, "Wind")
	temperature := informationGain(tbl, "Temperature")

	if !(outlook > humidity && humidity > wind && wind > temperature) {
		t.Errorf("expected gain ordering Outlook > Humidity > Wind > Temperature, got %v %v %v %v",
			outlook, humidity, wind, temperature)
	}
}

func TestInformationGain_NonNegative(t *testing.T) {
	tbl := tennisTable(t)
	for _, f := range tbl.Features() {
		if gain := informationGain(tbl, f); gain < 0 {
			t.Errorf("informationGain(%s) = %v, want >= 0", f, gain)
		}
	}
}

func TestBestFeature_Tennis(t *testing.T) {
	tbl := tennisTable(t)
	if best := bestFeature(tbl, tbl.Features()); best != "Outlook" {
		t.Errorf("bestFeature() = %v, want Outlook", best)
	}
}

// Identical columns have exactly equal gains; the feature listed first in
// the schema must win.
func TestBestFeature_TieBreaksTowardSchemaOrder(t *testing.T) {
	tbl := mustTable(t,
		[]string{"F1", "F2", "D"},
		[][]string{
			{"a", "a", "yes"},
			{"a", "a", "yes"},
			{"b", "b", "no"},
			{"b", "b", "no"},
		})

	if best := bestFeature(tbl, tbl.Features()); best != "F1" {
		t.Errorf("bestFeature() = %v, want F1 (first-listed wins ties)", best)
	}

	// The tie-break follows the candidate list, not gain magnitude.
	if best := bestFeature(tbl, []string{"F2", "F1"}); best != "F2" {
		t.Errorf("bestFeature() = %v, want F2 when listed first", best)
	}
}
