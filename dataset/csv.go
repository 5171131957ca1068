package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/stratzilla/id3-decision-tree/pkg/errors"
)

// Load reads a delimited table from a file. The first record names the
// features followed by the decision column; every cell is kept as a string
// so that discrete domains are inferred from the data, never coerced.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.Load: could not open %q", path)
	}
	defer f.Close()
	return fromCSV(f, path)
}

// FromCSV reads a delimited table from r. See Load for the expected layout.
func FromCSV(r io.Reader) (*Table, error) {
	return fromCSV(r, "")
}

func fromCSV(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: could not parse %q", source)
	}
	if len(records) == 0 {
		return nil, errors.NewEmptyDatasetError("dataset.Load", source)
	}
	header := trimCells(records[0])
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, trimCells(rec))
	}
	if len(rows) == 0 {
		return nil, errors.NewEmptyDatasetError("dataset.Load", source)
	}
	return newTable(header, rows, source)
}

func trimCells(rec []string) []string {
	out := make([]string, len(rec))
	for i, c := range rec {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
