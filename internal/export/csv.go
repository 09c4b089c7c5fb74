package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"textprep/internal/domain"
)

// CSVSink writes one features file and one labels file per split. The
// features file has one row per document, max_len columns; the labels file
// has one label per row, in the same document order.
type CSVSink struct {
	dir string
}

// NewCSVSink creates a sink writing CSV files under dir.
func NewCSVSink(dir string) *CSVSink { return &CSVSink{dir: dir} }

// Name returns the identifier of this sink implementation.
func (s *CSVSink) Name() string { return "csv" }

// WriteSplit writes features_<split>.csv and labels_<split>.csv.
func (s *CSVSink) WriteSplit(split domain.Split) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	features := make([][]string, len(split.Matrix))
	for i, row := range split.Matrix {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = strconv.Itoa(v)
		}
		features[i] = record
	}
	if err := writeCSV(filepath.Join(s.dir, "features_"+split.Name+".csv"), features); err != nil {
		return err
	}
	labels := make([][]string, len(split.Labels))
	for i, l := range split.Labels {
		labels[i] = []string{strconv.Itoa(l)}
	}
	return writeCSV(filepath.Join(s.dir, "labels_"+split.Name+".csv"), labels)
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
