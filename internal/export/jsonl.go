package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"textprep/internal/domain"
)

// JSONLSink writes one <split>.jsonl file per split, one object per
// document: {"label": 0, "sequence": [0, 0, 1]}.
type JSONLSink struct {
	dir string
}

// NewJSONLSink creates a sink writing JSON Lines files under dir.
func NewJSONLSink(dir string) *JSONLSink { return &JSONLSink{dir: dir} }

// Name returns the identifier of this sink implementation.
func (s *JSONLSink) Name() string { return "jsonl" }

type jsonlRow struct {
	Label    int   `json:"label"`
	Sequence []int `json:"sequence"`
}

// WriteSplit writes <split>.jsonl under the sink directory.
func (s *JSONLSink) WriteSplit(split domain.Split) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.dir, split.Name+".jsonl"))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	for i, row := range split.Matrix {
		if err := enc.Encode(jsonlRow{Label: split.Labels[i], Sequence: row}); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
