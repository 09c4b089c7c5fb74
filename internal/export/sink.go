package export

import (
	"fmt"

	"textprep/internal/domain"
)

// NewSink returns the sink for the configured output format, writing under
// dir.
func NewSink(format, dir string) (domain.Sink, error) {
	switch format {
	case "csv":
		return NewCSVSink(dir), nil
	case "jsonl":
		return NewJSONLSink(dir), nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", domain.ErrInvalidConfig, format)
	}
}
