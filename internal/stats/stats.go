package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"textprep/internal/domain"
)

// Summary describes a prepared split: how many documents and tokens it has,
// how much of it the vocabulary covers, and how encoded lengths distribute.
type Summary struct {
	Split      string
	Documents  int
	TotalToken int
	KeptToken  int
	Coverage   float64
	MeanLen    float64
	MedianLen  float64
	P90Len     float64
}

// Summarize computes a Summary for one split. seqs must be the encoded form
// of docs, in the same order.
func Summarize(split string, docs []domain.Document, seqs []domain.EncodedSequence, tokenizer domain.Tokenizer) Summary {
	s := Summary{Split: split, Documents: len(docs)}
	lengths := make([]float64, len(seqs))
	for i, seq := range seqs {
		s.KeptToken += len(seq)
		lengths[i] = float64(len(seq))
	}
	for _, d := range docs {
		s.TotalToken += len(tokenizer.Tokenize(d.Text))
	}
	if s.TotalToken > 0 {
		s.Coverage = float64(s.KeptToken) / float64(s.TotalToken)
	}
	if len(lengths) > 0 {
		s.MeanLen = stat.Mean(lengths, nil)
		sort.Float64s(lengths)
		s.MedianLen = stat.Quantile(0.5, stat.Empirical, lengths, nil)
		s.P90Len = stat.Quantile(0.9, stat.Empirical, lengths, nil)
	}
	return s
}

// String renders a one-line summary for logs and the inspector header.
func (s Summary) String() string {
	return fmt.Sprintf("%s: %d docs, %d/%d tokens kept (%.1f%% coverage), len mean %.1f median %.0f p90 %.0f",
		s.Split, s.Documents, s.KeptToken, s.TotalToken, s.Coverage*100, s.MeanLen, s.MedianLen, s.P90Len)
}
