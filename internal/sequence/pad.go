package sequence

import (
	"fmt"

	"textprep/internal/domain"
	"textprep/internal/vocab"
)

// Pad fits seq into exactly maxLen cells. Sequences longer than maxLen keep
// only their last maxLen entries; shorter ones are left-padded with the
// padding index. Pure function over its inputs.
func Pad(seq domain.EncodedSequence, maxLen int) (domain.EncodedSequence, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("%w: max_len must be positive, got %d", domain.ErrInvalidConfig, maxLen)
	}
	row := make(domain.EncodedSequence, maxLen)
	if len(seq) >= maxLen {
		copy(row, seq[len(seq)-maxLen:])
		return row, nil
	}
	offset := maxLen - len(seq)
	for i := 0; i < offset; i++ {
		row[i] = vocab.PaddingIndex
	}
	copy(row[offset:], seq)
	return row, nil
}

// Matrix pads every sequence to maxLen and stacks the rows into a
// FeatureMatrix with one row per input sequence.
func Matrix(seqs []domain.EncodedSequence, maxLen int) (domain.FeatureMatrix, error) {
	matrix := make(domain.FeatureMatrix, len(seqs))
	for i, seq := range seqs {
		row, err := Pad(seq, maxLen)
		if err != nil {
			return nil, err
		}
		matrix[i] = row
	}
	return matrix, nil
}
