package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textprep/internal/domain"
)

func TestPadShortSequence(t *testing.T) {
	row, err := Pad([]int{1, 2, 1}, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2, 1}, row)
}

func TestPadTruncatesFromFront(t *testing.T) {
	row, err := Pad([]int{1, 2, 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, row)
}

func TestPadExactLength(t *testing.T) {
	row, err := Pad([]int{4, 5, 6}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, row)
}

func TestPadEmptySequence(t *testing.T) {
	row, err := Pad(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, row)
}

func TestPadRejectsNonPositiveMaxLen(t *testing.T) {
	for _, maxLen := range []int{0, -1} {
		_, err := Pad([]int{1}, maxLen)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	}
}

func TestPadDoesNotAliasInput(t *testing.T) {
	seq := []int{7, 8, 9}
	row, err := Pad(seq, 3)
	require.NoError(t, err)
	row[0] = 42
	assert.Equal(t, []int{7, 8, 9}, seq)
}

func TestMatrixWidthIsConstant(t *testing.T) {
	seqs := []domain.EncodedSequence{
		{1, 2, 1},
		{5},
		nil,
		{1, 2, 3, 4, 5, 6, 7},
	}
	matrix, err := Matrix(seqs, 5)
	require.NoError(t, err)
	require.Len(t, matrix, len(seqs))
	for _, row := range matrix {
		assert.Len(t, row, 5)
	}
	assert.Equal(t, []int{0, 0, 1, 2, 1}, matrix[0])
	assert.Equal(t, []int{0, 0, 0, 0, 5}, matrix[1])
	assert.Equal(t, []int{0, 0, 0, 0, 0}, matrix[2])
	assert.Equal(t, []int{3, 4, 5, 6, 7}, matrix[3])
}

func TestMatrixPropagatesInvalidMaxLen(t *testing.T) {
	_, err := Matrix([]domain.EncodedSequence{{1}}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}
