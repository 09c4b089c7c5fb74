package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textprep/internal/corpus"
	"textprep/internal/domain"
	"textprep/internal/tokenize"
)

func writeCorpus(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newTestPipeline(t *testing.T, root string, opts Options) *Pipeline {
	t.Helper()
	loader := corpus.NewDirLoader(root, map[string]int{"neg": 0, "pos": 1}, zerolog.Nop())
	return New(loader, tokenize.NewWordTokenizer(), opts, zerolog.Nop())
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"train/neg/0.txt": "bad movie bad",
		"train/pos/0.txt": "good movie",
		"test/neg/0.txt":  "bad unseen movie",
		"test/pos/0.txt":  "good good good",
	})

	p := newTestPipeline(t, root, Options{TopNWords: 10, MaxLen: 5})
	res, err := p.Run("train", "test")
	require.NoError(t, err)

	// Vocabulary comes from the train split only: bad(2) movie(2) good(1),
	// ties broken by first encounter.
	require.Equal(t, 3, res.Vocabulary.Size())
	assert.Equal(t, []string{"bad", "movie", "good"}, res.Vocabulary.Tokens())
	_, ok := res.Vocabulary.Index("unseen")
	assert.False(t, ok)

	require.Len(t, res.Train.Matrix, 2)
	assert.Equal(t, []int{0, 0, 1, 2, 1}, res.Train.Matrix[0])
	assert.Equal(t, []int{0, 0, 0, 3, 2}, res.Train.Matrix[1])
	assert.Equal(t, []int{0, 1}, res.Train.Labels)

	// "unseen" is dropped from the test document before padding.
	require.Len(t, res.Test.Matrix, 2)
	assert.Equal(t, []int{0, 0, 0, 1, 2}, res.Test.Matrix[0])
	assert.Equal(t, []int{0, 0, 3, 3, 3}, res.Test.Matrix[1])
	assert.Equal(t, []int{0, 1}, res.Test.Labels)

	require.Len(t, res.Summaries, 2)
	assert.Equal(t, "train", res.Summaries[0].Split)
	assert.Equal(t, "test", res.Summaries[1].Split)
	assert.InDelta(t, 1.0, res.Summaries[0].Coverage, 1e-9)
}

func TestRunTruncatesLongDocuments(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"train/neg/0.txt": "a b c d e f",
		"train/pos/0.txt": "a b",
		"test/neg/0.txt":  "a",
		"test/pos/0.txt":  "b",
	})

	p := newTestPipeline(t, root, Options{TopNWords: 10, MaxLen: 3})
	res, err := p.Run("train", "test")
	require.NoError(t, err)
	for _, row := range res.Train.Matrix {
		assert.Len(t, row, 3)
	}
	// Front truncation keeps the last three tokens: d e f.
	assert.Equal(t, []int{4, 5, 6}, res.Train.Matrix[0])
}

func TestRunWithFrozenVocabulary(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"train/neg/0.txt": "bad movie bad",
		"train/pos/0.txt": "good movie",
		"test/neg/0.txt":  "bad movie",
		"test/pos/0.txt":  "good movie",
	})

	p := newTestPipeline(t, root, Options{TopNWords: 10, MaxLen: 4})
	first, err := p.Run("train", "test")
	require.NoError(t, err)

	vocabPath := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, first.Vocabulary.Save(vocabPath))

	frozen := newTestPipeline(t, root, Options{TopNWords: 10, MaxLen: 4, VocabPath: vocabPath})
	second, err := frozen.Run("train", "test")
	require.NoError(t, err)

	assert.Equal(t, first.Vocabulary.Tokens(), second.Vocabulary.Tokens())
	assert.Equal(t, first.Train.Matrix, second.Train.Matrix)
	assert.Equal(t, first.Test.Matrix, second.Test.Matrix)
}

func TestRunMissingSplit(t *testing.T) {
	root := t.TempDir()
	writeCorpus(t, root, map[string]string{
		"train/neg/0.txt": "bad movie",
		"train/pos/0.txt": "good movie",
	})

	p := newTestPipeline(t, root, Options{TopNWords: 10, MaxLen: 3})
	_, err := p.Run("train", "test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingData))
}

func TestRunRejectsInvalidMaxLen(t *testing.T) {
	p := newTestPipeline(t, t.TempDir(), Options{TopNWords: 10, MaxLen: 0})
	_, err := p.Run("train", "test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}
