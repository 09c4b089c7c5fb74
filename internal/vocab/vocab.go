package vocab

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"textprep/internal/domain"
)

// PaddingIndex is the reserved row filler. Real tokens start at index 1, so
// a padded cell can never collide with a vocabulary entry. Adding an
// out-of-vocabulary sentinel later would claim another reserved index and
// change the persisted format.
const PaddingIndex = 0

// Vocabulary is a frozen mapping from token to a dense integer index.
// Indices form the contiguous range 1..Size(), assigned in descending
// corpus-frequency order with ties kept in first-encountered order.
type Vocabulary struct {
	indices map[string]int
	tokens  []string
}

// Build scans the corpus, counts token frequency and returns a Vocabulary of
// the topN most frequent tokens. When fewer than topN distinct tokens exist,
// all of them are kept. Deterministic given identical corpus ordering.
func Build(corpus []string, topN int, tokenizer domain.Tokenizer) (*Vocabulary, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("%w: top_n_words must be positive, got %d", domain.ErrInvalidConfig, topN)
	}
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, text := range corpus {
		for _, tok := range tokenizer.Tokenize(text) {
			if _, ok := counts[tok]; !ok {
				firstSeen[tok] = len(firstSeen)
			}
			counts[tok]++
		}
	}
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	// Descending frequency, ties in first-encountered order.
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})
	if len(terms) > topN {
		terms = terms[:topN]
	}
	return fromTokens(terms), nil
}

func fromTokens(tokens []string) *Vocabulary {
	v := &Vocabulary{
		indices: make(map[string]int, len(tokens)),
		tokens:  tokens,
	}
	for i, tok := range tokens {
		v.indices[tok] = i + 1
	}
	return v
}

// Index returns the vocabulary index of token, if present.
func (v *Vocabulary) Index(token string) (int, bool) {
	idx, ok := v.indices[token]
	return idx, ok
}

// Token returns the token at index, if it is in range 1..Size().
func (v *Vocabulary) Token(index int) (string, bool) {
	if index < 1 || index > len(v.tokens) {
		return "", false
	}
	return v.tokens[index-1], true
}

// Size returns the number of real tokens, excluding the padding index.
func (v *Vocabulary) Size() int { return len(v.tokens) }

// Tokens returns the tokens in index order (index 1 first).
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

type vocabFile struct {
	Tokens []string `yaml:"tokens"`
}

// Save writes the vocabulary to path as YAML, tokens listed in index order,
// creating directories as needed.
func (v *Vocabulary) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(vocabFile{Tokens: v.tokens})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads a vocabulary previously written by Save.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f vocabFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	return fromTokens(f.Tokens), nil
}
