package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"textprep/internal/domain"
	"textprep/internal/encode"
	"textprep/internal/sequence"
	"textprep/internal/stats"
	"textprep/internal/vocab"
)

// Options control one pipeline run.
type Options struct {
	TopNWords int
	MaxLen    int
	// VocabPath, when set, names a frozen vocabulary to reuse instead of
	// building one from the train split.
	VocabPath string
}

// Result is everything a run produces: both prepared splits, the vocabulary
// they were encoded with, and per-split summaries.
type Result struct {
	Train      domain.Split
	Test       domain.Split
	Vocabulary *vocab.Vocabulary
	Summaries  []stats.Summary
}

// Pipeline wires loader, tokenizer, vocabulary, encoder and normalizer into
// the one-shot batch flow: load → build vocabulary on train → encode and pad
// both splits.
type Pipeline struct {
	loader    domain.Loader
	tokenizer domain.Tokenizer
	opts      Options
	log       zerolog.Logger
}

// New creates a pipeline. Options are validated on Run, not here.
func New(loader domain.Loader, tokenizer domain.Tokenizer, opts Options, logger zerolog.Logger) *Pipeline {
	return &Pipeline{loader: loader, tokenizer: tokenizer, opts: opts, log: logger}
}

// Run executes the full pipeline over the named splits. The vocabulary is
// frozen after the train split; the test split is encoded with it and never
// influences it.
func (p *Pipeline) Run(trainSplit, testSplit string) (*Result, error) {
	if p.opts.MaxLen <= 0 {
		return nil, fmt.Errorf("%w: max_len must be positive, got %d", domain.ErrInvalidConfig, p.opts.MaxLen)
	}

	trainDocs, err := p.loader.LoadSplit(trainSplit)
	if err != nil {
		return nil, fmt.Errorf("load %s split: %w", trainSplit, err)
	}
	testDocs, err := p.loader.LoadSplit(testSplit)
	if err != nil {
		return nil, fmt.Errorf("load %s split: %w", testSplit, err)
	}

	vocabulary, err := p.vocabulary(trainDocs)
	if err != nil {
		return nil, err
	}
	p.log.Info().Int("size", vocabulary.Size()).Msg("vocabulary ready")

	encoder := encode.NewSequenceEncoder(vocabulary, p.tokenizer)
	res := &Result{Vocabulary: vocabulary}
	for _, in := range []struct {
		name string
		docs []domain.Document
		out  *domain.Split
	}{
		{trainSplit, trainDocs, &res.Train},
		{testSplit, testDocs, &res.Test},
	} {
		split, summary, err := p.prepare(in.name, in.docs, encoder)
		if err != nil {
			return nil, err
		}
		*in.out = split
		res.Summaries = append(res.Summaries, summary)
		p.log.Info().
			Str("split", in.name).
			Int("rows", len(split.Matrix)).
			Int("cols", p.opts.MaxLen).
			Str("summary", summary.String()).
			Msg("split prepared")
	}
	return res, nil
}

func (p *Pipeline) vocabulary(trainDocs []domain.Document) (*vocab.Vocabulary, error) {
	if p.opts.VocabPath != "" {
		v, err := vocab.Load(p.opts.VocabPath)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		p.log.Info().Str("path", p.opts.VocabPath).Msg("reusing frozen vocabulary")
		return v, nil
	}
	texts := make([]string, len(trainDocs))
	for i, d := range trainDocs {
		texts[i] = d.Text
	}
	return vocab.Build(texts, p.opts.TopNWords, p.tokenizer)
}

func (p *Pipeline) prepare(name string, docs []domain.Document, encoder domain.Encoder) (domain.Split, stats.Summary, error) {
	seqs := make([]domain.EncodedSequence, len(docs))
	labels := make([]int, len(docs))
	for i, d := range docs {
		seqs[i] = encoder.Encode(d.Text)
		labels[i] = d.Label
	}
	matrix, err := sequence.Matrix(seqs, p.opts.MaxLen)
	if err != nil {
		return domain.Split{}, stats.Summary{}, err
	}
	split := domain.Split{Name: name, Documents: docs, Matrix: matrix, Labels: labels}
	return split, stats.Summarize(name, docs, seqs, p.tokenizer), nil
}
