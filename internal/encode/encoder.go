package encode

import (
	"textprep/internal/domain"
	"textprep/internal/vocab"
)

// SequenceEncoder maps text to vocabulary indices using the same tokenizer
// the vocabulary was built with. Tokens outside the vocabulary are dropped,
// so the output may be shorter than the token count.
type SequenceEncoder struct {
	vocabulary *vocab.Vocabulary
	tokenizer  domain.Tokenizer
}

// NewSequenceEncoder creates an encoder bound to a frozen vocabulary.
func NewSequenceEncoder(vocabulary *vocab.Vocabulary, tokenizer domain.Tokenizer) *SequenceEncoder {
	return &SequenceEncoder{vocabulary: vocabulary, tokenizer: tokenizer}
}

// Encode returns the index sequence for text. Empty text yields an empty
// sequence; there are no failure modes.
func (e *SequenceEncoder) Encode(text string) domain.EncodedSequence {
	tokens := e.tokenizer.Tokenize(text)
	seq := make(domain.EncodedSequence, 0, len(tokens))
	for _, tok := range tokens {
		if idx, ok := e.vocabulary.Index(tok); ok {
			seq = append(seq, idx)
		}
	}
	return seq
}
