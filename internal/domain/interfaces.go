package domain

// Document represents a single labeled text file loaded into the pipeline.
type Document struct {
	Path  string
	Label int
	Text  string
}

// EncodedSequence is a document rendered as vocabulary indices, one per
// surviving token.
type EncodedSequence = []int

// FeatureMatrix is a fixed-width integer grid, one row per document. Every
// row is exactly the configured maximum length wide.
type FeatureMatrix = [][]int

// Split bundles a loaded corpus split with its derived numeric form.
type Split struct {
	Name      string
	Documents []Document
	Matrix    FeatureMatrix
	Labels    []int
}

// Tokenizer turns raw text into normalized whitespace tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Loader reads one labeled corpus split from disk.
type Loader interface {
	LoadSplit(split string) ([]Document, error)
}

// Encoder maps a text's tokens to vocabulary indices.
type Encoder interface {
	Encode(text string) EncodedSequence
}

// Sink writes a prepared split to its destination.
type Sink interface {
	Name() string
	WriteSplit(split Split) error
}
