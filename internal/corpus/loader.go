package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"textprep/internal/domain"
)

// DirLoader reads labeled documents from a root/{split}/{label}/*.txt layout,
// one document per file, label taken from the directory name.
type DirLoader struct {
	root       string
	labels     map[string]int
	maxWorkers int
	log        zerolog.Logger
}

// NewDirLoader creates a loader over root. labels maps directory names to
// integer classes, e.g. {"neg": 0, "pos": 1}.
func NewDirLoader(root string, labels map[string]int, logger zerolog.Logger) *DirLoader {
	// File reads are I/O bound; cap workers to keep fd usage sane.
	maxWorkers := runtime.NumCPU() * 2
	if maxWorkers < 4 {
		maxWorkers = 4
	}
	if maxWorkers > 32 {
		maxWorkers = 32
	}
	return &DirLoader{root: root, labels: labels, maxWorkers: maxWorkers, log: logger}
}

// LoadSplit returns every document under root/split, ordered by label
// directory then path. Files are read concurrently, but each file lands in a
// pre-assigned slot, so the result order never depends on scheduling.
func (l *DirLoader) LoadSplit(split string) ([]domain.Document, error) {
	type slot struct {
		path  string
		label int
	}
	var slots []slot

	names := make([]string, 0, len(l.labels))
	for name := range l.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pattern := filepath.Join(l.root, split, name, "*.txt")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			slots = append(slots, slot{path: m, label: l.labels[name]})
		}
		l.log.Debug().Str("split", split).Str("label", name).Int("files", len(matches)).Msg("scanned label directory")
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: under %s", domain.ErrMissingData, filepath.Join(l.root, split))
	}

	docs := make([]domain.Document, len(slots))
	p := pool.New().WithErrors().WithMaxGoroutines(l.maxWorkers)
	for i, s := range slots {
		i, s := i, s
		p.Go(func() error {
			data, err := os.ReadFile(s.path)
			if err != nil {
				return fmt.Errorf("read %s: %w", s.path, err)
			}
			docs[i] = domain.Document{Path: s.path, Label: s.label, Text: string(data)}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	l.log.Info().Str("split", split).Int("documents", len(docs)).Msg("split loaded")
	return docs, nil
}
