package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"textprep/internal/config"
	"textprep/internal/corpus"
	"textprep/internal/pipeline"
	"textprep/internal/tokenize"
	"textprep/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textprep/config.yaml if not provided)")
	flag.Parse()

	// The TUI owns the terminal, so keep log output quiet unless something fails.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	loader := corpus.NewDirLoader(cfg.Corpus.Root, cfg.Corpus.Labels, logger)
	tokenizer := tokenize.NewWordTokenizer()
	p := pipeline.New(loader, tokenizer, pipeline.Options{
		TopNWords: cfg.Vocab.TopNWords,
		MaxLen:    cfg.Sequence.MaxLen,
		VocabPath: cfg.Vocab.Path,
	}, logger)

	result, err := p.Run(cfg.Corpus.TrainSplit, cfg.Corpus.TestSplit)
	if err != nil {
		logger.Fatal().Err(err).Msg("pipeline failed")
	}

	m := tui.New(result, tokenizer)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		logger.Fatal().Err(err).Msg("inspector failed")
	}
}
