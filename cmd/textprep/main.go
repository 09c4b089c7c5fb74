package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"textprep/internal/config"
	"textprep/internal/corpus"
	"textprep/internal/export"
	"textprep/internal/pipeline"
	"textprep/internal/tokenize"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var vocabPath string
	var debug bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textprep/config.yaml if not provided)")
	flag.StringVar(&vocabPath, "vocab", "", "Path to a frozen vocabulary YAML to reuse (overrides vocab.path)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

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
	if vocabPath != "" {
		cfg.Vocab.Path = vocabPath
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

	sink, err := export.NewSink(cfg.Output.Format, cfg.Output.Dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid output config")
	}
	if err := sink.WriteSplit(result.Train); err != nil {
		logger.Fatal().Err(err).Str("split", result.Train.Name).Msg("export failed")
	}
	if err := sink.WriteSplit(result.Test); err != nil {
		logger.Fatal().Err(err).Str("split", result.Test.Name).Msg("export failed")
	}

	if cfg.Vocab.Path == "" {
		savedVocab := filepath.Join(cfg.Output.Dir, "vocab.yaml")
		if err := result.Vocabulary.Save(savedVocab); err != nil {
			logger.Fatal().Err(err).Msg("failed to save vocabulary")
		}
		logger.Info().Str("path", savedVocab).Msg("vocabulary saved")
	}
	logger.Info().Str("sink", sink.Name()).Str("dir", cfg.Output.Dir).Msg("done")
}
