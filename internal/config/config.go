package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"textprep/internal/domain"
)

// CorpusConfig describes where the labeled documents live.
type CorpusConfig struct {
	Root       string         `yaml:"root"`
	TrainSplit string         `yaml:"train_split"`
	TestSplit  string         `yaml:"test_split"`
	Labels     map[string]int `yaml:"labels"`
}

// VocabConfig configures vocabulary building. Path, when set, names a frozen
// vocabulary file to reuse instead of building one from the train split.
type VocabConfig struct {
	TopNWords int    `yaml:"top_n_words"`
	Path      string `yaml:"path,omitempty"`
}

// SequenceConfig configures the fixed-width normalizer.
type SequenceConfig struct {
	MaxLen int `yaml:"max_len"`
}

// OutputConfig selects and configures the export sink.
type OutputConfig struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Vocab    VocabConfig    `yaml:"vocab"`
	Sequence SequenceConfig `yaml:"sequence"`
	Output   OutputConfig   `yaml:"output"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults. Environment overrides are applied last.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/textprep/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values the pipeline cannot run with. Every violation
// wraps domain.ErrInvalidConfig.
func (cfg *AppConfig) Validate() error {
	if cfg.Corpus.Root == "" {
		return fmt.Errorf("%w: corpus.root must be set", domain.ErrInvalidConfig)
	}
	if len(cfg.Corpus.Labels) == 0 {
		return fmt.Errorf("%w: corpus.labels must not be empty", domain.ErrInvalidConfig)
	}
	if cfg.Vocab.TopNWords <= 0 {
		return fmt.Errorf("%w: vocab.top_n_words must be positive, got %d", domain.ErrInvalidConfig, cfg.Vocab.TopNWords)
	}
	if cfg.Sequence.MaxLen <= 0 {
		return fmt.Errorf("%w: sequence.max_len must be positive, got %d", domain.ErrInvalidConfig, cfg.Sequence.MaxLen)
	}
	switch cfg.Output.Format {
	case "csv", "jsonl":
	default:
		return fmt.Errorf("%w: output.format must be %q or %q, got %q", domain.ErrInvalidConfig, "csv", "jsonl", cfg.Output.Format)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textprep", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Corpus: CorpusConfig{
			Root:       "data",
			TrainSplit: "train",
			TestSplit:  "test",
			Labels:     map[string]int{"neg": 0, "pos": 1},
		},
		Vocab:    VocabConfig{TopNWords: 10000},
		Sequence: SequenceConfig{MaxLen: 150},
		Output:   OutputConfig{Format: "csv", Dir: "out"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Corpus.TrainSplit == "" {
		cfg.Corpus.TrainSplit = def.Corpus.TrainSplit
	}
	if cfg.Corpus.TestSplit == "" {
		cfg.Corpus.TestSplit = def.Corpus.TestSplit
	}
	if len(cfg.Corpus.Labels) == 0 {
		cfg.Corpus.Labels = def.Corpus.Labels
	}
	if cfg.Vocab.TopNWords == 0 {
		cfg.Vocab.TopNWords = def.Vocab.TopNWords
	}
	if cfg.Sequence.MaxLen == 0 {
		cfg.Sequence.MaxLen = def.Sequence.MaxLen
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if root := os.Getenv("TEXTPREP_CORPUS_ROOT"); root != "" {
		cfg.Corpus.Root = root
	}
	if dir := os.Getenv("TEXTPREP_OUTPUT_DIR"); dir != "" {
		cfg.Output.Dir = dir
	}
}
