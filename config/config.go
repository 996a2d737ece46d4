package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML file configuration: search settings for the news
// feed, analyzer thresholds, and optional lexicon overrides.
type Config struct {
	Search   SearchConfig   `yaml:"search"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Lexicon  LexiconConfig  `yaml:"lexicon"`
}

type SearchConfig struct {
	Keywords   []string `yaml:"keywords"`
	MaxItems   int      `yaml:"max_items"`
	OutputFile string   `yaml:"output_file"`
}

// Query joins the configured keywords into one search query; quoted
// tokens like "$EMAS" pass through untouched.
func (s SearchConfig) Query() string {
	return strings.TrimSpace(strings.Join(s.Keywords, " "))
}

type AnalyzerConfig struct {
	ModelName      string  `yaml:"model_name"`
	ModelDir       string  `yaml:"model_dir"`
	MaxInputChars  int     `yaml:"max_input_chars"`
	HighConfidence float64 `yaml:"high_confidence"`
	LowConfidence  float64 `yaml:"low_confidence"`
	Damping        float64 `yaml:"damping"`
}

// LexiconConfig extends the built-in stock-term table. Negative
// weights are normalized to negative sign regardless of how they were
// written in the file.
type LexiconConfig struct {
	Positive map[string]float64 `yaml:"positive"`
	Negative map[string]float64 `yaml:"negative"`
}

// Overrides flattens both blocks into one signed-weight map.
func (l LexiconConfig) Overrides() map[string]float64 {
	if len(l.Positive) == 0 && len(l.Negative) == 0 {
		return nil
	}
	merged := make(map[string]float64, len(l.Positive)+len(l.Negative))
	for term, weight := range l.Positive {
		if weight < 0 {
			weight = -weight
		}
		merged[term] = weight
	}
	for term, weight := range l.Negative {
		if weight > 0 {
			weight = -weight
		}
		merged[term] = weight
	}
	return merged
}

// DefaultConfig targets the $EMAS ticker with the standard thresholds.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Keywords:   []string{"$EMAS", "Merdeka Gold", "Merdeka Copper Gold"},
			MaxItems:   50,
			OutputFile: "news_output.json",
		},
		Analyzer: AnalyzerConfig{
			ModelDir:       "./models",
			MaxInputChars:  512,
			HighConfidence: 0.7,
			LowConfidence:  0.4,
			Damping:        0.3,
		},
	}
}

// LoadConfig reads path and merges it over the defaults. A missing
// file is not an error: the defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("[Config] Config file not found, using defaults",
				slog.String("path", path))
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	slog.Info("[Config] Loaded configuration", slog.String("path", path))
	return cfg, nil
}
