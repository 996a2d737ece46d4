package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/sahamlab/sentimen/config"
	"github.com/sahamlab/sentimen/internal/logging"
	"github.com/sahamlab/sentimen/internal/processing"
	"github.com/sahamlab/sentimen/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	configPath := flag.String("config", "config.yaml", "path to YAML configuration")
	input := flag.String("input", "stockbit_stream.csv", "input CSV with stream comments")
	output := flag.String("output", "sentiments.csv", "output CSV for enhanced results")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("[Main] Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = processing.AnalyzeCommentsSentiment(*input, *output, analyzerOptions(cfg))
	if err != nil {
		if errors.Is(err, processing.ErrNoComments) {
			slog.Error("[Main] Nothing to analyze", slog.String("input", *input))
		} else {
			slog.Error("[Main] Comment sentiment analysis failed",
				slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}

func analyzerOptions(cfg *config.Config) sentiment.Options {
	opts := sentiment.DefaultOptions()
	opts.ModelName = cfg.Analyzer.ModelName
	if opts.ModelName == "" {
		opts.ModelName = sentiment.DefaultModelName
	}
	if cfg.Analyzer.ModelDir != "" {
		opts.ModelDir = cfg.Analyzer.ModelDir
	}
	if cfg.Analyzer.MaxInputChars > 0 {
		opts.MaxInputRunes = cfg.Analyzer.MaxInputChars
	}
	if cfg.Analyzer.HighConfidence > 0 {
		opts.HighConfidence = cfg.Analyzer.HighConfidence
	}
	if cfg.Analyzer.LowConfidence > 0 {
		opts.LowConfidence = cfg.Analyzer.LowConfidence
	}
	if cfg.Analyzer.Damping > 0 {
		opts.Damping = cfg.Analyzer.Damping
	}
	if overrides := cfg.Lexicon.Overrides(); overrides != nil {
		opts.Lexicon = sentiment.DefaultLexicon().Extend(overrides)
	}
	return opts
}
