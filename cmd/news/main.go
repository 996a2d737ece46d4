package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sahamlab/sentimen/config"
	"github.com/sahamlab/sentimen/internal/clients"
	"github.com/sahamlab/sentimen/internal/logging"
	"github.com/sahamlab/sentimen/internal/processing"
	"github.com/sahamlab/sentimen/internal/sentiment"
	"github.com/sahamlab/sentimen/internal/storage"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "scrape":
		err = runScrape(os.Args[2:])
	case "analyze":
		err = runAnalyze(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		slog.Error("[Main] Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: news <scrape|analyze> [flags]")
	fmt.Fprintln(os.Stderr, "  scrape   fetch news headlines into a JSON file")
	fmt.Fprintln(os.Stderr, "  analyze  score a scraped JSON file into a sentiment report")
}

func runScrape(args []string) error {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to YAML configuration")
	output := fs.String("output", "", "output JSON file (overrides config)")
	maxItems := fs.Int("max-items", 0, "maximum items to fetch (overrides config)")
	fs.Parse(args)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.Search.OutputFile = *output
	}
	if *maxItems > 0 {
		cfg.Search.MaxItems = *maxItems
	}

	articles, err := clients.GetGoogleNewsClient().Search(cfg.Search.Query(), cfg.Search.MaxItems)
	if err != nil {
		return err
	}

	return storage.SaveNewsData(articles, cfg.Search.OutputFile)
}

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "path to YAML configuration")
	input := fs.String("input", "news_output.json", "input JSON file with news articles")
	output := fs.String("output", "sentiment_analysis.json", "output JSON report")
	fs.Parse(args)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	err = processing.AnalyzeNewsSentiment(*input, *output, analyzerOptions(cfg))
	if errors.Is(err, processing.ErrNoArticles) {
		return fmt.Errorf("%w: run 'news scrape' first to collect headlines", err)
	}
	return err
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
