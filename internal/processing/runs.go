package processing

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sahamlab/sentimen/internal/models"
	"github.com/sahamlab/sentimen/internal/sentiment"
	"github.com/sahamlab/sentimen/internal/storage"
)

// Distinct empty-batch outcomes: a run over zero valid items is a
// failure the caller can tell apart from a load error.
var (
	ErrNoArticles = errors.New("no articles to analyze")
	ErrNoComments = errors.New("no comments to analyze")
)

// AnalyzeNewsSentiment loads a news JSON file, scores every article,
// and writes the aggregate report. Load failures and empty batches
// come back as errors; per-item failures never do.
func AnalyzeNewsSentiment(inputFile, outputFile string, opts sentiment.Options) error {
	articles, err := storage.LoadNewsData(inputFile)
	if err != nil {
		return fmt.Errorf("loading news data: %w", err)
	}
	if len(articles) == 0 {
		return ErrNoArticles
	}

	// The news report schema has no enhancement columns.
	opts.StockEnhance = false
	analyzer := sentiment.NewAnalyzer(opts)
	defer analyzer.Close()

	results := AnalyzeArticles(analyzer, articles)
	report := BuildAnalysisReport(results, inputFile)

	if err := storage.SaveAnalysisReport(report, outputFile); err != nil {
		return fmt.Errorf("saving analysis report: %w", err)
	}

	logReportSummary(report)
	return nil
}

// AnalyzeCommentsSentiment loads a comment-stream CSV, scores every
// comment with stock enhancement, and writes the per-comment CSV
// export.
func AnalyzeCommentsSentiment(inputCSV, outputCSV string, opts sentiment.Options) error {
	comments, err := storage.LoadCommentsData(inputCSV)
	if err != nil {
		return fmt.Errorf("loading comments data: %w", err)
	}
	if len(comments) == 0 {
		return ErrNoComments
	}

	opts.StockEnhance = true
	analyzer := sentiment.NewAnalyzer(opts)
	defer analyzer.Close()

	results := AnalyzeComments(analyzer, comments)

	if err := storage.SaveCommentsCSV(results, outputCSV); err != nil {
		return fmt.Errorf("saving comment results: %w", err)
	}

	logCommentSummary(results, outputCSV)
	return nil
}

func logReportSummary(report models.AnalysisReport) {
	summary := report.SentimentSummary
	slog.Info("[Run] Sentiment analysis summary",
		slog.Int("total", report.AnalysisMetadata.TotalArticles),
		slog.Int("positive", summary.BySentiment[models.SentimentPositive]),
		slog.Int("negative", summary.BySentiment[models.SentimentNegative]),
		slog.Int("neutral", summary.BySentiment[models.SentimentNeutral]))
}

func logCommentSummary(results []models.CommentAnalysisResult, outputCSV string) {
	counts := make(map[string]int)
	enhanced := 0
	for _, result := range results {
		counts[result.Sentiment.Label]++
		if result.Enhanced != nil && len(result.Enhanced.StockTermsFound) > 0 {
			enhanced++
		}
	}

	slog.Info("[Run] Enhanced comment sentiment summary",
		slog.Int("total", len(results)),
		slog.Int("positive", counts[models.SentimentPositive]),
		slog.Int("negative", counts[models.SentimentNegative]),
		slog.Int("neutral", counts[models.SentimentNeutral]),
		slog.Int("stock_adjusted", enhanced),
		slog.String("output", outputCSV))
}
