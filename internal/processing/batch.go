package processing

import (
	"log/slog"

	"github.com/sahamlab/sentimen/internal/models"
)

// TextAnalyzer is the classifier surface the orchestrator needs; the
// sentiment.Analyzer satisfies it.
type TextAnalyzer interface {
	AnalyzeText(text string) (models.SentimentResult, string, *models.EnhancedSentimentResult)
}

// AnalyzeArticles scores a batch of news articles sequentially,
// preserving input order. A failure in one item is converted into a
// neutral placeholder tagged "error"; it never aborts the batch.
func AnalyzeArticles(analyzer TextAnalyzer, articles []models.NewsArticle) []models.AnalysisResult {
	slog.Info("[Batch] Starting sentiment analysis",
		slog.Int("articles", len(articles)))

	results := make([]models.AnalysisResult, 0, len(articles))
	for i, article := range articles {
		slog.Info("[Batch] Analyzing article",
			slog.Int("index", i+1),
			slog.Int("total", len(articles)),
			slog.String("title", preview(article.Title)))

		results = append(results, analyzeArticle(analyzer, article))
	}

	slog.Info("[Batch] Sentiment analysis completed",
		slog.Int("results", len(results)))
	return results
}

// AnalyzeComments scores a batch of stream comments sequentially, with
// stock enhancement detail attached when the analyzer has it enabled.
func AnalyzeComments(analyzer TextAnalyzer, comments []models.StreamComment) []models.CommentAnalysisResult {
	slog.Info("[Batch] Starting enhanced sentiment analysis",
		slog.Int("comments", len(comments)))

	results := make([]models.CommentAnalysisResult, 0, len(comments))
	for i, comment := range comments {
		if (i+1)%100 == 0 {
			slog.Info("[Batch] Analyzing comments",
				slog.Int("index", i+1),
				slog.Int("total", len(comments)))
		}

		results = append(results, analyzeComment(analyzer, comment))
	}

	slog.Info("[Batch] Enhanced sentiment analysis completed",
		slog.Int("results", len(results)))
	return results
}

func analyzeArticle(analyzer TextAnalyzer, article models.NewsArticle) (result models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Batch] Article analysis panicked, substituting placeholder",
				slog.String("title", preview(article.Title)),
				slog.Any("panic", r))
			result = models.AnalysisResult{
				Article:   article,
				Sentiment: models.NeutralSentiment(),
				Method:    models.MethodError,
			}
		}
	}()

	// Headlines carry the signal; the article body never reaches the
	// scorer.
	sentiment, method, _ := analyzer.AnalyzeText(article.Title)
	return models.AnalysisResult{
		Article:   article,
		Sentiment: sentiment,
		Method:    method,
	}
}

func analyzeComment(analyzer TextAnalyzer, comment models.StreamComment) (result models.CommentAnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("[Batch] Comment analysis panicked, substituting placeholder",
				slog.String("post_id", comment.PostID),
				slog.Any("panic", r))
			result = models.CommentAnalysisResult{
				Comment:   comment,
				Sentiment: models.NeutralSentiment(),
				Method:    models.MethodError,
			}
		}
	}()

	sentiment, method, enhanced := analyzer.AnalyzeText(comment.CommentText)
	return models.CommentAnalysisResult{
		Comment:   comment,
		Sentiment: sentiment,
		Method:    method,
		Enhanced:  enhanced,
	}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= 50 {
		return text
	}
	return string(runes[:50]) + "..."
}
