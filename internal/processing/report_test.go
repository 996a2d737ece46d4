package processing

import (
	"math"
	"testing"

	"github.com/sahamlab/sentimen/internal/models"
)

func sampleResults() []models.AnalysisResult {
	return []models.AnalysisResult{
		{
			Article:   models.NewsArticle{Title: "Emiten emas melesat", URL: "https://a.example"},
			Sentiment: models.SentimentResult{Label: models.SentimentPositive, Score: 0.8, Confidence: models.ConfidenceHigh},
			Method:    models.MethodTransformer,
		},
		{
			Article:   models.NewsArticle{Title: "Harga emas anjlok", URL: "https://b.example"},
			Sentiment: models.SentimentResult{Label: models.SentimentNegative, Score: 0.7, Confidence: models.ConfidenceHigh},
			Method:    models.MethodTransformer,
		},
		{
			Article:   models.NewsArticle{Title: "Pasar menunggu data", URL: "https://c.example"},
			Sentiment: models.SentimentResult{Label: models.SentimentNeutral, Score: 0.3, Confidence: models.ConfidenceLow},
			Method:    models.MethodVaderFallback,
		},
	}
}

func TestBuildAnalysisReportCounts(t *testing.T) {
	report := BuildAnalysisReport(sampleResults(), "news_output.json")

	meta := report.AnalysisMetadata
	if meta.TotalArticles != 3 {
		t.Errorf("TotalArticles = %d, want 3", meta.TotalArticles)
	}
	if meta.SourceFile != "news_output.json" {
		t.Errorf("SourceFile = %q, want news_output.json", meta.SourceFile)
	}
	if meta.AnalysisMethodsUsed[models.MethodTransformer] != 2 ||
		meta.AnalysisMethodsUsed[models.MethodVaderFallback] != 1 {
		t.Errorf("AnalysisMethodsUsed = %v", meta.AnalysisMethodsUsed)
	}

	summary := report.SentimentSummary
	for label, want := range map[string]int{
		models.SentimentPositive: 1,
		models.SentimentNegative: 1,
		models.SentimentNeutral:  1,
	} {
		if summary.BySentiment[label] != want {
			t.Errorf("BySentiment[%s] = %d, want %d", label, summary.BySentiment[label], want)
		}
	}
	if summary.ByConfidence[models.ConfidenceHigh] != 2 || summary.ByConfidence[models.ConfidenceLow] != 1 {
		t.Errorf("ByConfidence = %v", summary.ByConfidence)
	}
}

func TestBuildAnalysisReportPercentages(t *testing.T) {
	report := BuildAnalysisReport(sampleResults(), "news_output.json")

	for _, label := range []string{models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral} {
		got := report.SentimentSummary.SentimentPercentages[label]
		if math.Abs(got-33.3) > 1e-9 {
			t.Errorf("percentage[%s] = %v, want 33.3", label, got)
		}
	}
}

func TestBuildAnalysisReportDetailOrderAndRounding(t *testing.T) {
	results := sampleResults()
	results[0].Sentiment.Score = 0.87654

	report := BuildAnalysisReport(results, "src.json")

	detailed := report.DetailedResults
	if len(detailed) != 3 {
		t.Fatalf("got %d detailed results, want 3", len(detailed))
	}
	for i, result := range results {
		if detailed[i].Title != result.Article.Title {
			t.Errorf("detail %d title = %q, want %q", i, detailed[i].Title, result.Article.Title)
		}
	}
	if detailed[0].Sentiment.Score != 0.877 {
		t.Errorf("detail score = %v, want 0.877 (rounded to 3 decimals)", detailed[0].Sentiment.Score)
	}
	if detailed[2].AnalysisMethod != models.MethodVaderFallback {
		t.Errorf("detail method = %q, want %q", detailed[2].AnalysisMethod, models.MethodVaderFallback)
	}
}

func TestBuildAnalysisReportSingleLabel(t *testing.T) {
	results := []models.AnalysisResult{
		{
			Article:   models.NewsArticle{Title: "satu"},
			Sentiment: models.SentimentResult{Label: models.SentimentPositive, Score: 0.9, Confidence: models.ConfidenceHigh},
			Method:    models.MethodTransformer,
		},
	}

	report := BuildAnalysisReport(results, "one.json")

	percentages := report.SentimentSummary.SentimentPercentages
	if percentages[models.SentimentPositive] != 100.0 {
		t.Errorf("positive percentage = %v, want 100", percentages[models.SentimentPositive])
	}
	if percentages[models.SentimentNegative] != 0.0 || percentages[models.SentimentNeutral] != 0.0 {
		t.Errorf("unexpected percentages: %v", percentages)
	}
}
