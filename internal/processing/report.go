package processing

import (
	"math"
	"time"

	"github.com/sahamlab/sentimen/internal/models"
)

// BuildAnalysisReport aggregates a non-empty batch of article results
// into the report written out as JSON: counts by label, confidence and
// method, percentages per label to one decimal place, and per-item
// detail in input order. Empty batches are rejected upstream with a
// distinct error before this runs.
func BuildAnalysisReport(results []models.AnalysisResult, sourceFile string) models.AnalysisReport {
	sentimentCounts := map[string]int{
		models.SentimentPositive: 0,
		models.SentimentNegative: 0,
		models.SentimentNeutral:  0,
	}
	confidenceCounts := map[string]int{
		models.ConfidenceHigh:   0,
		models.ConfidenceMedium: 0,
		models.ConfidenceLow:    0,
	}
	methodCounts := make(map[string]int)

	detailed := make([]models.DetailedResult, 0, len(results))
	for _, result := range results {
		sentimentCounts[result.Sentiment.Label]++
		confidenceCounts[result.Sentiment.Confidence]++
		methodCounts[result.Method]++

		detailed = append(detailed, models.DetailedResult{
			Title:           result.Article.Title,
			URL:             result.Article.URL,
			Source:          result.Article.Source,
			PublicationDate: result.Article.PublicationDate,
			Sentiment: models.SentimentResult{
				Label:      result.Sentiment.Label,
				Score:      roundTo(result.Sentiment.Score, 3),
				Confidence: result.Sentiment.Confidence,
			},
			AnalysisMethod: result.Method,
		})
	}

	percentages := make(map[string]float64, len(sentimentCounts))
	for label, count := range sentimentCounts {
		percentages[label] = roundTo(float64(count)/float64(len(results))*100, 1)
	}

	return models.AnalysisReport{
		AnalysisMetadata: models.AnalysisMetadata{
			AnalysisDate:        time.Now().Format(time.RFC3339),
			SourceFile:          sourceFile,
			TotalArticles:       len(results),
			AnalysisMethodsUsed: methodCounts,
		},
		SentimentSummary: models.SentimentSummary{
			BySentiment:          sentimentCounts,
			ByConfidence:         confidenceCounts,
			SentimentPercentages: percentages,
		},
		DetailedResults: detailed,
	}
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
