package models

// AnalysisReport is the aggregate JSON report written after a news
// batch run.
type AnalysisReport struct {
	AnalysisMetadata AnalysisMetadata `json:"analysis_metadata"`
	SentimentSummary SentimentSummary `json:"sentiment_summary"`
	DetailedResults  []DetailedResult `json:"detailed_results"`
}

type AnalysisMetadata struct {
	AnalysisDate        string         `json:"analysis_date"`
	SourceFile          string         `json:"source_file"`
	TotalArticles       int            `json:"total_articles"`
	AnalysisMethodsUsed map[string]int `json:"analysis_methods_used"`
}

type SentimentSummary struct {
	BySentiment          map[string]int     `json:"by_sentiment"`
	ByConfidence         map[string]int     `json:"by_confidence"`
	SentimentPercentages map[string]float64 `json:"sentiment_percentages"`
}

// DetailedResult is one per-article entry in the report, kept in input
// order for index-aligned reporting.
type DetailedResult struct {
	Title           string          `json:"title"`
	URL             string          `json:"url"`
	Source          string          `json:"source,omitempty"`
	PublicationDate string          `json:"publication_date,omitempty"`
	Sentiment       SentimentResult `json:"sentiment"`
	AnalysisMethod  string          `json:"analysis_method"`
}
