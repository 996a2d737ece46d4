package models

// Sentiment labels shared by every analysis path.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Confidence tiers derived from score magnitude.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Method tags record which classifier path produced a result.
const (
	MethodTransformer   = "transformer"
	MethodVaderFallback = "vader_fallback"
	MethodErrorFallback = "error_fallback"
	MethodError         = "error"
)

// Default thresholds for bucketing a polarity magnitude into a
// confidence tier.
const (
	DefaultHighConfidence = 0.7
	DefaultLowConfidence  = 0.4
)

// SentimentResult is the bucketed outcome for a single text. Score is
// the unsigned magnitude of the underlying polarity; the sign lives in
// Label only.
type SentimentResult struct {
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Confidence string  `json:"confidence"`
}

// SentimentFromScore buckets a signed polarity score in [-1, 1] using
// the default confidence thresholds.
func SentimentFromScore(raw float64) SentimentResult {
	return SentimentFromScoreWithThresholds(raw, DefaultHighConfidence, DefaultLowConfidence)
}

// SentimentFromScoreWithThresholds buckets a signed polarity score in
// [-1, 1]. The label band is fixed at ±0.1 (boundary values are
// neutral); only the confidence thresholds are tunable.
func SentimentFromScoreWithThresholds(raw, thresholdHigh, thresholdLow float64) SentimentResult {
	label := SentimentNeutral
	if raw > 0.1 {
		label = SentimentPositive
	} else if raw < -0.1 {
		label = SentimentNegative
	}

	absScore := raw
	if absScore < 0 {
		absScore = -absScore
	}

	confidence := ConfidenceLow
	if absScore >= thresholdHigh {
		confidence = ConfidenceHigh
	} else if absScore >= thresholdLow {
		confidence = ConfidenceMedium
	}

	return SentimentResult{Label: label, Score: absScore, Confidence: confidence}
}

// NeutralSentiment is the placeholder used whenever every analysis
// path has failed.
func NeutralSentiment() SentimentResult {
	return SentimentResult{
		Label:      SentimentNeutral,
		Score:      0.0,
		Confidence: ConfidenceLow,
	}
}

// EnhancedSentimentResult carries a base sentiment re-scored against
// the stock-term lexicon. Immutable once produced.
type EnhancedSentimentResult struct {
	OriginalLabel      string   `json:"original_label"`
	OriginalScore      float64  `json:"original_score"`
	StockAdjustedLabel string   `json:"stock_adjusted_label"`
	StockAdjustedScore float64  `json:"stock_adjusted_score"`
	Confidence         string   `json:"confidence"`
	StockTermsFound    []string `json:"stock_terms_found"`
	AdjustmentReason   string   `json:"adjustment_reason"`
}

// AnalysisResult pairs a news article with its sentiment and the
// method tag identifying the classifier path that produced it.
type AnalysisResult struct {
	Article   NewsArticle     `json:"article"`
	Sentiment SentimentResult `json:"sentiment"`
	Method    string          `json:"method"`
}

// CommentAnalysisResult pairs a stream comment with its sentiment.
// Enhanced is nil when stock enhancement was disabled or the item hit
// the error path.
type CommentAnalysisResult struct {
	Comment   StreamComment            `json:"comment"`
	Sentiment SentimentResult          `json:"sentiment"`
	Method    string                   `json:"method"`
	Enhanced  *EnhancedSentimentResult `json:"enhanced_sentiment,omitempty"`
}
