package sentiment

import (
	"fmt"
	"math"
	"strings"

	"github.com/sahamlab/sentimen/internal/models"
)

// DefaultDamping scales the summed lexicon weights so the adjustment
// cannot overwhelm the base classifier.
const DefaultDamping = 0.3

// NoTermsReason is the fixed adjustment reason when no lexicon entry
// matched the text.
const NoTermsReason = "No stock-specific terms found"

// Post-adjustment label band. Wider than the base ±0.1 band on
// purpose: the lexicon adjustment should only flip a label when it
// pushes clearly past neutral.
const adjustedLabelThreshold = 0.2

// Enhancer re-scores a base sentiment against the stock-term lexicon.
// It holds only read-only state and is safe for concurrent use.
type Enhancer struct {
	lexicon *Lexicon
	damping float64
}

func NewEnhancer(lexicon *Lexicon, damping float64) *Enhancer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	if damping <= 0 {
		damping = DefaultDamping
	}
	return &Enhancer{lexicon: lexicon, damping: damping}
}

// Enhance blends the damped lexicon adjustment into the signed base
// score and re-derives label and confidence. The adjusted score is the
// unsigned magnitude of the blend and is deliberately not clamped to
// [0, 1]: a heavy lexicon hit can push it past 1.
func (e *Enhancer) Enhance(originalLabel string, originalScore float64, text string) models.EnhancedSentimentResult {
	stockTerms, adjustment := e.lexicon.FindTerms(text)

	var baseScore float64
	switch strings.ToLower(originalLabel) {
	case models.SentimentPositive:
		baseScore = originalScore
	case models.SentimentNegative:
		baseScore = -originalScore
	default:
		baseScore = 0.0
	}

	adjustedScore := baseScore + adjustment*e.damping

	newLabel := models.SentimentNeutral
	if adjustedScore > adjustedLabelThreshold {
		newLabel = models.SentimentPositive
	} else if adjustedScore < -adjustedLabelThreshold {
		newLabel = models.SentimentNegative
	}

	// Two threshold families: strict comparisons when lexicon terms
	// matched, the base-style inclusive ones when none did.
	magnitude := math.Abs(adjustedScore)
	var confidence string
	if len(stockTerms) > 0 {
		switch {
		case magnitude > 0.8:
			confidence = models.ConfidenceHigh
		case magnitude > 0.4:
			confidence = models.ConfidenceMedium
		default:
			confidence = models.ConfidenceLow
		}
	} else {
		switch {
		case magnitude >= models.DefaultHighConfidence:
			confidence = models.ConfidenceHigh
		case magnitude >= models.DefaultLowConfidence:
			confidence = models.ConfidenceMedium
		default:
			confidence = models.ConfidenceLow
		}
	}

	reason := NoTermsReason
	if len(stockTerms) > 0 {
		preview := stockTerms
		ellipsis := ""
		if len(preview) > 3 {
			preview = preview[:3]
			ellipsis = "..."
		}
		reason = fmt.Sprintf("Found stock terms: %s%s", strings.Join(preview, ", "), ellipsis)
	}

	return models.EnhancedSentimentResult{
		OriginalLabel:      originalLabel,
		OriginalScore:      originalScore,
		StockAdjustedLabel: newLabel,
		StockAdjustedScore: magnitude,
		Confidence:         confidence,
		StockTermsFound:    stockTerms,
		AdjustmentReason:   reason,
	}
}
