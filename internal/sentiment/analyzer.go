package sentiment

import (
	"log/slog"

	"github.com/sahamlab/sentimen/internal/models"
)

// Options configures an Analyzer. The zero value of any field falls
// back to the package default; an empty ModelName skips the
// transformer entirely and scores with the heuristic backend only.
type Options struct {
	ModelName      string
	ModelDir       string
	MaxInputRunes  int
	HighConfidence float64
	LowConfidence  float64
	Damping        float64
	StockEnhance   bool
	Lexicon        *Lexicon
}

// DefaultOptions enables stock enhancement with the built-in lexicon
// and the pretrained Indonesian classifier.
func DefaultOptions() Options {
	return Options{
		ModelName:      DefaultModelName,
		ModelDir:       DefaultModelDir,
		MaxInputRunes:  DefaultMaxInputRunes,
		HighConfidence: models.DefaultHighConfidence,
		LowConfidence:  models.DefaultLowConfidence,
		Damping:        DefaultDamping,
		StockEnhance:   true,
	}
}

// Analyzer scores raw text through the transformer backend when it is
// available and the heuristic backend otherwise, optionally re-scoring
// against the stock-term lexicon. It never returns an error: every
// failure downgrades to the next path and is surfaced only through the
// method tag.
type Analyzer struct {
	primary        Backend
	fallback       Backend
	enhancer       *Enhancer
	highConfidence float64
	lowConfidence  float64
}

// NewAnalyzer acquires the transformer model at most once. On
// acquisition failure the analyzer is permanently marked
// model-unavailable and every call scores through the fallback; there
// is no per-call retry.
func NewAnalyzer(opts Options) *Analyzer {
	var primary Backend
	if opts.ModelName != "" {
		backend, err := NewTransformerBackend(opts.ModelName, opts.ModelDir, opts.MaxInputRunes)
		if err != nil {
			slog.Warn("[Analyzer] Transformer unavailable, using heuristic fallback",
				slog.String("model", opts.ModelName),
				slog.String("error", err.Error()))
		} else {
			slog.Info("[Analyzer] Transformer model loaded",
				slog.String("model", opts.ModelName))
			primary = backend
		}
	}

	return NewAnalyzerWithBackends(primary, NewVaderBackend(), opts)
}

// NewAnalyzerWithBackends wires explicit backends; primary may be nil.
func NewAnalyzerWithBackends(primary, fallback Backend, opts Options) *Analyzer {
	if opts.HighConfidence <= 0 {
		opts.HighConfidence = models.DefaultHighConfidence
	}
	if opts.LowConfidence <= 0 {
		opts.LowConfidence = models.DefaultLowConfidence
	}

	var enhancer *Enhancer
	if opts.StockEnhance {
		enhancer = NewEnhancer(opts.Lexicon, opts.Damping)
	}

	return &Analyzer{
		primary:        primary,
		fallback:       fallback,
		enhancer:       enhancer,
		highConfidence: opts.HighConfidence,
		lowConfidence:  opts.LowConfidence,
	}
}

// AnalyzeText scores text and returns the sentiment, the method tag of
// the path that produced it, and the enhancement detail when stock
// enhancement is enabled. When enhancement ran, the returned sentiment
// already carries the adjusted label, score, and confidence.
func (a *Analyzer) AnalyzeText(text string) (models.SentimentResult, string, *models.EnhancedSentimentResult) {
	sentiment, method := a.baseSentiment(text)

	var enhanced *models.EnhancedSentimentResult
	if a.enhancer != nil {
		result := a.enhancer.Enhance(sentiment.Label, sentiment.Score, text)
		enhanced = &result

		sentiment = models.SentimentResult{
			Label:      result.StockAdjustedLabel,
			Score:      result.StockAdjustedScore,
			Confidence: result.Confidence,
		}
	}

	return sentiment, method, enhanced
}

func (a *Analyzer) baseSentiment(text string) (models.SentimentResult, string) {
	if a.primary != nil {
		raw, err := a.primary.Score(text)
		if err == nil {
			return models.SentimentFromScoreWithThresholds(raw, a.highConfidence, a.lowConfidence), a.primary.Method()
		}
		slog.Warn("[Analyzer] Primary backend failed, falling back",
			slog.String("method", a.primary.Method()),
			slog.String("error", err.Error()))
	}

	if a.fallback != nil {
		raw, err := a.fallback.Score(text)
		if err == nil {
			return models.SentimentFromScoreWithThresholds(raw, a.highConfidence, a.lowConfidence), a.fallback.Method()
		}
		slog.Error("[Analyzer] Fallback backend failed",
			slog.String("error", err.Error()))
	}

	return models.NeutralSentiment(), models.MethodErrorFallback
}

// ModelAvailable reports whether the transformer path is active.
func (a *Analyzer) ModelAvailable() bool { return a.primary != nil }

// Close releases any backend-held resources.
func (a *Analyzer) Close() {
	if closer, ok := a.primary.(*TransformerBackend); ok {
		closer.Close()
	}
}
