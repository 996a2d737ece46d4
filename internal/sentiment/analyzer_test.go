package sentiment

import (
	"errors"
	"math"
	"testing"

	"github.com/sahamlab/sentimen/internal/models"
)

type stubBackend struct {
	method string
	score  float64
	err    error
	calls  int
}

func (s *stubBackend) Method() string { return s.method }

func (s *stubBackend) Score(text string) (float64, error) {
	s.calls++
	return s.score, s.err
}

func baseOptions() Options {
	opts := DefaultOptions()
	opts.ModelName = ""
	opts.StockEnhance = false
	return opts
}

func TestAnalyzeTextPrimaryBackend(t *testing.T) {
	primary := &stubBackend{method: models.MethodTransformer, score: 0.85}
	fallback := &stubBackend{method: models.MethodVaderFallback, score: -0.5}
	analyzer := NewAnalyzerWithBackends(primary, fallback, baseOptions())

	sentiment, method, enhanced := analyzer.AnalyzeText("saham bagus")

	if method != models.MethodTransformer {
		t.Errorf("method = %q, want %q", method, models.MethodTransformer)
	}
	if sentiment.Label != models.SentimentPositive || sentiment.Confidence != models.ConfidenceHigh {
		t.Errorf("sentiment = %+v, want positive/high", sentiment)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
	if enhanced != nil {
		t.Error("enhanced should be nil when stock enhancement is disabled")
	}
}

func TestAnalyzeTextFallsBackOnPrimaryError(t *testing.T) {
	primary := &stubBackend{method: models.MethodTransformer, err: errors.New("inference failed")}
	fallback := &stubBackend{method: models.MethodVaderFallback, score: -0.6}
	analyzer := NewAnalyzerWithBackends(primary, fallback, baseOptions())

	sentiment, method, _ := analyzer.AnalyzeText("saham jelek")

	if method != models.MethodVaderFallback {
		t.Errorf("method = %q, want %q", method, models.MethodVaderFallback)
	}
	if sentiment.Label != models.SentimentNegative || sentiment.Confidence != models.ConfidenceMedium {
		t.Errorf("sentiment = %+v, want negative/medium", sentiment)
	}
}

func TestAnalyzeTextModelUnavailableNeverRetries(t *testing.T) {
	// A failed model acquisition leaves primary nil for the lifetime
	// of the analyzer; every call goes straight to the fallback.
	fallback := &stubBackend{method: models.MethodVaderFallback, score: 0.2}
	analyzer := NewAnalyzerWithBackends(nil, fallback, baseOptions())

	if analyzer.ModelAvailable() {
		t.Fatal("ModelAvailable() = true with nil primary")
	}

	for i := 0; i < 5; i++ {
		_, method, _ := analyzer.AnalyzeText("teks apapun")
		if method != models.MethodVaderFallback {
			t.Fatalf("call %d: method = %q, want %q", i+1, method, models.MethodVaderFallback)
		}
	}
	if fallback.calls != 5 {
		t.Errorf("fallback calls = %d, want 5", fallback.calls)
	}
}

func TestAnalyzeTextErrorFallback(t *testing.T) {
	primary := &stubBackend{method: models.MethodTransformer, err: errors.New("boom")}
	fallback := &stubBackend{method: models.MethodVaderFallback, err: errors.New("also boom")}
	analyzer := NewAnalyzerWithBackends(primary, fallback, baseOptions())

	sentiment, method, _ := analyzer.AnalyzeText("apa saja")

	if method != models.MethodErrorFallback {
		t.Errorf("method = %q, want %q", method, models.MethodErrorFallback)
	}
	if sentiment != models.NeutralSentiment() {
		t.Errorf("sentiment = %+v, want neutral placeholder", sentiment)
	}
}

func TestAnalyzeTextFoldsEnhancement(t *testing.T) {
	primary := &stubBackend{method: models.MethodTransformer, score: 0.0}
	opts := baseOptions()
	opts.StockEnhance = true
	analyzer := NewAnalyzerWithBackends(primary, &stubBackend{method: models.MethodVaderFallback}, opts)

	sentiment, method, enhanced := analyzer.AnalyzeText("🚀 ke bulan! cuan gede!")

	if method != models.MethodTransformer {
		t.Errorf("method = %q, want %q", method, models.MethodTransformer)
	}
	if enhanced == nil {
		t.Fatal("enhanced detail missing with stock enhancement enabled")
	}
	if enhanced.OriginalLabel != models.SentimentNeutral {
		t.Errorf("original label = %q, want neutral", enhanced.OriginalLabel)
	}
	if sentiment.Label != models.SentimentPositive {
		t.Errorf("folded label = %q, want positive", sentiment.Label)
	}
	if math.Abs(sentiment.Score-enhanced.StockAdjustedScore) > 1e-9 {
		t.Errorf("folded score %v != enhanced score %v", sentiment.Score, enhanced.StockAdjustedScore)
	}
	if sentiment.Confidence != enhanced.Confidence {
		t.Errorf("folded confidence %q != enhanced confidence %q", sentiment.Confidence, enhanced.Confidence)
	}
}

func TestVaderBackendPolarity(t *testing.T) {
	backend := NewVaderBackend()

	positive, err := backend.Score("This stock is amazing, great profits!")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	negative, err := backend.Score("Terrible loss, awful performance, very bad.")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if positive <= 0 {
		t.Errorf("positive text scored %v, want > 0", positive)
	}
	if negative >= 0 {
		t.Errorf("negative text scored %v, want < 0", negative)
	}
	if positive > 1 || negative < -1 {
		t.Errorf("compound scores out of [-1,1]: %v, %v", positive, negative)
	}
}

func TestVaderBackendStripsMarkdown(t *testing.T) {
	backend := NewVaderBackend()

	plain, err := backend.Score("great stock")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	linked, err := backend.Score("[great stock](https://example.com/pump-page)")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if math.Abs(plain-linked) > 1e-9 {
		t.Errorf("markdown link changed the score: %v vs %v", plain, linked)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short text untouched", "halo", 512, "halo"},
		{"exact limit untouched", "abc", 3, "abc"},
		{"long text truncated", "abcdef", 3, "abc"},
		{"multibyte runes counted as one", "🚀🚀🚀🚀", 2, "🚀🚀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateRunes(tt.text, tt.limit); got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}
