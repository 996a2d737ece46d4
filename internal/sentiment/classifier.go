package sentiment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/sahamlab/sentimen/internal/models"
)

// DefaultModelName is the pretrained 3-class Indonesian sentiment
// classifier pulled from the HuggingFace hub on first use.
const DefaultModelName = "ayameRushia/bert-base-indonesian-1.5G-sentiment-analysis-smsa"

// DefaultModelDir is where downloaded ONNX models are cached.
const DefaultModelDir = "./models"

// DefaultMaxInputRunes bounds the text handed to the transformer;
// anything longer is truncated before inference.
const DefaultMaxInputRunes = 512

// Backend scores raw text into a signed polarity in [-1, 1]. Method
// returns the provenance tag attached to results this backend
// produced.
type Backend interface {
	Method() string
	Score(text string) (float64, error)
}

// TransformerBackend runs a pretrained sequence classifier through an
// ONNX runtime session. Construction downloads the model if it is not
// cached yet; a construction failure is permanent for the owning
// analyzer instance.
type TransformerBackend struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
	maxRunes int
}

func NewTransformerBackend(modelName, modelDir string, maxRunes int) (*TransformerBackend, error) {
	if modelName == "" {
		modelName = DefaultModelName
	}
	if modelDir == "" {
		modelDir = DefaultModelDir
	}
	if maxRunes <= 0 {
		maxRunes = DefaultMaxInputRunes
	}

	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, strings.ReplaceAll(modelName, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[TransformerBackend] Model not found locally, downloading...",
			slog.String("model", modelName))
		downloaded, err := hugot.DownloadModel(modelName, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("downloading model %s: %w", modelName, err)
		}
		modelPath = downloaded
		slog.Info("[TransformerBackend] Model downloaded successfully",
			slog.String("path", modelPath))
	} else {
		slog.Info("[TransformerBackend] Using cached model",
			slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("initializing ORT session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "stockSentimentPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("initializing classification pipeline: %w", err)
	}

	return &TransformerBackend{
		session:  session,
		pipeline: pipeline,
		maxRunes: maxRunes,
	}, nil
}

func (b *TransformerBackend) Method() string { return models.MethodTransformer }

// Score runs the classifier on text truncated to the input limit and
// maps the arg-max class to a signed polarity: +probability for
// positive, -probability for negative, 0 for neutral.
func (b *TransformerBackend) Score(text string) (float64, error) {
	truncated := truncateRunes(text, b.maxRunes)

	output, err := b.pipeline.RunPipeline([]string{truncated})
	if err != nil {
		return 0, fmt.Errorf("running classification pipeline: %w", err)
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return 0, fmt.Errorf("classification pipeline returned no outputs")
	}

	best := output.ClassificationOutputs[0][0]
	for _, class := range output.ClassificationOutputs[0][1:] {
		if class.Score > best.Score {
			best = class
		}
	}

	switch strings.ToLower(best.Label) {
	case models.SentimentPositive:
		return float64(best.Score), nil
	case models.SentimentNegative:
		return -float64(best.Score), nil
	default:
		return 0.0, nil
	}
}

// Close releases the underlying runtime session.
func (b *TransformerBackend) Close() {
	if b.session != nil {
		b.session.Destroy()
	}
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
