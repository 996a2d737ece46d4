package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/sahamlab/sentimen/internal/models"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks strips markdown links (keeping the link text) and bare
// URLs from input.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders any markdown in input to plain text
// and collapses whitespace. Stream comments frequently carry markdown
// formatting and links that would skew polarity scoring.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := htmlTagPattern.ReplaceAllString(string(output), " ")

	return strings.Join(strings.Fields(plainText), " ")
}

// VaderBackend is the heuristic fallback classifier: a rule-based
// polarity estimator whose compound score already lands in [-1, 1].
type VaderBackend struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderBackend() *VaderBackend {
	return &VaderBackend{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (b *VaderBackend) Method() string { return models.MethodVaderFallback }

func (b *VaderBackend) Score(text string) (float64, error) {
	plainText := ConvertMarkdownToText(text)

	scores := b.analyzer.PolarityScores(plainText)
	return scores.Compound, nil
}
