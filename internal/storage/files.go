package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sahamlab/sentimen/internal/models"
)

// LoadNewsData reads a JSON array of news articles.
func LoadNewsData(path string) ([]models.NewsArticle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var articles []models.NewsArticle
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	slog.Info("[Storage] Loaded articles",
		slog.Int("count", len(articles)),
		slog.String("path", path))
	return articles, nil
}

// SaveNewsData writes articles as an indented JSON array.
func SaveNewsData(articles []models.NewsArticle, path string) error {
	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling articles: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	slog.Info("[Storage] Saved articles",
		slog.Int("count", len(articles)),
		slog.String("path", path))
	return nil
}

// LoadCommentsData reads a comment-stream CSV with header
// username,timestamp,comment_text,likes,replies,post_id. Numeric cells
// that fail to parse default to zero; rows with missing columns are
// skipped with a warning.
func LoadCommentsData(path string) ([]models.StreamComment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	column := headerIndex(records[0])
	comments := make([]models.StreamComment, 0, len(records)-1)
	for i, record := range records[1:] {
		comment, ok := parseCommentRow(record, column)
		if !ok {
			slog.Warn("[Storage] Skipping malformed comment row",
				slog.Int("row", i+2),
				slog.Int("fields", len(record)))
			continue
		}
		comments = append(comments, comment)
	}

	slog.Info("[Storage] Loaded comments",
		slog.Int("count", len(comments)),
		slog.String("path", path))
	return comments, nil
}

func headerIndex(header []string) map[string]int {
	column := make(map[string]int, len(header))
	for i, name := range header {
		column[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return column
}

func parseCommentRow(record []string, column map[string]int) (models.StreamComment, bool) {
	cell := func(name string) (string, bool) {
		i, ok := column[name]
		if !ok || i >= len(record) {
			return "", false
		}
		return record[i], true
	}

	username, okUser := cell("username")
	text, okText := cell("comment_text")
	if !okUser || !okText {
		return models.StreamComment{}, false
	}

	timestamp, _ := cell("timestamp")
	postID, _ := cell("post_id")
	likesCell, _ := cell("likes")
	repliesCell, _ := cell("replies")

	return models.StreamComment{
		Username:    username,
		Timestamp:   timestamp,
		CommentText: text,
		Likes:       parseCount(likesCell),
		Replies:     parseCount(repliesCell),
		PostID:      postID,
	}, true
}

func parseCount(cell string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SaveAnalysisReport writes the aggregate report as indented JSON.
func SaveAnalysisReport(report models.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	slog.Info("[Storage] Analysis report saved", slog.String("path", path))
	return nil
}

// SaveCommentsCSV writes one row per analyzed comment with the
// enhancement columns filled in when enhancement detail is present.
func SaveCommentsCSV(results []models.CommentAnalysisResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		"username", "timestamp", "comment_text", "sentiment", "confidence",
		"original_sentiment", "stock_terms_found", "adjustment_reason", "analysis_method",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, result := range results {
		var stockTerms, originalSentiment, adjustmentReason string
		if result.Enhanced != nil {
			terms := result.Enhanced.StockTermsFound
			if len(terms) > 3 {
				terms = terms[:3]
			}
			stockTerms = strings.Join(terms, ", ")
			originalSentiment = capitalize(result.Enhanced.OriginalLabel)
			adjustmentReason = result.Enhanced.AdjustmentReason
		}

		row := []string{
			result.Comment.Username,
			result.Comment.Timestamp,
			result.Comment.CommentText,
			capitalize(result.Sentiment.Label),
			result.Sentiment.Confidence,
			originalSentiment,
			stockTerms,
			adjustmentReason,
			result.Method,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	slog.Info("[Storage] Comment results saved",
		slog.Int("rows", len(results)),
		slog.String("path", path))
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
