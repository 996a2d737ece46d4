package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sahamlab/sentimen/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadNewsData(t *testing.T) {
	path := writeFile(t, "news.json", `[
		{"title": "Berita 1", "url": "https://a.example", "source": "Sumber", "publication_date": "2025-10-05"},
		{"title": "Berita 2", "url": "https://b.example"}
	]`)

	articles, err := LoadNewsData(path)
	if err != nil {
		t.Fatalf("LoadNewsData: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	want := models.NewsArticle{Title: "Berita 1", URL: "https://a.example", Source: "Sumber", PublicationDate: "2025-10-05"}
	if articles[0] != want {
		t.Errorf("articles[0] = %+v, want %+v", articles[0], want)
	}
	if articles[1].Source != "" || articles[1].PublicationDate != "" {
		t.Errorf("optional fields should stay empty: %+v", articles[1])
	}
}

func TestLoadNewsDataErrors(t *testing.T) {
	if _, err := LoadNewsData("missing.json"); err == nil {
		t.Error("expected error for a missing file")
	}

	path := writeFile(t, "bad.json", "{not valid json")
	if _, err := LoadNewsData(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadCommentsData(t *testing.T) {
	path := writeFile(t, "comments.csv",
		"username,timestamp,comment_text,likes,replies,post_id\n"+
			"trader1,2025-10-05 10:00,\"naik terus, mantap\",5,2,p1\n"+
			"trader2,2025-10-05 10:05,biasa saja,,x,p2\n")

	comments, err := LoadCommentsData(path)
	if err != nil {
		t.Fatalf("LoadCommentsData: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}

	want := models.StreamComment{
		Username:    "trader1",
		Timestamp:   "2025-10-05 10:00",
		CommentText: "naik terus, mantap",
		Likes:       5,
		Replies:     2,
		PostID:      "p1",
	}
	if comments[0] != want {
		t.Errorf("comments[0] = %+v, want %+v", comments[0], want)
	}

	// Unparseable numeric cells default to zero.
	if comments[1].Likes != 0 || comments[1].Replies != 0 {
		t.Errorf("bad numeric cells should default to 0: %+v", comments[1])
	}
}

func TestLoadCommentsDataSkipsShortRows(t *testing.T) {
	path := writeFile(t, "comments.csv",
		"username,timestamp,comment_text,likes,replies,post_id\n"+
			"only_one_field\n"+
			"trader1,2025-10-05,oke,1,0,p1\n")

	comments, err := LoadCommentsData(path)
	if err != nil {
		t.Fatalf("LoadCommentsData: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1 (short row skipped)", len(comments))
	}
	if comments[0].Username != "trader1" {
		t.Errorf("kept the wrong row: %+v", comments[0])
	}
}

func TestSaveAndReloadAnalysisReport(t *testing.T) {
	report := models.AnalysisReport{
		AnalysisMetadata: models.AnalysisMetadata{
			AnalysisDate:        "2025-10-05T12:00:00Z",
			SourceFile:          "news.json",
			TotalArticles:       1,
			AnalysisMethodsUsed: map[string]int{models.MethodTransformer: 1},
		},
		SentimentSummary: models.SentimentSummary{
			BySentiment:          map[string]int{models.SentimentPositive: 1, models.SentimentNegative: 0, models.SentimentNeutral: 0},
			ByConfidence:         map[string]int{models.ConfidenceHigh: 1, models.ConfidenceMedium: 0, models.ConfidenceLow: 0},
			SentimentPercentages: map[string]float64{models.SentimentPositive: 100.0, models.SentimentNegative: 0.0, models.SentimentNeutral: 0.0},
		},
		DetailedResults: []models.DetailedResult{
			{
				Title:          "Berita",
				URL:            "https://a.example",
				Sentiment:      models.SentimentResult{Label: models.SentimentPositive, Score: 0.9, Confidence: models.ConfidenceHigh},
				AnalysisMethod: models.MethodTransformer,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveAnalysisReport(report, path); err != nil {
		t.Fatalf("SaveAnalysisReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	var reloaded models.AnalysisReport
	if err := json.Unmarshal(data, &reloaded); err != nil {
		t.Fatalf("parsing report: %v", err)
	}
	if !reflect.DeepEqual(report, reloaded) {
		t.Errorf("report round trip mismatch:\nsaved:    %+v\nreloaded: %+v", report, reloaded)
	}
}

func TestSaveCommentsCSV(t *testing.T) {
	results := []models.CommentAnalysisResult{
		{
			Comment:   models.StreamComment{Username: "trader1", Timestamp: "10:00", CommentText: "cuan 🚀", PostID: "p1"},
			Sentiment: models.SentimentResult{Label: models.SentimentPositive, Score: 1.5, Confidence: models.ConfidenceHigh},
			Method:    models.MethodTransformer,
			Enhanced: &models.EnhancedSentimentResult{
				OriginalLabel:      models.SentimentNeutral,
				OriginalScore:      0.0,
				StockAdjustedLabel: models.SentimentPositive,
				StockAdjustedScore: 1.5,
				Confidence:         models.ConfidenceHigh,
				StockTermsFound:    []string{"cuan", "🚀", "naik", "mantap"},
				AdjustmentReason:   "Found stock terms: cuan, 🚀, naik...",
			},
		},
		{
			Comment:   models.StreamComment{Username: "trader2", Timestamp: "10:05", CommentText: "biasa", PostID: "p2"},
			Sentiment: models.SentimentResult{Label: models.SentimentNeutral, Score: 0.0, Confidence: models.ConfidenceLow},
			Method:    models.MethodVaderFallback,
		},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := SaveCommentsCSV(results, path); err != nil {
		t.Fatalf("SaveCommentsCSV: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening csv: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("parsing csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}

	wantHeader := []string{
		"username", "timestamp", "comment_text", "sentiment", "confidence",
		"original_sentiment", "stock_terms_found", "adjustment_reason", "analysis_method",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	if rows[1][3] != "Positive" {
		t.Errorf("sentiment cell = %q, want capitalized Positive", rows[1][3])
	}
	if rows[1][5] != "Neutral" {
		t.Errorf("original sentiment cell = %q, want Neutral", rows[1][5])
	}
	if rows[1][6] != "cuan, 🚀, naik" {
		t.Errorf("stock terms cell = %q, want first three terms", rows[1][6])
	}

	// No enhancement detail: those cells stay empty.
	if rows[2][5] != "" || rows[2][6] != "" || rows[2][7] != "" {
		t.Errorf("enhancement cells should be empty: %v", rows[2])
	}
	if rows[2][8] != models.MethodVaderFallback {
		t.Errorf("method cell = %q, want %q", rows[2][8], models.MethodVaderFallback)
	}
}
