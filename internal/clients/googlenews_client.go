package clients

import (
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sahamlab/sentimen/internal/models"
)

const (
	GOOGLE_NEWS_ENDPOINT = "https://news.google.com/rss/search?q=%s&hl=id&gl=ID&ceid=ID:id"
	USER_AGENT           = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second
)

var (
	googleNewsInstance *GoogleNewsClient
	googleNewsOnce     sync.Once
)

type GoogleNewsClient struct {
	Client *http.Client
}

func GetGoogleNewsClient() *GoogleNewsClient {
	googleNewsOnce.Do(func() {
		googleNewsInstance = &GoogleNewsClient{
			Client: &http.Client{Timeout: 15 * time.Second},
		}
	})
	return googleNewsInstance
}

// Search fetches the Google News RSS feed for query and returns up to
// maxItems parsed articles.
func (g *GoogleNewsClient) Search(query string, maxItems int) ([]models.NewsArticle, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("[GoogleNewsClient] empty search query")
	}

	feedURL := fmt.Sprintf(GOOGLE_NEWS_ENDPOINT, url.QueryEscape(query))
	slog.Info("[GoogleNewsClient] Searching news",
		slog.String("query", query),
		slog.Int("max_items", maxItems))

	body, err := g.fetch(feedURL)
	if err != nil {
		return nil, err
	}

	articles, err := ParseNewsRSS(body, maxItems)
	if err != nil {
		return nil, err
	}

	slog.Info("[GoogleNewsClient] Search completed",
		slog.Int("items", len(articles)))
	return articles, nil
}

func (g *GoogleNewsClient) fetch(feedURL string) ([]byte, error) {
	var lastErr error
	backoff := INITIAL_BACKOFF

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		req, err := http.NewRequest(http.MethodGet, feedURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", USER_AGENT)

		res, err := g.Client.Do(req)
		if err != nil {
			slog.Warn("[GoogleNewsClient] Request failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			lastErr = err
		} else {
			switch {
			case res.StatusCode == http.StatusOK:
				body, err := io.ReadAll(res.Body)
				res.Body.Close()
				if err != nil {
					return nil, fmt.Errorf("reading feed body: %w", err)
				}
				return body, nil
			case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500:
				slog.Warn("[GoogleNewsClient] Retryable response, backing off",
					slog.Int("status", res.StatusCode),
					slog.Duration("backoff", backoff),
					slog.Int("attempt", attempt))
				io.Copy(io.Discard, res.Body)
				res.Body.Close()
				lastErr = fmt.Errorf("status code %d", res.StatusCode)
			default:
				res.Body.Close()
				return nil, fmt.Errorf("unexpected status code %d", res.StatusCode)
			}
		}

		time.Sleep(backoff)
		backoff *= 2
		if backoff > MAX_BACKOFF {
			backoff = MAX_BACKOFF
		}
	}

	return nil, fmt.Errorf("fetching feed after %d attempts: %w", MAX_RETRIES, lastErr)
}

type rssFeed struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

// ParseNewsRSS extracts articles from a Google News RSS document.
// Items missing a title or link are dropped; the source falls back to
// the link's hostname and publication dates are normalized to
// 2006-01-02.
func ParseNewsRSS(data []byte, maxItems int) ([]models.NewsArticle, error) {
	var feed rssFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("parsing RSS feed: %w", err)
	}

	items := feed.Channel.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	articles := make([]models.NewsArticle, 0, len(items))
	for _, item := range items {
		title := html.UnescapeString(strings.TrimSpace(item.Title))
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}

		source := strings.TrimSpace(item.Source)
		if source == "" {
			source = hostOf(link)
		}

		articles = append(articles, models.NewsArticle{
			Title:           title,
			URL:             link,
			Source:          source,
			PublicationDate: normalizePubDate(item.PubDate),
		})
	}
	return articles, nil
}

func hostOf(link string) string {
	parsed, err := url.Parse(link)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

func normalizePubDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range pubDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	slog.Warn("[GoogleNewsClient] Unparseable publication date",
		slog.String("pub_date", raw))
	return ""
}
