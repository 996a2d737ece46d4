package models

// NewsArticle is a single headline pulled from the news feed. Source
// and PublicationDate may be empty when the feed omits them;
// PublicationDate is an ISO date string (2006-01-02) when present.
type NewsArticle struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	Source          string `json:"source,omitempty"`
	PublicationDate string `json:"publication_date,omitempty"`
}
