package models

// StreamComment is a single comment scraped from the social-investing
// stream. Only CommentText feeds scoring; the rest is passthrough
// metadata for the export.
type StreamComment struct {
	Username    string `json:"username"`
	Timestamp   string `json:"timestamp"`
	CommentText string `json:"comment_text"`
	Likes       int    `json:"likes"`
	Replies     int    `json:"replies"`
	PostID      string `json:"post_id"`
}
