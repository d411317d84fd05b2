package models

// Post represents a published article.
//
// Posts are created anonymously and addressed by their URL slug rather than
// by the numeric identifier; the slug is unique across the whole table.
// A post is immutable once stored: this application has no edit or delete
// flow for articles.
type Post struct {
	// PostID is the internal unique identifier assigned by the database.
	PostID int64 `json:"id"`

	// Title is the display title of the article.
	Title string `json:"title"`

	// Body is the article text. Embedded <img> references inside the body
	// are rewritten at insert time to point at the configured static asset
	// base path; the stored body already contains the rewritten form.
	Body string `json:"body"`

	// URL is the unique, URL-safe slug used to retrieve the post.
	URL string `json:"url"`

	// CreatedAt is the Unix timestamp (seconds) of the moment the post was
	// inserted. Set once by the service layer, never mutated.
	CreatedAt int64 `json:"created_at"`
}

// PostSummary is the listing projection of a post used on the index page
// and in the admin panel. It omits CreatedAt because listings are already
// ordered by it.
type PostSummary struct {
	PostID int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	URL    string `json:"url"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
