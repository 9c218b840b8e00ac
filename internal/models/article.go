package models

// Article represents a posted article. IDs come from the store's
// monotonic counter and are never reused, even after deletion.
type Article struct {
	ID         int    `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	URL        string `json:"url" yaml:"url"`
	Username   string `json:"username" yaml:"username"`
	CommentIDs []int  `json:"commentIds" yaml:"commentIds"`
	VoteSets   `yaml:",inline"`
}

// NewArticle creates an article with empty comment and vote lists.
func NewArticle(id int, title, url, username string) *Article {
	return &Article{
		ID:         id,
		Title:      title,
		URL:        url,
		Username:   username,
		CommentIDs: []int{},
		VoteSets:   NewVoteSets(),
	}
}

// Clone returns a detached copy, safe to serialize outside the board's
// lock.
func (a *Article) Clone() *Article {
	return &Article{
		ID:         a.ID,
		Title:      a.Title,
		URL:        a.URL,
		Username:   a.Username,
		CommentIDs: cloneInts(a.CommentIDs),
		VoteSets:   a.VoteSets.Clone(),
	}
}
