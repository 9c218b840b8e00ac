package models

// Comment represents a comment attached to exactly one article. Comment
// IDs come from their own counter, independent of article IDs.
type Comment struct {
	ID        int    `json:"id" yaml:"id"`
	Body      string `json:"body" yaml:"body"`
	Username  string `json:"username" yaml:"username"`
	ArticleID int    `json:"articleId" yaml:"articleId"`
	VoteSets  `yaml:",inline"`
}

// NewComment creates a comment with empty vote lists.
func NewComment(id int, body, username string, articleID int) *Comment {
	return &Comment{
		ID:        id,
		Body:      body,
		Username:  username,
		ArticleID: articleID,
		VoteSets:  NewVoteSets(),
	}
}

// Clone returns a detached copy, safe to serialize outside the board's
// lock.
func (c *Comment) Clone() *Comment {
	return &Comment{
		ID:        c.ID,
		Body:      c.Body,
		Username:  c.Username,
		ArticleID: c.ArticleID,
		VoteSets:  c.VoteSets.Clone(),
	}
}
