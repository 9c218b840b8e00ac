package models

// Response envelopes. Field names are part of the wire contract with the
// thin client and must stay exactly as written.

// UserResponse wraps a bare user (get-or-create).
type UserResponse struct {
	User *User `json:"user"`
}

// UserDetailResponse carries a user together with their resolved
// articles and comments (single-user read).
type UserDetailResponse struct {
	User         *User      `json:"user"`
	UserArticles []*Article `json:"userArticles"`
	UserComments []*Comment `json:"userComments"`
}

// ArticlesResponse wraps the article listing.
type ArticlesResponse struct {
	Articles []*Article `json:"articles"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *Article `json:"article"`
}

// ArticleDetail is the single-article read shape: the article's fields
// plus its resolved comments. The comments key is always emitted, as []
// when empty, unlike the listing shape which carries no comments at
// all.
type ArticleDetail struct {
	*Article
	Comments []*Comment `json:"comments"`
}

// ArticleDetailResponse wraps a single article with resolved comments.
type ArticleDetailResponse struct {
	Article *ArticleDetail `json:"article"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *Comment `json:"comment"`
}
