package models

// Payload is the decoded JSON request body. The thin client sends one
// envelope shape per operation (`username` for user and vote requests,
// `article` or `comment` for the resource operations); unused fields are
// simply absent.
type Payload struct {
	Username string          `json:"username"`
	Article  *ArticlePayload `json:"article"`
	Comment  *CommentPayload `json:"comment"`
}

// ArticlePayload carries the client-settable article fields.
type ArticlePayload struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
}

// CommentPayload carries the client-settable comment fields.
type CommentPayload struct {
	Body      string `json:"body"`
	Username  string `json:"username"`
	ArticleID int    `json:"articleId"`
}
