package models

// User represents a registered user. The username doubles as the primary
// key; there is no surrogate ID.
type User struct {
	Username   string `json:"username" yaml:"username"`
	ArticleIDs []int  `json:"articleIds" yaml:"articleIds"`
	CommentIDs []int  `json:"commentIds" yaml:"commentIds"`
}

// NewUser creates a user with empty authorship lists. The lists are
// allocated so they serialize as [] rather than null.
func NewUser(username string) *User {
	return &User{
		Username:   username,
		ArticleIDs: []int{},
		CommentIDs: []int{},
	}
}

// Clone returns a detached copy, safe to serialize outside the board's
// lock.
func (u *User) Clone() *User {
	return &User{
		Username:   u.Username,
		ArticleIDs: cloneInts(u.ArticleIDs),
		CommentIDs: cloneInts(u.CommentIDs),
	}
}
