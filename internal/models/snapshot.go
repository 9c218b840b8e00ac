package models

// Snapshot is the whole-state serialization of the board: every entity
// map plus the two ID counters. It mirrors the store field for field so
// a reload reproduces the exact pre-save state.
type Snapshot struct {
	Users         map[string]*User `yaml:"users"`
	Articles      map[int]*Article `yaml:"articles"`
	Comments      map[int]*Comment `yaml:"comments"`
	NextArticleID int              `yaml:"nextArticleId"`
	NextCommentID int              `yaml:"nextCommentId"`
}
