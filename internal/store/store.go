// Package store holds the in-memory entity graph: users keyed by
// username, articles and comments keyed by ID, and the two monotonic ID
// counters. It performs no cross-entity validation; the board layer is
// its single logical owner and does all writes.
package store

import (
	"sort"

	"github.com/scoop-api/internal/models"
)

// Store is the process-wide entity state. Deletion removes the map slot
// but never rewinds a counter, so IDs are never reused.
type Store struct {
	users         map[string]*models.User
	articles      map[int]*models.Article
	comments      map[int]*models.Comment
	nextArticleID int
	nextCommentID int
}

// New returns an empty store with both counters at 1.
func New() *Store {
	return &Store{
		users:         make(map[string]*models.User),
		articles:      make(map[int]*models.Article),
		comments:      make(map[int]*models.Comment),
		nextArticleID: 1,
		nextCommentID: 1,
	}
}

// FromSnapshot rebuilds a store from a loaded snapshot. A nil snapshot,
// nil maps or zero counters fall back to the empty defaults.
func FromSnapshot(snap *models.Snapshot) *Store {
	s := New()
	if snap == nil {
		return s
	}
	for username, user := range snap.Users {
		s.users[username] = user
	}
	for id, article := range snap.Articles {
		s.articles[id] = article
	}
	for id, comment := range snap.Comments {
		s.comments[id] = comment
	}
	if snap.NextArticleID > 0 {
		s.nextArticleID = snap.NextArticleID
	}
	if snap.NextCommentID > 0 {
		s.nextCommentID = snap.NextCommentID
	}
	return s
}

// Snapshot exports the full state for persistence. Entities are cloned
// along with the maps, so a held snapshot never observes later writes.
func (s *Store) Snapshot() *models.Snapshot {
	snap := &models.Snapshot{
		Users:         make(map[string]*models.User, len(s.users)),
		Articles:      make(map[int]*models.Article, len(s.articles)),
		Comments:      make(map[int]*models.Comment, len(s.comments)),
		NextArticleID: s.nextArticleID,
		NextCommentID: s.nextCommentID,
	}
	for username, user := range s.users {
		snap.Users[username] = user.Clone()
	}
	for id, article := range s.articles {
		snap.Articles[id] = article.Clone()
	}
	for id, comment := range s.comments {
		snap.Comments[id] = comment.Clone()
	}
	return snap
}

// User looks up a user by username.
func (s *Store) User(username string) (*models.User, bool) {
	user, ok := s.users[username]
	return user, ok
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(user *models.User) {
	s.users[user.Username] = user
}

// Article looks up a live article by ID.
func (s *Store) Article(id int) (*models.Article, bool) {
	article, ok := s.articles[id]
	return article, ok
}

// PutArticle inserts or replaces an article.
func (s *Store) PutArticle(article *models.Article) {
	s.articles[article.ID] = article
}

// DeleteArticle tombstones an article. The slot becomes unretrievable
// and the ID stays burned.
func (s *Store) DeleteArticle(id int) {
	delete(s.articles, id)
}

// Comment looks up a live comment by ID.
func (s *Store) Comment(id int) (*models.Comment, bool) {
	comment, ok := s.comments[id]
	return comment, ok
}

// PutComment inserts or replaces a comment.
func (s *Store) PutComment(comment *models.Comment) {
	s.comments[comment.ID] = comment
}

// DeleteComment tombstones a comment.
func (s *Store) DeleteComment(id int) {
	delete(s.comments, id)
}

// NewArticleID mints the next article ID.
func (s *Store) NewArticleID() int {
	id := s.nextArticleID
	s.nextArticleID++
	return id
}

// NewCommentID mints the next comment ID.
func (s *Store) NewCommentID() int {
	id := s.nextCommentID
	s.nextCommentID++
	return id
}

// ArticlesByNewest returns all live articles sorted by ID descending,
// so the most recently created article comes first.
func (s *Store) ArticlesByNewest() []*models.Article {
	articles := make([]*models.Article, 0, len(s.articles))
	for _, article := range s.articles {
		articles = append(articles, article)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].ID > articles[j].ID
	})
	return articles
}

// ArticlesByIDs resolves a list of article IDs, skipping tombstoned
// entries, preserving list order.
func (s *Store) ArticlesByIDs(ids []int) []*models.Article {
	articles := make([]*models.Article, 0, len(ids))
	for _, id := range ids {
		if article, ok := s.articles[id]; ok {
			articles = append(articles, article)
		}
	}
	return articles
}

// CommentsByIDs resolves a list of comment IDs, skipping tombstoned
// entries, preserving list order.
func (s *Store) CommentsByIDs(ids []int) []*models.Comment {
	comments := make([]*models.Comment, 0, len(ids))
	for _, id := range ids {
		if comment, ok := s.comments[id]; ok {
			comments = append(comments, comment)
		}
	}
	return comments
}

// Counts reports the number of live users, articles and comments.
func (s *Store) Counts() (users, articles, comments int) {
	return len(s.users), len(s.articles), len(s.comments)
}
