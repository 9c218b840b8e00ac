package board

import (
	"github.com/scoop-api/internal/models"
	"github.com/scoop-api/internal/validation"
)

// GetOrCreateUser returns the existing user for the payload's username
// (200) or registers a new empty one (201). A missing username is a bad
// request.
func (b *Board) GetOrCreateUser(p *models.Payload) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	username := payloadUsername(p)
	if user, found := b.store.User(username); found {
		return ok(models.UserResponse{User: user.Clone()})
	}
	if errs := validation.UserPayload(username); len(errs) > 0 {
		return badRequest()
	}

	user := models.NewUser(username)
	b.store.PutUser(user)
	b.persist()

	b.log.Info().Str("username", username).Msg("User created")
	return created(models.UserResponse{User: user.Clone()})
}

// GetUser returns a user together with their live articles and
// comments, resolved from the authorship lists.
func (b *Board) GetUser(username string) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	user, found := b.store.User(username)
	switch {
	case found:
		return ok(models.UserDetailResponse{
			User:         user.Clone(),
			UserArticles: cloneArticles(b.store.ArticlesByIDs(user.ArticleIDs)),
			UserComments: cloneComments(b.store.CommentsByIDs(user.CommentIDs)),
		})
	case username != "":
		return notFound()
	default:
		return badRequest()
	}
}
