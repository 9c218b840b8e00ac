package board

import (
	"github.com/scoop-api/internal/models"
	"github.com/scoop-api/internal/validation"
)

// CreateComment mints a new comment for an existing user on a live
// article and appends it to both the author's and the article's comment
// lists.
func (b *Board) CreateComment(p *models.Payload) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p == nil || p.Comment == nil {
		return badRequest()
	}
	if errs := validation.CommentPayload(p.Comment.Body, p.Comment.Username, p.Comment.ArticleID); len(errs) > 0 {
		return badRequest()
	}
	author, found := b.store.User(p.Comment.Username)
	if !found {
		return badRequest()
	}
	article, found := b.store.Article(p.Comment.ArticleID)
	if !found {
		return badRequest()
	}

	comment := models.NewComment(b.store.NewCommentID(), p.Comment.Body, p.Comment.Username, p.Comment.ArticleID)
	b.store.PutComment(comment)
	author.CommentIDs = append(author.CommentIDs, comment.ID)
	article.CommentIDs = append(article.CommentIDs, comment.ID)
	b.persist()

	b.log.Info().Int("id", comment.ID).Int("articleId", article.ID).Str("username", comment.Username).Msg("Comment created")
	return created(models.CommentResponse{Comment: comment.Clone()})
}

// UpdateComment replaces a live comment's body when the incoming body is
// non-empty.
func (b *Board) UpdateComment(id int, p *models.Payload) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if id == 0 || p == nil || p.Comment == nil {
		return badRequest()
	}
	comment, found := b.store.Comment(id)
	if !found {
		return notFound()
	}

	if p.Comment.Body != "" {
		comment.Body = p.Comment.Body
	}
	b.persist()

	return ok(models.CommentResponse{Comment: comment.Clone()})
}

// DeleteComment tombstones a comment and detaches it from its author
// and parent article. Absence is not found, unlike article deletion.
func (b *Board) DeleteComment(id int) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	comment, found := b.store.Comment(id)
	if !found {
		return notFound()
	}

	b.store.DeleteComment(id)
	if author, live := b.store.User(comment.Username); live {
		author.CommentIDs = removeID(author.CommentIDs, id)
	}
	if article, live := b.store.Article(comment.ArticleID); live {
		article.CommentIDs = removeID(article.CommentIDs, id)
	}
	b.persist()

	b.log.Info().Int("id", id).Msg("Comment deleted")
	return noContent()
}

// UpvoteComment records an upvote by an existing user on a live
// comment. Repeat votes by the same user are no-ops.
func (b *Board) UpvoteComment(id int, p *models.Payload) *Result {
	return b.voteComment(id, payloadUsername(p), upvote)
}

// DownvoteComment is the symmetric inverse of UpvoteComment.
func (b *Board) DownvoteComment(id int, p *models.Payload) *Result {
	return b.voteComment(id, payloadUsername(p), downvote)
}

func (b *Board) voteComment(id int, voter string, cast func(*models.VoteSets, string)) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	comment, found := b.store.Comment(id)
	if !found {
		return badRequest()
	}
	if _, found := b.store.User(voter); !found {
		return badRequest()
	}

	cast(&comment.VoteSets, voter)
	b.persist()

	return ok(models.CommentResponse{Comment: comment.Clone()})
}
