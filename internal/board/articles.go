package board

import (
	"github.com/scoop-api/internal/models"
	"github.com/scoop-api/internal/validation"
)

// ListArticles returns every live article, newest (highest ID) first.
func (b *Board) ListArticles() *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	return ok(models.ArticlesResponse{Articles: cloneArticles(b.store.ArticlesByNewest())})
}

// GetArticle returns a single article with its comments resolved from
// the comment ID list. A zero or unparseable ID is a bad request; a
// valid but dead ID is not found.
func (b *Board) GetArticle(id int) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	article, found := b.store.Article(id)
	switch {
	case found:
		return ok(models.ArticleDetailResponse{Article: &models.ArticleDetail{
			Article:  article.Clone(),
			Comments: cloneComments(b.store.CommentsByIDs(article.CommentIDs)),
		}})
	case id != 0:
		return notFound()
	default:
		return badRequest()
	}
}

// CreateArticle mints a new article for an existing user and appends it
// to the owner's article list.
func (b *Board) CreateArticle(p *models.Payload) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if p == nil || p.Article == nil {
		return badRequest()
	}
	if errs := validation.ArticlePayload(p.Article.Title, p.Article.URL, p.Article.Username); len(errs) > 0 {
		return badRequest()
	}
	owner, found := b.store.User(p.Article.Username)
	if !found {
		return badRequest()
	}

	article := models.NewArticle(b.store.NewArticleID(), p.Article.Title, p.Article.URL, p.Article.Username)
	b.store.PutArticle(article)
	owner.ArticleIDs = append(owner.ArticleIDs, article.ID)
	b.persist()

	b.log.Info().Int("id", article.ID).Str("username", article.Username).Msg("Article created")
	return created(models.ArticleResponse{Article: article.Clone()})
}

// UpdateArticle merges the payload into a live article. Title and URL
// are replaced only when the incoming field is non-empty; everything
// else is untouched.
func (b *Board) UpdateArticle(id int, p *models.Payload) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	if id == 0 || p == nil || p.Article == nil {
		return badRequest()
	}
	article, found := b.store.Article(id)
	if !found {
		return notFound()
	}

	if p.Article.Title != "" {
		article.Title = p.Article.Title
	}
	if p.Article.URL != "" {
		article.URL = p.Article.URL
	}
	b.persist()

	return ok(models.ArticleResponse{Article: article.Clone()})
}

// DeleteArticle tombstones an article and cascades over its comments:
// each comment is tombstoned and detached from its author, and the
// article is detached from its owner. Absence is a bad request here,
// unlike comment deletion; the asymmetry is part of the compatibility
// contract.
func (b *Board) DeleteArticle(id int) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	article, found := b.store.Article(id)
	if !found {
		return badRequest()
	}

	for _, commentID := range article.CommentIDs {
		comment, live := b.store.Comment(commentID)
		if !live {
			continue
		}
		b.store.DeleteComment(commentID)
		if author, live := b.store.User(comment.Username); live {
			author.CommentIDs = removeID(author.CommentIDs, commentID)
		}
	}
	b.store.DeleteArticle(id)
	if owner, live := b.store.User(article.Username); live {
		owner.ArticleIDs = removeID(owner.ArticleIDs, id)
	}
	b.persist()

	b.log.Info().Int("id", id).Int("comments", len(article.CommentIDs)).Msg("Article deleted")
	return noContent()
}

// UpvoteArticle records an upvote by an existing user on a live
// article. Repeat votes by the same user are no-ops.
func (b *Board) UpvoteArticle(id int, p *models.Payload) *Result {
	return b.voteArticle(id, payloadUsername(p), upvote)
}

// DownvoteArticle is the symmetric inverse of UpvoteArticle.
func (b *Board) DownvoteArticle(id int, p *models.Payload) *Result {
	return b.voteArticle(id, payloadUsername(p), downvote)
}

func (b *Board) voteArticle(id int, voter string, cast func(*models.VoteSets, string)) *Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	article, found := b.store.Article(id)
	if !found {
		return badRequest()
	}
	if _, found := b.store.User(voter); !found {
		return badRequest()
	}

	cast(&article.VoteSets, voter)
	b.persist()

	return ok(models.ArticleResponse{Article: article.Clone()})
}
