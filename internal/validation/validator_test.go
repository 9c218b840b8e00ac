package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoop-api/internal/validation"
)

func TestUserPayload(t *testing.T) {
	assert.Empty(t, validation.UserPayload("alice"))

	errs := validation.UserPayload("")
	assert.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
}

func TestArticlePayload(t *testing.T) {
	assert.Empty(t, validation.ArticlePayload("title", "http://example.com", "alice"))

	errs := validation.ArticlePayload("", "", "")
	assert.Len(t, errs, 3)

	errs = validation.ArticlePayload("title", "", "alice")
	assert.Len(t, errs, 1)
	assert.Equal(t, "url", errs[0].Field)
}

func TestCommentPayload(t *testing.T) {
	assert.Empty(t, validation.CommentPayload("hi", "alice", 1))

	errs := validation.CommentPayload("", "", 0)
	assert.Len(t, errs, 3)

	errs = validation.CommentPayload("hi", "alice", 0)
	assert.Len(t, errs, 1)
	assert.Equal(t, "articleId", errs[0].Field)
}
