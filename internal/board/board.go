// Package board implements the domain operations of the content board:
// user, article and comment CRUD plus voting. Every operation validates
// first, mutates the store second, and returns a structured outcome for
// the transport to serialize — no partial mutation ever escapes a failed
// validation.
package board

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/scoop-api/internal/models"
	"github.com/scoop-api/internal/snapshot"
	"github.com/scoop-api/internal/store"
)

// Result is the outcome of a domain operation: an HTTP status plus an
// optional body to serialize. A nil body means an empty response.
type Result struct {
	Status int
	Body   any
}

// Board owns the entity store. A single mutex serializes every
// operation, so each request runs to completion before the next one
// touches the store.
type Board struct {
	mu    sync.Mutex
	store *store.Store
	snaps snapshot.Gateway
	log   zerolog.Logger
}

// New wires a board over the given store and snapshot gateway.
func New(st *store.Store, snaps snapshot.Gateway, log zerolog.Logger) *Board {
	return &Board{
		store: st,
		snaps: snaps,
		log:   log.With().Str("component", "board").Logger(),
	}
}

// Stats reports live entity counts for the operational endpoints.
func (b *Board) Stats() (users, articles, comments int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Counts()
}

// persist hands the full store state to the snapshot gateway. A write
// failure is logged and swallowed; the in-memory mutation stands.
func (b *Board) persist() {
	if err := b.snaps.Save(b.store.Snapshot()); err != nil {
		b.log.Error().Err(err).Msg("Snapshot save failed")
	}
}

func ok(body any) *Result {
	return &Result{Status: http.StatusOK, Body: body}
}

func created(body any) *Result {
	return &Result{Status: http.StatusCreated, Body: body}
}

func noContent() *Result {
	return &Result{Status: http.StatusNoContent}
}

func badRequest() *Result {
	return &Result{Status: http.StatusBadRequest}
}

func notFound() *Result {
	return &Result{Status: http.StatusNotFound}
}

// Results leave the lock with the operation, so every body is built
// from clones; handing out live store pointers would race with the
// transport's serialization.

func cloneArticles(articles []*models.Article) []*models.Article {
	out := make([]*models.Article, len(articles))
	for i, article := range articles {
		out[i] = article.Clone()
	}
	return out
}

func cloneComments(comments []*models.Comment) []*models.Comment {
	out := make([]*models.Comment, len(comments))
	for i, comment := range comments {
		out[i] = comment.Clone()
	}
	return out
}

// removeID deletes the first occurrence of id from ids in place.
func removeID(ids []int, id int) []int {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func payloadUsername(p *models.Payload) string {
	if p == nil {
		return ""
	}
	return p.Username
}
