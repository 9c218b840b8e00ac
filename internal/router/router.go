// Package router maps (method, path) pairs onto board operations
// through a fixed table of route patterns. The matcher is positional
// and assumes the board's fixed URL shapes; it is deliberately not a
// general-purpose router.
package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/scoop-api/internal/board"
	"github.com/scoop-api/internal/models"
)

// Params carries the named captures bound from the request path. ID is
// zero when the segment is missing, non-numeric or not positive; the
// operations treat that as a malformed identifier.
type Params struct {
	Username string
	ID       int
}

// Operation adapts one board operation to the dispatch table.
type Operation func(params Params, payload *models.Payload) *board.Result

type segment struct {
	literal string
	param   string
}

// pattern is a compiled route template: literal segments plus named
// capture segments (":id", ":username").
type pattern struct {
	raw      string
	segments []segment
}

func compile(raw string) pattern {
	p := pattern{raw: raw}
	for _, s := range splitPath(raw) {
		if name, isParam := strings.CutPrefix(s, ":"); isParam {
			p.segments = append(p.segments, segment{param: name})
		} else {
			p.segments = append(p.segments, segment{literal: s})
		}
	}
	return p
}

// bind extracts the pattern's named captures from a concrete path.
func (p pattern) bind(path string) Params {
	segs := splitPath(path)
	var params Params
	for i, s := range p.segments {
		if s.param == "" || i >= len(segs) {
			continue
		}
		switch s.param {
		case "username":
			params.Username = segs[i]
		case "id":
			if id, err := strconv.Atoi(segs[i]); err == nil && id > 0 {
				params.ID = id
			}
		}
	}
	return params
}

// Router holds the dispatch table: route pattern -> method -> operation.
type Router struct {
	table    map[string]map[string]Operation
	patterns map[string]pattern
	log      zerolog.Logger
}

// New builds the full route surface over a board.
func New(b *board.Board, log zerolog.Logger) *Router {
	r := &Router{
		table:    make(map[string]map[string]Operation),
		patterns: make(map[string]pattern),
		log:      log.With().Str("component", "router").Logger(),
	}

	r.handle("/users", http.MethodPost, func(_ Params, p *models.Payload) *board.Result {
		return b.GetOrCreateUser(p)
	})
	r.handle("/users/:username", http.MethodGet, func(params Params, _ *models.Payload) *board.Result {
		return b.GetUser(params.Username)
	})

	r.handle("/articles", http.MethodGet, func(_ Params, _ *models.Payload) *board.Result {
		return b.ListArticles()
	})
	r.handle("/articles", http.MethodPost, func(_ Params, p *models.Payload) *board.Result {
		return b.CreateArticle(p)
	})
	r.handle("/articles/:id", http.MethodGet, func(params Params, _ *models.Payload) *board.Result {
		return b.GetArticle(params.ID)
	})
	r.handle("/articles/:id", http.MethodPut, func(params Params, p *models.Payload) *board.Result {
		return b.UpdateArticle(params.ID, p)
	})
	r.handle("/articles/:id", http.MethodDelete, func(params Params, _ *models.Payload) *board.Result {
		return b.DeleteArticle(params.ID)
	})
	r.handle("/articles/:id/upvote", http.MethodPut, func(params Params, p *models.Payload) *board.Result {
		return b.UpvoteArticle(params.ID, p)
	})
	r.handle("/articles/:id/downvote", http.MethodPut, func(params Params, p *models.Payload) *board.Result {
		return b.DownvoteArticle(params.ID, p)
	})

	r.handle("/comments", http.MethodPost, func(_ Params, p *models.Payload) *board.Result {
		return b.CreateComment(p)
	})
	r.handle("/comments/:id", http.MethodPut, func(params Params, p *models.Payload) *board.Result {
		return b.UpdateComment(params.ID, p)
	})
	r.handle("/comments/:id", http.MethodDelete, func(params Params, _ *models.Payload) *board.Result {
		return b.DeleteComment(params.ID)
	})
	r.handle("/comments/:id/upvote", http.MethodPut, func(params Params, p *models.Payload) *board.Result {
		return b.UpvoteComment(params.ID, p)
	})
	r.handle("/comments/:id/downvote", http.MethodPut, func(params Params, p *models.Payload) *board.Result {
		return b.DownvoteComment(params.ID, p)
	})

	return r
}

func (r *Router) handle(raw, method string, op Operation) {
	if _, exists := r.patterns[raw]; !exists {
		r.patterns[raw] = compile(raw)
		r.table[raw] = make(map[string]Operation)
	}
	r.table[raw][method] = op
}

// Normalize folds a concrete request path onto its route pattern key.
// The precedence order is fixed: segment count one, then the
// upvote/downvote literal, then the users literal, then the default ID
// shape. Changing this order changes dispatch for ambiguous paths.
func Normalize(path string) string {
	segs := splitPath(path)
	switch {
	case len(segs) == 0:
		return ""
	case len(segs) == 1:
		return "/" + segs[0]
	case len(segs) >= 3 && (segs[2] == "upvote" || segs[2] == "downvote"):
		return "/" + segs[0] + "/:id/" + segs[2]
	case segs[0] == "users":
		return "/" + segs[0] + "/:username"
	default:
		return "/" + segs[0] + "/:id"
	}
}

// Dispatch resolves and runs the operation for a request. An unknown
// pattern or an unsupported method on a known pattern is a bad request,
// not a not-found.
func (r *Router) Dispatch(method, path string, payload *models.Payload) *board.Result {
	key := Normalize(path)
	methods, known := r.table[key]
	if !known {
		r.log.Debug().Str("method", method).Str("path", path).Msg("Unmatched route")
		return &board.Result{Status: http.StatusBadRequest}
	}
	op, supported := methods[method]
	if !supported {
		r.log.Debug().Str("method", method).Str("path", path).Msg("Unmatched method")
		return &board.Result{Status: http.StatusBadRequest}
	}
	return op(r.patterns[key].bind(path), payload)
}

func splitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
