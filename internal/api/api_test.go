package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoop-api/internal/api"
	"github.com/scoop-api/internal/board"
	"github.com/scoop-api/internal/mocks"
	"github.com/scoop-api/internal/router"
	"github.com/scoop-api/internal/store"
)

func setupTestEngine(t *testing.T) (*gin.Engine, *mocks.SnapshotRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := mocks.NewSnapshotRecorder()
	b := board.New(store.New(), recorder, zerolog.Nop())
	rt := router.New(b, zerolog.Nop())
	return api.NewEngine(rt, b, zerolog.Nop()), recorder
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := setupTestEngine(t)

	w := do(t, engine, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	response := decode(t, w)
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "scoop-api", response["service"])
}

func TestStatsEndpoint(t *testing.T) {
	engine, _ := setupTestEngine(t)
	do(t, engine, http.MethodPost, "/users", `{"username":"alice"}`)
	do(t, engine, http.MethodPost, "/articles", `{"article":{"title":"t","url":"u","username":"alice"}}`)

	w := do(t, engine, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	response := decode(t, w)
	assert.Equal(t, float64(1), response["users"])
	assert.Equal(t, float64(1), response["articles"])
	assert.Equal(t, float64(0), response["comments"])
}

func TestUnmatchedRouteIs400(t *testing.T) {
	engine, _ := setupTestEngine(t)

	w := do(t, engine, http.MethodGet, "/bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, engine, http.MethodDelete, "/users/alice", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedJSONBodyIs400(t *testing.T) {
	engine, _ := setupTestEngine(t)

	w := do(t, engine, http.MethodPost, "/users", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	engine, _ := setupTestEngine(t)

	w := do(t, engine, http.MethodOptions, "/articles", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestRequestIDHeader(t *testing.T) {
	engine, _ := setupTestEngine(t)

	w := do(t, engine, http.MethodGet, "/articles", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}

func TestEmptyCollectionsSerializeAsArrays(t *testing.T) {
	engine, _ := setupTestEngine(t)

	w := do(t, engine, http.MethodPost, "/users", `{"username":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"user":{"username":"alice","articleIds":[],"commentIds":[]}}`, w.Body.String())

	w = do(t, engine, http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"articles":[]}`, w.Body.String())
}

func TestGetOrCreateUserStatusSequence(t *testing.T) {
	engine, _ := setupTestEngine(t)

	assert.Equal(t, http.StatusCreated, do(t, engine, http.MethodPost, "/users", `{"username":"alice"}`).Code)
	assert.Equal(t, http.StatusOK, do(t, engine, http.MethodPost, "/users", `{"username":"alice"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, engine, http.MethodPost, "/users", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, engine, http.MethodPost, "/users", "").Code)
}

// Replays the canonical scenario over the wire.
func TestScenarioOverHTTP(t *testing.T) {
	engine, recorder := setupTestEngine(t)

	require.Equal(t, http.StatusCreated, do(t, engine, http.MethodPost, "/users", `{"username":"alice"}`).Code)

	w := do(t, engine, http.MethodPost, "/articles", `{"article":{"title":"T","url":"u","username":"alice"}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	article := decode(t, w)["article"].(map[string]any)
	require.Equal(t, float64(1), article["id"])

	// A single-article read always carries the comments key, even before
	// any comment exists.
	w = do(t, engine, http.MethodGet, "/articles/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	article = decode(t, w)["article"].(map[string]any)
	require.Contains(t, article, "comments")
	assert.Equal(t, []any{}, article["comments"])

	w = do(t, engine, http.MethodPut, "/articles/1/upvote", `{"username":"alice"}`)
	require.Equal(t, http.StatusOK, w.Code)
	article = decode(t, w)["article"].(map[string]any)
	assert.Equal(t, []any{"alice"}, article["upvotedBy"])

	w = do(t, engine, http.MethodPost, "/comments", `{"comment":{"body":"hi","username":"alice","articleId":1}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	comment := decode(t, w)["comment"].(map[string]any)
	require.Equal(t, float64(1), comment["id"])

	w = do(t, engine, http.MethodGet, "/articles/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	article = decode(t, w)["article"].(map[string]any)
	require.Len(t, article["comments"], 1)

	w = do(t, engine, http.MethodDelete, "/articles/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, do(t, engine, http.MethodGet, "/articles/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, engine, http.MethodPut, "/comments/1", `{"comment":{"body":"x"}}`).Code)

	w = do(t, engine, http.MethodGet, "/users/alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	response := decode(t, w)
	assert.Empty(t, response["userArticles"])
	assert.Empty(t, response["userComments"])

	assert.NotEmpty(t, recorder.Saved, "mutations over HTTP persist snapshots")
}

func TestDeleteStatusAsymmetryOverHTTP(t *testing.T) {
	engine, _ := setupTestEngine(t)

	assert.Equal(t, http.StatusBadRequest, do(t, engine, http.MethodDelete, "/articles/42", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, engine, http.MethodDelete, "/comments/42", "").Code)
}
