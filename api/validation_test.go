package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overtone-studio/site-backend/models"
)

// Validation failures must block submission before any store call, so
// these handlers are exercised with no database behind them.

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestSubmitContact_RequiredFields(t *testing.T) {
	h := newContactHandler(nil, nil)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"email":"a@b.c","message":"hi"}`, "name"},
		{"missing email", `{"name":"A","message":"hi"}`, "email"},
		{"missing message", `{"name":"A","email":"a@b.c"}`, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.submitContact(), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.field, decodeError(t, rec)["field"])
		})
	}
}

func TestSubmitContact_MalformedBody(t *testing.T) {
	h := newContactHandler(nil, nil)
	rec := postJSON(t, h.submitContact(), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProject_RequiredFields(t *testing.T) {
	h := newProjectHandler(nil)

	rec := postJSON(t, h.createProject(), `{"client":"Acme"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "title", decodeError(t, rec)["field"])

	rec = postJSON(t, h.createProject(), `{"title":"Spot"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "client", decodeError(t, rec)["field"])
}

func TestCreateTag_Validation(t *testing.T) {
	h := newTagHandler(nil)

	rec := postJSON(t, h.createTag(), `{"category":"industry"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name", decodeError(t, rec)["field"])

	rec = postJSON(t, h.createTag(), `{"name":"Drama","category":"genre"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "category", decodeError(t, rec)["field"])
}

func TestRenameTag_Validation(t *testing.T) {
	h := newTagHandler(nil)

	put := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/tag", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.renameTag()(rec, req)
		return rec
	}

	rec := put(`{"category":"bogus","old_name":"A","new_name":"B"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = put(`{"category":"type","old_name":"","new_name":"B"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Renaming to the same name is rejected rather than cascading a no-op.
	rec = put(`{"category":"type","old_name":"A","new_name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTag_Validation(t *testing.T) {
	h := newTagHandler(nil)

	req := httptest.NewRequest(http.MethodDelete, "/tag?category=industry", nil)
	rec := httptest.NewRecorder()
	h.deleteTag()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/tag?category=bogus&name=Drama", nil)
	rec = httptest.NewRecorder()
	h.deleteTag()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	sessions := newSessionManager("test-secret", time.Hour)
	mw := newAuthMiddleware(sessions)

	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { reached = true })
	handler := mw.authenticate(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)

	req = httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_PassesValidSession(t *testing.T) {
	sessions := newSessionManager("test-secret", time.Hour)
	mw := newAuthMiddleware(sessions)

	token, _, err := sessions.Issue("admin@studio.test", time.Now())
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := ctxGetSessionEmail(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "admin@studio.test", email)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.authenticate(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNormalizeProject(t *testing.T) {
	p := models.Project{
		Images:   []string{"first.jpg", "second.jpg"},
		WorkDate: time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC),
	}
	normalizeProject(&p)

	// Thumbnail falls back to the first gallery image.
	assert.Equal(t, "first.jpg", p.ThumbnailURL)
	// Work period is pinned to day 1 of its month.
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), p.WorkDate)

	// An explicit thumbnail is never overridden.
	p = models.Project{ThumbnailURL: "cover.jpg", Images: []string{"first.jpg"}}
	normalizeProject(&p)
	assert.Equal(t, "cover.jpg", p.ThumbnailURL)
}
