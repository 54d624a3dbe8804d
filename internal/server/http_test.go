package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tastedive-server/internal/server"
	"tastedive-server/pkg/cache"
	"tastedive-server/pkg/token"
)

func newTestServer(t *testing.T) (http.Handler, *token.JWT) {
	t.Helper()
	tokens := token.NewJWT([]byte("test-secret"), time.Hour)
	s := server.New(nil, cache.NewInMemory(), tokens, nil, nil)
	return s.Router(), tokens
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestServer(t)
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/recommendations"},
		{http.MethodGet, "/movies/1/interaction"},
		{http.MethodPost, "/movies/1/like"},
		{http.MethodPost, "/movies/1/dislike"},
		{http.MethodPost, "/movies/1/watch-later"},
		{http.MethodGet, "/user/1"},
		{http.MethodGet, "/user/1/liked-movies"},
		{http.MethodGet, "/user/1/watch-later"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestForgedTokenRejected(t *testing.T) {
	r, _ := newTestServer(t)
	other := token.NewJWT([]byte("other-secret"), time.Hour)
	tok, err := other.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRecommendationsRejectsMismatchedUser(t *testing.T) {
	r, tokens := newTestServer(t)
	tok, err := tokens.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/recommendations?userId=2", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	// even on failure the body carries a renderable empty list
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	recs, ok := body["recommendations"].([]any)
	if !ok || len(recs) != 0 {
		t.Fatalf("expected empty recommendations array, got %#v", body["recommendations"])
	}
}

func TestLikeRejectsMismatchedUser(t *testing.T) {
	r, tokens := newTestServer(t)
	tok, err := tokens.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/movies/5/like", strings.NewReader(`{"userId":2}`))
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestSignupRejectsInvalidJSON(t *testing.T) {
	r, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	r, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"a"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestInvalidMovieIDRejected(t *testing.T) {
	r, tokens := newTestServer(t)
	tok, err := tokens.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/movies/abc/interaction", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS headers on preflight")
	}
}
