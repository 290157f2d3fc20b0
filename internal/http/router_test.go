package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouterRoutesKnownPaths(t *testing.T) {
	h, _ := newTestHandler(t)
	router := NewRouter(h)

	cases := map[string]int{
		"/health":    http.StatusOK,
		"/ready":     http.StatusOK,
		"/games":     http.StatusOK,
		"/teams":     http.StatusOK,
		"/games/foo": http.StatusNotFound, // known route with missing game
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterGameViewRoute(t *testing.T) {
	h, _ := newTestHandler(t)
	router := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/games/view?home=Celtics&away=Lakers&date=2024-04-14", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 from /games/view, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)
	router := NewRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
