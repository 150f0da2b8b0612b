package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsStatus(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "unmatched", "418"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/teapot", nil))

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "unmatched", "418"))
	if after-before != 1 {
		t.Errorf("counter moved by %v, want 1", after-before)
	}
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/players/{name}", func(w http.ResponseWriter, r *http.Request) {})

	route := HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/players/{name}", "200")
	unmatched := HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
	routeBefore, unmatchedBefore := testutil.ToFloat64(route), testutil.ToFloat64(unmatched)
	seriesBefore := testutil.CollectAndCount(HTTPRequestsTotal)

	for _, path := range []string{"/api/v1/players/josh", "/api/v1/players/saquon", "/random/1", "/random/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.CollectAndCount(HTTPRequestsTotal); got != seriesBefore {
		t.Errorf("series = %d, want %d: paths leaked into labels", got, seriesBefore)
	}
	if got := testutil.ToFloat64(route) - routeBefore; got != 2 {
		t.Errorf("route counter moved by %v, want 2", got)
	}
	if got := testutil.ToFloat64(unmatched) - unmatchedBefore; got != 2 {
		t.Errorf("unmatched counter moved by %v, want 2", got)
	}
}

func TestObserveReport_CountsErrors(t *testing.T) {
	before := testutil.ToFloat64(ReportErrors.WithLabelValues("test"))

	ObserveReport("test", time.Now(), nil)
	ObserveReport("test", time.Now(), errors.New("boom"))

	if got := testutil.ToFloat64(ReportErrors.WithLabelValues("test")) - before; got != 1 {
		t.Errorf("errors counted = %v, want 1", got)
	}
}
