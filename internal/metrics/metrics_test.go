// internal/metrics/metrics_test.go
//
// Unit-tests for the HTTP instrumentation middleware.  The route-label
// test mounts Instrument the way the API router does, with r.Use inside
// the mux, and checks that a parameterised request is counted under the
// chi pattern rather than the raw path.  Counting raw paths would mint
// one series per ID and blow up cardinality.
//
// Run: go test ./internal/metrics -v

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInstrumentUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/widgets/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/widgets/018f1c2e-ffff-7000-8000-000000000001", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	bounded := RequestsTotal.WithLabelValues(http.MethodGet, "/widgets/{id}", "200")
	if got := testutil.ToFloat64(bounded); got != 1 {
		t.Errorf("count for /widgets/{id} = %v, want 1", got)
	}

	raw := RequestsTotal.WithLabelValues(
		http.MethodGet, "/widgets/018f1c2e-ffff-7000-8000-000000000001", "200")
	if got := testutil.ToFloat64(raw); got != 0 {
		t.Errorf("raw-path series minted: count = %v, want 0", got)
	}
}

func TestInstrumentRecordsStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/widgets/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/widgets/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	c := RequestsTotal.WithLabelValues(http.MethodGet, "/widgets/{id}", "404")
	if got := testutil.ToFloat64(c); got != 1 {
		t.Errorf("count for 404 series = %v, want 1", got)
	}
}
