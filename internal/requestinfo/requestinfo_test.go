// internal/requestinfo/requestinfo_test.go
//
// Unit-tests for UA parsing, client-IP extraction, and the Enrich
// middleware.  Geo lookups stay disabled (no MaxMind DB is opened), so
// Geo carries only the IP.
//
// Run: go test ./internal/requestinfo -v

package requestinfo

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const chromeUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.6367.60 Safari/537.36"

func TestEnrichAttachesRequestInfo(t *testing.T) {
	var got *RequestInfo
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/articles/", nil)
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.RemoteAddr = "203.0.113.7:55000"

	Enrich(next).ServeHTTP(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatalf("RequestInfo missing from context")
	}
	if got.UA.Browser != "Chrome" {
		t.Errorf("browser = %q, want Chrome", got.UA.Browser)
	}
	if got.UA.Device != "Desktop" {
		t.Errorf("device = %q, want Desktop", got.UA.Device)
	}
	if got.UA.IsBot {
		t.Errorf("Chrome flagged as bot")
	}
	if got.UA.PrimaryLang != "en-US" {
		t.Errorf("primary lang = %q, want en-US", got.UA.PrimaryLang)
	}
	if got.Geo.IP == nil || got.Geo.IP.String() != "203.0.113.7" {
		t.Errorf("geo IP = %v, want 203.0.113.7", got.Geo.IP)
	}
	if got.Geo.CountryISO != "" {
		t.Errorf("country = %q, want empty without a MaxMind DB", got.Geo.CountryISO)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")

	if ip := clientIP(req); ip == nil || ip.String() != "198.51.100.4" {
		t.Fatalf("clientIP = %v, want left-most XFF hop", ip)
	}
}

func TestClientIPFallsBackToPeer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:9999"

	if ip := clientIP(req); ip == nil || ip.String() != "192.0.2.9" {
		t.Fatalf("clientIP = %v, want socket peer", ip)
	}
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if info := FromContext(req.Context()); info != nil {
		t.Fatalf("expected nil RequestInfo without Enrich, got %#v", info)
	}
}
