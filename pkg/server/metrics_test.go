package server

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func TestMetricsEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	metricsHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	ct := w.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain content type, got %s", ct)
	}
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	s := newTestServer()

	handler := s.metricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	const n = 7
	path := "/metrics_middleware_test"

	before := sampleValue(t, "infod_http_requests_total", "GET", path, "200")

	for i := 0; i < n; i++ {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler(w, req)
	}

	after := sampleValue(t, "infod_http_requests_total", "GET", path, "200")
	if after-before != n {
		t.Errorf("expected counter delta %d, got %v", n, after-before)
	}
}

func TestMetricsMiddleware_LabelsStatus(t *testing.T) {
	s := newTestServer()

	handler := s.metricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	path := "/metrics_status_test"

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if got := sampleValue(t, "infod_http_requests_total", "GET", path, "404"); got != 1 {
		t.Errorf("expected one 404 sample for %s, got %v", path, got)
	}
}

func TestMetricsMonotonic(t *testing.T) {
	s := newTestServer()

	handler := s.metricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	path := "/metrics_monotonic_test"

	var last float64
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler(w, req)

		v := sampleValue(t, "infod_http_requests_total", "GET", path, "200")
		if v < last {
			t.Fatalf("counter decreased: %v -> %v", last, v)
		}
		last = v
	}

	if last != 5 {
		t.Errorf("expected 5 samples, got %v", last)
	}
}

// sampleValue scrapes the exposition endpoint and returns the value of
// the labeled counter sample, zero if not yet exposed.
func sampleValue(t *testing.T, metric, method, path, status string) float64 {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	metricsHandler().ServeHTTP(w, req)

	want := metric + `{method="` + method + `",path="` + path + `",status="` + status + `"}`

	scanner := bufio.NewScanner(strings.NewReader(w.Body.String()))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, want) {
			continue
		}
		fields := strings.Fields(line)
		v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			t.Fatalf("failed to parse sample %q: %v", line, err)
		}
		return v
	}
	return 0
}
