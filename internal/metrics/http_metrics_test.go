package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetrics_RecordRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newHTTPMetricsWithRegisterer(registry)

	m.RecordRequest(http.MethodPost, "/api/order", http.StatusCreated, 50*time.Millisecond)
	m.RecordRequest(http.MethodPost, "/api/order", http.StatusCreated, 10*time.Millisecond)

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("POST", "/api/order", "201"))
	if got != 2 {
		t.Fatalf("expected 2 requests recorded, got %f", got)
	}
}

func TestHTTPMetrics_RecordUpstreamError(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newHTTPMetricsWithRegisterer(registry)

	m.RecordUpstreamError("user-service")

	got := testutil.ToFloat64(m.upstreamErrors.WithLabelValues("user-service"))
	if got != 1 {
		t.Fatalf("expected 1 upstream error recorded, got %f", got)
	}
}

func TestHTTPMetrics_Middleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newHTTPMetricsWithRegisterer(registry)

	handler := m.Middleware("/api/order")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/order/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("DELETE", "/api/order", "204"))
	if got != 1 {
		t.Fatalf("expected middleware to record request, got %f", got)
	}
}

func TestHTTPMetrics_DoubleRegisterReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := newHTTPMetricsWithRegisterer(registry)
	second := newHTTPMetricsWithRegisterer(registry)

	first.RecordUpstreamError("product-service")
	second.RecordUpstreamError("product-service")

	got := testutil.ToFloat64(first.upstreamErrors.WithLabelValues("product-service"))
	if got != 2 {
		t.Fatalf("expected shared collector, got %f", got)
	}
}
