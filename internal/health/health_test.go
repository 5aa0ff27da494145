package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerAllHealthy(t *testing.T) {
	h := NewHandler("1.0.0")
	h.RegisterChecker("postgres", NewPingChecker("postgres", func(context.Context) error {
		return nil
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusHealthy {
		t.Errorf("expected healthy status, got %s", resp.Status)
	}
	if resp.Version != "1.0.0" {
		t.Errorf("expected version in response, got %q", resp.Version)
	}
	if resp.Checks["postgres"].Status != StatusHealthy {
		t.Errorf("expected postgres check to be healthy, got %s", resp.Checks["postgres"].Status)
	}
}

func TestHandlerUnhealthyComponent(t *testing.T) {
	h := NewHandler("1.0.0")
	h.RegisterChecker("postgres", NewPingChecker("postgres", func(context.Context) error {
		return errors.New("connection refused")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy status, got %s", resp.Status)
	}
	if resp.Checks["postgres"].Message != "connection refused" {
		t.Errorf("expected check message, got %q", resp.Checks["postgres"].Message)
	}
}

func TestReadinessHandler(t *testing.T) {
	h := NewHandler("dev")

	rec := httptest.NewRecorder()
	h.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected ready with no checkers, got %d", rec.Code)
	}

	h.RegisterChecker("postgres", NewPingChecker("postgres", func(context.Context) error {
		return errors.New("down")
	}))

	rec = httptest.NewRecorder()
	h.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected not ready, got %d", rec.Code)
	}
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}
