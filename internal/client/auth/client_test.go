package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vladislavdragonenkov/order-service/internal/client/auth"
	"github.com/vladislavdragonenkov/order-service/internal/domain"
)

func newClient(t *testing.T, handler http.HandlerFunc) *auth.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return auth.NewClient(auth.Config{BaseURL: server.URL}, nil)
}

func TestValidateToken_Accepted(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/validate-token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer token-1" {
			t.Errorf("unexpected authorization header: %s", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
	})

	valid, err := client.ValidateToken(context.Background(), "Bearer token-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected token to be valid")
	}
}

func TestValidateToken_Rejected(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	valid, err := client.ValidateToken(context.Background(), "Bearer bad")
	if err != nil {
		t.Fatalf("rejection must not be an error: %v", err)
	}
	if valid {
		t.Fatal("expected token to be invalid")
	}
}

func TestValidateToken_ServerErrorIsTransport(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ValidateToken(context.Background(), "Bearer token-1")
	if !domain.IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestValidateToken_ConnectionFailureIsTransport(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := auth.NewClient(auth.Config{BaseURL: baseURL}, nil)
	_, err := client.ValidateToken(context.Background(), "Bearer token-1")
	if !domain.IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestValidateOwnerToken_PassesUserID(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/validate-owner-token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("userId"); got != "user-7" {
			t.Errorf("unexpected userId: %s", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	valid, err := client.ValidateOwnerToken(context.Background(), "Bearer token-1", "user-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected owner token to be valid")
	}
}

func TestValidateAdminToken_Forbidden(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/validate-admin-token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusForbidden)
	})

	valid, err := client.ValidateAdminToken(context.Background(), "Bearer token-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Fatal("expected admin token to be rejected")
	}
}
