package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDo_DecodesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"validation failed","fields":{"email":"required"}}`))
	}))
	defer srv.Close()

	t.Setenv("RENTAL_API_URL", srv.URL)
	err := New().Do(context.Background(), http.MethodPost, "/register", map[string]string{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "validation failed" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
	if apiErr.Fields["email"] != "required" {
		t.Errorf("fields: got %v", apiErr.Fields)
	}
}

func TestDo_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	t.Setenv("RENTAL_API_URL", srv.URL)
	err := New().Do(context.Background(), http.MethodGet, "/cars", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "boom" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_SendsBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok || email != "admin@example.com" || password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	t.Setenv("RENTAL_API_URL", srv.URL)
	c := New()
	c.Email, c.Password = "admin@example.com", "secret"

	var out []any
	if err := c.Do(context.Background(), http.MethodGet, "/admin/bookings", nil, &out); err != nil {
		t.Fatalf("Do: %v", err)
	}
}
