package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crucial707/car-rental/internal/rental"
	"github.com/crucial707/car-rental/internal/repo"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

// newService builds the rental service on top of sqlmock-backed repositories.
func newService(db *sql.DB) *rental.Service {
	svc := rental.New(repo.NewUserRepo(db), repo.NewCarRepo(db), repo.NewBookingRepo(db), nil)
	svc.HashCost = bcrypt.MinCost
	return svc
}

// requestWithChiURLParams returns a request with chi route context and URL params set.
func requestWithChiURLParams(method, path string, body []byte, params map[string]string) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	return r
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}
