// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"webshop/internal/handlers"
	"webshop/internal/middleware"
	"webshop/internal/mocks"
	"webshop/internal/models"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *mocks.Catalog, *mocks.Baskets) {
	t.Helper()
	catalog := new(mocks.Catalog)
	baskets := new(mocks.Baskets)
	return New(handlers.NewAPI(catalog, baskets, okPinger{}), nil), catalog, baskets
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content-type: got %q", ct)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}

	var body []map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body) != 1 || body[0]["name"] != "database" || body[0]["status"] != "ok" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRoutes(t *testing.T) {
	h, catalog, baskets := newTestRouter(t)
	id := uuid.New()

	catalog.On("ListTranslations", mock.Anything).Return([]models.Translation{}, nil)
	catalog.On("ListCategories", mock.Anything).Return([]models.CategoryView{}, nil)
	catalog.On("GetCategory", mock.Anything, id).Return(&models.CategoryView{}, nil)
	catalog.On("DeleteCategory", mock.Anything, id).Return(nil)
	catalog.On("ListProducts", mock.Anything).Return([]models.ProductView{}, nil)
	catalog.On("GetProduct", mock.Anything, id).Return(&models.ProductView{}, nil)
	catalog.On("DeleteProduct", mock.Anything, id).Return(nil)
	baskets.On("Get", mock.Anything, id).Return(&models.BasketView{}, nil)
	baskets.On("RemoveItem", mock.Anything, id).Return(nil)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/api/cms/v1/translations", http.StatusOK},
		{"GET", "/api/category/v1/categories", http.StatusOK},
		{"GET", "/api/category/v1/categories/" + id.String(), http.StatusOK},
		{"DELETE", "/api/category/v1/categories/" + id.String(), http.StatusNoContent},
		{"GET", "/api/product/v1/products", http.StatusOK},
		{"GET", "/api/product/v1/" + id.String(), http.StatusOK},
		{"DELETE", "/api/product/v1/" + id.String(), http.StatusNoContent},
		{"GET", "/api/shopping-basket/v1/shopping-baskets/" + id.String(), http.StatusOK},
		{"DELETE", "/api/shopping-basket/v1/shopping-baskets/items/" + id.String(), http.StatusNoContent},
		{"GET", "/api/unknown", http.StatusNotFound},
		{"PATCH", "/api/product/v1/" + id.String(), http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("got %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("expected default Go collectors in metrics output")
	}
}

func TestWriteRateLimit(t *testing.T) {
	catalog := new(mocks.Catalog)
	limiter := middleware.NewRateLimiter(1, time.Minute)
	defer limiter.Stop()
	h := New(handlers.NewAPI(catalog, new(mocks.Baskets), okPinger{}), limiter)

	id := uuid.New()
	catalog.On("DeleteProduct", mock.Anything, id).Return(nil)
	catalog.On("ListProducts", mock.Anything).Return([]models.ProductView{}, nil)

	codes := make([]int, 0, 3)
	for _, req := range []*http.Request{
		httptest.NewRequest("DELETE", "/api/product/v1/"+id.String(), nil),
		httptest.NewRequest("DELETE", "/api/product/v1/"+id.String(), nil),
		httptest.NewRequest("GET", "/api/product/v1/products", nil),
	} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	want := []int{http.StatusNoContent, http.StatusTooManyRequests, http.StatusOK}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: got %d, want %d", i, codes[i], want[i])
		}
	}
}
