// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers of the webshop API.
// Handlers are grouped by resource (cms, category, product, basket) and
// receive their dependencies through the API struct.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"webshop/internal/logger"
	"webshop/internal/middleware"
	"webshop/internal/models"
	"webshop/internal/store"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Error codes returned in the "error" field of error responses.
const (
	errCodeInvalidRequest = "invalid_request"
	errCodeValidation     = "validation_failed"
	errCodeNotFound       = "not_found"
	errCodeInternal       = "internal_error"
)

// Catalog is the translation, category and product service.
type Catalog interface {
	CreateTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error)
	ListTranslations(ctx context.Context) ([]models.Translation, error)

	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.CategoryView, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.CategoryView, error)
	ListCategories(ctx context.Context) ([]models.CategoryView, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.CategoryView, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, in models.ProductInput) (*models.ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error)
	ListProducts(ctx context.Context) ([]models.ProductView, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.ProductView, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// Baskets is the shopping basket engine.
type Baskets interface {
	Create(ctx context.Context, items []models.BasketItemInput) (*models.BasketView, error)
	Get(ctx context.Context, id uuid.UUID) (*models.BasketView, error)
	AddItem(ctx context.Context, basketID, productID uuid.UUID) (*models.BasketView, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

// Pinger reports database reachability for the health check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// API groups all webshop HTTP handlers and their dependencies.
type API struct {
	catalog  Catalog
	baskets  Baskets
	db       Pinger
	validate *validator.Validate
}

// NewAPI creates the handler group.
func NewAPI(catalog Catalog, baskets Baskets, db Pinger) *API {
	return &API{
		catalog:  catalog,
		baskets:  baskets,
		db:       db,
		validate: newValidator(),
	}
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error     string            `json:"error"`
	Message   string            `json:"message,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// decodeError marks a request body or path that could not be parsed.
type decodeError struct {
	msg string
}

func (e *decodeError) Error() string { return e.msg }

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]string) {
	writeJSON(w, status, errorResponse{
		Error:     code,
		Message:   message,
		Details:   details,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}

// fail maps an error from decoding, validation or the service layer to a
// response. Unexpected errors are logged and hidden behind a 500.
func (a *API) fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		decErr *decodeError
		valErr *validationError
	)
	switch {
	case errors.As(err, &decErr):
		writeError(w, r, http.StatusBadRequest, errCodeInvalidRequest, decErr.msg, nil)
	case errors.As(err, &valErr):
		writeError(w, r, http.StatusUnprocessableEntity, errCodeValidation, "Request validation failed.", valErr.fields)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, errCodeNotFound, "Resource not found.", nil)
	case errors.Is(err, store.ErrUnknownProduct):
		writeError(w, r, http.StatusUnprocessableEntity, errCodeValidation, "Unknown product.",
			map[string]string{"productId": "does not reference an existing product"})
	case errors.Is(err, store.ErrUnknownCategory):
		writeError(w, r, http.StatusUnprocessableEntity, errCodeValidation, "Unknown category.",
			map[string]string{"categoryId": "does not reference an existing category"})
	default:
		logger.Logger().Error().Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, errCodeInternal, "Internal server error.", nil)
	}
}

// decode reads a JSON body into dst. An empty body is accepted only when
// allowEmpty is set, leaving dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		return nil
	case errors.Is(err, io.EOF):
		return &decodeError{msg: "Request body is required."}
	default:
		return &decodeError{msg: fmt.Sprintf("Malformed JSON body: %v", err)}
	}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &decodeError{msg: fmt.Sprintf("Invalid id %q: must be a UUID.", raw)}
	}
	return id, nil
}

// healthStatus is one entry of the health response.
type healthStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Health reports whether the database is reachable.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if err := a.db.PingContext(r.Context()); err != nil {
		logger.Logger().Warn().Err(err).Msg("health check: database unreachable")
		writeJSON(w, http.StatusServiceUnavailable, []healthStatus{{Name: "database", Status: "unavailable"}})
		return
	}
	writeJSON(w, http.StatusOK, []healthStatus{{Name: "database", Status: "ok"}})
}
