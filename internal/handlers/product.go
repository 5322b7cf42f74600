package handlers

import (
	"net/http"

	"webshop/internal/models"
)

// CreateProduct handles POST /api/product/v1/products. Name and
// description are stored as translation codes; the response carries the
// translated view.
func (a *API) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if err := decode(w, r, &in, false); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.check(in); err != nil {
		a.fail(w, r, err)
		return
	}

	p, err := a.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ListProducts handles GET /api/product/v1/products.
func (a *API) ListProducts(w http.ResponseWriter, r *http.Request) {
	list, err := a.catalog.ListProducts(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetProduct handles GET /api/product/v1/{id}.
func (a *API) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	p, err := a.catalog.GetProduct(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateProduct handles PUT /api/product/v1/{id} as a partial update.
func (a *API) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var patch models.ProductPatch
	if err := decode(w, r, &patch, false); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := checkProductPatch(patch); err != nil {
		a.fail(w, r, err)
		return
	}

	p, err := a.catalog.UpdateProduct(r.Context(), id, patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/product/v1/{id}.
func (a *API) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.catalog.DeleteProduct(r.Context(), id); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
