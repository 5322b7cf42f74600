package handlers

import (
	"net/http"

	"webshop/internal/models"
)

// CreateCategory handles POST /api/category/v1/categories.
func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in models.CategoryInput
	if err := decode(w, r, &in, false); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.check(in); err != nil {
		a.fail(w, r, err)
		return
	}

	c, err := a.catalog.CreateCategory(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// ListCategories handles GET /api/category/v1/categories.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	list, err := a.catalog.ListCategories(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// GetCategory handles GET /api/category/v1/categories/{id}.
func (a *API) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	c, err := a.catalog.GetCategory(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateCategory handles PUT with partial semantics: only keys present in
// the body are applied.
func (a *API) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var patch models.CategoryPatch
	if err := decode(w, r, &patch, false); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := checkCategoryPatch(patch); err != nil {
		a.fail(w, r, err)
		return
	}

	c, err := a.catalog.UpdateCategory(r.Context(), id, patch)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCategory handles DELETE /api/category/v1/categories/{id}.
func (a *API) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.catalog.DeleteCategory(r.Context(), id); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
