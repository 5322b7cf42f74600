package handlers

import (
	"net/http"

	"webshop/internal/models"
)

// CreateTranslation handles POST /api/cms/v1/translations.
func (a *API) CreateTranslation(w http.ResponseWriter, r *http.Request) {
	var in models.TranslationInput
	if err := decode(w, r, &in, false); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.check(in); err != nil {
		a.fail(w, r, err)
		return
	}

	t, err := a.catalog.CreateTranslation(r.Context(), in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// ListTranslations handles GET /api/cms/v1/translations.
func (a *API) ListTranslations(w http.ResponseWriter, r *http.Request) {
	list, err := a.catalog.ListTranslations(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
