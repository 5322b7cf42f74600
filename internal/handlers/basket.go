package handlers

import (
	"errors"
	"net/http"

	"webshop/internal/models"
	"webshop/internal/store"
)

// CreateBasket handles POST /api/shopping-basket/v1/shopping-baskets. The
// body is optional; seeded items are taken at their given price.
func (a *API) CreateBasket(w http.ResponseWriter, r *http.Request) {
	var in models.BasketInput
	if err := decode(w, r, &in, true); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.check(in); err != nil {
		a.fail(w, r, err)
		return
	}

	b, err := a.baskets.Create(r.Context(), in.Items)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// GetBasket handles GET /api/shopping-basket/v1/shopping-baskets/{id}.
func (a *API) GetBasket(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	b, err := a.baskets.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// AddBasketItem handles POST /api/shopping-basket/v1/shopping-baskets/{id}.
// Adding a product already in the basket bumps its amount.
func (a *API) AddBasketItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	var in models.AddItemInput
	if err := decode(w, r, &in, false); err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.check(in); err != nil {
		a.fail(w, r, err)
		return
	}

	b, err := a.baskets.AddItem(r.Context(), id, in.ProductID)
	if errors.Is(err, store.ErrUnknownProduct) {
		writeError(w, r, http.StatusNotFound, errCodeNotFound, "Product not found.", nil)
		return
	}
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// RemoveBasketItem handles DELETE .../shopping-baskets/items/{id}. Removing
// an absent item still answers 204.
func (a *API) RemoveBasketItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.baskets.RemoveItem(r.Context(), id); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
