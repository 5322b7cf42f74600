// Package basket implements the shopping basket lifecycle: creation with
// seed items, assembled reads with translated product names and derived
// totals, adding products and removing items.
package basket

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"webshop/internal/logger"
	"webshop/internal/metrics"
	"webshop/internal/models"
)

// Store persists baskets and their items.
type Store interface {
	Create(ctx context.Context, items []models.BasketItemInput) (*models.Basket, error)
	Find(ctx context.Context, id uuid.UUID) (*models.Basket, []models.BasketLine, error)
	AddItem(ctx context.Context, basketID, productID uuid.UUID) (bool, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
}

// Names resolves translation codes to display names in one batch.
type Names interface {
	ResolveMany(ctx context.Context, codes []string) (map[string]string, error)
}

// Engine coordinates basket mutations and assembles basket views.
type Engine struct {
	store Store
	names Names
}

// NewEngine creates a basket engine.
func NewEngine(store Store, names Names) *Engine {
	return &Engine{store: store, names: names}
}

// Create stores a new basket with the given items and returns its view.
func (e *Engine) Create(ctx context.Context, items []models.BasketItemInput) (*models.BasketView, error) {
	b, err := e.store.Create(ctx, items)
	if err != nil {
		return nil, err
	}
	metrics.RecordBasketMutation(metrics.BasketCreated)
	logger.With("basket").Info().Str("basket_id", b.ID.String()).Int("items", len(items)).Msg("basket created")
	return e.Get(ctx, b.ID)
}

// Get assembles a basket: items in insertion order, each with its product
// view, the product name translated and the totals derived.
func (e *Engine) Get(ctx context.Context, id uuid.UUID) (*models.BasketView, error) {
	b, lines, err := e.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Product != nil {
			codes = append(codes, l.Product.Name)
		}
	}

	names, err := e.names.ResolveMany(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("resolve basket item names: %w", err)
	}

	items := make([]models.BasketItemView, 0, len(lines))
	for _, l := range lines {
		var name string
		if l.Product != nil {
			name = names[l.Product.Name]
		}
		items = append(items, l.ItemView(name))
	}

	v := models.NewBasketView(*b, items)
	return &v, nil
}

// AddItem adds one unit of a product to the basket and returns the updated
// view.
func (e *Engine) AddItem(ctx context.Context, basketID, productID uuid.UUID) (*models.BasketView, error) {
	inserted, err := e.store.AddItem(ctx, basketID, productID)
	if err != nil {
		return nil, err
	}

	op := metrics.BasketItemBumped
	if inserted {
		op = metrics.BasketItemAdded
	}
	metrics.RecordBasketMutation(op)
	logger.With("basket").Debug().
		Str("basket_id", basketID.String()).
		Str("product_id", productID.String()).
		Bool("inserted", inserted).
		Msg("basket item added")

	return e.Get(ctx, basketID)
}

// RemoveItem deletes a basket item. Unknown ids are ignored.
func (e *Engine) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	if err := e.store.RemoveItem(ctx, itemID); err != nil {
		return err
	}
	metrics.RecordBasketMutation(metrics.BasketItemRemoved)
	return nil
}
