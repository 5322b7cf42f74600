// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the translation, category and product
// operations of the webshop. Product reads are overlaid with translated
// text in the resolver's language.
package catalog

import (
	"context"

	"github.com/google/uuid"

	"webshop/internal/logger"
	"webshop/internal/models"
)

// TranslationStore persists translation entries.
type TranslationStore interface {
	Create(ctx context.Context, in models.TranslationInput) (*models.Translation, error)
	List(ctx context.Context) ([]models.Translation, error)
}

// CategoryStore persists categories and their child links.
type CategoryStore interface {
	Create(ctx context.Context, in models.CategoryInput) (*models.CategoryView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CategoryView, error)
	List(ctx context.Context) ([]models.CategoryView, error)
	Update(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.CategoryView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductStore persists products and reads them overlaid for a language.
type ProductStore interface {
	Create(ctx context.Context, p models.Product) (*models.Product, error)
	Find(ctx context.Context, id uuid.UUID, language string) (*models.ProductView, error)
	List(ctx context.Context, language string) ([]models.ProductView, error)
	Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Overlay is the part of the translation resolver the catalog needs.
type Overlay interface {
	Language() string
	Invalidate(ctx context.Context, code string)
}

// Service is the catalog business layer.
type Service struct {
	translations TranslationStore
	categories   CategoryStore
	products     ProductStore
	overlay      Overlay
}

// NewService wires a catalog service.
func NewService(translations TranslationStore, categories CategoryStore, products ProductStore, overlay Overlay) *Service {
	return &Service{
		translations: translations,
		categories:   categories,
		products:     products,
		overlay:      overlay,
	}
}

// CreateTranslation stores a new entry and drops any cached lookup of its
// code so overlaid reads pick it up.
func (s *Service) CreateTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error) {
	t, err := s.translations.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.Language == s.overlay.Language() {
		s.overlay.Invalidate(ctx, in.Code)
	}
	logger.With("catalog").Info().Str("code", t.Code).Str("language", t.Language).Msg("translation created")
	return t, nil
}

// ListTranslations returns every translation entry.
func (s *Service) ListTranslations(ctx context.Context) ([]models.Translation, error) {
	return s.translations.List(ctx)
}

// CreateCategory creates a category with the given children.
func (s *Service) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.CategoryView, error) {
	c, err := s.categories.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	logger.With("catalog").Info().Str("category_id", c.ID.String()).Int("children", len(c.Children)).Msg("category created")
	return c, nil
}

// GetCategory returns a category with its direct children.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*models.CategoryView, error) {
	return s.categories.FindByID(ctx, id)
}

// ListCategories returns every category with its direct children.
func (s *Service) ListCategories(ctx context.Context) ([]models.CategoryView, error) {
	return s.categories.List(ctx)
}

// UpdateCategory applies a partial update; a children list replaces the links.
func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.CategoryView, error) {
	return s.categories.Update(ctx, id, patch)
}

// DeleteCategory removes a category. Unknown ids are not an error.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.categories.Delete(ctx, id)
}

// CreateProduct stores a product and returns it overlaid, as a later get
// would.
func (s *Service) CreateProduct(ctx context.Context, in models.ProductInput) (*models.ProductView, error) {
	p, err := s.products.Create(ctx, in.Row())
	if err != nil {
		return nil, err
	}
	logger.With("catalog").Info().Str("product_id", p.ID.String()).Str("name", p.Name).Msg("product created")
	return s.products.Find(ctx, p.ID, s.overlay.Language())
}

// GetProduct returns the overlaid view of a product.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error) {
	return s.products.Find(ctx, id, s.overlay.Language())
}

// ListProducts returns every product overlaid.
func (s *Service) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	return s.products.List(ctx, s.overlay.Language())
}

// UpdateProduct patches the stored row and returns the overlaid result.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.ProductView, error) {
	p, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return s.products.Find(ctx, p.ID, s.overlay.Language())
}

// DeleteProduct removes a product. Unknown ids are not an error.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}
