// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"webshop/internal/models"
)

// CategoryStore mocks the category table.
type CategoryStore struct {
	mock.Mock
}

func (m *CategoryStore) Create(ctx context.Context, in models.CategoryInput) (*models.CategoryView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CategoryView), args.Error(1)
}

func (m *CategoryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.CategoryView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CategoryView), args.Error(1)
}

func (m *CategoryStore) List(ctx context.Context) ([]models.CategoryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryView), args.Error(1)
}

func (m *CategoryStore) Update(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.CategoryView, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CategoryView), args.Error(1)
}

func (m *CategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProductStore mocks the product table.
type ProductStore struct {
	mock.Mock
}

func (m *ProductStore) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductStore) Find(ctx context.Context, id uuid.UUID, language string) (*models.ProductView, error) {
	args := m.Called(ctx, id, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductView), args.Error(1)
}

func (m *ProductStore) List(ctx context.Context, language string) ([]models.ProductView, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductView), args.Error(1)
}

func (m *ProductStore) Update(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Catalog mocks the catalog service as used by the HTTP handlers.
type Catalog struct {
	mock.Mock
}

func (m *Catalog) CreateTranslation(ctx context.Context, in models.TranslationInput) (*models.Translation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Translation), args.Error(1)
}

func (m *Catalog) ListTranslations(ctx context.Context) ([]models.Translation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Translation), args.Error(1)
}

func (m *Catalog) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.CategoryView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CategoryView), args.Error(1)
}

func (m *Catalog) GetCategory(ctx context.Context, id uuid.UUID) (*models.CategoryView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CategoryView), args.Error(1)
}

func (m *Catalog) ListCategories(ctx context.Context) ([]models.CategoryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryView), args.Error(1)
}

func (m *Catalog) UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.CategoryView, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CategoryView), args.Error(1)
}

func (m *Catalog) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Catalog) CreateProduct(ctx context.Context, in models.ProductInput) (*models.ProductView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductView), args.Error(1)
}

func (m *Catalog) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductView), args.Error(1)
}

func (m *Catalog) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductView), args.Error(1)
}

func (m *Catalog) UpdateProduct(ctx context.Context, id uuid.UUID, patch models.ProductPatch) (*models.ProductView, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductView), args.Error(1)
}

func (m *Catalog) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
