// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"webshop/internal/models"
)

// BasketStore mocks the basket tables.
type BasketStore struct {
	mock.Mock
}

func (m *BasketStore) Create(ctx context.Context, items []models.BasketItemInput) (*models.Basket, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Basket), args.Error(1)
}

func (m *BasketStore) Find(ctx context.Context, id uuid.UUID) (*models.Basket, []models.BasketLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Basket), args.Get(1).([]models.BasketLine), args.Error(2)
}

func (m *BasketStore) AddItem(ctx context.Context, basketID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, basketID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *BasketStore) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// Baskets mocks the basket engine as used by the HTTP handlers.
type Baskets struct {
	mock.Mock
}

func (m *Baskets) Create(ctx context.Context, items []models.BasketItemInput) (*models.BasketView, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BasketView), args.Error(1)
}

func (m *Baskets) Get(ctx context.Context, id uuid.UUID) (*models.BasketView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BasketView), args.Error(1)
}

func (m *Baskets) AddItem(ctx context.Context, basketID, productID uuid.UUID) (*models.BasketView, error) {
	args := m.Called(ctx, basketID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BasketView), args.Error(1)
}

func (m *Baskets) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
