// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"webshop/internal/models"
)

// TranslationStore mocks the translation table.
type TranslationStore struct {
	mock.Mock
}

func (m *TranslationStore) Create(ctx context.Context, in models.TranslationInput) (*models.Translation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Translation), args.Error(1)
}

func (m *TranslationStore) List(ctx context.Context) ([]models.Translation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Translation), args.Error(1)
}

func (m *TranslationStore) Resolve(ctx context.Context, code, language string) (string, bool, error) {
	args := m.Called(ctx, code, language)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *TranslationStore) ResolveMany(ctx context.Context, codes []string, language string) (map[string]string, error) {
	args := m.Called(ctx, codes, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

// TranslationCache mocks the Valkey translation cache.
type TranslationCache struct {
	mock.Mock
}

func (m *TranslationCache) GetMany(ctx context.Context, language string, codes []string) (map[string]string, error) {
	args := m.Called(ctx, language, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *TranslationCache) SetMany(ctx context.Context, language string, values map[string]string) error {
	args := m.Called(ctx, language, values)
	return args.Error(0)
}

func (m *TranslationCache) Invalidate(ctx context.Context, language, code string) error {
	args := m.Called(ctx, language, code)
	return args.Error(0)
}

// Overlay mocks the translation resolver as seen by the catalog and the
// basket engine.
type Overlay struct {
	mock.Mock
}

func (m *Overlay) Language() string {
	args := m.Called()
	return args.String(0)
}

func (m *Overlay) Invalidate(ctx context.Context, code string) {
	m.Called(ctx, code)
}

func (m *Overlay) ResolveMany(ctx context.Context, codes []string) (map[string]string, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}
