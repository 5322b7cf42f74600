package overlay

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"webshop/internal/metrics"
	"webshop/internal/mocks"
)

const lang = "nl_BE"

func TestResolveManyWithoutCache(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.TranslationStore)
	store.On("ResolveMany", ctx, []string{"P1", "P2", "P3"}, lang).
		Return(map[string]string{"P1": "Widget", "P3": ""}, nil).Once()

	r := NewResolver(store, nil, lang)
	got, err := r.ResolveMany(ctx, []string{"P1", "P2", "P1", "P3"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Widget", "P2": "P2", "P3": "P3"}, got)
	store.AssertExpectations(t)
}

func TestResolveManyEmpty(t *testing.T) {
	store := new(mocks.TranslationStore)
	cache := new(mocks.TranslationCache)

	got, err := NewResolver(store, cache, lang).ResolveMany(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	store.AssertNotCalled(t, "ResolveMany", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "GetMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveManyAllCached(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.TranslationStore)
	cache := new(mocks.TranslationCache)
	cache.On("GetMany", ctx, lang, []string{"P1", "P2"}).
		Return(map[string]string{"P1": "Widget", "P2": ""}, nil)

	got, err := NewResolver(store, cache, lang).ResolveMany(ctx, []string{"P1", "P2"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Widget", "P2": "P2"}, got)
	store.AssertNotCalled(t, "ResolveMany", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "SetMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveManyFillsCacheMisses(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.TranslationStore)
	cache := new(mocks.TranslationCache)

	cache.On("GetMany", ctx, lang, []string{"P1", "P2", "P3"}).
		Return(map[string]string{"P1": "Widget"}, nil)
	store.On("ResolveMany", ctx, []string{"P2", "P3"}, lang).
		Return(map[string]string{"P2": "Gadget"}, nil)
	cache.On("SetMany", ctx, lang, map[string]string{"P2": "Gadget", "P3": ""}).Return(nil)

	got, err := NewResolver(store, cache, lang).ResolveMany(ctx, []string{"P1", "P2", "P3"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Widget", "P2": "Gadget", "P3": "P3"}, got)
	store.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestResolveManyCacheFailureFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.TranslationStore)
	cache := new(mocks.TranslationCache)

	cache.On("GetMany", ctx, lang, []string{"P1"}).Return(nil, errors.New("connection refused"))
	store.On("Resolve", ctx, "P1", lang).Return("Widget", true, nil)
	cache.On("SetMany", ctx, lang, map[string]string{"P1": "Widget"}).Return(errors.New("connection refused"))

	got, err := NewResolver(store, cache, lang).ResolveMany(ctx, []string{"P1"})

	require.NoError(t, err)
	assert.Equal(t, "Widget", got["P1"])
	store.AssertExpectations(t)
}

func TestResolveManyStoreError(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.TranslationStore)
	dbErr := errors.New("db down")
	store.On("ResolveMany", ctx, []string{"P1", "P2"}, lang).Return(nil, dbErr)
	store.On("Resolve", ctx, "P3", lang).Return("", false, dbErr)

	r := NewResolver(store, nil, lang)

	_, err := r.ResolveMany(ctx, []string{"P1", "P2"})
	assert.ErrorIs(t, err, dbErr)

	_, err = r.ResolveMany(ctx, []string{"P3"})
	assert.ErrorIs(t, err, dbErr)
}

func TestResolveManySingleCodeUsesPlainLookup(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.TranslationStore)
	store.On("Resolve", ctx, "P1", lang).Return("Widget", true, nil)
	store.On("Resolve", ctx, "P2", lang).Return("", false, nil)

	r := NewResolver(store, nil, lang)

	got, err := r.ResolveMany(ctx, []string{"P1", "P1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P1": "Widget"}, got)

	got, err = r.ResolveMany(ctx, []string{"P2"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"P2": "P2"}, got)

	store.AssertNotCalled(t, "ResolveMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolveManyRecordsDatabaseLookupsWithoutCache(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.TranslationStore)
	store.On("ResolveMany", ctx, []string{"M1", "M2", "M3"}, lang).
		Return(map[string]string{"M1": "Widget", "M2": "Gadget"}, nil)

	hits := testutil.ToFloat64(metrics.TranslationLookupsTotal.WithLabelValues(metrics.LookupSourceDatabase, "hit"))
	misses := testutil.ToFloat64(metrics.TranslationLookupsTotal.WithLabelValues(metrics.LookupSourceDatabase, "miss"))

	_, err := NewResolver(store, nil, lang).ResolveMany(ctx, []string{"M1", "M2", "M3"})
	require.NoError(t, err)

	assert.Equal(t, hits+2, testutil.ToFloat64(metrics.TranslationLookupsTotal.WithLabelValues(metrics.LookupSourceDatabase, "hit")))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.TranslationLookupsTotal.WithLabelValues(metrics.LookupSourceDatabase, "miss")))
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("drops cached code", func(t *testing.T) {
		cache := new(mocks.TranslationCache)
		cache.On("Invalidate", ctx, lang, "P1").Return(nil).Once()

		NewResolver(new(mocks.TranslationStore), cache, lang).Invalidate(ctx, "P1")

		cache.AssertExpectations(t)
	})

	t.Run("cache error is swallowed", func(t *testing.T) {
		cache := new(mocks.TranslationCache)
		cache.On("Invalidate", ctx, lang, "P1").Return(errors.New("timeout"))

		assert.NotPanics(t, func() {
			NewResolver(new(mocks.TranslationStore), cache, lang).Invalidate(ctx, "P1")
		})
	})

	t.Run("no cache", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewResolver(new(mocks.TranslationStore), nil, lang).Invalidate(ctx, "P1")
		})
	})
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, lang, NewResolver(nil, nil, lang).Language())
}
