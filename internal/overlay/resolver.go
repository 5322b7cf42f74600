// Package overlay resolves translation codes to display text for the
// configured language. Lookups go through an optional Valkey cache before
// falling back to the translations table.
package overlay

import (
	"context"
	"fmt"

	"webshop/internal/logger"
	"webshop/internal/metrics"
)

// Store is the translation source of truth.
type Store interface {
	Resolve(ctx context.Context, code, language string) (string, bool, error)
	ResolveMany(ctx context.Context, codes []string, language string) (map[string]string, error)
}

// Cache holds previously resolved values. An empty cached value records
// that the code has no translation.
type Cache interface {
	GetMany(ctx context.Context, language string, codes []string) (map[string]string, error)
	SetMany(ctx context.Context, language string, values map[string]string) error
	Invalidate(ctx context.Context, language, code string) error
}

// Resolver maps translation codes to text in a single language.
type Resolver struct {
	store    Store
	cache    Cache
	language string
}

// NewResolver creates a resolver. cache may be nil.
func NewResolver(store Store, cache Cache, language string) *Resolver {
	return &Resolver{store: store, cache: cache, language: language}
}

// Language returns the language the resolver translates into.
func (r *Resolver) Language() string {
	return r.language
}

// ResolveMany resolves a batch of codes. Every requested code is present in
// the result; codes without a non-empty translation map to themselves.
func (r *Resolver) ResolveMany(ctx context.Context, codes []string) (map[string]string, error) {
	codes = unique(codes)
	out := make(map[string]string, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	found := r.cached(ctx, codes)

	var missing []string
	for _, code := range codes {
		if _, ok := found[code]; !ok {
			missing = append(missing, code)
		}
	}

	if len(missing) > 0 {
		loaded, err := r.load(ctx, missing)
		if err != nil {
			return nil, err
		}
		metrics.RecordTranslationLookups(metrics.LookupSourceDatabase, len(loaded), len(missing)-len(loaded))

		fill := make(map[string]string, len(missing))
		for _, code := range missing {
			fill[code] = loaded[code]
			found[code] = loaded[code]
		}
		r.remember(ctx, fill)
	}

	for _, code := range codes {
		if v := found[code]; v != "" {
			out[code] = v
		} else {
			out[code] = code
		}
	}
	return out, nil
}

// Invalidate drops the cached value of code so the next read sees new
// entries. Cache failures are logged, not returned.
func (r *Resolver) Invalidate(ctx context.Context, code string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Invalidate(ctx, r.language, code); err != nil {
		logger.With("overlay").Warn().Err(err).Str("code", code).Msg("translation cache invalidate failed")
	}
}

// load reads codes from the store. A single code uses the plain lookup;
// batches go through one query. Codes without an entry are absent.
func (r *Resolver) load(ctx context.Context, codes []string) (map[string]string, error) {
	if len(codes) == 1 {
		value, ok, err := r.store.Resolve(ctx, codes[0], r.language)
		if err != nil {
			return nil, fmt.Errorf("resolve translation: %w", err)
		}
		loaded := make(map[string]string, 1)
		if ok {
			loaded[codes[0]] = value
		}
		return loaded, nil
	}

	loaded, err := r.store.ResolveMany(ctx, codes, r.language)
	if err != nil {
		return nil, fmt.Errorf("resolve translations: %w", err)
	}
	return loaded, nil
}

func (r *Resolver) cached(ctx context.Context, codes []string) map[string]string {
	found := make(map[string]string, len(codes))
	if r.cache == nil {
		return found
	}

	hits, err := r.cache.GetMany(ctx, r.language, codes)
	if err != nil {
		logger.With("overlay").Warn().Err(err).Msg("translation cache read failed, using database")
		return found
	}

	for code, v := range hits {
		found[code] = v
	}
	metrics.RecordTranslationLookups(metrics.LookupSourceCache, len(hits), len(codes)-len(hits))
	return found
}

func (r *Resolver) remember(ctx context.Context, values map[string]string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.SetMany(ctx, r.language, values); err != nil {
		logger.With("overlay").Warn().Err(err).Msg("translation cache write failed")
	}
}

func unique(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
