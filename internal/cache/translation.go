// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// translation.go caches resolved translation values in Valkey so basket
// reads do not hit the translations table for every item. A code with no
// translation is cached as an empty string, which callers treat the same
// as a missing entry.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"webshop/internal/logger"
)

const (
	// translationKeyPrefix is the Valkey key prefix for cached translations.
	translationKeyPrefix = "translation:"

	// DefaultTranslationTTL is how long a resolved translation stays cached.
	DefaultTranslationTTL = 10 * time.Minute
)

// TranslationCache stores (language, code) → value lookups in Valkey.
type TranslationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTranslationCache creates a translation cache backed by the given
// Valkey client.
func NewTranslationCache(client *redis.Client, ttl time.Duration) *TranslationCache {
	if ttl == 0 {
		ttl = DefaultTranslationTTL
	}
	return &TranslationCache{client: client, ttl: ttl}
}

// TranslationKey returns the Valkey key for a code in a language.
func TranslationKey(language, code string) string {
	return translationKeyPrefix + language + ":" + code
}

// GetMany looks up codes with a single MGET. Only cached codes appear in
// the result; a cached empty string means "known to have no translation".
func (tc *TranslationCache) GetMany(ctx context.Context, language string, codes []string) (map[string]string, error) {
	hits := make(map[string]string, len(codes))
	if len(codes) == 0 {
		return hits, nil
	}

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = TranslationKey(language, code)
	}

	vals, err := tc.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("translation cache mget: %w", err)
	}

	for i, v := range vals {
		if s, ok := v.(string); ok {
			hits[codes[i]] = s
		}
	}
	return hits, nil
}

// SetMany stores values with the configured TTL in one pipeline.
func (tc *TranslationCache) SetMany(ctx context.Context, language string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	pipe := tc.client.Pipeline()
	for code, value := range values {
		pipe.Set(ctx, TranslationKey(language, code), value, tc.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("translation cache set: %w", err)
	}
	return nil
}

// Invalidate removes the cached value for a single code.
func (tc *TranslationCache) Invalidate(ctx context.Context, language, code string) error {
	if err := tc.client.Del(ctx, TranslationKey(language, code)).Err(); err != nil {
		return fmt.Errorf("translation cache invalidate: %w", err)
	}
	logger.With("cache").Debug().Str("language", language).Str("code", code).Msg("translation cache invalidated")
	return nil
}

// InvalidateAll removes every cached translation by scanning for the prefix.
func (tc *TranslationCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := tc.client.Scan(ctx, cursor, translationKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("translation cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := tc.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("translation cache bulk delete: %w", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		logger.With("cache").Info().Int("deleted", deleted).Msg("translation cache cleared")
	}
	return nil
}
