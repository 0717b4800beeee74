package tagger

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmpinto/gazeta/internal/cache"
	"github.com/jmpinto/gazeta/internal/model"
)

// Limiter throttles calls per provider name
type Limiter interface {
	Wait(ctx context.Context, name string) error
}

// Tagger fronts a Provider with result caching and rate limiting.
// Chunk text hashes to the cache key, so identical chunks (reprints,
// re-runs with a disk cache) are tagged once.
type Tagger struct {
	provider Provider
	cache    cache.Cache
	limiter  Limiter
	ttl      time.Duration
}

// New creates a tagger front. cache and limiter may be nil to disable
// the respective behavior.
func New(provider Provider, c cache.Cache, limiter Limiter, ttl time.Duration) *Tagger {
	return &Tagger{provider: provider, cache: c, limiter: limiter, ttl: ttl}
}

// Name returns the underlying provider name
func (t *Tagger) Name() string { return t.provider.Name() }

// Tag returns tagged spans for text, consulting the cache first.
// The result is never nil on success.
func (t *Tagger) Tag(ctx context.Context, text string) ([]model.TagSpan, error) {
	key := cache.Key(text)
	if t.cache != nil {
		if data, found := t.cache.Get(key); found {
			var spans []model.TagSpan
			if err := json.Unmarshal(data, &spans); err == nil {
				return spans, nil
			}
			// Corrupt entry; drop it and re-tag
			_ = t.cache.Delete(key)
		}
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx, t.provider.Name()); err != nil {
			return nil, err
		}
	}

	spans, err := t.provider.Tag(ctx, text)
	if err != nil {
		return nil, err
	}
	if spans == nil {
		spans = []model.TagSpan{}
	}

	if t.cache != nil {
		if data, err := json.Marshal(spans); err == nil {
			_ = t.cache.Set(key, data, t.ttl)
		}
	}
	return spans, nil
}
