package markdown

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/goodways/goodways/backend/internal/metrics"
	"github.com/goodways/goodways/shared/logger"
)

// bump when the allow-list or parser options change
const cacheKeyPrefix = "render:v1:"

// Cache stores rendered fragments. A miss is ("", false, nil).
// GetMany returns hits only; missing keys are absent from the map.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	GetMany(ctx context.Context, keys []string) (map[string]string, error)
	SetMany(ctx context.Context, entries map[string]string) error
}

// CachedRenderer memoizes Render by source hash. Cache failures are logged
// and fall through to direct rendering.
type CachedRenderer struct {
	renderer *Renderer
	cache    Cache
}

// NewCached wraps renderer. A nil cache renders directly every time.
func NewCached(renderer *Renderer, cache Cache) *CachedRenderer {
	return &CachedRenderer{renderer: renderer, cache: cache}
}

func CacheKey(src string) string {
	sum := sha256.Sum256([]byte(src))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *CachedRenderer) Render(ctx context.Context, src string) string {
	if c.cache == nil {
		return c.renderer.Render(src)
	}

	log := logger.Component("render_cache")
	key := CacheKey(src)

	cached, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.RenderCacheLookups.WithLabelValues("error").Inc()
		log.Warn("render cache read failed", "error", err)
	case ok:
		metrics.RenderCacheLookups.WithLabelValues("hit").Inc()
		return cached
	default:
		metrics.RenderCacheLookups.WithLabelValues("miss").Inc()
	}

	out := c.renderer.Render(src)
	if err == nil {
		if err := c.cache.Set(ctx, key, out); err != nil {
			log.Warn("render cache write failed", "error", err)
		}
	}
	return out
}

// RenderAll renders srcs with one cache read and at most one cache write.
// The result is index-aligned with srcs.
func (c *CachedRenderer) RenderAll(ctx context.Context, srcs []string) []string {
	out := make([]string, len(srcs))
	if c.cache == nil || len(srcs) == 0 {
		for i, src := range srcs {
			out[i] = c.renderer.Render(src)
		}
		return out
	}

	log := logger.Component("render_cache")
	keys := make([]string, len(srcs))
	for i, src := range srcs {
		keys[i] = CacheKey(src)
	}

	cached, err := c.cache.GetMany(ctx, keys)
	if err != nil {
		metrics.RenderCacheLookups.WithLabelValues("error").Add(float64(len(srcs)))
		log.Warn("render cache batch read failed", "keys", len(keys), "error", err)
	}

	rendered := make(map[string]string)
	for i, src := range srcs {
		if html, ok := cached[keys[i]]; ok {
			metrics.RenderCacheLookups.WithLabelValues("hit").Inc()
			out[i] = html
			continue
		}
		if err == nil {
			metrics.RenderCacheLookups.WithLabelValues("miss").Inc()
		}
		// identical sources in one batch render once
		if html, ok := rendered[keys[i]]; ok {
			out[i] = html
			continue
		}
		out[i] = c.renderer.Render(src)
		rendered[keys[i]] = out[i]
	}

	if err == nil && len(rendered) > 0 {
		if err := c.cache.SetMany(ctx, rendered); err != nil {
			log.Warn("render cache batch write failed", "keys", len(rendered), "error", err)
		}
	}
	return out
}
