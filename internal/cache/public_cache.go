package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devportfolio/portfolio-api/pkg/logger"
	"github.com/devportfolio/portfolio-api/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	publicCacheName     = "public"
	cacheCheckPeriod    = time.Minute
	defaultPublicTTL    = 5 * time.Minute
	PublicProjectsKey   = "projects"
	PublicSkillsKey     = "skills"
	PublicJourneyKey    = "journey"
	PublicHighlightsKey = "highlights"
	PublicResumesKey    = "resumes:public"
	PublicActiveKey     = "resumes:active"
)

// PublicCache holds read-only views served by the public API. Every admin
// write flushes it through Invalidate.
type PublicCache struct {
	cache   *gocache.Cache
	ttl     time.Duration
	enabled bool
	mu      sync.RWMutex
	ready   bool
}

// NewPublicCache creates the cache. A negative TTL disables caching; zero uses the default.
func NewPublicCache(ttlSeconds int) *PublicCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds == 0 {
		ttl = defaultPublicTTL
	}
	return &PublicCache{
		cache:   gocache.New(ttl, cacheCheckPeriod),
		ttl:     ttl,
		enabled: ttlSeconds >= 0,
	}
}

// Initialize runs the warmers and marks the cache ready.
// Should be called during application startup before accepting requests
func (pc *PublicCache) Initialize(ctx context.Context, warmers ...func(context.Context) error) error {
	logger.Info("Initializing public cache...")
	for _, warm := range warmers {
		if err := warm(ctx); err != nil {
			logger.Error("Failed to initialize public cache", zap.Error(err))
			return err
		}
	}

	pc.mu.Lock()
	pc.ready = true
	pc.mu.Unlock()

	logger.Info("Public cache initialized successfully", zap.Int("entries", pc.cache.ItemCount()))
	return nil
}

// IsReady returns true if the cache has been successfully initialized
func (pc *PublicCache) IsReady() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.ready
}

// Invalidate drops every cached view
func (pc *PublicCache) Invalidate() {
	pc.cache.Flush()
	metrics.CacheSize.WithLabelValues(publicCacheName).Set(0)
	logger.Debug("Public cache invalidated")
}

// Delete drops the named views and keeps the rest
func (pc *PublicCache) Delete(keys ...string) {
	for _, key := range keys {
		pc.cache.Delete(key)
	}
	metrics.CacheSize.WithLabelValues(publicCacheName).Set(float64(pc.cache.ItemCount()))
}

// Len returns the number of cached views
func (pc *PublicCache) Len() int {
	return pc.cache.ItemCount()
}

// Load returns the cached value for key, calling load on a miss.
// Errors are never cached.
func Load[T any](ctx context.Context, pc *PublicCache, key string, load func(context.Context) (T, error)) (T, error) {
	if pc == nil || !pc.enabled {
		return load(ctx)
	}

	if data, found := pc.cache.Get(key); found {
		if value, ok := data.(T); ok {
			metrics.CacheHits.WithLabelValues(publicCacheName).Inc()
			return value, nil
		}
		logger.Error("Invalid public cache data type", zap.String("key", key), zap.String("type", fmt.Sprintf("%T", data)))
		pc.cache.Delete(key)
	}

	metrics.CacheMisses.WithLabelValues(publicCacheName).Inc()
	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	pc.cache.Set(key, value, pc.ttl)
	metrics.CacheSize.WithLabelValues(publicCacheName).Set(float64(pc.cache.ItemCount()))
	return value, nil
}
