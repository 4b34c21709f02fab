package setup

import (
	"context"
	"time"

	"github.com/goodways/goodways/backend/internal/handler"
	"github.com/goodways/goodways/backend/internal/markdown"
	"github.com/goodways/goodways/backend/internal/ranking"
	"github.com/goodways/goodways/backend/internal/service"
	"github.com/goodways/goodways/backend/internal/storage/pg"
	"github.com/goodways/goodways/backend/internal/storage/redis"
	"github.com/goodways/goodways/shared/config"
	"github.com/goodways/goodways/shared/jwt"
	"github.com/goodways/goodways/shared/logger"
	mw "github.com/goodways/goodways/shared/middleware"
	"github.com/goodways/goodways/shared/middleware/ratelimiter"
	shared_pg "github.com/goodways/goodways/shared/storage/pg"
)

const limiterIdleTTL = time.Hour

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	RenderCache    *redis.RenderCache // nil when redis_url is empty
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *mw.Auth
	Limiters       Limiters
}

// Limiters are per-IP buckets for the write endpoints.
type Limiters struct {
	Post    *ratelimiter.Limiter
	Comment *ratelimiter.Limiter
	Vote    *ratelimiter.Limiter
}

func NewLimiters(public config.Public) Limiters {
	return Limiters{
		Post:    ratelimiter.PerMinute(public.PostRPM),
		Comment: ratelimiter.PerMinute(public.PostRPM),
		Vote:    ratelimiter.New(public.VoteRPS, public.VoteRPS, limiterIdleTTL),
	}
}

func (l Limiters) Stop() {
	for _, rl := range []*ratelimiter.Limiter{l.Post, l.Comment, l.Vote} {
		if rl != nil {
			rl.Stop()
		}
	}
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg, shared_pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}

	var renderCache *redis.RenderCache
	var cache markdown.Cache
	if cfg.Private.RedisURL != "" {
		renderCache, err = redis.New(ctx, cfg.Private.RedisURL, cfg.Public.RenderCacheTTL)
		if err != nil {
			storage.Cleanup()
			return nil, err
		}
		cache = renderCache
	} else {
		logger.Log.Info("redis_url is empty, render cache disabled")
	}

	renderer := markdown.NewCached(markdown.New(), cache)
	scorer := ranking.NewHotScorer(cfg.Public.Epoch())

	post := service.NewPost(storage, renderer, scorer, cfg.Public.FeedCandidateLimit)
	comment := service.NewComment(storage)

	jwtService := jwt.New(cfg.JwtKey(), cfg.AdminTokenTTL())

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		RenderCache:    renderCache,
		Handler:        handler.New(post, comment, storage, cfg),
		Jwt:            jwtService,
		AuthMiddleware: mw.NewAuth(jwtService),
		Limiters:       NewLimiters(cfg.Public),
	}, nil
}

// Cleanup releases connections and stops limiter sweeps.
func (d *Dependencies) Cleanup() {
	d.Limiters.Stop()
	if d.RenderCache != nil {
		if err := d.RenderCache.Close(); err != nil {
			logger.Log.Error("failed to close redis", "error", err)
		}
	}
	if d.Storage != nil {
		if err := d.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close db", "error", err)
		}
	}
}
