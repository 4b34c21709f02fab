package handler

import (
	"context"

	"github.com/goodways/goodways/backend/internal/service"
	"github.com/goodways/goodways/shared/config"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	post    service.PostService
	comment service.CommentService
	health  HealthChecker
	cfg     *config.Config
}

func New(post service.PostService, comment service.CommentService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		post:    post,
		comment: comment,
		health:  health,
		cfg:     cfg,
	}
}
