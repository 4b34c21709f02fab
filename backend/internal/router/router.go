package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goodways/goodways/backend/internal/setup"
	internal_errors "github.com/goodways/goodways/shared/errors"
	mw "github.com/goodways/goodways/shared/middleware"
	"github.com/goodways/goodways/shared/middleware/metrics"
	"github.com/goodways/goodways/shared/utils"
)

// New creates the chi router with all the routes.
// Each write endpoint has its own limiter, so posting does not eat into the vote budget.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// setup CORS for frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", mw.RequestIdHeader},
		ExposedHeaders: []string{"Retry-After", mw.RequestIdHeader},
		MaxAge:         300,
	}))

	// JSON API only, no scripts/styles needed
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureHeaders))

	h := deps.Handler
	authMw := deps.AuthMiddleware
	limits := deps.Limiters

	// Probes
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Route("/posts", func(posts chi.Router) {
			posts.Get("/", h.ListPosts)
			posts.With(mw.RateLimit(limits.Post, mw.GetIP)).Post("/", h.CreatePost)

			posts.Get("/{id}", h.GetPost)
			posts.With(mw.RateLimit(limits.Vote, mw.GetIP)).Post("/{id}/vote", h.VotePost)
			posts.With(mw.RateLimit(limits.Comment, mw.GetIP)).Post("/{id}/comments", h.CreateComment)
		})

		v1.With(mw.RateLimit(limits.Vote, mw.GetIP)).Post("/comments/{id}/vote", h.VoteComment)

		// Admin routes
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(authMw.AdminOnly())
			admin.Delete("/posts/{id}", h.DeletePost)
			admin.Delete("/comments/{id}", h.DeleteComment)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{Message: "Not found.", StatusCode: http.StatusNotFound})
	})

	return r
}
