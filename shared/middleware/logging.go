package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goodways/goodways/shared/logger"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags each request with an id and logs one line when it ends.
// An incoming X-Request-Id is kept if it parses as a UUID.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIdHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIdHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(logger.WithRequestId(r.Context(), id)))

		level := logger.Log.Info
		if rec.status >= http.StatusInternalServerError {
			level = logger.Log.Error
		}
		level("request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"route", routePattern(r),
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// routePattern is the matched chi pattern, empty when nothing matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

// RequestIdFromContext returns the id assigned by RequestLogger, or "".
func RequestIdFromContext(ctx context.Context) string {
	return logger.RequestId(ctx)
}
