package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goodways/goodways/backend/internal/handler"
	"github.com/goodways/goodways/backend/internal/setup"
	"github.com/goodways/goodways/shared/config"
	"github.com/goodways/goodways/shared/domain"
	"github.com/goodways/goodways/shared/jwt"
	mw "github.com/goodways/goodways/shared/middleware"
	"github.com/goodways/goodways/shared/middleware/ratelimiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Stubs ---

type stubPostService struct{}

func (stubPostService) Create(ctx context.Context, draft domain.PostDraft) (*domain.PostView, error) {
	return &domain.PostView{Post: domain.Post{Id: 1, Title: draft.Title}}, nil
}

func (stubPostService) List(ctx context.Context, query domain.FeedQuery) ([]domain.PostView, error) {
	return []domain.PostView{}, nil
}

func (stubPostService) Get(ctx context.Context, id domain.PostId) (*domain.PostDetail, error) {
	return &domain.PostDetail{Post: domain.PostView{Post: domain.Post{Id: id}}, Comments: []domain.CommentView{}}, nil
}

func (stubPostService) Vote(ctx context.Context, id domain.PostId, direction string) (*domain.PostView, error) {
	return &domain.PostView{Post: domain.Post{Id: id, Upvotes: 1}, Score: 1}, nil
}

func (stubPostService) Delete(ctx context.Context, id domain.PostId) error {
	return nil
}

type stubCommentService struct{}

func (stubCommentService) Create(ctx context.Context, postId domain.PostId, draft domain.CommentDraft) (*domain.CommentView, error) {
	return &domain.CommentView{Comment: domain.Comment{Id: 1, PostId: postId}}, nil
}

func (stubCommentService) Vote(ctx context.Context, id domain.CommentId, direction string) (*domain.CommentView, error) {
	return &domain.CommentView{Comment: domain.Comment{Id: id}}, nil
}

func (stubCommentService) Delete(ctx context.Context, id domain.CommentId) error {
	return nil
}

type stubHealth struct{}

func (stubHealth) Ping(ctx context.Context) error { return nil }

const testOrigin = "http://localhost:5173"

func newTestDeps(t *testing.T) *setup.Dependencies {
	t.Helper()
	cfg := &config.Config{Public: config.Public{
		MaxBodyBytes:   1 << 20,
		AllowedOrigins: []string{testOrigin},
	}}
	jwtService := jwt.New("test-key", time.Hour)
	limiters := setup.Limiters{
		Post:    ratelimiter.New(1.0/3600, 1, time.Hour),
		Comment: ratelimiter.New(1.0/3600, 1, time.Hour),
		Vote:    ratelimiter.New(1.0/3600, 1, time.Hour),
	}
	t.Cleanup(limiters.Stop)

	return &setup.Dependencies{
		Config:         cfg,
		Handler:        handler.New(stubPostService{}, stubCommentService{}, stubHealth{}, cfg),
		Jwt:            jwtService,
		AuthMiddleware: mw.NewAuth(jwtService),
		Limiters:       limiters,
	}
}

func do(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRoutes(t *testing.T) {
	router := New(newTestDeps(t))

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/v1/posts", "", http.StatusOK},
		{http.MethodGet, "/v1/posts?sort=new", "", http.StatusOK},
		{http.MethodGet, "/v1/posts/1", "", http.StatusOK},
		{http.MethodGet, "/v1/posts/abc", "", http.StatusBadRequest},
		{http.MethodGet, "/v1/unknown", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := do(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestRouter_CommonHeaders(t *testing.T) {
	router := New(newTestDeps(t))

	rr := do(router, httptest.NewRequest(http.MethodGet, "/v1/posts", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get(mw.RequestIdHeader))
}

func TestRouter_CORS(t *testing.T) {
	router := New(newTestDeps(t))

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/posts", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rr := do(router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origins get no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
		req.Header.Set("Origin", "http://evil.example")

		rr := do(router, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_VoteRateLimit(t *testing.T) {
	router := New(newTestDeps(t))

	vote := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/posts/1/vote", nil)
		req.RemoteAddr = remoteAddr
		return do(router, req)
	}

	assert.Equal(t, http.StatusOK, vote("192.0.2.1:1000").Code)

	limited := vote("192.0.2.1:1001")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), mw.MsgRateLimited)

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, vote("192.0.2.2:1000").Code)

	// comment votes share the vote budget
	req := httptest.NewRequest(http.MethodPost, "/v1/comments/1/vote", nil)
	req.RemoteAddr = "192.0.2.1:1002"
	assert.Equal(t, http.StatusTooManyRequests, do(router, req).Code)

	// post creation has its own bucket
	req = httptest.NewRequest(http.MethodPost, "/v1/posts", nil)
	req.RemoteAddr = "192.0.2.1:1003"
	assert.Equal(t, http.StatusCreated, do(router, req).Code)
}

func TestRouter_Admin(t *testing.T) {
	deps := newTestDeps(t)
	router := New(deps)

	t.Run("no token", func(t *testing.T) {
		rr := do(router, httptest.NewRequest(http.MethodDelete, "/v1/admin/posts/1", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/posts/1", nil)
		req.Header.Set("Authorization", "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, do(router, req).Code)
	})

	t.Run("valid admin token", func(t *testing.T) {
		token, err := deps.Jwt.NewToken(domain.Admin{Name: "root"})
		require.NoError(t, err)

		for _, path := range []string{"/v1/admin/posts/1", "/v1/admin/comments/1"} {
			req := httptest.NewRequest(http.MethodDelete, path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			assert.Equal(t, http.StatusNoContent, do(router, req).Code, path)
		}
	})
}
