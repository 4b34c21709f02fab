package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/goodways/goodways/shared/config"
	"github.com/goodways/goodways/shared/domain"
)

// --- Mocks ---

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

type MockPostService struct {
	MockCreate func(draft domain.PostDraft) (*domain.PostView, error)
	MockList   func(query domain.FeedQuery) ([]domain.PostView, error)
	MockGet    func(id domain.PostId) (*domain.PostDetail, error)
	MockVote   func(id domain.PostId, direction string) (*domain.PostView, error)
	MockDelete func(id domain.PostId) error
}

func (m *MockPostService) Create(ctx context.Context, draft domain.PostDraft) (*domain.PostView, error) {
	if m.MockCreate != nil {
		return m.MockCreate(draft)
	}
	return &domain.PostView{}, nil
}

func (m *MockPostService) List(ctx context.Context, query domain.FeedQuery) ([]domain.PostView, error) {
	if m.MockList != nil {
		return m.MockList(query)
	}
	return []domain.PostView{}, nil
}

func (m *MockPostService) Get(ctx context.Context, id domain.PostId) (*domain.PostDetail, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return &domain.PostDetail{Comments: []domain.CommentView{}}, nil
}

func (m *MockPostService) Vote(ctx context.Context, id domain.PostId, direction string) (*domain.PostView, error) {
	if m.MockVote != nil {
		return m.MockVote(id, direction)
	}
	return &domain.PostView{}, nil
}

func (m *MockPostService) Delete(ctx context.Context, id domain.PostId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

type MockCommentService struct {
	MockCreate func(postId domain.PostId, draft domain.CommentDraft) (*domain.CommentView, error)
	MockVote   func(id domain.CommentId, direction string) (*domain.CommentView, error)
	MockDelete func(id domain.CommentId) error
}

func (m *MockCommentService) Create(ctx context.Context, postId domain.PostId, draft domain.CommentDraft) (*domain.CommentView, error) {
	if m.MockCreate != nil {
		return m.MockCreate(postId, draft)
	}
	return &domain.CommentView{}, nil
}

func (m *MockCommentService) Vote(ctx context.Context, id domain.CommentId, direction string) (*domain.CommentView, error) {
	if m.MockVote != nil {
		return m.MockVote(id, direction)
	}
	return &domain.CommentView{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id domain.CommentId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

// --- Helpers ---

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{MaxBodyBytes: 1 << 20}}
}

// newTestRouter mounts the handler on the same paths the API router uses,
// without middleware.
func newTestRouter(post *MockPostService, comment *MockCommentService) chi.Router {
	if post == nil {
		post = &MockPostService{}
	}
	if comment == nil {
		comment = &MockCommentService{}
	}
	h := New(post, comment, &MockHealthChecker{}, testConfig())

	r := chi.NewRouter()
	r.Get("/v1/posts", h.ListPosts)
	r.Post("/v1/posts", h.CreatePost)
	r.Get("/v1/posts/{id}", h.GetPost)
	r.Post("/v1/posts/{id}/vote", h.VotePost)
	r.Post("/v1/posts/{id}/comments", h.CreateComment)
	r.Post("/v1/comments/{id}/vote", h.VoteComment)
	r.Delete("/v1/admin/posts/{id}", h.DeletePost)
	r.Delete("/v1/admin/comments/{id}", h.DeleteComment)
	return r
}
