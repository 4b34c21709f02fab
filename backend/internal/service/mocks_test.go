package service

import (
	"context"
	"sync"
	"time"

	"github.com/goodways/goodways/shared/domain"
)

// --- Mocks ---

// MockStorage mocks both PostStorage and CommentStorage.
type MockStorage struct {
	createPostFunc    func(data domain.PostCreationData) (*domain.Post, error)
	getPostFunc       func(id domain.PostId) (*domain.Post, error)
	listPostsFunc     func(filter domain.FeedFilter) ([]domain.Post, error)
	votePostFunc      func(id domain.PostId, direction domain.VoteDirection) (*domain.Post, error)
	deletePostFunc    func(id domain.PostId) error
	listCommentsFunc  func(postId domain.PostId) ([]domain.Comment, error)
	createCommentFunc func(data domain.CommentCreationData) (*domain.Comment, error)
	voteCommentFunc   func(id domain.CommentId, direction domain.VoteDirection) (*domain.Comment, error)
	deleteCommentFunc func(id domain.CommentId) error

	mu    sync.Mutex
	calls []string
}

func (m *MockStorage) record(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

func (m *MockStorage) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockStorage) CreatePost(ctx context.Context, data domain.PostCreationData) (*domain.Post, error) {
	m.record("CreatePost")
	if m.createPostFunc != nil {
		return m.createPostFunc(data)
	}
	return &domain.Post{Id: 1, Title: data.Title, ContentMarkdown: data.ContentMarkdown, CreatedAt: time.Now()}, nil
}

func (m *MockStorage) GetPost(ctx context.Context, id domain.PostId) (*domain.Post, error) {
	m.record("GetPost")
	if m.getPostFunc != nil {
		return m.getPostFunc(id)
	}
	return &domain.Post{Id: id}, nil
}

func (m *MockStorage) ListPosts(ctx context.Context, filter domain.FeedFilter) ([]domain.Post, error) {
	m.record("ListPosts")
	if m.listPostsFunc != nil {
		return m.listPostsFunc(filter)
	}
	return nil, nil
}

func (m *MockStorage) VotePost(ctx context.Context, id domain.PostId, direction domain.VoteDirection) (*domain.Post, error) {
	m.record("VotePost")
	if m.votePostFunc != nil {
		return m.votePostFunc(id, direction)
	}
	return &domain.Post{Id: id}, nil
}

func (m *MockStorage) DeletePost(ctx context.Context, id domain.PostId) error {
	m.record("DeletePost")
	if m.deletePostFunc != nil {
		return m.deletePostFunc(id)
	}
	return nil
}

func (m *MockStorage) ListComments(ctx context.Context, postId domain.PostId) ([]domain.Comment, error) {
	m.record("ListComments")
	if m.listCommentsFunc != nil {
		return m.listCommentsFunc(postId)
	}
	return nil, nil
}

func (m *MockStorage) CreateComment(ctx context.Context, data domain.CommentCreationData) (*domain.Comment, error) {
	m.record("CreateComment")
	if m.createCommentFunc != nil {
		return m.createCommentFunc(data)
	}
	return &domain.Comment{Id: 1, PostId: data.PostId, Author: data.Author, Content: data.Content}, nil
}

func (m *MockStorage) VoteComment(ctx context.Context, id domain.CommentId, direction domain.VoteDirection) (*domain.Comment, error) {
	m.record("VoteComment")
	if m.voteCommentFunc != nil {
		return m.voteCommentFunc(id, direction)
	}
	return &domain.Comment{Id: id}, nil
}

func (m *MockStorage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	m.record("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

// MockRenderer wraps the source so tests can see it went through rendering.
type MockRenderer struct{}

func (MockRenderer) Render(ctx context.Context, src string) string {
	return "<rendered>" + src + "</rendered>"
}

func (m MockRenderer) RenderAll(ctx context.Context, srcs []string) []string {
	out := make([]string, len(srcs))
	for i, src := range srcs {
		out[i] = m.Render(ctx, src)
	}
	return out
}

// countingRenderer records how the service asks for rendering.
type countingRenderer struct {
	MockRenderer
	single  int
	batches [][]string
}

func (c *countingRenderer) Render(ctx context.Context, src string) string {
	c.single++
	return c.MockRenderer.Render(ctx, src)
}

func (c *countingRenderer) RenderAll(ctx context.Context, srcs []string) []string {
	c.batches = append(c.batches, srcs)
	return c.MockRenderer.RenderAll(ctx, srcs)
}

// MockScorer returns score plus the unix time, enough to order by recency.
type MockScorer struct{}

func (MockScorer) Score(createdAt time.Time, score int64) float64 {
	return float64(score)*1e6 + float64(createdAt.Unix())
}
