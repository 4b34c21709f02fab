package service

import (
	"context"
	"strings"
	"time"

	"github.com/goodways/goodways/backend/internal/metrics"
	"github.com/goodways/goodways/backend/internal/ranking"
	"github.com/goodways/goodways/backend/internal/service/utils"
	"github.com/goodways/goodways/shared/domain"
	internal_errors "github.com/goodways/goodways/shared/errors"
	"github.com/goodways/goodways/shared/logger"
	"github.com/goodways/goodways/shared/validation"
)

type PostService interface {
	Create(ctx context.Context, draft domain.PostDraft) (*domain.PostView, error)
	List(ctx context.Context, query domain.FeedQuery) ([]domain.PostView, error)
	Get(ctx context.Context, id domain.PostId) (*domain.PostDetail, error)
	Vote(ctx context.Context, id domain.PostId, direction string) (*domain.PostView, error)
	Delete(ctx context.Context, id domain.PostId) error
}

type PostStorage interface {
	CreatePost(ctx context.Context, data domain.PostCreationData) (*domain.Post, error)
	GetPost(ctx context.Context, id domain.PostId) (*domain.Post, error)
	ListPosts(ctx context.Context, filter domain.FeedFilter) ([]domain.Post, error)
	VotePost(ctx context.Context, id domain.PostId, direction domain.VoteDirection) (*domain.Post, error)
	DeletePost(ctx context.Context, id domain.PostId) error
	ListComments(ctx context.Context, postId domain.PostId) ([]domain.Comment, error)
}

type Renderer interface {
	Render(ctx context.Context, src string) string
	// RenderAll renders a batch; the result is index-aligned with srcs.
	RenderAll(ctx context.Context, srcs []string) []string
}

type HotScorer interface {
	Score(createdAt time.Time, score int64) float64
}

type Post struct {
	storage        PostStorage
	renderer       Renderer
	scorer         HotScorer
	candidateLimit int
}

func NewPost(storage PostStorage, renderer Renderer, scorer HotScorer, candidateLimit int) PostService {
	return &Post{
		storage:        storage,
		renderer:       renderer,
		scorer:         scorer,
		candidateLimit: candidateLimit,
	}
}

// Create validates the raw draft, then stores its sanitized form. Nothing is
// written when validation fails.
func (s *Post) Create(ctx context.Context, draft domain.PostDraft) (*domain.PostView, error) {
	if msgs := validation.ValidatePost(draft); len(msgs) > 0 {
		return nil, &internal_errors.ValidationError{Messages: msgs}
	}

	post, err := s.storage.CreatePost(ctx, sanitizePost(draft))
	if err != nil {
		return nil, err
	}
	metrics.PostsCreated.Inc()
	logger.FromContext(ctx).Info("post created", "post_id", post.Id)

	view := s.view(ctx, *post)
	return &view, nil
}

func sanitizePost(draft domain.PostDraft) domain.PostCreationData {
	return domain.PostCreationData{
		Title:           utils.SanitizeText(draft.Title, validation.MaxTitleLength),
		Summary:         utils.SanitizeText(draft.Summary, validation.MaxSummaryLength),
		ContentMarkdown: utils.SanitizeMarkdown(draft.Content, validation.MaxContentLength),
		Author:          utils.OrDefault(utils.SanitizeText(draft.Author, validation.MaxAuthorLength), domain.DefaultPostAuthor),
		Mood:            utils.SanitizeText(draft.Mood, validation.MaxMoodLength),
		MediaUrl:        strings.TrimSpace(draft.MediaUrl),
		ColorPalette:    utils.SanitizeList(draft.ColorPalette, validation.MaxColorLength, validation.MaxPaletteSize),
		Tags:            utils.SanitizeList(draft.Tags, validation.MaxTagLength, validation.MaxTags),
	}
}

// List loads the newest matching candidates and ranks them. Only the
// candidate set is ranked, never the full matching history.
func (s *Post) List(ctx context.Context, query domain.FeedQuery) ([]domain.PostView, error) {
	posts, err := s.storage.ListPosts(ctx, domain.FeedFilter{
		Search: strings.TrimSpace(query.Search),
		Mood:   strings.TrimSpace(query.Mood),
		Limit:  s.candidateLimit,
	})
	if err != nil {
		return nil, err
	}

	sources := make([]string, len(posts))
	for i, post := range posts {
		sources[i] = post.ContentMarkdown
	}
	html := s.renderer.RenderAll(ctx, sources)

	views := make([]domain.PostView, 0, len(posts))
	for i, post := range posts {
		views = append(views, s.newView(post, html[i]))
	}
	return ranking.Rank(views, ranking.ParseSortMode(query.Sort)), nil
}

func (s *Post) Get(ctx context.Context, id domain.PostId) (*domain.PostDetail, error) {
	post, err := s.storage.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.storage.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}

	commentViews := make([]domain.CommentView, 0, len(comments))
	for _, c := range comments {
		commentViews = append(commentViews, domain.NewCommentView(c))
	}
	return &domain.PostDetail{Post: s.view(ctx, *post), Comments: commentViews}, nil
}

func (s *Post) Vote(ctx context.Context, id domain.PostId, direction string) (*domain.PostView, error) {
	dir, err := domain.ParseVoteDirection(direction)
	if err != nil {
		return nil, &internal_errors.ValidationError{Messages: []string{validation.MsgVoteDirection}}
	}

	post, err := s.storage.VotePost(ctx, id, dir)
	if err != nil {
		return nil, err
	}
	metrics.Votes.WithLabelValues("post", dir.String()).Inc()

	view := s.view(ctx, *post)
	return &view, nil
}

func (s *Post) Delete(ctx context.Context, id domain.PostId) error {
	if err := s.storage.DeletePost(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("post deleted", "post_id", id)
	return nil
}

// view attaches the derived fields. They are recomputed on every read.
func (s *Post) view(ctx context.Context, post domain.Post) domain.PostView {
	return s.newView(post, s.renderer.Render(ctx, post.ContentMarkdown))
}

func (s *Post) newView(post domain.Post, contentHtml string) domain.PostView {
	score := post.Score()
	return domain.PostView{
		Post:        post,
		Score:       score,
		HotScore:    s.scorer.Score(post.CreatedAt, score),
		ContentHtml: contentHtml,
	}
}
