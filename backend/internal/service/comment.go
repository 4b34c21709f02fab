package service

import (
	"context"

	"github.com/goodways/goodways/backend/internal/metrics"
	"github.com/goodways/goodways/backend/internal/service/utils"
	"github.com/goodways/goodways/shared/domain"
	internal_errors "github.com/goodways/goodways/shared/errors"
	"github.com/goodways/goodways/shared/logger"
	"github.com/goodways/goodways/shared/validation"
)

type CommentService interface {
	Create(ctx context.Context, postId domain.PostId, draft domain.CommentDraft) (*domain.CommentView, error)
	Vote(ctx context.Context, id domain.CommentId, direction string) (*domain.CommentView, error)
	Delete(ctx context.Context, id domain.CommentId) error
}

type CommentStorage interface {
	GetPost(ctx context.Context, id domain.PostId) (*domain.Post, error)
	CreateComment(ctx context.Context, data domain.CommentCreationData) (*domain.Comment, error)
	VoteComment(ctx context.Context, id domain.CommentId, direction domain.VoteDirection) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id domain.CommentId) error
}

type Comment struct {
	storage CommentStorage
}

func NewComment(storage CommentStorage) CommentService {
	return &Comment{storage: storage}
}

// Create checks input before the post lookup, so a bad comment on a missing
// post reports the validation problems.
func (s *Comment) Create(ctx context.Context, postId domain.PostId, draft domain.CommentDraft) (*domain.CommentView, error) {
	if msgs := validation.ValidateComment(draft); len(msgs) > 0 {
		return nil, &internal_errors.ValidationError{Messages: msgs}
	}

	if _, err := s.storage.GetPost(ctx, postId); err != nil {
		return nil, err
	}

	comment, err := s.storage.CreateComment(ctx, domain.CommentCreationData{
		PostId:  postId,
		Author:  utils.OrDefault(utils.SanitizeText(draft.Author, validation.MaxAuthorLength), domain.DefaultCommentAuthor),
		Content: utils.SanitizeMarkdown(draft.Content, validation.MaxCommentLength),
	})
	if err != nil {
		return nil, err
	}
	metrics.CommentsCreated.Inc()
	logger.FromContext(ctx).Info("comment created", "comment_id", comment.Id, "post_id", postId)

	view := domain.NewCommentView(*comment)
	return &view, nil
}

func (s *Comment) Vote(ctx context.Context, id domain.CommentId, direction string) (*domain.CommentView, error) {
	dir, err := domain.ParseVoteDirection(direction)
	if err != nil {
		return nil, &internal_errors.ValidationError{Messages: []string{validation.MsgVoteDirection}}
	}

	comment, err := s.storage.VoteComment(ctx, id, dir)
	if err != nil {
		return nil, err
	}
	metrics.Votes.WithLabelValues("comment", dir.String()).Inc()

	view := domain.NewCommentView(*comment)
	return &view, nil
}

func (s *Comment) Delete(ctx context.Context, id domain.CommentId) error {
	if err := s.storage.DeleteComment(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("comment deleted", "comment_id", id)
	return nil
}
