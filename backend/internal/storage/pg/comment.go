package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodways/goodways/shared/domain"
	internal_errors "github.com/goodways/goodways/shared/errors"
	shared_pg "github.com/goodways/goodways/shared/storage/pg"
	"github.com/jmoiron/sqlx"
)

type commentDTO struct {
	Id        int64     `db:"id"`
	PostId    int64     `db:"post_id"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	Upvotes   int64     `db:"upvotes"`
	Downvotes int64     `db:"downvotes"`
	CreatedAt time.Time `db:"created_at"`
}

func (d commentDTO) toDomain() domain.Comment {
	return domain.Comment{
		Id:        d.Id,
		PostId:    d.PostId,
		Author:    d.Author,
		Content:   d.Content,
		Upvotes:   d.Upvotes,
		Downvotes: d.Downvotes,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

const selectComment = `
	SELECT id, post_id, author, content, upvotes, downvotes, created_at
	FROM comments`

// CreateComment fails with NotFoundError{"Post"} when the post is gone,
// including when it is deleted between the caller's check and the insert.
func (s *Storage) CreateComment(ctx context.Context, data domain.CommentCreationData) (*domain.Comment, error) {
	var comment *domain.Comment
	err := shared_pg.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var id domain.CommentId
		err := tx.GetContext(ctx, &id, `
			INSERT INTO comments (post_id, author, content)
			VALUES ($1, $2, $3)
			RETURNING id`,
			data.PostId, data.Author, data.Content,
		)
		if err != nil {
			if shared_pg.IsForeignKeyViolation(err) {
				return &internal_errors.NotFoundError{Resource: "Post"}
			}
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		comment, err = getComment(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Storage) GetComment(ctx context.Context, id domain.CommentId) (*domain.Comment, error) {
	return getComment(ctx, s.db, id)
}

func getComment(ctx context.Context, q shared_pg.Querier, id domain.CommentId) (*domain.Comment, error) {
	var dto commentDTO
	if err := q.GetContext(ctx, &dto, selectComment+` WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.NotFoundError{Resource: "Comment"}
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	comment := dto.toDomain()
	return &comment, nil
}

// ListComments returns a post's comments oldest first.
func (s *Storage) ListComments(ctx context.Context, postId domain.PostId) ([]domain.Comment, error) {
	var dtos []commentDTO
	if err := s.db.SelectContext(ctx, &dtos, selectComment+` WHERE post_id = $1 ORDER BY created_at ASC, id ASC`, postId); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(dtos))
	for _, dto := range dtos {
		comments = append(comments, dto.toDomain())
	}
	return comments, nil
}

func (s *Storage) VoteComment(ctx context.Context, id domain.CommentId, direction domain.VoteDirection) (*domain.Comment, error) {
	var query string
	switch direction {
	case domain.VoteUp:
		query = `UPDATE comments SET upvotes = upvotes + 1 WHERE id = $1`
	case domain.VoteDown:
		query = `UPDATE comments SET downvotes = downvotes + 1 WHERE id = $1`
	default:
		return nil, fmt.Errorf("unknown vote direction %d", direction)
	}

	var comment *domain.Comment
	err := shared_pg.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := execAffectingOne(ctx, tx, "Comment", query, id); err != nil {
			return err
		}
		var err error
		comment, err = getComment(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	return execAffectingOne(ctx, s.db, "Comment", `DELETE FROM comments WHERE id = $1`, id)
}
