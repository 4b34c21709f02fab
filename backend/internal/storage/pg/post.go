package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodways/goodways/shared/domain"
	internal_errors "github.com/goodways/goodways/shared/errors"
	shared_pg "github.com/goodways/goodways/shared/storage/pg"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type postDTO struct {
	Id              int64          `db:"id"`
	Title           string         `db:"title"`
	Summary         string         `db:"summary"`
	ContentMarkdown string         `db:"content_markdown"`
	Author          string         `db:"author"`
	MediaUrl        string         `db:"media_url"`
	ColorPalette    pq.StringArray `db:"color_palette"`
	Mood            string         `db:"mood"`
	Tags            pq.StringArray `db:"tags"`
	Upvotes         int64          `db:"upvotes"`
	Downvotes       int64          `db:"downvotes"`
	CommentCount    int            `db:"comment_count"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (d postDTO) toDomain() domain.Post {
	return domain.Post{
		Id:              d.Id,
		Title:           d.Title,
		Summary:         d.Summary,
		ContentMarkdown: d.ContentMarkdown,
		Author:          d.Author,
		MediaUrl:        d.MediaUrl,
		ColorPalette:    nonNil(d.ColorPalette),
		Mood:            d.Mood,
		Tags:            nonNil(d.Tags),
		Upvotes:         d.Upvotes,
		Downvotes:       d.Downvotes,
		CommentCount:    d.CommentCount,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// DefaultCandidateLimit caps a feed's candidate set when the filter has no limit.
const DefaultCandidateLimit = 100

const selectPost = `
	SELECT
		p.id, p.title, p.summary, p.content_markdown, p.author, p.media_url,
		p.color_palette, p.mood, p.tags, p.upvotes, p.downvotes,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count,
		p.created_at, p.updated_at
	FROM posts p`

func (s *Storage) CreatePost(ctx context.Context, data domain.PostCreationData) (*domain.Post, error) {
	var post *domain.Post
	err := shared_pg.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var id domain.PostId
		err := tx.GetContext(ctx, &id, `
			INSERT INTO posts (title, summary, content_markdown, author, media_url, color_palette, mood, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			data.Title, data.Summary, data.ContentMarkdown, data.Author, data.MediaUrl,
			pq.Array(nonNil(data.ColorPalette)), data.Mood, pq.Array(nonNil(data.Tags)),
		)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}

		post, err = getPost(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Storage) GetPost(ctx context.Context, id domain.PostId) (*domain.Post, error) {
	return getPost(ctx, s.db, id)
}

func getPost(ctx context.Context, q shared_pg.Querier, id domain.PostId) (*domain.Post, error) {
	var dto postDTO
	if err := q.GetContext(ctx, &dto, selectPost+` WHERE p.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.NotFoundError{Resource: "Post"}
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	post := dto.toDomain()
	return &post, nil
}

// ListPosts returns the candidate set for a feed: the newest filter.Limit
// posts matching every given filter. Ranking happens above this layer.
func (s *Storage) ListPosts(ctx context.Context, filter domain.FeedFilter) ([]domain.Post, error) {
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, shared_pg.ContainsPattern(filter.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.summary ILIKE $%d OR p.content_markdown ILIKE $%d)", n, n, n))
	}
	if filter.Mood != "" {
		args = append(args, shared_pg.ContainsPattern(filter.Mood))
		conds = append(conds, fmt.Sprintf("p.mood ILIKE $%d", len(args)))
	}

	query := selectPost
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY p.created_at DESC, p.id DESC LIMIT $%d", len(args))

	var dtos []postDTO
	if err := s.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(dtos))
	for _, dto := range dtos {
		posts = append(posts, dto.toDomain())
	}
	return posts, nil
}

// VotePost adds one vote atomically and returns the updated post.
func (s *Storage) VotePost(ctx context.Context, id domain.PostId, direction domain.VoteDirection) (*domain.Post, error) {
	var query string
	switch direction {
	case domain.VoteUp:
		query = `UPDATE posts SET upvotes = upvotes + 1, updated_at = clock_timestamp() WHERE id = $1`
	case domain.VoteDown:
		query = `UPDATE posts SET downvotes = downvotes + 1, updated_at = clock_timestamp() WHERE id = $1`
	default:
		return nil, fmt.Errorf("unknown vote direction %d", direction)
	}

	var post *domain.Post
	err := shared_pg.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := execAffectingOne(ctx, tx, "Post", query, id); err != nil {
			return err
		}
		var err error
		post, err = getPost(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post; its comments go with it.
func (s *Storage) DeletePost(ctx context.Context, id domain.PostId) error {
	return execAffectingOne(ctx, s.db, "Post", `DELETE FROM posts WHERE id = $1`, id)
}

// execAffectingOne runs a single-row statement and maps zero affected rows
// to a NotFoundError for resource.
func execAffectingOne(ctx context.Context, q shared_pg.Querier, resource, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return &internal_errors.NotFoundError{Resource: resource}
	}
	return nil
}
