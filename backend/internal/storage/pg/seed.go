package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/goodways/goodways/shared/domain"
	shared_pg "github.com/goodways/goodways/shared/storage/pg"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SeedComment is a comment inserted verbatim, votes and timestamp included.
type SeedComment struct {
	Author    string
	Content   string
	Upvotes   int64
	CreatedAt time.Time
}

// SeedPost is a post inserted verbatim. Unlike CreatePost nothing is
// defaulted or sanitized.
type SeedPost struct {
	Data      domain.PostCreationData
	Upvotes   int64
	Downvotes int64
	CreatedAt time.Time
	Comments  []SeedComment
}

// Seed inserts posts into an empty database. It reports false and writes
// nothing when any post already exists.
func (s *Storage) Seed(ctx context.Context, posts []SeedPost) (bool, error) {
	seeded := false
	err := shared_pg.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM posts)`); err != nil {
			return fmt.Errorf("failed to count posts: %w", err)
		}
		if exists {
			return nil
		}

		for _, p := range posts {
			var id domain.PostId
			err := tx.GetContext(ctx, &id, `
				INSERT INTO posts (title, summary, content_markdown, author, media_url, color_palette, mood, tags, upvotes, downvotes, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
				RETURNING id`,
				p.Data.Title, p.Data.Summary, p.Data.ContentMarkdown, p.Data.Author, p.Data.MediaUrl,
				pq.Array(nonNil(p.Data.ColorPalette)), p.Data.Mood, pq.Array(nonNil(p.Data.Tags)),
				p.Upvotes, p.Downvotes, p.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to seed post %q: %w", p.Data.Title, err)
			}

			for _, c := range p.Comments {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO comments (post_id, author, content, upvotes, created_at)
					VALUES ($1, $2, $3, $4, $5)`,
					id, c.Author, c.Content, c.Upvotes, c.CreatedAt,
				)
				if err != nil {
					return fmt.Errorf("failed to seed comment on post %d: %w", id, err)
				}
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		storageLog().Info("seeded database", "posts", len(posts))
	}
	return seeded, nil
}
