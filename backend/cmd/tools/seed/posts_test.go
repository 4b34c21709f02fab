package main

import (
	"testing"
	"time"

	"github.com/goodways/goodways/shared/validation"
	"github.com/stretchr/testify/assert"
)

func TestSamplePosts(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	posts := samplePosts(now)

	assert.Len(t, posts, 3)
	for _, p := range posts {
		assert.True(t, p.CreatedAt.Before(now), p.Data.Title)
		assert.LessOrEqual(t, len([]rune(p.Data.Title)), validation.MaxTitleLength)
		assert.LessOrEqual(t, len([]rune(p.Data.Summary)), validation.MaxSummaryLength)
		assert.Len(t, p.Comments, 2)
		for _, c := range p.Comments {
			assert.True(t, c.CreatedAt.After(p.CreatedAt))
		}
	}
}
