package ranking

import (
	"testing"
	"time"

	"github.com/goodways/goodways/shared/domain"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func view(id int64, score int64, age time.Duration) domain.PostView {
	createdAt := base.Add(-age)
	return domain.PostView{
		Post:     domain.Post{Id: id, Upvotes: max(score, 0), Downvotes: max(-score, 0), CreatedAt: createdAt},
		Score:    score,
		HotScore: NewHotScorer(DefaultEpoch).Score(createdAt, score),
	}
}

func ids(posts []domain.PostView) []int64 {
	out := make([]int64, len(posts))
	for i, p := range posts {
		out[i] = p.Id
	}
	return out
}

func TestParseSortMode(t *testing.T) {
	tests := map[string]SortMode{
		"hot":   SortHot,
		"top":   SortTop,
		"new":   SortNew,
		"NEW":   SortNew,
		" Top ": SortTop,
		"":      SortHot,
		"best":  SortHot,
	}
	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, ParseSortMode(in))
		})
	}
}

func TestRank_New(t *testing.T) {
	posts := []domain.PostView{
		view(1, 100, 3*time.Hour),
		view(2, -5, time.Minute),
		view(3, 0, time.Hour),
	}

	assert.Equal(t, []int64{2, 3, 1}, ids(Rank(posts, SortNew)))
}

func TestRank_Top(t *testing.T) {
	t.Run("by score", func(t *testing.T) {
		posts := []domain.PostView{
			view(1, 1, time.Minute),
			view(2, 9, time.Hour),
			view(3, -3, time.Second),
		}
		assert.Equal(t, []int64{2, 1, 3}, ids(Rank(posts, SortTop)))
	})

	t.Run("tie broken by recency", func(t *testing.T) {
		older := view(1, 5, 2*time.Hour)
		newer := view(2, 5, time.Hour)

		assert.Equal(t, []int64{2, 1}, ids(Rank([]domain.PostView{older, newer}, SortTop)))
		assert.Equal(t, []int64{2, 1}, ids(Rank([]domain.PostView{newer, older}, SortTop)))
	})
}

func TestRank_Hot(t *testing.T) {
	posts := []domain.PostView{
		view(1, 0, 24*time.Hour),
		view(2, 500, 48*time.Hour),
		view(3, 0, time.Minute),
		view(4, -20, time.Minute),
	}

	ranked := Rank(posts, SortHot)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].HotScore, ranked[i].HotScore)
	}
	// a fresh post outranks a day-old one at equal score
	assert.Less(t, indexOf(ranked, 3), indexOf(ranked, 1))
}

func TestRank_UnknownModeIsHot(t *testing.T) {
	posts := []domain.PostView{view(1, 0, time.Hour), view(2, 0, time.Minute)}
	assert.Equal(t, ids(Rank(posts, SortHot)), ids(Rank(posts, ParseSortMode("sideways"))))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	posts := []domain.PostView{view(1, 0, time.Hour), view(2, 10, time.Minute), view(3, 3, time.Second)}
	before := ids(posts)

	for _, mode := range []SortMode{SortHot, SortTop, SortNew} {
		Rank(posts, mode)
		assert.Equal(t, before, ids(posts))
	}
}

func TestRank_StableOnEqualKeys(t *testing.T) {
	a, b, c := view(1, 0, time.Hour), view(2, 0, time.Hour), view(3, 0, time.Hour)

	assert.Equal(t, []int64{1, 2, 3}, ids(Rank([]domain.PostView{a, b, c}, SortHot)))
	assert.Equal(t, []int64{3, 1, 2}, ids(Rank([]domain.PostView{c, a, b}, SortNew)))
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, SortHot))
}

func indexOf(posts []domain.PostView, id int64) int {
	for i, p := range posts {
		if p.Id == id {
			return i
		}
	}
	return -1
}
