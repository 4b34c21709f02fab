package ranking

import (
	"slices"
	"strings"

	"github.com/goodways/goodways/shared/domain"
)

type SortMode string

const (
	SortHot SortMode = "hot"
	SortTop SortMode = "top"
	SortNew SortMode = "new"
)

// ParseSortMode is case-insensitive. Anything unrecognized, including "",
// means hot.
func ParseSortMode(s string) SortMode {
	switch mode := SortMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case SortTop, SortNew:
		return mode
	default:
		return SortHot
	}
}

// Rank returns a sorted copy of posts; the input is left untouched. The sort
// is stable, so equal keys keep their incoming order. Hot mode reads the
// precomputed HotScore of each view.
func Rank(posts []domain.PostView, mode SortMode) []domain.PostView {
	ranked := slices.Clone(posts)

	switch mode {
	case SortNew:
		slices.SortStableFunc(ranked, func(a, b domain.PostView) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortTop:
		slices.SortStableFunc(ranked, func(a, b domain.PostView) int {
			if a.Score != b.Score {
				if a.Score > b.Score {
					return -1
				}
				return 1
			}
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	default:
		slices.SortStableFunc(ranked, func(a, b domain.PostView) int {
			switch {
			case a.HotScore > b.HotScore:
				return -1
			case a.HotScore < b.HotScore:
				return 1
			default:
				return 0
			}
		})
	}

	return ranked
}
