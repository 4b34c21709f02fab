// Package ranking orders feed posts.
package ranking

import (
	"math"
	"time"
)

// DefaultEpoch is the reference instant for post age. Any fixed instant works;
// moving it shifts every score by the same amount.
var DefaultEpoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	ageDivisor = 45000
	precision  = 1e7
)

type HotScorer struct {
	epoch time.Time
}

func NewHotScorer(epoch time.Time) *HotScorer {
	return &HotScorer{epoch: epoch}
}

// Score combines net votes and recency into one number for relative
// ordering: sign(score)*log10(max(|score|,1)) + ageSeconds/45000, rounded
// to 7 decimals. Age is whole seconds since the epoch, negative before it.
func (h *HotScorer) Score(createdAt time.Time, score int64) float64 {
	magnitude := math.Max(math.Abs(float64(score)), 1)
	order := math.Log10(magnitude)

	var sign float64
	switch {
	case score > 0:
		sign = 1
	case score < 0:
		sign = -1
	}

	ageSeconds := int64(createdAt.Sub(h.epoch) / time.Second)
	return round(sign*order + float64(ageSeconds)/ageDivisor)
}

func round(x float64) float64 {
	return math.Round(x*precision) / precision
}
