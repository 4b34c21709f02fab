// Package metrics holds the domain counters exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "goodways"

var (
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Posts successfully created.",
	})

	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Comments successfully created.",
	})

	Votes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_total",
		Help:      "Votes applied, by target kind and direction.",
	}, []string{"target", "direction"})

	RenderFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "render_fallbacks_total",
		Help:      "Markdown documents rendered as escaped text after a parser failure.",
	})

	RenderCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "render_cache_lookups_total",
		Help:      "Render cache lookups by result (hit, miss, error).",
	}, []string{"result"})
)
