package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slide_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// FeedPagesServed counts composed feed pages by mode.
	FeedPagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slide_feed_pages_total",
		Help: "Total number of feed pages served by composition mode",
	}, []string{"mode"})

	// FeedBackfills counts backfill activations by direction.
	FeedBackfills = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slide_feed_backfill_total",
		Help: "Total number of feed backfills by direction",
	}, []string{"direction"})

	// LikeToggles counts like toggle outcomes.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slide_like_toggles_total",
		Help: "Total number of like toggles by resulting action",
	}, []string{"action"})

	// ViewIncrements counts view attempts by outcome (counted or suppressed).
	ViewIncrements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slide_view_increments_total",
		Help: "Total number of view increment attempts by outcome",
	}, []string{"outcome"})

	// FollowToggles counts follow toggle outcomes.
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slide_follow_toggles_total",
		Help: "Total number of follow toggles by resulting state",
	}, []string{"state"})
)
