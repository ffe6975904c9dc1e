// Package metrics defines and registers all custom Prometheus metrics for
// the posts API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "posts"

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing", "malformed", "bad_signature", or "expired"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the auth middleware, by reason.",
	},
	[]string{"reason"},
)

// CacheRequestsTotal counts listing-cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (loaded from the store)
var CacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_requests_total",
		Help:      "Total number of post-listing cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts successfully created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// PostsDeletedTotal counts successfully deleted posts.
var PostsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_deleted_total",
		Help:      "Total number of posts deleted.",
	},
)

// PayloadRejectedTotal counts post-creation requests rejected for size.
var PayloadRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payload_rejected_total",
		Help:      "Total number of requests rejected for exceeding the payload size limit.",
	},
)
