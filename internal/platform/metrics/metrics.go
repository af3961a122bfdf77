// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry at package init, so
// importing this package is enough to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by the counters below.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

var (
	// LoginAttempts counts login attempts.
	// Labels:
	//   - outcome: "success", "failure" (bad credentials), "error"
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "myflix_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// TokenRejections counts bearer tokens that failed verification.
	TokenRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "myflix_token_rejections_total",
			Help: "Total number of rejected bearer tokens",
		},
	)

	// RateLimited counts requests rejected by the per-IP rate limiter.
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "myflix_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// FavoriteMutations counts favorites add/remove calls.
	// Labels:
	//   - operation: "add", "remove"
	//   - outcome: "success", "failure" (client error), "error"
	FavoriteMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "myflix_favorite_mutations_total",
			Help: "Total number of favorites mutations",
		},
		[]string{"operation", "outcome"},
	)

	// CatalogCacheLookups counts title lookups against the Redis cache.
	// Labels:
	//   - result: "hit", "miss", "error"
	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "myflix_catalog_cache_lookups_total",
			Help: "Total number of catalog cache lookups by result",
		},
		[]string{"result"},
	)
)

// Outcome classifies err for the outcome label: nil is a success, an error
// the client caused is a failure, anything else is an error.
func Outcome(err error, isClientError func(error) bool) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case isClientError(err):
		return OutcomeFailure
	default:
		return OutcomeError
	}
}
