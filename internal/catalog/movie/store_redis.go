// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/myflix/internal/platform/constants"
	"github.com/taibuivan/myflix/internal/platform/metrics"
)

// CachedRepository is a read-through Redis cache in front of another
// [Repository] for title lookups, the hot path of every favorites mutation.
//
// The cache is best-effort: any Redis failure falls through to the backing
// repository. Misses for unknown titles are not cached.
type CachedRepository struct {
	Repository

	client     redis.Cmdable
	timeToLive time.Duration
	logger     *slog.Logger
}

// NewCachedRepository wraps next with a Redis title cache.
func NewCachedRepository(next Repository, client redis.Cmdable, timeToLive time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: next,
		client:     client,
		timeToLive: timeToLive,
		logger:     logger,
	}
}

/*
FindByTitle serves a title from Redis when cached, otherwise from the backing
repository, storing the result for the configured TTL.

Parameters:
  - context: context.Context
  - title: string

Returns:
  - *Movie: The catalog entry
  - error: Errors of the backing repository only
*/
func (repository *CachedRepository) FindByTitle(context context.Context, title string) (*Movie, error) {
	key := constants.RedisPrefixMovieTitle + title

	payload, err := repository.client.Get(context, key).Bytes()
	switch {
	case err == nil:
		var movie Movie
		if decodeErr := json.Unmarshal(payload, &movie); decodeErr == nil {
			metrics.CatalogCacheLookups.WithLabelValues("hit").Inc()
			return &movie, nil
		}
		metrics.CatalogCacheLookups.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.CatalogCacheLookups.WithLabelValues("miss").Inc()
	default:
		metrics.CatalogCacheLookups.WithLabelValues("error").Inc()
		repository.logger.WarnContext(context, "catalog_cache_get_failed",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}

	movie, err := repository.Repository.FindByTitle(context, title)
	if err != nil {
		return nil, err
	}

	if err := repository.store(context, key, movie); err != nil {
		repository.logger.WarnContext(context, "catalog_cache_set_failed",
			slog.String("title", title),
			slog.Any("error", err),
		)
	}
	return movie, nil
}

// store writes movie under key with the configured TTL.
func (repository *CachedRepository) store(context context.Context, key string, movie *Movie) error {
	payload, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("redis_movie_cache_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, key, payload, repository.timeToLive).Err(); err != nil {
		return fmt.Errorf("redis_movie_cache_set_failed: %w", err)
	}
	return nil
}
