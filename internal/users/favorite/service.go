// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package favorite manages the favorites relation between a user and catalog
movies.

# Rules

  - Only the user owning the favorites may change or read them.
  - The target user and the movie must both exist.
  - Adding a movie twice is a no-op; removing a movie that is not a favorite
    is an error, so that client bugs surface.
*/
package favorite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/myflix/internal/catalog/movie"
	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/metrics"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/users/identity"
)

// UserFinder resolves a handle in the user directory.
type UserFinder interface {
	FindByHandle(context context.Context, handle string) (*identity.User, error)
}

// MovieFinder resolves a movie by exact title.
type MovieFinder interface {
	FindByTitle(context context.Context, title string) (*movie.Movie, error)
}

// ErrNotInFavorites is returned when removing a movie the user never added.
var ErrNotInFavorites = apperr.InvalidState("Movie not found in favorites")

// # Service Layer

// Manager adds, removes and lists favorites.
type Manager struct {
	users     UserFinder
	movies    MovieFinder
	favorites Repository
	logger    *slog.Logger
}

// NewManager constructs a new favorites [Manager].
func NewManager(users UserFinder, movies MovieFinder, favorites Repository, logger *slog.Logger) *Manager {
	return &Manager{
		users:     users,
		movies:    movies,
		favorites: favorites,
		logger:    logger,
	}
}

/*
Add puts a movie in the user's favorites and returns the resulting set.

Description: Checks, in order, that the caller is the target user, that the
user exists and that the movie exists. The insert itself is an atomic
add-to-set, so repeating the call returns the same set.

Parameters:
  - context: context.Context
  - caller: sec.Identity
  - handle: string (target user)
  - title: string (exact movie title)

Returns:
  - []string: Favorite movie IDs in insertion order
  - error: apperr.Forbidden, apperr.NotFound or storage failures
*/
func (manager *Manager) Add(context context.Context, caller sec.Identity, handle, title string) (favorites []string, err error) {
	defer manager.observe(context, "add", caller, handle, title, &err)

	user, item, err := manager.resolve(context, caller, handle, title)
	if err != nil {
		return nil, err
	}

	added, err := manager.favorites.Add(context, user.ID, item.ID)
	if err != nil {
		return nil, fmt.Errorf("favorite_manager_add_failed: %w", err)
	}

	favorites, err = manager.favorites.List(context, user.ID)
	if err != nil {
		return nil, fmt.Errorf("favorite_manager_add_list_failed: %w", err)
	}

	if added {
		manager.logger.InfoContext(context, "favorite_added",
			slog.String("handle", handle),
			slog.String("movie_id", item.ID),
		)
	}
	return favorites, nil
}

/*
Remove takes a movie out of the user's favorites.

Description: Same preconditions as [Manager.Add]. A movie that is not
currently a favorite is reported as [ErrNotInFavorites] rather than
silently accepted.

Parameters:
  - context: context.Context
  - caller: sec.Identity
  - handle: string
  - title: string

Returns:
  - error: apperr.Forbidden, apperr.NotFound, ErrNotInFavorites or storage failures
*/
func (manager *Manager) Remove(context context.Context, caller sec.Identity, handle, title string) (err error) {
	defer manager.observe(context, "remove", caller, handle, title, &err)

	user, item, err := manager.resolve(context, caller, handle, title)
	if err != nil {
		return err
	}

	removed, err := manager.favorites.Remove(context, user.ID, item.ID)
	if err != nil {
		return fmt.Errorf("favorite_manager_remove_failed: %w", err)
	}
	if !removed {
		return ErrNotInFavorites
	}

	manager.logger.InfoContext(context, "favorite_removed",
		slog.String("handle", handle),
		slog.String("movie_id", item.ID),
	)
	return nil
}

// List returns the caller's own favorites in insertion order.
func (manager *Manager) List(context context.Context, caller sec.Identity, handle string) ([]string, error) {
	if err := sec.AuthorizeSelf(caller, handle); err != nil {
		manager.logFailure(context, "list", caller, handle, "", err)
		return nil, err
	}

	user, err := manager.users.FindByHandle(context, handle)
	if err != nil {
		manager.logFailure(context, "list", caller, handle, "", err)
		return nil, fmt.Errorf("favorite_manager_list_failed: %w", err)
	}
	return user.Favorites, nil
}

// # Helpers

// resolve runs the shared preconditions of Add and Remove.
func (manager *Manager) resolve(context context.Context, caller sec.Identity, handle, title string) (*identity.User, *movie.Movie, error) {
	if err := sec.AuthorizeSelf(caller, handle); err != nil {
		return nil, nil, err
	}

	user, err := manager.users.FindByHandle(context, handle)
	if err != nil {
		return nil, nil, fmt.Errorf("favorite_manager_user_lookup_failed: %w", err)
	}

	item, err := manager.movies.FindByTitle(context, title)
	if err != nil {
		return nil, nil, fmt.Errorf("favorite_manager_movie_lookup_failed: %w", err)
	}

	return user, item, nil
}

// observe counts a mutation and logs it when it failed.
func (manager *Manager) observe(context context.Context, operation string, caller sec.Identity, handle, title string, errPtr *error) {
	err := *errPtr
	metrics.FavoriteMutations.WithLabelValues(operation, metrics.Outcome(err, apperr.IsClientError)).Inc()
	if err != nil {
		manager.logFailure(context, operation, caller, handle, title, err)
	}
}

func (manager *Manager) logFailure(context context.Context, operation string, caller sec.Identity, handle, title string, err error) {
	level := slog.LevelError
	if apperr.IsClientError(err) {
		level = slog.LevelWarn
	}
	manager.logger.Log(context, level, "favorite_operation_failed",
		slog.String("operation", operation),
		slog.String("acting_handle", caller.Handle),
		slog.String("target_handle", handle),
		slog.String("movie_title", title),
		slog.Any("error", err),
	)
}
