// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/myflix/pkg/pagination"
)

// # Service Layer

// Service exposes the catalog to handlers and to the favorites manager.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new catalog [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

// FindByTitle resolves a movie by exact title.
func (service *Service) FindByTitle(context context.Context, title string) (*Movie, error) {
	movie, err := service.repository.FindByTitle(context, title)
	if err != nil {
		return nil, fmt.Errorf("movie_service_find_by_title_failed: %w", err)
	}
	return movie, nil
}

/*
List returns a page of movies together with its pagination metadata.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []*Movie: The page
  - pagination.Meta: Page, limit and totals
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]*Movie, pagination.Meta, error) {
	movies, total, err := service.repository.List(context, params.Limit, params.Offset())
	if err != nil {
		service.logger.ErrorContext(context, "movie_list_failed", slog.Any("error", err))
		return nil, pagination.Meta{}, fmt.Errorf("movie_service_list_failed: %w", err)
	}
	return movies, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// Genre resolves a genre by name.
func (service *Service) Genre(context context.Context, name string) (*Genre, error) {
	genre, err := service.repository.FindGenre(context, name)
	if err != nil {
		return nil, fmt.Errorf("movie_service_genre_failed: %w", err)
	}
	return genre, nil
}

// Director resolves a director by name.
func (service *Service) Director(context context.Context, name string) (*Director, error) {
	director, err := service.repository.FindDirector(context, name)
	if err != nil {
		return nil, fmt.Errorf("movie_service_director_failed: %w", err)
	}
	return director, nil
}
