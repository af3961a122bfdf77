// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"

	"github.com/taibuivan/myflix/internal/platform/dberr"
	"github.com/taibuivan/myflix/internal/platform/postgres"
)

// # Schema Table Mapping
//   - catalog.movie: One row per title; genre and director are denormalized columns.

const movieColumns = `
	id::text, title, description, genrename, genredescription,
	directorname, directorbio, directorbirth, directordeath, imagepath, featured`

var (
	queryFindMovieByTitle = `SELECT ` + movieColumns + `
		FROM catalog.movie
		WHERE title = $1
		ORDER BY createdat, id
		LIMIT 1`

	queryListMovies = `SELECT ` + movieColumns + `, COUNT(*) OVER()
		FROM catalog.movie
		ORDER BY title, id
		LIMIT $1 OFFSET $2`
)

const (
	queryCountMovies = `SELECT COUNT(*) FROM catalog.movie`

	queryFindGenre = `
		SELECT genrename, genredescription
		FROM catalog.movie
		WHERE genrename = $1
		ORDER BY createdat, id
		LIMIT 1`

	queryFindDirector = `
		SELECT directorname, directorbio, directorbirth, directordeath
		FROM catalog.movie
		WHERE directorname = $1
		ORDER BY createdat, id
		LIMIT 1`
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewRepository creates a new Postgres implementation of the catalog.
func NewRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// scanTarget lists the destinations matching movieColumns.
func scanTarget(movie *Movie) []any {
	return []any{
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Director.Birth,
		&movie.Director.Death,
		&movie.ImagePath,
		&movie.Featured,
	}
}

/*
FindByTitle retrieves a movie by exact title.

Parameters:
  - context: context.Context
  - title: string

Returns:
  - *Movie: The oldest entry carrying this title
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresRepository) FindByTitle(context context.Context, title string) (*Movie, error) {
	movie := &Movie{}
	if err := repository.db.QueryRow(context, queryFindMovieByTitle, title).Scan(scanTarget(movie)...); err != nil {
		return nil, fmt.Errorf("postgres_movie_repo_find_by_title_failed: %w", dberr.Wrap(err, "Movie"))
	}
	return movie, nil
}

/*
List returns a page of the catalog.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Movie: The page, possibly empty
  - int: Total number of movies
  - error: Database execution failure
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Movie, int, error) {
	rows, err := repository.db.Query(context, queryListMovies, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_movie_repo_list_failed: %w", dberr.Wrap(err, "Movie"))
	}
	defer rows.Close()

	movies := make([]*Movie, 0, limit)
	total := 0
	for rows.Next() {
		movie := &Movie{}
		if err := rows.Scan(append(scanTarget(movie), &total)...); err != nil {
			return nil, 0, fmt.Errorf("postgres_movie_repo_list_scan_failed: %w", dberr.Wrap(err, "Movie"))
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_movie_repo_list_rows_failed: %w", dberr.Wrap(err, "Movie"))
	}

	// A page past the end has no row to carry the window count.
	if len(movies) == 0 && offset > 0 {
		if err := repository.db.QueryRow(context, queryCountMovies).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("postgres_movie_repo_count_failed: %w", dberr.Wrap(err, "Movie"))
		}
	}

	return movies, total, nil
}

// FindGenre reads the genre columns of the first movie in that genre.
func (repository *PostgresRepository) FindGenre(context context.Context, name string) (*Genre, error) {
	genre := &Genre{}
	if err := repository.db.QueryRow(context, queryFindGenre, name).Scan(&genre.Name, &genre.Description); err != nil {
		return nil, fmt.Errorf("postgres_movie_repo_find_genre_failed: %w", dberr.Wrap(err, "Genre"))
	}
	return genre, nil
}

// FindDirector reads the director columns of the first movie by that director.
func (repository *PostgresRepository) FindDirector(context context.Context, name string) (*Director, error) {
	director := &Director{}
	err := repository.db.QueryRow(context, queryFindDirector, name).Scan(
		&director.Name,
		&director.Bio,
		&director.Birth,
		&director.Death,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres_movie_repo_find_director_failed: %w", dberr.Wrap(err, "Director"))
	}
	return director, nil
}
