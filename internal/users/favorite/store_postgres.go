// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"fmt"

	"github.com/taibuivan/myflix/internal/platform/dberr"
	"github.com/taibuivan/myflix/internal/platform/postgres"
)

// # Schema Table Mapping
//   - users.favorite: (userid, movieid) primary key; position keeps insertion order.

const resourceFavorite = "User or movie"

const (
	// The primary key turns the insert into an atomic add-to-set: racing
	// duplicates collapse into one row instead of two.
	queryAddFavorite = `
		INSERT INTO users.favorite (userid, movieid)
		VALUES ($1, $2)
		ON CONFLICT (userid, movieid) DO NOTHING`

	queryRemoveFavorite = `
		DELETE FROM users.favorite
		WHERE userid = $1 AND movieid = $2`

	queryListFavorites = `
		SELECT movieid::text
		FROM users.favorite
		WHERE userid = $1
		ORDER BY position`
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewRepository creates a new Postgres favorites store.
func NewRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add inserts the edge; a duplicate is a no-op reported as false.
func (repository *PostgresRepository) Add(context context.Context, userID, movieID string) (bool, error) {
	tag, err := repository.db.Exec(context, queryAddFavorite, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("postgres_favorite_repo_add_failed: %w", dberr.Wrap(err, resourceFavorite))
	}
	return tag.RowsAffected() == 1, nil
}

// Remove deletes the edge; a missing edge is reported as false.
func (repository *PostgresRepository) Remove(context context.Context, userID, movieID string) (bool, error) {
	tag, err := repository.db.Exec(context, queryRemoveFavorite, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("postgres_favorite_repo_remove_failed: %w", dberr.Wrap(err, resourceFavorite))
	}
	return tag.RowsAffected() == 1, nil
}

/*
List returns the favorites of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []string: Movie IDs in the order they were added, never nil
  - error: Database execution failure
*/
func (repository *PostgresRepository) List(context context.Context, userID string) ([]string, error) {
	rows, err := repository.db.Query(context, queryListFavorites, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_favorite_repo_list_failed: %w", dberr.Wrap(err, resourceFavorite))
	}
	defer rows.Close()

	favorites := []string{}
	for rows.Next() {
		var movieID string
		if err := rows.Scan(&movieID); err != nil {
			return nil, fmt.Errorf("postgres_favorite_repo_list_scan_failed: %w", dberr.Wrap(err, resourceFavorite))
		}
		favorites = append(favorites, movieID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_favorite_repo_list_rows_failed: %w", dberr.Wrap(err, resourceFavorite))
	}

	return favorites, nil
}
