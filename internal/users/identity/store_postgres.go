// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"context"
	"fmt"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/dberr"
	"github.com/taibuivan/myflix/internal/platform/postgres"
	"github.com/taibuivan/myflix/pkg/uuidv7"
)

// # Schema Table Mapping
//   - users.account: One row per registered handle.
//   - users.favorite: Favorites edges, folded into User.Favorites in position order.

const resourceUser = "User"

const (
	queryFindUserByHandle = `
		SELECT a.id::text, a.handle, a.secrethash, a.email, a.firstname, a.lastname,
		       a.birthday, a.createdat, a.updatedat,
		       ARRAY(SELECT f.movieid::text FROM users.favorite f
		             WHERE f.userid = a.id ORDER BY f.position)
		FROM users.account a
		WHERE a.handle = $1`

	queryCreateUser = `
		INSERT INTO users.account
		       (id, handle, secrethash, email, firstname, lastname, birthday)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING createdat, updatedat`

	queryUpdateUser = `
		UPDATE users.account
		SET secrethash = $2, email = $3, firstname = $4, lastname = $5,
		    birthday = $6, updatedat = NOW()
		WHERE handle = $1
		RETURNING updatedat`

	queryDeleteUser = `DELETE FROM users.account WHERE handle = $1`
)

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db postgres.DB
}

// NewUserRepository creates a new Postgres implementation of the user directory.
func NewUserRepository(db postgres.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

/*
FindByHandle retrieves an account from users.account.

Parameters:
  - context: context.Context
  - handle: string

Returns:
  - *User: Hydrated entity with its favorites in insertion order
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresUserRepository) FindByHandle(context context.Context, handle string) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(context, queryFindUserByHandle, handle).Scan(
		&user.ID,
		&user.Handle,
		&user.SecretHash,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.Birthday,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Favorites,
	)
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_find_by_handle_failed: %w", dberr.Wrap(err, resourceUser))
	}

	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	return user, nil
}

/*
Create inserts a new account.

Description: Assigns a UUIDv7 when the caller left ID empty. A concurrent
registration of the same handle trips the unique constraint and is reported
as apperr.Conflict.

Parameters:
  - context: context.Context
  - user: *User

Returns:
  - error: apperr.Conflict or persistence failures
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuidv7.New()
	}

	err := repository.db.QueryRow(context, queryCreateUser,
		user.ID,
		user.Handle,
		user.SecretHash,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Birthday,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_create_failed: %w", dberr.Wrap(err, resourceUser))
	}

	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	return nil
}

// Update writes the profile fields in a single statement and refreshes updatedat.
func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	err := repository.db.QueryRow(context, queryUpdateUser,
		user.Handle,
		user.SecretHash,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Birthday,
	).Scan(&user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_update_failed: %w", dberr.Wrap(err, resourceUser))
	}
	return nil
}

// Delete removes the account; its favorites edges go with it (ON DELETE CASCADE).
func (repository *PostgresUserRepository) Delete(context context.Context, handle string) error {
	tag, err := repository.db.Exec(context, queryDeleteUser, handle)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_delete_failed: %w", dberr.Wrap(err, resourceUser))
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceUser)
	}
	return nil
}
