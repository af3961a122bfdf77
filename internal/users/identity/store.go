// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
//
// Implementations report a missing handle as apperr.NotFound("User") and a
// duplicate handle as apperr.Conflict.
type UserRepository interface {

	/*
		FindByHandle returns the account with the given handle, favorites included.

		Parameters:
		  - context: context.Context
		  - handle: string (case-sensitive)

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByHandle(context context.Context, handle string) (*User, error)

	// Create persists a new account and fills in its ID and timestamps.
	Create(context context.Context, user *User) error

	// Update persists the mutable profile fields and the secret hash of the
	// account identified by user.Handle.
	Update(context context.Context, user *User) error

	// Delete removes the account identified by handle.
	Delete(context context.Context, handle string) error
}
