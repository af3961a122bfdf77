// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import "context"

// # Favorites Data Access

// Repository stores favorites edges between a user and movies.
//
// Every method is a single statement, so a cancelled or timed-out call either
// committed entirely or not at all.
type Repository interface {

	/*
		Add inserts the edge unless it already exists.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - movieID: string

		Returns:
		  - bool: true if a new edge was written, false if it was already present
		  - error: apperr.NotFound if either side vanished, storage failures otherwise
	*/
	Add(context context.Context, userID, movieID string) (bool, error)

	// Remove deletes the edge and reports whether one existed.
	Remove(context context.Context, userID, movieID string) (bool, error)

	// List returns the user's favorite movie IDs in insertion order.
	List(context context.Context, userID string) ([]string, error)
}
