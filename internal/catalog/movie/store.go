// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// # Catalog Data Access

// Repository defines the read contract for the movie catalog.
type Repository interface {

	/*
		FindByTitle returns the movie with exactly this title.

		Parameters:
		  - context: context.Context
		  - title: string (exact, case-sensitive)

		Returns:
		  - *Movie: The first matching entry
		  - error: apperr.NotFound("Movie") or retrieval failures
	*/
	FindByTitle(context context.Context, title string) (*Movie, error)

	// List returns one page of movies ordered by title, plus the total count.
	List(context context.Context, limit, offset int) ([]*Movie, int, error)

	// FindGenre returns the genre with this name.
	FindGenre(context context.Context, name string) (*Genre, error)

	// FindDirector returns the director with this name.
	FindDirector(context context.Context, name string) (*Director, error)
}
