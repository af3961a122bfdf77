// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie implements read-only access to the movie catalog.

Titles are exact-match, case-sensitive lookup keys. When two movies share a
title, the oldest row wins.
*/
package movie

import "time"

// # Domain Entities

// Genre describes a movie genre as embedded in each catalog entry.
type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Director describes a movie director as embedded in each catalog entry.
type Director struct {
	Name  string     `json:"name"`
	Bio   string     `json:"bio"`
	Birth *time.Time `json:"birth,omitempty"`
	Death *time.Time `json:"death,omitempty"`
}

// Movie is a catalog entry. ID is the stable reference stored in favorites.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImagePath   string   `json:"imagePath,omitempty"`
	Featured    bool     `json:"featured"`
}
