// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package identity implements the user directory: registration, profile reads,
profile updates and self-deregistration, keyed by a unique handle.

# Architecture

  - user.go: Domain entity and input schemas.
  - store.go / store_postgres.go: Persistence contract and its pgx implementation.
  - service.go: Validation, self-only authorization and secret hashing.
  - http.go: chi handlers mounted under /users.
*/
package identity

import "time"

// # Domain Entities

// User represents a registered account.
//
// SecretHash is never serialized; Favorites holds movie identifiers in the
// order they were added.
type User struct {
	ID         string     `json:"id"`
	Handle     string     `json:"handle"`
	SecretHash string     `json:"-"`
	Email      string     `json:"email"`
	FirstName  string     `json:"firstName,omitempty"`
	LastName   string     `json:"lastName,omitempty"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	Favorites  []string   `json:"favorites"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// # Input Schemas

// CreateInput is the registration payload.
type CreateInput struct {
	Handle    string `json:"handle"`
	Secret    string `json:"secret"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Birthday  string `json:"birthday"`
}

// UpdateInput is a partial profile update. Nil fields are left untouched; an
// empty Birthday clears the stored date.
//
// Handle is accepted only so that a client echoing its own handle back is not
// rejected; any other value fails validation.
type UpdateInput struct {
	Handle    *string `json:"handle"`
	Secret    *string `json:"secret"`
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Birthday  *string `json:"birthday"`
}

// # Field Identifiers

const (
	FieldHandle    = "handle"
	FieldSecret    = "secret"
	FieldEmail     = "email"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldBirthday  = "birthday"
)

// maxNameLength bounds first and last names.
const maxNameLength = 100
