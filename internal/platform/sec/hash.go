// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/myflix/internal/platform/apperr"
)

// MaxSecretBytes is bcrypt's input limit. bcrypt ignores anything past it, so
// longer secrets are refused on both hashing and verification.
const MaxSecretBytes = 72

// CredentialStore hashes and verifies account secrets with bcrypt.
//
// It performs no persistence; the resulting hash is stored by the identity
// directory. Every hash carries its own random salt, so hashing the same
// secret twice yields two different strings that both verify.
type CredentialStore struct {
	cost int
}

// NewCredentialStore returns a store using the given bcrypt cost. Values
// outside bcrypt's accepted range fall back to [bcrypt.DefaultCost].
func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{cost: cost}
}

// HashSecret derives a salted one-way hash from a plain-text secret.
//
// An empty secret, or one longer than bcrypt's 72-byte input limit, is
// rejected as a validation failure on the "secret" field.
func (store *CredentialStore) HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "secret",
			Message: "This field is required",
		})
	}

	if len(secret) > MaxSecretBytes {
		return "", apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   "secret",
			Message: fmt.Sprintf("Maximum %d bytes", MaxSecretBytes),
		})
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(secret), store.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash secret: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifySecret reports whether secret matches secretHash.
//
// The comparison is delegated to bcrypt, which compares digests in constant
// time. A malformed hash never verifies, and neither does a secret longer
// than [MaxSecretBytes], whose tail bcrypt would otherwise ignore.
func (store *CredentialStore) VerifySecret(secret, secretHash string) bool {
	if len(secret) > MaxSecretBytes {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(secret))
	return err == nil
}
