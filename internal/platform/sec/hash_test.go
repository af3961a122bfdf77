// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/sec"
)

/*
TestCredentialStore_RoundTrip verifies that every hash verifies its own secret only.
*/
func TestCredentialStore_RoundTrip(t *testing.T) {
	store := sec.NewCredentialStore(bcrypt.MinCost)

	for _, secret := range []string{"securePass123", "a", "pässwörd", strings.Repeat("x", 72)} {
		hash, err := store.HashSecret(secret)
		require.NoError(t, err)

		assert.NotEqual(t, secret, hash)
		assert.True(t, store.VerifySecret(secret, hash))
		assert.False(t, store.VerifySecret(secret+"!", hash))
	}
}

/*
TestCredentialStore_Salted ensures repeated hashes differ but both verify.
*/
func TestCredentialStore_Salted(t *testing.T) {
	store := sec.NewCredentialStore(bcrypt.MinCost)

	first, err := store.HashSecret("securePass123")
	require.NoError(t, err)
	second, err := store.HashSecret("securePass123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, store.VerifySecret("securePass123", first))
	assert.True(t, store.VerifySecret("securePass123", second))
}

/*
TestCredentialStore_InvalidInput covers empty and oversized secrets.
*/
func TestCredentialStore_InvalidInput(t *testing.T) {
	store := sec.NewCredentialStore(bcrypt.MinCost)

	tests := []struct {
		name   string
		secret string
	}{
		{"empty", ""},
		{"too_long", strings.Repeat("x", 73)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.HashSecret(tt.secret)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, "secret", ae.Details[0].Field)
		})
	}
}

/*
TestCredentialStore_MalformedHash ensures garbage never verifies.
*/
func TestCredentialStore_MalformedHash(t *testing.T) {
	store := sec.NewCredentialStore(0)
	assert.False(t, store.VerifySecret("securePass123", "not-a-bcrypt-hash"))
	assert.False(t, store.VerifySecret("", ""))
}

/*
TestCredentialStore_RejectsOverlongCandidate ensures bytes past bcrypt's limit
still count when verifying.
*/
func TestCredentialStore_RejectsOverlongCandidate(t *testing.T) {
	store := sec.NewCredentialStore(bcrypt.MinCost)

	stored := strings.Repeat("x", sec.MaxSecretBytes)
	hash, err := store.HashSecret(stored)
	require.NoError(t, err)

	assert.True(t, store.VerifySecret(stored, hash))
	assert.False(t, store.VerifySecret(stored+"anything-else", hash))
	assert.False(t, store.VerifySecret(stored+"x", hash))
}
