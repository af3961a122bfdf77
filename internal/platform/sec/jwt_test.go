// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/rsa"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return NewTokenServiceFromKeys(key, &key.PublicKey, "myflix.test", time.Hour)
}

/*
TestTokenService_RoundTrip verifies that a freshly issued token carries the handle.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t)

	token, expiresAt, err := service.GenerateAccessToken("janedoe")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "janedoe", claims.Handle)
	assert.Equal(t, Identity{Handle: "janedoe"}, claims.Identity())
}

/*
TestTokenService_Rejects covers every way a token must fail verification.
*/
func TestTokenService_Rejects(t *testing.T) {
	service := newTestTokenService(t)
	other := newTestTokenService(t)

	valid, _, err := service.GenerateAccessToken("janedoe")
	require.NoError(t, err)

	forged, _, err := other.GenerateAccessToken("janedoe")
	require.NoError(t, err)

	expiredService := NewTokenServiceFromKeys(service.privateKey, service.publicKey, service.issuer, time.Minute)
	expiredService.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredService.GenerateAccessToken("janedoe")
	require.NoError(t, err)

	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "janedoe",
			Issuer:    service.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Handle: "janedoe",
	}).SignedString([]byte("guessable"))
	require.NoError(t, err)

	foreignIssuer := NewTokenServiceFromKeys(service.privateKey, service.publicKey, "someone.else", time.Hour)
	wrongIssuer, _, err := foreignIssuer.GenerateAccessToken("janedoe")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.jwt"},
		{"tampered_payload", tampered},
		{"foreign_key", forged},
		{"expired", expired},
		{"hmac_algorithm", hmacToken},
		{"wrong_issuer", wrongIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

/*
TestTokenService_RequiresHandle refuses to mint anonymous tokens.
*/
func TestTokenService_RequiresHandle(t *testing.T) {
	service := newTestTokenService(t)

	_, _, err := service.GenerateAccessToken("")
	assert.Error(t, err)
}
