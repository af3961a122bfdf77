// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the session authenticator: it exchanges a handle and
secret for a signed session token, and turns a bearer token back into the
authenticated identity of a request.

# Security

Login never reveals whether a handle exists. An unknown handle and a wrong
secret produce the same error, and both paths pay for one bcrypt comparison.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/metrics"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/users/identity"
)

// # Dependencies

// UserFinder resolves a handle in the user directory.
type UserFinder interface {
	FindByHandle(context context.Context, handle string) (*identity.User, error)
}

// Credentials hashes and verifies secrets.
type Credentials interface {
	HashSecret(secret string) (string, error)
	VerifySecret(secret, secretHash string) bool
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	GenerateAccessToken(handle string) (string, time.Time, error)
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

var (
	errInvalidCredentials = apperr.Unauthorized("Invalid login credentials")
	errInvalidToken       = apperr.Unauthorized("Invalid or expired token")
)

// Session is the result of a successful login.
type Session struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      *identity.User `json:"user"`
}

// # Service Layer

// Service verifies credentials and session tokens.
type Service struct {
	users       UserFinder
	credentials Credentials
	tokens      TokenIssuer
	logger      *slog.Logger

	// decoyHash is compared against when the handle is unknown, so that a miss
	// costs the same bcrypt work as a wrong secret.
	decoyHash string
}

// NewService constructs a new [Service]. It hashes a random decoy secret once
// and fails only if hashing itself fails.
func NewService(users UserFinder, credentials Credentials, tokens TokenIssuer, logger *slog.Logger) (*Service, error) {
	decoyHash, err := credentials.HashSecret(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("auth_service_decoy_hash_failed: %w", err)
	}

	return &Service{
		users:       users,
		credentials: credentials,
		tokens:      tokens,
		logger:      logger,
		decoyHash:   decoyHash,
	}, nil
}

/*
Login exchanges a handle and secret for a signed session token.

Parameters:
  - context: context.Context
  - handle: string
  - secret: string

Returns:
  - *Session: Token, its expiry and the public user projection
  - error: apperr.Unauthorized for any credential mismatch, storage failures otherwise
*/
func (service *Service) Login(context context.Context, handle, secret string) (session *Session, err error) {
	defer func() {
		metrics.LoginAttempts.WithLabelValues(metrics.Outcome(err, apperr.IsClientError)).Inc()
	}()

	user, err := service.users.FindByHandle(context, handle)
	switch {
	case apperr.HasCode(err, apperr.CodeNotFound):
		service.credentials.VerifySecret(secret, service.decoyHash)
		service.logFailure(context, handle, errInvalidCredentials)
		return nil, errInvalidCredentials
	case err != nil:
		service.logFailure(context, handle, err)
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	if !service.credentials.VerifySecret(secret, user.SecretHash) {
		service.logFailure(context, handle, errInvalidCredentials)
		return nil, errInvalidCredentials
	}

	token, expiresAt, err := service.tokens.GenerateAccessToken(user.Handle)
	if err != nil {
		service.logFailure(context, handle, err)
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_logged_in", slog.String("handle", user.Handle))

	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

/*
VerifyToken authenticates a bearer token.

Description: Checks signature and expiry, then confirms the handle still
resolves in the directory, so a token outlives neither its TTL nor its
account. Signature, expiry and missing-account failures are the same 401.

Parameters:
  - context: context.Context
  - tokenString: string

Returns:
  - *sec.AuthClaims: Verified claims carrying the handle
  - error: apperr.Unauthorized, or apperr.Unavailable when the directory is down
*/
func (service *Service) VerifyToken(context context.Context, tokenString string) (*sec.AuthClaims, error) {
	claims, err := service.tokens.VerifyToken(tokenString)
	if err != nil {
		return nil, errInvalidToken
	}

	if _, err := service.users.FindByHandle(context, claims.Handle); err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, errInvalidToken
		}
		return nil, fmt.Errorf("auth_service_verify_lookup_failed: %w", err)
	}

	return claims, nil
}

// Authenticate returns the identity carried by a valid bearer token.
func (service *Service) Authenticate(context context.Context, tokenString string) (sec.Identity, error) {
	claims, err := service.VerifyToken(context, tokenString)
	if err != nil {
		return sec.Identity{}, err
	}
	return claims.Identity(), nil
}

func (service *Service) logFailure(context context.Context, handle string, err error) {
	level := slog.LevelError
	if apperr.IsClientError(err) {
		level = slog.LevelWarn
	}
	service.logger.Log(context, level, "auth_operation_failed",
		slog.String("operation", "login"),
		slog.String("target_handle", handle),
		slog.Any("error", err),
	)
}
