// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/myflix/internal/platform/ctxkey"
	"github.com/taibuivan/myflix/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithAuthUser returns a new context with the provided auth claims attached.
//
// If an [AuthHolder] was installed further up the chain, it is filled in as
// well so outer middleware can observe the identity after the handler ran.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	if holder, ok := ctx.Value(ctxkey.KeyAuthHolder).(*AuthHolder); ok {
		holder.set(user)
	}
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// AuthHolder records the claims authenticated somewhere below the middleware
// that created it.
type AuthHolder struct {
	mu     sync.Mutex
	claims *sec.AuthClaims
}

// WithAuthHolder installs an empty [AuthHolder] in the context.
func WithAuthHolder(ctx context.Context) (context.Context, *AuthHolder) {
	holder := &AuthHolder{}
	return context.WithValue(ctx, ctxkey.KeyAuthHolder, holder), holder
}

// Claims returns the recorded claims, or nil if the request stayed anonymous.
func (holder *AuthHolder) Claims() *sec.AuthClaims {
	holder.mu.Lock()
	defer holder.mu.Unlock()
	return holder.claims
}

func (holder *AuthHolder) set(claims *sec.AuthClaims) {
	holder.mu.Lock()
	holder.claims = claims
	holder.mu.Unlock()
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// WithAuthFailure records why a presented bearer token was not accepted.
// The request continues anonymously; protected routes report err.
func WithAuthFailure(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAuthFailure, err)
}

// GetAuthFailure returns the recorded bearer failure, or nil.
func GetAuthFailure(ctx context.Context) error {
	err, _ := ctx.Value(ctxkey.KeyAuthFailure).(error)
	return err
}

// GetIdentity returns the authenticated caller, or false for anonymous requests.
func GetIdentity(ctx context.Context) (sec.Identity, bool) {
	claims := GetAuthUser(ctx)
	if claims == nil {
		return sec.Identity{}, false
	}
	return claims.Identity(), true
}
