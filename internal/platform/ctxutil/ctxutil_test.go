// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/myflix/internal/platform/ctxutil"
	"github.com/taibuivan/myflix/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that AuthClaims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{Handle: "janedoe"}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAuthUser(ctx))
	_, ok := ctxutil.GetIdentity(ctx)
	assert.False(t, ok)

	// 2. Inject and retrieve
	ctx = ctxutil.WithAuthUser(ctx, claims)
	retrieved := ctxutil.GetAuthUser(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "janedoe", retrieved.Handle)

	identity, ok := ctxutil.GetIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, sec.Identity{Handle: "janedoe"}, identity)
}

/*
TestContext_AuthHolder verifies that outer middleware sees inner authentication.
*/
func TestContext_AuthHolder(t *testing.T) {
	outer, holder := ctxutil.WithAuthHolder(context.Background())
	assert.Nil(t, holder.Claims())

	// Simulate an inner middleware deriving its own context.
	inner := ctxutil.WithRequestID(outer, "req-1")
	_ = ctxutil.WithAuthUser(inner, &sec.AuthClaims{Handle: "janedoe"})

	require.NotNil(t, holder.Claims())
	assert.Equal(t, "janedoe", holder.Claims().Handle)
}

/*
TestContext_AuthFailure round-trips a recorded token rejection.
*/
func TestContext_AuthFailure(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, ctxutil.GetAuthFailure(ctx))

	rejected := errors.New("bad token")
	ctx = ctxutil.WithAuthFailure(ctx, rejected)
	assert.Equal(t, rejected, ctxutil.GetAuthFailure(ctx))

	_, ok := ctxutil.GetIdentity(ctx)
	assert.False(t, ok)
}
