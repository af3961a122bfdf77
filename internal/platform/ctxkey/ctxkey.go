// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed context keys shared by middleware and
// ctxutil. Only ctxutil should read or write values under these keys.
package ctxkey

// key is unexported so no other package can construct a colliding key.
type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser holds the verified [sec.AuthClaims] of the caller.
	KeyUser key = "user"

	// KeyLogger holds the per-request [*log/slog.Logger].
	KeyLogger key = "logger"

	// KeyAuthHolder holds the recorder that lets the access log see claims
	// attached further down the chain.
	KeyAuthHolder key = "auth_holder"

	// KeyAuthFailure holds the error of a bearer token that failed
	// verification on an otherwise anonymous request.
	KeyAuthFailure key = "auth_failure"
)
