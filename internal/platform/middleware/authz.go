// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/constants"
	"github.com/taibuivan/myflix/internal/platform/ctxutil"
	"github.com/taibuivan/myflix/internal/platform/metrics"
	"github.com/taibuivan/myflix/internal/platform/respond"
	"github.com/taibuivan/myflix/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// An [*apperr.AppError] with a 5xx status is reported as is by protected
// routes; every other error becomes the same 401.
type TokenVerifier interface {
	VerifyToken(context context.Context, tokenStr string) (*sec.AuthClaims, error)
}

// errInvalidToken is the single message for every bearer failure, so the
// response never says whether a token was malformed, forged or expired.
var errInvalidToken = apperr.Unauthorized("Invalid or expired token")

// Authenticate extracts and verifies the JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// A token that fails verification does not end the request: it continues
// anonymously with the failure recorded, so public routes such as
// registration and login still work with a stale header, while
// [RequireAuth] answers protected routes with the recorded error.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			scheme, tokenStr, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(tokenStr) == "" {
				metrics.TokenRejections.Inc()
				next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthFailure(request.Context(), errInvalidToken)))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(request.Context(), strings.TrimSpace(tokenStr))
			if err != nil {
				failure := error(errInvalidToken)
				if appError := apperr.As(err); appError != nil && appError.HTTPStatus >= http.StatusInternalServerError {
					failure = err
				} else {
					metrics.TokenRejections.Inc()
				}
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_rejected",
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(writer, request.WithContext(ctxutil.WithAuthFailure(request.Context(), failure)))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// A request whose token was rejected by [Authenticate] gets that rejection;
// one that sent no token gets "Authentication required".
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if _, ok := ctxutil.GetIdentity(request.Context()); !ok {
			if failure := ctxutil.GetAuthFailure(request.Context()); failure != nil {
				respond.Error(writer, request, failure)
				return
			}
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
