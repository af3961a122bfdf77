// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "github.com/taibuivan/myflix/internal/platform/apperr"

// # Self-only Authorization

// Identity is the authenticated caller of a single request: the handle
// recovered from a verified session token. It is never persisted.
type Identity struct {
	Handle string
}

// ErrPermissionDenied is the error returned when a caller targets a handle
// other than its own.
var ErrPermissionDenied = apperr.Forbidden("Permission denied")

// AuthorizeSelf permits an operation on targetHandle only when the caller is
// that same user. Handles compare case-sensitively.
//
// This is the whole authorization model: there are no roles and no admin
// override.
func AuthorizeSelf(identity Identity, targetHandle string) error {
	if identity.Handle == "" || identity.Handle != targetHandle {
		return ErrPermissionDenied
	}
	return nil
}
