// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Patch inputs model "field absent" as a nil pointer, so these helpers keep the
call sites free of temporary variables.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Apply copies *p into dst when p is non-nil and reports whether it did.
func Apply[T any](dst *T, p *T) bool {
	if p == nil {
		return false
	}
	*dst = *p
	return true
}
