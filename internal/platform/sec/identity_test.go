// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/sec"
)

/*
TestAuthorizeSelf checks the self-only rule across handle pairs.
*/
func TestAuthorizeSelf(t *testing.T) {
	tests := []struct {
		name    string
		acting  string
		target  string
		allowed bool
	}{
		{"same_handle", "janedoe", "janedoe", true},
		{"other_handle", "janedoe", "johndoe", false},
		{"case_differs", "janedoe", "JaneDoe", false},
		{"anonymous", "", "janedoe", false},
		{"both_empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sec.AuthorizeSelf(sec.Identity{Handle: tt.acting}, tt.target)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
		})
	}
}
