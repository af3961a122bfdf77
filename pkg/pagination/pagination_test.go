// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/myflix/pkg/pagination"
)

/*
TestFromRequest checks query parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{"defaults", "", 1, pagination.DefaultLimit, 0},
		{"explicit", "?page=3&limit=10", 3, 10, 20},
		{"negative_page", "?page=-2", 1, pagination.DefaultLimit, 0},
		{"zero_limit", "?limit=0", 1, pagination.DefaultLimit, 0},
		{"excessive_limit", "?limit=5000", 1, pagination.MaxLimit, 0},
		{"garbage", "?page=abc&limit=xyz", 1, pagination.DefaultLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/movies"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
			assert.Equal(t, tt.offset, params.Offset())
		})
	}
}

/*
TestNewMeta verifies the total page calculation.
*/
func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, pagination.NewMeta(1, 10, 21).TotalPages)
	assert.Equal(t, 2, pagination.NewMeta(1, 10, 20).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 10, 0).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 5).TotalPages)

	assert.True(t, pagination.NewMeta(2, 10, 21).HasNext)
	assert.False(t, pagination.NewMeta(3, 10, 21).HasNext)
	assert.False(t, pagination.NewMeta(9, 10, 21).HasNext)
}
