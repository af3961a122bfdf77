// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/myflix/internal/platform/request"
	"github.com/taibuivan/myflix/internal/platform/sec"
)

type loginBody struct {
	Handle string `json:"handle"`
	Secret string `json:"secret"`
}

/*
TestDecodeJSON covers strict decoding of request bodies.
*/
func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		isValid bool
	}{
		{"valid", `{"handle":"janedoe","secret":"securePass123"}`, true},
		{"unknown_field", `{"handle":"janedoe","secret":"x","admin":true}`, false},
		{"malformed", `{"handle":`, false},
		{"trailing_document", `{"handle":"janedoe"}{"handle":"johndoe"}`, false},
		{"empty", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			var target loginBody

			err := requestutil.DecodeJSON(httptest.NewRecorder(), request, &target)
			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, "janedoe", target.Handle)
				return
			}
			assert.Error(t, err)
		})
	}
}

/*
TestParam decodes escaped path segments.
*/
func TestParam(t *testing.T) {
	var got string
	router := chi.NewRouter()
	router.Get("/movies/{title}", func(writer http.ResponseWriter, request *http.Request) {
		got = requestutil.Param(request, "title")
	})

	for path, want := range map[string]string{
		"/movies/Inception":    "Inception",
		"/movies/The%20Matrix": "The Matrix",
		"/movies/AC%2FDC":      "AC/DC",
	} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, got, path)
	}
}

/*
TestRequiredIdentity rejects anonymous requests.
*/
func TestRequiredIdentity(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := requestutil.RequiredIdentity(request)
	assert.Error(t, err)

	ctx := ctxutil.WithAuthUser(request.Context(), &sec.AuthClaims{Handle: "janedoe"})
	identity, err := requestutil.RequiredIdentity(request.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, "janedoe", identity.Handle)
}

/*
TestRequiredIdentity_ReportsTokenFailure surfaces the recorded bearer rejection.
*/
func TestRequiredIdentity_ReportsTokenFailure(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	rejected := apperr.Unavailable(errors.New("postgres down"))
	ctx := ctxutil.WithAuthFailure(request.Context(), rejected)

	_, err := requestutil.RequiredIdentity(request.WithContext(ctx))
	assert.ErrorIs(t, err, rejected)
}
