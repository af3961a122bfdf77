// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and body decoding, so
handlers share one error shape for malformed input.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/myflix/internal/platform/apperr"
	"github.com/taibuivan/myflix/internal/platform/ctxutil"
	"github.com/taibuivan/myflix/internal/platform/sec"
	"github.com/taibuivan/myflix/internal/platform/validate"
)

// maxBodyBytes bounds every JSON body; profile payloads are tiny.
const maxBodyBytes = 64 << 10

/*
DecodeJSON reads the request body into target.

Unknown fields are rejected: every operation declares its input schema and
anything outside it is a client error, not something to ignore silently.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	// A second document in the same body is malformed input as well.
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named, decoded URL parameter from the request.

chi matches against RawPath when the client escaped a reserved character
(e.g. "AC%2FDC"), leaving the parameter encoded; those are decoded here.
*/
func Param(request *http.Request, name string) string {
	value := chi.URLParam(request, name)
	if request.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

/*
RequiredIdentity ensures the request is authenticated and returns the caller.

Returns:
  - sec.Identity: The authenticated caller
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredIdentity(request *http.Request) (sec.Identity, error) {
	identity, ok := ctxutil.GetIdentity(request.Context())
	if !ok {
		if failure := ctxutil.GetAuthFailure(request.Context()); failure != nil {
			return sec.Identity{}, failure
		}
		return sec.Identity{}, apperr.Unauthorized("Authentication required")
	}
	return identity, nil
}
