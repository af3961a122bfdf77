// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/myflix/internal/platform/request"
	"github.com/taibuivan/myflix/internal/platform/respond"
	"github.com/taibuivan/myflix/internal/platform/validate"
	"github.com/taibuivan/myflix/internal/users/identity"
)

// Handler implements the login endpoint.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] meant to be mounted at /login.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.login)
	return router
}

type loginRequest struct {
	Handle string `json:"handle"`
	Secret string `json:"secret"`
}

/*
POST /login.

Request:
  - body: {handle, secret}

Response:
  - 200: {token, expiresAt, user}
  - 400: Missing fields or malformed JSON
  - 401: Invalid login credentials (unknown handle and wrong secret read the same)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(identity.FieldHandle, input.Handle)
	validator.Custom(identity.FieldSecret, input.Secret == "", "This field is required")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Handle, input.Secret)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}
