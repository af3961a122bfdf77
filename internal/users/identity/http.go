// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/myflix/internal/platform/middleware"
	requestutil "github.com/taibuivan/myflix/internal/platform/request"
	"github.com/taibuivan/myflix/internal/platform/respond"
)

// Handler implements the HTTP layer for the user directory.
type Handler struct {
	service *Service
}

// NewHandler constructs a new identity [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] meant to be mounted at /users.
//
// # Endpoints
//   - POST   /          : Registration (public).
//   - GET    /{handle}  : Own profile.
//   - PUT    /{handle}  : Partial profile update.
//   - DELETE /{handle}  : Deregistration.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.register)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/{handle}", handler.getUser)
		protected.Put("/{handle}", handler.updateUser)
		protected.Delete("/{handle}", handler.deleteUser)
	})

	return router
}

/*
POST /users.

Request:
  - body: CreateInput

Response:
  - 201: User
  - 400: Validation failures (field list)
  - 409: Handle already taken
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// getUser handles GET /users/{handle}.
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Profile(request.Context(), identity, requestutil.Param(request, FieldHandle))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
PUT /users/{handle}.

Request:
  - body: UpdateInput (every field optional)

Response:
  - 200: User
  - 400: Forbidden (not the caller's own handle) or malformed JSON
  - 404: Unknown handle
  - 422: Validation failures
*/
func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch UpdateInput
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Update(request.Context(), identity, requestutil.Param(request, FieldHandle), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// deleteUser handles DELETE /users/{handle}.
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handle := requestutil.Param(request, FieldHandle)
	if err := handler.service.Delete(request.Context(), identity, handle); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, handle+" was deleted")
}
