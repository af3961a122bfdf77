// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/myflix/internal/platform/middleware"
	requestutil "github.com/taibuivan/myflix/internal/platform/request"
	"github.com/taibuivan/myflix/internal/platform/respond"
)

// Handler implements the HTTP layer for favorites.
type Handler struct {
	manager *Manager
}

// NewHandler constructs a new favorites [Handler].
func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// Routes returns a [chi.Router] meant to be mounted at /users/{handle}/favorites.
// The {handle} parameter is read from the parent route.
//
// # Endpoints
//   - GET    /              : List favorites.
//   - POST   /{movieTitle}  : Add a movie.
//   - DELETE /{movieTitle}  : Remove a movie.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.list)
	router.Post("/{movieTitle}", handler.add)
	router.Delete("/{movieTitle}", handler.remove)

	return router
}

type favoritesResponse struct {
	Message   string   `json:"message,omitempty"`
	Favorites []string `json:"favorites"`
}

// list handles GET /users/{handle}/favorites.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	favorites, err := handler.manager.List(request.Context(), caller, requestutil.Param(request, "handle"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, favoritesResponse{Favorites: favorites})
}

/*
POST /users/{handle}/favorites/{movieTitle}.

Response:
  - 200: {message, favorites}, also when the movie already was a favorite
  - 400: Forbidden (not the caller's own handle)
  - 404: User or movie not found
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handle := requestutil.Param(request, "handle")
	title := requestutil.Param(request, "movieTitle")

	favorites, err := handler.manager.Add(request.Context(), caller, handle, title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, favoritesResponse{
		Message:   fmt.Sprintf("%s is in %s's favorites", title, handle),
		Favorites: favorites,
	})
}

/*
DELETE /users/{handle}/favorites/{movieTitle}.

Response:
  - 200: {message}
  - 400: Forbidden, or the movie is not a favorite (INVALID_STATE)
  - 404: User or movie not found
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handle := requestutil.Param(request, "handle")
	title := requestutil.Param(request, "movieTitle")

	if err := handler.manager.Remove(request.Context(), caller, handle, title); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, fmt.Sprintf("%s was removed from %s's favorites", title, handle))
}
