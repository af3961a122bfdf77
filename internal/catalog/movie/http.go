// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/myflix/internal/platform/middleware"
	requestutil "github.com/taibuivan/myflix/internal/platform/request"
	"github.com/taibuivan/myflix/internal/platform/respond"
	"github.com/taibuivan/myflix/pkg/pagination"
)

// Handler implements the HTTP layer for catalog reads.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalog endpoints. Every route
// requires an authenticated caller.
//
// # Endpoints
//   - GET /movies            : Paginated catalog.
//   - GET /movies/{title}    : One movie by exact title.
//   - GET /genres/{name}     : Genre description.
//   - GET /directors/{name}  : Director details.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/movies", handler.listMovies)
	router.Get("/movies/{title}", handler.getMovie)
	router.Get("/genres/{name}", handler.getGenre)
	router.Get("/directors/{name}", handler.getDirector)

	return router
}

/*
GET /movies.

Request:
  - page: int
  - limit: int (max 100)

Response:
  - 200: []Movie with pagination metadata
  - 401: Authentication required
*/
func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	movies, meta, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, movies, meta)
}

// getMovie handles GET /movies/{title}.
func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movie, err := handler.service.FindByTitle(request.Context(), requestutil.Param(request, "title"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, movie)
}

func (handler *Handler) getGenre(writer http.ResponseWriter, request *http.Request) {
	genre, err := handler.service.Genre(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, genre)
}

func (handler *Handler) getDirector(writer http.ResponseWriter, request *http.Request) {
	director, err := handler.service.Director(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, director)
}
