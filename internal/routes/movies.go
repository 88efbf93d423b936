package routes

import (
	"errors"
	"net/http"

	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/go-chi/chi/v5"
)

// ListMovies handles GET /movies.
func (r *Route) ListMovies(w http.ResponseWriter, req *http.Request) {
	r.incCounter(CatalogRequestsTotal)

	movies, err := r.MovieService.ListMovies(req.Context())
	if err != nil {
		r.incCounter(CatalogErrorsTotal)
		r.fault(w, err, "Failed to list movies")
		return
	}

	r.respondJSON(w, http.StatusOK, movies)
}

// GetMovieByTitle handles GET /movies/{title}. An unknown title is an empty
// result, not an error: the body is a JSON null with a 200.
func (r *Route) GetMovieByTitle(w http.ResponseWriter, req *http.Request) {
	r.incCounter(CatalogRequestsTotal)

	title := chi.URLParam(req, "title")

	movie, err := r.MovieService.GetMovieByTitle(req.Context(), title)
	if err != nil {
		r.incCounter(CatalogErrorsTotal)
		r.fault(w, err, "Failed to get movie")
		return
	}

	r.respondJSON(w, http.StatusOK, movie)
}

// GetMoviesByGenre handles GET /movies/genre/{genre}. Unlike the title
// lookup, an empty result set here is a 400.
func (r *Route) GetMoviesByGenre(w http.ResponseWriter, req *http.Request) {
	r.incCounter(CatalogRequestsTotal)

	genre := chi.URLParam(req, "genre")

	movies, err := r.MovieService.GetMoviesByGenre(req.Context(), genre)
	if err != nil {
		r.incCounter(CatalogErrorsTotal)
		if errors.Is(err, models.ErrNoMoviesInGenre) {
			r.errorResponse(w, http.StatusBadRequest, models.ErrNoMoviesInGenre, genre+" movies were not found.")
			return
		}
		r.fault(w, err, "Failed to get movies by genre")
		return
	}

	r.respondJSON(w, http.StatusOK, movies)
}

// ListDirectors handles GET /movies/directors.
func (r *Route) ListDirectors(w http.ResponseWriter, req *http.Request) {
	r.incCounter(CatalogRequestsTotal)

	directors, err := r.MovieService.ListDirectors(req.Context())
	if err != nil {
		r.incCounter(CatalogErrorsTotal)
		r.fault(w, err, "Failed to list directors")
		return
	}

	r.respondJSON(w, http.StatusOK, directors)
}

// GetDirectorByName handles GET /movies/director/{name}. This route is
// reachable without a token.
func (r *Route) GetDirectorByName(w http.ResponseWriter, req *http.Request) {
	r.incCounter(CatalogRequestsTotal)

	name := chi.URLParam(req, "name")

	director, err := r.MovieService.GetDirectorByName(req.Context(), name)
	if err != nil {
		r.incCounter(CatalogErrorsTotal)
		if errors.Is(err, models.ErrDirectorNotFound) {
			r.errorResponse(w, http.StatusBadRequest, models.ErrDirectorNotFound, name+" was not found.")
			return
		}
		r.fault(w, err, "Failed to get director")
		return
	}

	r.respondJSON(w, http.StatusOK, director)
}
