package movieservice

import (
	"context"
	"fmt"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/alionaterguta/cine-verse/pkg/helper"
)

const (
	ErrRetrievingMovies    = "error retrieving movies"
	ErrRetrievingDirectors = "error retrieving directors"
)

// MovieService serves the read-only movie and director catalog.
type MovieService struct {
	MovieRepo    interfaces.MovieRepository
	DirectorRepo interfaces.DirectorRepository
	Logger       interfaces.Logger
}

// NewMovieService creates a new MovieService instance.
func NewMovieService(movieRepo interfaces.MovieRepository, directorRepo interfaces.DirectorRepository, logger interfaces.Logger) *MovieService {
	return &MovieService{
		MovieRepo:    movieRepo,
		DirectorRepo: directorRepo,
		Logger:       logger,
	}
}

// ListMovies returns the full catalog.
func (s *MovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.MovieRepo.ListMovies(ctx)
	if err != nil {
		s.Logger.Error(ErrRetrievingMovies, "func", helper.GetFuncName(), "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingMovies, err)
	}
	return movies, nil
}

// GetMovieByTitle returns the movie, or (nil, nil) for an unknown title.
// An empty result is deliberately not an error on this lookup, unlike the
// genre query below.
func (s *MovieService) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	movie, err := s.MovieRepo.GetMovieByTitle(ctx, title)
	if err != nil {
		s.Logger.Error(ErrRetrievingMovies, "func", helper.GetFuncName(), "title", title, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingMovies, err)
	}
	return movie, nil
}

// GetMoviesByGenre returns movies carrying the genre tag, or
// models.ErrNoMoviesInGenre when the result set is empty.
func (s *MovieService) GetMoviesByGenre(ctx context.Context, genre string) ([]models.Movie, error) {
	movies, err := s.MovieRepo.GetMoviesByGenre(ctx, genre)
	if err != nil {
		s.Logger.Error(ErrRetrievingMovies, "func", helper.GetFuncName(), "genre", genre, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingMovies, err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrNoMoviesInGenre, genre)
	}
	return movies, nil
}

// ListDirectors returns the full director collection.
func (s *MovieService) ListDirectors(ctx context.Context) ([]models.Director, error) {
	directors, err := s.DirectorRepo.ListDirectors(ctx)
	if err != nil {
		s.Logger.Error(ErrRetrievingDirectors, "func", helper.GetFuncName(), "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingDirectors, err)
	}
	return directors, nil
}

// GetDirectorByName returns the director, or models.ErrDirectorNotFound.
func (s *MovieService) GetDirectorByName(ctx context.Context, name string) (*models.Director, error) {
	director, err := s.DirectorRepo.GetDirectorByName(ctx, name)
	if err != nil {
		s.Logger.Error(ErrRetrievingDirectors, "func", helper.GetFuncName(), "name", name, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingDirectors, err)
	}
	if director == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrDirectorNotFound, name)
	}
	return director, nil
}
