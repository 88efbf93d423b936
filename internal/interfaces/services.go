package interfaces

import (
	"context"

	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/alionaterguta/cine-verse/internal/models/dto"
)

// UserService covers registration, authentication and every mutation of the
// credential store.
type UserService interface {
	RegisterUser(ctx context.Context, signup dto.UserSignupRequestDTO) (*models.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser fails with models.ErrPermissionDenied unless caller matches
	// username, before any field is touched.
	UpdateUser(ctx context.Context, username string, patch dto.UserUpdateRequestDTO, caller string) (*models.User, error)
	AddFavorite(ctx context.Context, username, title string) (*models.User, error)
	RemoveFavorite(ctx context.Context, username, title string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// CatalogService covers the read-only movie and director lookups.
type CatalogService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	// GetMovieByTitle returns (nil, nil) for an unknown title: an empty
	// result is not an error on this lookup.
	GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error)
	// GetMoviesByGenre fails with models.ErrNoMoviesInGenre on an empty
	// result set.
	GetMoviesByGenre(ctx context.Context, genre string) ([]models.Movie, error)
	ListDirectors(ctx context.Context) ([]models.Director, error)
	// GetDirectorByName fails with models.ErrDirectorNotFound when absent.
	GetDirectorByName(ctx context.Context, name string) (*models.Director, error)
}
