package interfaces

import (
	"context"

	"github.com/alionaterguta/cine-verse/internal/models"
)

// UserRepository defines the contract for the credential store. Favorites
// mutations return the record as it is after the change, matching the
// store's return-after-update semantics.
type UserRepository interface {
	// AddUser persists a new user and returns the store-assigned ID.
	// A duplicate username yields models.ErrUserExists; the storage-level
	// unique constraint is the sole source of that error.
	AddUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername returns (nil, nil) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser sets the given storage fields on the user's record and
	// returns the updated record. models.ErrUserNotFound when absent.
	UpdateUser(ctx context.Context, username string, fields map[string]interface{}) (*models.User, error)
	// PushFavorite appends the title to the favorite list. Duplicates are
	// permitted; this is a plain append.
	PushFavorite(ctx context.Context, username, title string) (*models.User, error)
	// PullFavorite removes all occurrences of the title. Pulling an absent
	// title succeeds with the record unchanged.
	PullFavorite(ctx context.Context, username, title string) (*models.User, error)
	// DeleteUserByID removes the record; models.ErrUserNotFound when the id
	// resolves to nothing.
	DeleteUserByID(ctx context.Context, id string) error
	EnsureIndices(ctx context.Context) error
	Close(ctx context.Context) error
}

// MovieRepository reads the movie collection. The catalog has no write
// operations; records are seeded out-of-band.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	// GetMovieByTitle returns (nil, nil) when no such title exists.
	GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error)
	// GetMoviesByGenre returns an empty slice when nothing matches.
	GetMoviesByGenre(ctx context.Context, genre string) ([]models.Movie, error)
	Close(ctx context.Context) error
}

// DirectorRepository reads the director collection.
type DirectorRepository interface {
	ListDirectors(ctx context.Context) ([]models.Director, error)
	// GetDirectorByName returns (nil, nil) when no such name exists.
	GetDirectorByName(ctx context.Context, name string) (*models.Director, error)
	Close(ctx context.Context) error
}
