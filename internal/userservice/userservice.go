package userservice

import (
	"context"
	"fmt"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/alionaterguta/cine-verse/internal/models/dto"
	"github.com/alionaterguta/cine-verse/pkg/helper"

	"golang.org/x/crypto/bcrypt"
)

// UserService owns every credential-store operation: registration,
// authentication, profile updates, favorites, deletion.
type UserService struct {
	UserRepo  interfaces.UserRepository
	MovieRepo interfaces.MovieRepository
	Logger    interfaces.Logger
}

// NewUserService creates a new UserService instance. The movie repository is
// consulted only to check a title exists before it is favorited.
func NewUserService(userRepo interfaces.UserRepository, movieRepo interfaces.MovieRepository, logger interfaces.Logger) *UserService {
	return &UserService{
		UserRepo:  userRepo,
		MovieRepo: movieRepo,
		Logger:    logger,
	}
}

// RegisterUser hashes the password and adds the user via the repository.
// A duplicate username surfaces as models.ErrUserExists from the store's
// unique constraint; there is no existence pre-check here.
func (s *UserService) RegisterUser(ctx context.Context, signup dto.UserSignupRequestDTO) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Info("Registering user", "func", funcName, "user", signup.Username)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", signup.Username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToHashPassword, err)
	}

	user := models.User{
		Username:       signup.Username,
		HashedPassword: string(hashedPassword),
		Email:          signup.Email,
		Birthdate:      signup.Birthdate,
		FavoriteMovies: []string{},
	}

	userID, err := s.UserRepo.AddUser(ctx, user)
	if err != nil {
		s.Logger.Error(ErrFailedToRegisterUser, "func", funcName, "user", signup.Username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToRegisterUser, err)
	}
	user.ID = userID

	s.Logger.Info("User registered successfully", "func", funcName, "user", signup.Username, "ID", userID)
	return &user, nil
}

// AuthenticateUser verifies a user's credentials and returns the record, or
// models.ErrInvalidCredentials. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	if user == nil {
		s.Logger.Info("Login attempt for unknown user", "func", funcName, "user", username)
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		s.Logger.Info("Login attempt with invalid password", "func", funcName, "user", username)
		return nil, models.ErrInvalidCredentials
	}

	s.Logger.Info("User authenticated successfully", "func", funcName, "user", username)
	return user, nil
}

// ListUsers returns every stored user record.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.UserRepo.ListUsers(ctx)
	if err != nil {
		s.Logger.Error(ErrRetrievingUser, "func", helper.GetFuncName(), "error", err)
		return nil, fmt.Errorf("%s: %w", ErrRetrievingUser, err)
	}
	return users, nil
}

// UpdateUser applies the patch to the named user's record. The caller
// identity must match the target username; the check runs before any field
// is touched. A password in the patch is re-hashed, an absent password
// leaves the stored hash untouched.
func (s *UserService) UpdateUser(ctx context.Context, username string, patch dto.UserUpdateRequestDTO, caller string) (*models.User, error) {
	funcName := helper.GetFuncName()

	if caller != username {
		s.Logger.Warn("Update rejected: caller does not own the record",
			"func", funcName, "user", username, "caller", caller)
		return nil, models.ErrPermissionDenied
	}

	fields := map[string]interface{}{}
	if patch.Username != "" {
		fields["username"] = patch.Username
	}
	if patch.Email != "" {
		fields["email"] = patch.Email
	}
	if patch.Birthdate != nil {
		fields["birthdate"] = patch.Birthdate
	}
	if patch.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(patch.Password), bcrypt.DefaultCost)
		if err != nil {
			s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", username, "error", err)
			return nil, fmt.Errorf("%s: %w", ErrFailedToHashPassword, err)
		}
		fields["hashed_password"] = string(hashedPassword)
	}

	updated, err := s.UserRepo.UpdateUser(ctx, username, fields)
	if err != nil {
		s.Logger.Error(ErrFailedToUpdateUser, "func", funcName, "user", username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrFailedToUpdateUser, err)
	}

	s.Logger.Info("User updated successfully", "func", funcName, "user", username)
	return updated, nil
}

// AddFavorite appends the movie title to the user's favorite list. The title
// must exist in the catalog; duplicates in the list are permitted.
func (s *UserService) AddFavorite(ctx context.Context, username, title string) (*models.User, error) {
	funcName := helper.GetFuncName()

	movie, err := s.MovieRepo.GetMovieByTitle(ctx, title)
	if err != nil {
		s.Logger.Error(ErrCheckingMovie, "func", funcName, "title", title, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrCheckingMovie, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrMovieNotFound, title)
	}

	updated, err := s.UserRepo.PushFavorite(ctx, username, title)
	if err != nil {
		s.Logger.Error(ErrUpdatingFavorites, "func", funcName, "user", username, "title", title, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrUpdatingFavorites, err)
	}

	s.Logger.Info("Favorite added", "func", funcName, "user", username, "title", title)
	return updated, nil
}

// RemoveFavorite removes all occurrences of the title from the user's
// favorite list. Removing an absent title succeeds with the record
// unchanged.
func (s *UserService) RemoveFavorite(ctx context.Context, username, title string) (*models.User, error) {
	funcName := helper.GetFuncName()

	updated, err := s.UserRepo.PullFavorite(ctx, username, title)
	if err != nil {
		s.Logger.Error(ErrUpdatingFavorites, "func", funcName, "user", username, "title", title, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrUpdatingFavorites, err)
	}

	s.Logger.Info("Favorite removed", "func", funcName, "user", username, "title", title)
	return updated, nil
}

// DeleteUser removes the record the identifier resolves to.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	funcName := helper.GetFuncName()

	if err := s.UserRepo.DeleteUserByID(ctx, id); err != nil {
		s.Logger.Error(ErrFailedToDeleteUser, "func", funcName, "ID", id, "error", err)
		return fmt.Errorf("%s: %w", ErrFailedToDeleteUser, err)
	}

	s.Logger.Info("User deleted", "func", funcName, "ID", id)
	return nil
}
