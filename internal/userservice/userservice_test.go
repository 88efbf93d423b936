package userservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alionaterguta/cine-verse/internal/interfaces/mocks"
	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/alionaterguta/cine-verse/internal/models/dto"
	"github.com/alionaterguta/cine-verse/pkg/zerolog"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var testLogger = zerolog.NewZerologLogger("userservice-test")

func TestUserService_RegisterUser(t *testing.T) {
	signup := dto.UserSignupRequestDTO{
		Username: "testuser",
		Password: "testpass",
		Email:    "testuser@example.com",
	}

	t.Run("successful registration hashes the password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("AddUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Username == "testuser" &&
				u.HashedPassword != "testpass" &&
				bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("testpass")) == nil &&
				u.FavoriteMovies != nil && len(u.FavoriteMovies) == 0
		})).Return("68a1f2d3e4b5c6d7e8f90a1b", nil)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		user, err := svc.RegisterUser(context.Background(), signup)
		if err != nil {
			t.Fatalf("RegisterUser() error = %v", err)
		}
		if user.ID != "68a1f2d3e4b5c6d7e8f90a1b" {
			t.Errorf("expected store-assigned ID, got %q", user.ID)
		}
		if user.HashedPassword == signup.Password {
			t.Error("plaintext password leaked into the stored record")
		}
	})

	t.Run("duplicate username surfaces ErrUserExists", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("AddUser", mock.Anything, mock.Anything).
			Return("", models.ErrUserExists)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		_, err := svc.RegisterUser(context.Background(), signup)
		if !errors.Is(err, models.ErrUserExists) {
			t.Errorf("expected ErrUserExists, got %v", err)
		}
	})
}

func TestUserService_AuthenticateUser(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	storedUser := &models.User{
		Username:       "testuser",
		HashedPassword: string(hashed),
	}

	tests := []struct {
		name     string
		password string
		repoUser *models.User
		repoErr  error
		wantErr  error
	}{
		{
			name:     "valid credentials",
			password: "testpass",
			repoUser: storedUser,
		},
		{
			name:     "unknown username",
			password: "testpass",
			repoUser: nil,
			wantErr:  models.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrongpass",
			repoUser: storedUser,
			wantErr:  models.ErrInvalidCredentials,
		},
		{
			name:     "repository failure",
			password: "testpass",
			repoErr:  errors.New("connection reset"),
			wantErr:  nil, // any non-credential error
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			userRepo.On("GetUserByUsername", mock.Anything, "testuser").
				Return(tt.repoUser, tt.repoErr)

			svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

			user, err := svc.AuthenticateUser(context.Background(), "testuser", tt.password)
			if tt.repoErr != nil {
				if err == nil {
					t.Fatal("expected error on repository failure")
				}
				if errors.Is(err, models.ErrInvalidCredentials) {
					t.Error("repository failure must not masquerade as bad credentials")
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AuthenticateUser() error = %v", err)
			}
			if user.Username != "testuser" {
				t.Errorf("got user %q, want testuser", user.Username)
			}
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("caller must own the record", func(t *testing.T) {
		// No repo expectations: the permission check runs before any
		// repository access.
		userRepo := mocks.NewMockUserRepository(t)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		_, err := svc.UpdateUser(context.Background(), "testuser",
			dto.UserUpdateRequestDTO{Email: "new@example.com"}, "otheruser")
		if !errors.Is(err, models.ErrPermissionDenied) {
			t.Errorf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("patch password is re-hashed", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("UpdateUser", mock.Anything, "testuser", mock.MatchedBy(func(fields map[string]interface{}) bool {
			hashed, ok := fields["hashed_password"].(string)
			if !ok || hashed == "newpass" {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(hashed), []byte("newpass")) == nil
		})).Return(&models.User{Username: "testuser"}, nil)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		_, err := svc.UpdateUser(context.Background(), "testuser",
			dto.UserUpdateRequestDTO{Password: "newpass"}, "testuser")
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
	})

	t.Run("only present fields reach the store", func(t *testing.T) {
		birthdate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("UpdateUser", mock.Anything, "testuser", mock.MatchedBy(func(fields map[string]interface{}) bool {
			if len(fields) != 2 {
				return false
			}
			_, hasEmail := fields["email"]
			_, hasBirthdate := fields["birthdate"]
			return hasEmail && hasBirthdate
		})).Return(&models.User{Username: "testuser"}, nil)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		_, err := svc.UpdateUser(context.Background(), "testuser",
			dto.UserUpdateRequestDTO{Email: "new@example.com", Birthdate: &birthdate}, "testuser")
		if err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
	})

	t.Run("unknown user propagates ErrUserNotFound", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("UpdateUser", mock.Anything, "testuser", mock.Anything).
			Return(nil, models.ErrUserNotFound)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		_, err := svc.UpdateUser(context.Background(), "testuser",
			dto.UserUpdateRequestDTO{Email: "new@example.com"}, "testuser")
		if !errors.Is(err, models.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserService_AddFavorite(t *testing.T) {
	t.Run("title must exist in the catalog", func(t *testing.T) {
		movieRepo := mocks.NewMockMovieRepository(t)
		movieRepo.On("GetMovieByTitle", mock.Anything, "No Such Film").
			Return(nil, nil)

		// PushFavorite must not be reached.
		userRepo := mocks.NewMockUserRepository(t)

		svc := NewUserService(userRepo, movieRepo, testLogger)

		_, err := svc.AddFavorite(context.Background(), "testuser", "No Such Film")
		if !errors.Is(err, models.ErrMovieNotFound) {
			t.Errorf("expected ErrMovieNotFound, got %v", err)
		}
	})

	t.Run("favorite is appended and the updated record returned", func(t *testing.T) {
		movieRepo := mocks.NewMockMovieRepository(t)
		movieRepo.On("GetMovieByTitle", mock.Anything, "Inception").
			Return(&models.Movie{Title: "Inception"}, nil)

		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("PushFavorite", mock.Anything, "testuser", "Inception").
			Return(&models.User{
				Username:       "testuser",
				FavoriteMovies: []string{"Inception"},
			}, nil)

		svc := NewUserService(userRepo, movieRepo, testLogger)

		user, err := svc.AddFavorite(context.Background(), "testuser", "Inception")
		if err != nil {
			t.Fatalf("AddFavorite() error = %v", err)
		}
		if len(user.FavoriteMovies) != 1 || user.FavoriteMovies[0] != "Inception" {
			t.Errorf("unexpected favorites: %v", user.FavoriteMovies)
		}
	})

	t.Run("missing user propagates ErrUserNotFound", func(t *testing.T) {
		movieRepo := mocks.NewMockMovieRepository(t)
		movieRepo.On("GetMovieByTitle", mock.Anything, "Inception").
			Return(&models.Movie{Title: "Inception"}, nil)

		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("PushFavorite", mock.Anything, "ghost", "Inception").
			Return(nil, models.ErrUserNotFound)

		svc := NewUserService(userRepo, movieRepo, testLogger)

		_, err := svc.AddFavorite(context.Background(), "ghost", "Inception")
		if !errors.Is(err, models.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserService_RemoveFavorite(t *testing.T) {
	t.Run("removing an absent title succeeds", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("PullFavorite", mock.Anything, "testuser", "Never Added").
			Return(&models.User{
				Username:       "testuser",
				FavoriteMovies: []string{"Inception"},
			}, nil)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		user, err := svc.RemoveFavorite(context.Background(), "testuser", "Never Added")
		if err != nil {
			t.Fatalf("RemoveFavorite() error = %v", err)
		}
		if len(user.FavoriteMovies) != 1 {
			t.Errorf("unexpected favorites: %v", user.FavoriteMovies)
		}
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("unknown id propagates ErrUserNotFound", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("DeleteUserByID", mock.Anything, "missing-id").
			Return(models.ErrUserNotFound)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		err := svc.DeleteUser(context.Background(), "missing-id")
		if !errors.Is(err, models.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("successful delete", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository(t)
		userRepo.On("DeleteUserByID", mock.Anything, "68a1f2d3e4b5c6d7e8f90a1b").
			Return(nil)

		svc := NewUserService(userRepo, mocks.NewMockMovieRepository(t), testLogger)

		if err := svc.DeleteUser(context.Background(), "68a1f2d3e4b5c6d7e8f90a1b"); err != nil {
			t.Fatalf("DeleteUser() error = %v", err)
		}
	})
}
