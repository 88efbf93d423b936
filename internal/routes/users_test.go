package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alionaterguta/cine-verse/internal/auth"
	"github.com/alionaterguta/cine-verse/internal/interfaces/mocks"
	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/alionaterguta/cine-verse/internal/models/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

// withChiParams attaches URL parameters the way the router would.
func withChiParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// asCaller attaches an authenticated identity the way the middleware would.
func asCaller(req *http.Request, username string) *http.Request {
	return req.WithContext(auth.ContextWithCaller(req.Context(),
		&auth.CustomClaims{Username: username}))
}

func TestRoute_Signup(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		repoID         string
		repoErr        error
		wantStatusCode int
		wantViolations int
	}{
		{
			name:           "valid signup",
			contentType:    "application/json",
			body:           `{"username":"newuser1","password":"secret","email":"newuser1@example.com"}`,
			repoID:         "68a1f2d3e4b5c6d7e8f90a1b",
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "duplicate username is a conflict",
			contentType:    "application/json",
			body:           `{"username":"newuser1","password":"secret","email":"newuser1@example.com"}`,
			repoErr:        models.ErrUserExists,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "every violated field is reported",
			contentType: "application/json",
			// username too short and not alphanumeric, email malformed,
			// password missing
			body:           `{"username":"a!","email":"not-an-email"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
			wantViolations: 3,
		},
		{
			name:           "missing content type",
			contentType:    "",
			body:           `{"username":"newuser1","password":"secret","email":"newuser1@example.com"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			userRepo.On("AddUser", mock.Anything, mock.Anything).
				Return(tt.repoID, tt.repoErr).Maybe()

			r := newTestRoute(t, userRepo,
				mocks.NewMockMovieRepository(t),
				mocks.NewMockDirectorRepository(t))

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rr := httptest.NewRecorder()

			r.Signup(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d: %s", rr.Code, tt.wantStatusCode, rr.Body.String())
			}

			switch tt.wantStatusCode {
			case http.StatusCreated:
				var created models.User
				if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if created.ID != tt.repoID {
					t.Errorf("got ID %q, want %q", created.ID, tt.repoID)
				}
				if created.HashedPassword == "" || created.HashedPassword == "secret" {
					t.Error("response must carry the hash, never the plaintext")
				}
			case http.StatusUnprocessableEntity:
				var body dto.ErrorResponse
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if len(body.Violations) != tt.wantViolations {
					t.Errorf("got %d violations, want %d: %+v", len(body.Violations), tt.wantViolations, body.Violations)
				}
			}
		})
	}
}

func TestRoute_UpdateUser(t *testing.T) {
	tests := []struct {
		name           string
		caller         string
		target         string
		body           string
		repoUser       *models.User
		repoErr        error
		wantRepoCall   bool
		wantStatusCode int
	}{
		{
			name:           "owner updates own record",
			caller:         "testuser",
			target:         "testuser",
			body:           `{"email":"new@example.com"}`,
			repoUser:       &models.User{Username: "testuser", Email: "new@example.com"},
			wantRepoCall:   true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "subject mismatch is rejected before any write",
			caller:         "otheruser",
			target:         "testuser",
			body:           `{"email":"new@example.com"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown user",
			caller:         "ghost",
			target:         "ghost",
			body:           `{"email":"new@example.com"}`,
			repoErr:        models.ErrUserNotFound,
			wantRepoCall:   true,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid patch field",
			caller:         "testuser",
			target:         "testuser",
			body:           `{"email":"not-an-email"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			if tt.wantRepoCall {
				userRepo.On("UpdateUser", mock.Anything, tt.target, mock.Anything).
					Return(tt.repoUser, tt.repoErr)
			}

			r := newTestRoute(t, userRepo,
				mocks.NewMockMovieRepository(t),
				mocks.NewMockDirectorRepository(t))

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.target,
				bytes.NewBufferString(tt.body))
			req = withChiParams(req, map[string]string{"username": tt.target})
			req = asCaller(req, tt.caller)
			rr := httptest.NewRecorder()

			r.UpdateUser(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Errorf("got status %d, want %d: %s", rr.Code, tt.wantStatusCode, rr.Body.String())
			}
		})
	}
}

func TestRoute_UpdateUser_Unauthenticated(t *testing.T) {
	r := newTestRoute(t,
		mocks.NewMockUserRepository(t),
		mocks.NewMockMovieRepository(t),
		mocks.NewMockDirectorRepository(t))

	req := httptest.NewRequest(http.MethodPut, "/users/testuser",
		bytes.NewBufferString(`{"email":"new@example.com"}`))
	req = withChiParams(req, map[string]string{"username": "testuser"})
	rr := httptest.NewRecorder()

	r.UpdateUser(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestRoute_AddFavorite(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		movie          *models.Movie
		pushUser       *models.User
		pushErr        error
		wantPush       bool
		wantStatusCode int
	}{
		{
			name:  "favorite added returns the updated record",
			title: "Inception",
			movie: &models.Movie{Title: "Inception"},
			pushUser: &models.User{
				Username:       "testuser",
				FavoriteMovies: []string{"Inception"},
			},
			wantPush:       true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "unknown title",
			title:          "No Such Film",
			movie:          nil,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "unknown user",
			title:          "Inception",
			movie:          &models.Movie{Title: "Inception"},
			pushErr:        models.ErrUserNotFound,
			wantPush:       true,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movieRepo := mocks.NewMockMovieRepository(t)
			movieRepo.On("GetMovieByTitle", mock.Anything, tt.title).
				Return(tt.movie, nil)

			userRepo := mocks.NewMockUserRepository(t)
			if tt.wantPush {
				userRepo.On("PushFavorite", mock.Anything, "testuser", tt.title).
					Return(tt.pushUser, tt.pushErr)
			}

			r := newTestRoute(t, userRepo, movieRepo, mocks.NewMockDirectorRepository(t))

			req := httptest.NewRequest(http.MethodPost, "/users/testuser/movies/"+url.PathEscape(tt.title), nil)
			req = withChiParams(req, map[string]string{"username": "testuser", "title": tt.title})
			req = asCaller(req, "testuser")
			rr := httptest.NewRecorder()

			r.AddFavorite(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d: %s", rr.Code, tt.wantStatusCode, rr.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK {
				var updated models.User
				if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if len(updated.FavoriteMovies) != 1 || updated.FavoriteMovies[0] != tt.title {
					t.Errorf("unexpected favorites: %v", updated.FavoriteMovies)
				}
			}
		})
	}
}

func TestRoute_RemoveFavorite(t *testing.T) {
	userRepo := mocks.NewMockUserRepository(t)
	userRepo.On("PullFavorite", mock.Anything, "testuser", "Inception").
		Return(&models.User{Username: "testuser", FavoriteMovies: []string{}}, nil)

	r := newTestRoute(t, userRepo,
		mocks.NewMockMovieRepository(t),
		mocks.NewMockDirectorRepository(t))

	req := httptest.NewRequest(http.MethodDelete, "/users/testuser/movies/Inception", nil)
	req = withChiParams(req, map[string]string{"username": "testuser", "title": "Inception"})
	req = asCaller(req, "testuser")
	rr := httptest.NewRecorder()

	r.RemoveFavorite(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestRoute_DeleteUser(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		repoErr        error
		wantStatusCode int
		wantMessage    string
	}{
		{
			name:           "successful delete",
			id:             "68a1f2d3e4b5c6d7e8f90a1b",
			wantStatusCode: http.StatusOK,
			wantMessage:    "68a1f2d3e4b5c6d7e8f90a1b was deleted.",
		},
		{
			name:           "unknown id",
			id:             "missing-id",
			repoErr:        models.ErrUserNotFound,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository(t)
			userRepo.On("DeleteUserByID", mock.Anything, tt.id).Return(tt.repoErr)

			r := newTestRoute(t, userRepo,
				mocks.NewMockMovieRepository(t),
				mocks.NewMockDirectorRepository(t))

			req := httptest.NewRequest(http.MethodDelete, "/users/"+tt.id, nil)
			req = withChiParams(req, map[string]string{"id": tt.id})
			req = asCaller(req, "testuser")
			rr := httptest.NewRecorder()

			r.DeleteUser(rr, req)

			if rr.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d: %s", rr.Code, tt.wantStatusCode, rr.Body.String())
			}
			if tt.wantMessage != "" {
				var body dto.UserDeleteResponseDTO
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if body.Message != tt.wantMessage {
					t.Errorf("got message %q, want %q", body.Message, tt.wantMessage)
				}
			}
		})
	}
}
