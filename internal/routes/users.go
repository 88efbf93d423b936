package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alionaterguta/cine-verse/internal/auth"
	"github.com/alionaterguta/cine-verse/internal/models"
	"github.com/alionaterguta/cine-verse/internal/models/dto"
	"github.com/go-chi/chi/v5"

	structValidator "github.com/go-playground/validator/v10"
)

// Signup handles POST /users. Validation failures list every violated field;
// a duplicate username is a conflict sourced from the store's unique
// constraint.
func (r *Route) Signup(w http.ResponseWriter, req *http.Request) {
	r.incCounter(SignupRequestsTotal)

	if req.Header.Get(ContentType) != ContentTypeJson {
		r.incCounter(SignupErrorsTotal)
		r.errorResponse(w, http.StatusBadRequest,
			fmt.Errorf("invalid content-type: %s", req.Header.Get(ContentType)),
			"Request Content-Type must be application/json")
		return
	}

	signupRequest := dto.UserSignupRequestDTO{}
	if err := json.NewDecoder(req.Body).Decode(&signupRequest); err != nil {
		r.incCounter(SignupErrorsTotal)
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidRequestBody)
		return
	}

	if err := r.validator.Struct(signupRequest); err != nil {
		r.incCounter(SignupErrorsTotal)
		var errs structValidator.ValidationErrors
		if errors.As(err, &errs) {
			r.validationResponse(w, http.StatusUnprocessableEntity, errs, "Signup data validation failed")
			return
		}
		r.errorResponse(w, http.StatusBadRequest, err, ErrValidationFailed)
		return
	}

	startTime := time.Now()

	user, err := r.UserService.RegisterUser(req.Context(), signupRequest)
	if err != nil {
		r.incCounter(SignupErrorsTotal)
		if errors.Is(err, models.ErrUserExists) {
			r.errorResponse(w, http.StatusBadRequest,
				models.ErrUserExists, signupRequest.Username+" already exists")
			return
		}
		r.fault(w, err, "Failed to register user")
		return
	}

	r.incCounter(SignupSuccessTotal)
	r.observeHistogram(SignupDurationSeconds, time.Since(startTime).Seconds())

	r.respondJSON(w, http.StatusCreated, user)
}

// Login handles POST /login. On success the response carries the bearer
// token the protected routes expect in the Authorization header.
func (r *Route) Login(w http.ResponseWriter, req *http.Request) {
	r.incCounter(LoginRequestsTotal)

	if req.Header.Get(ContentType) != ContentTypeJson {
		r.incCounter(LoginFailedTotal)
		r.errorResponse(w, http.StatusBadRequest,
			fmt.Errorf("invalid content-type: %s", req.Header.Get(ContentType)),
			"Request Content-Type must be application/json")
		return
	}

	loginRequest := dto.LoginRequestDTO{}
	if err := json.NewDecoder(req.Body).Decode(&loginRequest); err != nil {
		r.incCounter(LoginFailedTotal)
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidRequestBody)
		return
	}

	if err := r.validator.Struct(loginRequest); err != nil {
		r.incCounter(LoginFailedTotal)
		var errs structValidator.ValidationErrors
		if errors.As(err, &errs) {
			r.validationResponse(w, http.StatusBadRequest, errs, "Login data validation failed")
			return
		}
		r.errorResponse(w, http.StatusBadRequest, err, ErrValidationFailed)
		return
	}

	startTime := time.Now()

	user, err := r.UserService.AuthenticateUser(req.Context(), loginRequest.Username, loginRequest.Password)
	if err != nil {
		r.incCounter(LoginFailedTotal)
		r.observeHistogram(LoginDurationSeconds, time.Since(startTime).Seconds())
		if errors.Is(err, models.ErrInvalidCredentials) {
			r.errorResponse(w, http.StatusUnauthorized, models.ErrInvalidCredentials, ErrInvalidCredentials)
			return
		}
		r.fault(w, err, "Failed to authenticate user")
		return
	}

	sessionToken, err := auth.CreateToken(user.Username, r.PrivateKey)
	if err != nil {
		r.incCounter(LoginFailedTotal)
		r.fault(w, err, ErrFailedToGenerateToken)
		return
	}

	r.incCounter(LoginSuccessTotal)
	r.observeHistogram(LoginDurationSeconds, time.Since(startTime).Seconds())

	r.respondJSON(w, http.StatusOK, dto.LoginResponseDTO{
		User:  user,
		Token: sessionToken,
	})
}

// ListUsers handles GET /users.
func (r *Route) ListUsers(w http.ResponseWriter, req *http.Request) {
	r.incCounter(UsersRequestsTotal)

	users, err := r.UserService.ListUsers(req.Context())
	if err != nil {
		r.incCounter(UsersErrorsTotal)
		r.fault(w, err, "Failed to list users")
		return
	}

	r.respondJSON(w, http.StatusOK, users)
}

// UpdateUser handles PUT /users/{username}. The token subject must match the
// path parameter; the check runs before anything is validated or written.
func (r *Route) UpdateUser(w http.ResponseWriter, req *http.Request) {
	r.incCounter(UsersRequestsTotal)

	caller := auth.CallerFromContext(req.Context())
	if caller == nil {
		r.incCounter(UsersErrorsTotal)
		r.errorResponse(w, http.StatusUnauthorized, nil, "Not authenticated")
		return
	}
	username := chi.URLParam(req, "username")

	patch := dto.UserUpdateRequestDTO{}
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		r.incCounter(UsersErrorsTotal)
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidRequestBody)
		return
	}

	if err := r.validator.Struct(patch); err != nil {
		r.incCounter(UsersErrorsTotal)
		var errs structValidator.ValidationErrors
		if errors.As(err, &errs) {
			r.validationResponse(w, http.StatusBadRequest, errs, "Update data validation failed")
			return
		}
		r.errorResponse(w, http.StatusBadRequest, err, ErrValidationFailed)
		return
	}

	updated, err := r.UserService.UpdateUser(req.Context(), username, patch, caller.Username)
	if err != nil {
		r.incCounter(UsersErrorsTotal)
		switch {
		case errors.Is(err, models.ErrPermissionDenied):
			r.errorResponse(w, http.StatusBadRequest, models.ErrPermissionDenied, "Permission denied")
		case errors.Is(err, models.ErrUserNotFound):
			r.errorResponse(w, http.StatusNotFound, models.ErrUserNotFound, username+" was not found.")
		case errors.Is(err, models.ErrUserExists):
			r.errorResponse(w, http.StatusBadRequest, models.ErrUserExists, "Username already taken")
		default:
			r.fault(w, err, "Failed to update user")
		}
		return
	}

	r.respondJSON(w, http.StatusOK, updated)
}

// AddFavorite handles POST /users/{username}/movies/{title}. The title must
// exist in the catalog; the favorite list permits duplicates.
func (r *Route) AddFavorite(w http.ResponseWriter, req *http.Request) {
	r.incCounter(UsersRequestsTotal)

	username := chi.URLParam(req, "username")
	title := chi.URLParam(req, "title")

	updated, err := r.UserService.AddFavorite(req.Context(), username, title)
	if err != nil {
		r.incCounter(UsersErrorsTotal)
		switch {
		case errors.Is(err, models.ErrMovieNotFound):
			r.errorResponse(w, http.StatusNotFound, models.ErrMovieNotFound, "Movie not found")
		case errors.Is(err, models.ErrUserNotFound):
			r.errorResponse(w, http.StatusNotFound, models.ErrUserNotFound, username+" was not found.")
		default:
			r.fault(w, err, "Failed to add favorite")
		}
		return
	}

	r.respondJSON(w, http.StatusOK, updated)
}

// RemoveFavorite handles DELETE /users/{username}/movies/{title}. Removing a
// title that is not on the list succeeds and returns the unchanged record.
func (r *Route) RemoveFavorite(w http.ResponseWriter, req *http.Request) {
	r.incCounter(UsersRequestsTotal)

	username := chi.URLParam(req, "username")
	title := chi.URLParam(req, "title")

	updated, err := r.UserService.RemoveFavorite(req.Context(), username, title)
	if err != nil {
		r.incCounter(UsersErrorsTotal)
		if errors.Is(err, models.ErrUserNotFound) {
			r.errorResponse(w, http.StatusNotFound, models.ErrUserNotFound, username+" was not found.")
			return
		}
		r.fault(w, err, "Failed to remove favorite")
		return
	}

	r.respondJSON(w, http.StatusOK, updated)
}

// DeleteUser handles DELETE /users/{id}. An identifier that resolves to
// nothing is a 400, matching the API's observed contract.
func (r *Route) DeleteUser(w http.ResponseWriter, req *http.Request) {
	r.incCounter(UsersRequestsTotal)

	id := chi.URLParam(req, "id")

	if err := r.UserService.DeleteUser(req.Context(), id); err != nil {
		r.incCounter(UsersErrorsTotal)
		if errors.Is(err, models.ErrUserNotFound) {
			r.errorResponse(w, http.StatusBadRequest, models.ErrUserNotFound, id+" was not found.")
			return
		}
		r.fault(w, err, "Failed to delete user")
		return
	}

	r.respondJSON(w, http.StatusOK, dto.UserDeleteResponseDTO{
		Message: fmt.Sprintf(MsgUserDeletedFormat, id),
	})
}
