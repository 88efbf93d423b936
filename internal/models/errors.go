package models

import "errors"

// Domain errors shared by the repositories and services. The route layer
// maps these to HTTP status codes with errors.Is.
var (
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrDirectorNotFound   = errors.New("director not found")
	ErrNoMoviesInGenre    = errors.New("no movies found in genre")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
