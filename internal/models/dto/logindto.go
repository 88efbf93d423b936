package dto

import "github.com/alionaterguta/cine-verse/internal/models"

// LoginRequestDTO is the body of POST /login.
type LoginRequestDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponseDTO carries the bearer token consumed by the protected
// routes via the Authorization header.
type LoginResponseDTO struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
