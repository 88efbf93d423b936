package dto

import "time"

// UserSignupRequestDTO is the body of POST /users.
type UserSignupRequestDTO struct {
	Username  string     `json:"username" validate:"required,min=5,max=64,alphanum"`
	Password  string     `json:"password" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

// UserUpdateRequestDTO is the body of PUT /users/{username}. All fields are
// optional; username and email are re-validated only when present. A present
// password is re-hashed, an absent one leaves the stored hash untouched.
type UserUpdateRequestDTO struct {
	Username  string     `json:"username,omitempty" validate:"omitempty,min=5,max=64,alphanum"`
	Password  string     `json:"password,omitempty"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

// UserDeleteResponseDTO confirms a deletion.
type UserDeleteResponseDTO struct {
	Message string `json:"message"`
}
