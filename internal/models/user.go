package models

import "time"

// User is the stored credential record. HashedPassword always holds a
// bcrypt hash; the plaintext password never persists.
type User struct {
	ID             string     `json:"id" bson:"_id,omitempty" mapstructure:"_id" db:"id"`
	Username       string     `json:"username" bson:"username" mapstructure:"username" db:"username"`
	HashedPassword string     `json:"password_hash" bson:"hashed_password" mapstructure:"hashed_password" db:"hashed_password"`
	Email          string     `json:"email" bson:"email" mapstructure:"email" db:"email"`
	Birthdate      *time.Time `json:"birthdate,omitempty" bson:"birthdate,omitempty" mapstructure:"birthdate"`
	FavoriteMovies []string   `json:"favorite_movies" bson:"favorite_movies" mapstructure:"favorite_movies"`
}

// NewUser creates a new User instance with the given username, hashed
// password and email. Note: no validation is performed here.
func NewUser(username, hashedPassword, email string) *User {
	return &User{
		Username:       username,
		HashedPassword: hashedPassword,
		Email:          email,
	}
}
