package mongo

import (
	"testing"
	"time"

	"github.com/alionaterguta/cine-verse/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDecodeDocument(t *testing.T) {
	oid := primitive.NewObjectID()
	birthdate := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("user document with BSON primitives", func(t *testing.T) {
		doc := bson.M{
			"_id":             oid,
			"username":        "testuser",
			"hashed_password": "$2a$10$abcdefghijklmnopqrstuv",
			"email":           "testuser@example.com",
			"birthdate":       primitive.NewDateTimeFromTime(birthdate),
			"favorite_movies": primitive.A{"Inception", "Memento"},
		}

		var user models.User
		if err := DecodeDocument(doc, &user); err != nil {
			t.Fatalf("DecodeDocument() error = %v", err)
		}

		if user.ID != oid.Hex() {
			t.Errorf("got ID %q, want %q", user.ID, oid.Hex())
		}
		if user.Username != "testuser" {
			t.Errorf("got username %q", user.Username)
		}
		if user.Birthdate == nil || !user.Birthdate.Equal(birthdate) {
			t.Errorf("got birthdate %v, want %v", user.Birthdate, birthdate)
		}
		if len(user.FavoriteMovies) != 2 || user.FavoriteMovies[0] != "Inception" {
			t.Errorf("unexpected favorites: %v", user.FavoriteMovies)
		}
	})

	t.Run("movie document with genre array", func(t *testing.T) {
		doc := bson.M{
			"_id":      oid,
			"title":    "Inception",
			"genre":    primitive.A{"Thriller", "Sci-Fi"},
			"director": "Christopher Nolan",
			"featured": true,
		}

		var movie models.Movie
		if err := DecodeDocument(doc, &movie); err != nil {
			t.Fatalf("DecodeDocument() error = %v", err)
		}

		if movie.Title != "Inception" {
			t.Errorf("got title %q", movie.Title)
		}
		if len(movie.Genre) != 2 || movie.Genre[1] != "Sci-Fi" {
			t.Errorf("unexpected genre: %v", movie.Genre)
		}
		if !movie.Featured {
			t.Error("expected featured movie")
		}
	})

	t.Run("absent optional fields stay zero", func(t *testing.T) {
		doc := bson.M{
			"_id":      oid,
			"username": "testuser",
		}

		var user models.User
		if err := DecodeDocument(doc, &user); err != nil {
			t.Fatalf("DecodeDocument() error = %v", err)
		}
		if user.Birthdate != nil {
			t.Errorf("expected nil birthdate, got %v", user.Birthdate)
		}
		if user.FavoriteMovies != nil {
			t.Errorf("expected nil favorites, got %v", user.FavoriteMovies)
		}
	})
}
