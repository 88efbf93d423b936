package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/alionaterguta/cine-verse/pkg/databases/mongo"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
)

const MoviesCollection = "movies"

// movieDocument is the BSON shape of a stored movie.
type movieDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Genre       []string           `bson:"genre"`
	Director    string             `bson:"director"`
	ImagePath   string             `bson:"image_path,omitempty"`
	Featured    bool               `bson:"featured"`
}

func (d *movieDocument) toModel() *models.Movie {
	return &models.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Genre:       d.Genre,
		Director:    d.Director,
		ImagePath:   d.ImagePath,
		Featured:    d.Featured,
	}
}

// MongoMovieRepository reads the movie collection over the generic DBClient.
// The collection has no write path here; it is seeded out-of-band.
type MongoMovieRepository struct {
	dbClient interfaces.DBClient
}

// NewMongoMovieRepository creates a new MongoDB-backed movie repository.
func NewMongoMovieRepository(dbClient interfaces.DBClient) (interfaces.MovieRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoMovieRepository{dbClient: dbClient}, nil
}

// ListMovies returns the full catalog, unpaginated.
func (r *MongoMovieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	return r.findMovies(ctx, bson.M{})
}

// GetMovieByTitle retrieves a movie by exact title, or (nil, nil) when
// absent. Finding nothing is not an error on this lookup.
func (r *MongoMovieRepository) GetMovieByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var doc movieDocument
	err := r.dbClient.FindOne(ctx, MoviesCollection, bson.M{"title": title}, &doc)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movie by title: %w", err)
	}

	return doc.toModel(), nil
}

// GetMoviesByGenre returns movies whose genre list contains the given tag.
// An exact-match filter on an array field is a membership query in Mongo.
func (r *MongoMovieRepository) GetMoviesByGenre(ctx context.Context, genre string) ([]models.Movie, error) {
	return r.findMovies(ctx, bson.M{"genre": genre})
}

func (r *MongoMovieRepository) findMovies(ctx context.Context, filter bson.M) ([]models.Movie, error) {
	docs, err := r.dbClient.FindMany(ctx, MoviesCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies := make([]models.Movie, 0, len(docs))
	for _, doc := range docs {
		var movie models.Movie
		if err := mongoClient.DecodeDocument(doc, &movie); err != nil {
			return nil, fmt.Errorf("failed to decode movie document: %w", err)
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

// Close disconnects the MongoDB client.
func (r *MongoMovieRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
