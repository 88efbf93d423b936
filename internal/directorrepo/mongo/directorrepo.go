package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/alionaterguta/cine-verse/pkg/databases/mongo"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
)

const DirectorsCollection = "directors"

type directorDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Bio   string             `bson:"bio"`
	Birth *time.Time         `bson:"birth,omitempty"`
	Death *time.Time         `bson:"death,omitempty"`
}

func (d *directorDocument) toModel() *models.Director {
	return &models.Director{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Bio:   d.Bio,
		Birth: d.Birth,
		Death: d.Death,
	}
}

// MongoDirectorRepository reads the director collection over the generic
// DBClient.
type MongoDirectorRepository struct {
	dbClient interfaces.DBClient
}

// NewMongoDirectorRepository creates a new MongoDB-backed director repository.
func NewMongoDirectorRepository(dbClient interfaces.DBClient) (interfaces.DirectorRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoDirectorRepository{dbClient: dbClient}, nil
}

// ListDirectors returns the full director collection, unpaginated.
func (r *MongoDirectorRepository) ListDirectors(ctx context.Context) ([]models.Director, error) {
	docs, err := r.dbClient.FindMany(ctx, DirectorsCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list directors: %w", err)
	}

	directors := make([]models.Director, 0, len(docs))
	for _, doc := range docs {
		var director models.Director
		if err := mongoClient.DecodeDocument(doc, &director); err != nil {
			return nil, fmt.Errorf("failed to decode director document: %w", err)
		}
		directors = append(directors, director)
	}
	return directors, nil
}

// GetDirectorByName retrieves a director by exact name, or (nil, nil) when
// absent.
func (r *MongoDirectorRepository) GetDirectorByName(ctx context.Context, name string) (*models.Director, error) {
	var doc directorDocument
	err := r.dbClient.FindOne(ctx, DirectorsCollection, bson.M{"name": name}, &doc)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get director by name: %w", err)
	}

	return doc.toModel(), nil
}

// Close disconnects the MongoDB client.
func (r *MongoDirectorRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
