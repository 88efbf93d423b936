package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongoClient "github.com/alionaterguta/cine-verse/pkg/databases/mongo"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection = "users"

	MAXLENGTH_USERNAME = 64 // Maximum length for username
)

// userDocument is the BSON shape of a stored user.
type userDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	HashedPassword string             `bson:"hashed_password"`
	Email          string             `bson:"email"`
	Birthdate      *time.Time         `bson:"birthdate,omitempty"`
	FavoriteMovies []string           `bson:"favorite_movies"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:             d.ID.Hex(),
		Username:       d.Username,
		HashedPassword: d.HashedPassword,
		Email:          d.Email,
		Birthdate:      d.Birthdate,
		FavoriteMovies: d.FavoriteMovies,
	}
}

// MongoUserRepository implements the credential store over the generic DBClient.
type MongoUserRepository struct {
	dbClient interfaces.DBClient
}

// NewMongoUserRepository creates a new MongoDB-backed user repository.
func NewMongoUserRepository(dbClient interfaces.DBClient) (interfaces.UserRepository, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if _, ok := dbClient.(*mongoClient.MongoDBClient); !ok {
		return nil, fmt.Errorf("dbClient must be a MongoDB client")
	}
	return &MongoUserRepository{dbClient: dbClient}, nil
}

// AddUser saves a new user. The unique index on username is the sole source
// of the duplicate error; there is no existence pre-check.
func (r *MongoUserRepository) AddUser(ctx context.Context, user models.User) (string, error) {
	doc := userDocument{
		ID:             primitive.NewObjectID(),
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		Email:          user.Email,
		Birthdate:      user.Birthdate,
		FavoriteMovies: []string{},
	}

	insertedID, err := r.dbClient.InsertOne(ctx, UsersCollection, doc)
	if err != nil {
		if strings.Contains(err.Error(), "E11000") { // MongoDB duplicate key error
			return "", fmt.Errorf("%w: %s", models.ErrUserExists, user.Username)
		}
		return "", fmt.Errorf("failed to add user: %w", err)
	}

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to assert inserted ID to ObjectID")
	}
	return objID.Hex(), nil
}

// GetUserByUsername retrieves a user record, or (nil, nil) when absent.
func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if len(username) == 0 || len(username) > MAXLENGTH_USERNAME {
		return nil, fmt.Errorf("invalid username: must be between 1 and %d characters", MAXLENGTH_USERNAME)
	}

	var doc userDocument
	err := r.dbClient.FindOne(ctx, UsersCollection, bson.M{"username": username}, &doc)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return doc.toModel(), nil
}

// ListUsers returns every stored user record.
func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	docs, err := r.dbClient.FindMany(ctx, UsersCollection, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		var user models.User
		if err := mongoClient.DecodeDocument(doc, &user); err != nil {
			return nil, fmt.Errorf("failed to decode user document: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

// UpdateUser sets the given storage fields and returns the updated record.
func (r *MongoUserRepository) UpdateUser(ctx context.Context, username string, fields map[string]interface{}) (*models.User, error) {
	var doc userDocument
	err := r.dbClient.FindOneAndUpdate(ctx, UsersCollection,
		bson.M{"username": username}, bson.M{"$set": fields}, &doc)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return doc.toModel(), nil
}

// PushFavorite appends the title to the user's favorite list. No uniqueness
// check: a title can appear more than once.
func (r *MongoUserRepository) PushFavorite(ctx context.Context, username, title string) (*models.User, error) {
	return r.favoriteUpdate(ctx, username, bson.M{"$push": bson.M{"favorite_movies": title}})
}

// PullFavorite removes all occurrences of the title from the favorite list.
// Pulling an absent title succeeds with the record unchanged.
func (r *MongoUserRepository) PullFavorite(ctx context.Context, username, title string) (*models.User, error) {
	return r.favoriteUpdate(ctx, username, bson.M{"$pull": bson.M{"favorite_movies": title}})
}

func (r *MongoUserRepository) favoriteUpdate(ctx context.Context, username string, update bson.M) (*models.User, error) {
	var doc userDocument
	err := r.dbClient.FindOneAndUpdate(ctx, UsersCollection, bson.M{"username": username}, update, &doc)
	if err != nil {
		if errors.Is(err, mongosdk.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("failed to update favorites: %w", err)
	}

	return doc.toModel(), nil
}

// DeleteUserByID removes a user record by its store-assigned identifier.
func (r *MongoUserRepository) DeleteUserByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An identifier that cannot parse resolves to no record.
		return fmt.Errorf("%w: %s", models.ErrUserNotFound, id)
	}

	count, err := r.dbClient.DeleteOne(ctx, UsersCollection, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", models.ErrUserNotFound, id)
	}
	return nil
}

// EnsureIndices creates the unique index on username. The index is what makes
// concurrent registrations of the same username safe.
func (r *MongoUserRepository) EnsureIndices(ctx context.Context) error {
	indexModel := mongosdk.IndexModel{
		Keys:    bson.M{"username": 1},
		Options: options.Index().SetUnique(true),
	}
	return r.dbClient.EnsureSchema(ctx, UsersCollection, indexModel)
}

// Close disconnects the MongoDB client.
func (r *MongoUserRepository) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}
