package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/alionaterguta/cine-verse/config"
	"github.com/alionaterguta/cine-verse/internal/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	MAXPOOLSIZE = 20
	IDFIELD     = "_id"
)

// updateOperators are the only top-level operator keys the client accepts in
// update documents. Their operand maps are sanitized field-by-field.
var updateOperators = map[string]bool{
	"$set":  true,
	"$push": true,
	"$pull": true,
}

// MongoDBClient implements the interfaces.DBClient interface for MongoDB operations.
type MongoDBClient struct {
	ServerOpts       *options.ServerAPIOptions
	client           *mongo.Client
	db               *mongo.Database
	timeout          time.Duration
	logger           interfaces.Logger
	validCollections map[string]bool // A map to validate collection names
	validFields      map[string]bool // A map to validate field names
}

// NewMongoDB returns an interface for the db client and an error if it occurs.
func NewMongoDB(dbConfig *config.MongoDBConfig, logger interfaces.Logger) (interfaces.DBClient, error) {
	db := &MongoDBClient{
		timeout:          dbConfig.Timeout,
		ServerOpts:       config.BuildServerAPIOptions(dbConfig.Options),
		logger:           logger,
		validCollections: config.ListToMap(dbConfig.ValidCollections),
		validFields:      config.ListToMap(dbConfig.ValidFields),
	}

	return db, nil
}

// Connect establishes a connection to the MongoDB database using the provided
// DSN, in the format "mongodb://<host>:<port>/<database>". The database name
// is taken from the DSN path and set as the active database.
func (m *MongoDBClient) Connect(ctx context.Context, dsn string) error {
	if !strings.HasPrefix(dsn, "mongodb://") && !strings.HasPrefix(dsn, "mongodb+srv://") {
		return fmt.Errorf("invalid DSN format, expected 'mongodb://' or 'mongodb+srv://'")
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	clientOptions := options.Client().ApplyURI(dsn)
	if m.ServerOpts != nil {
		clientOptions.SetServerAPIOptions(m.ServerOpts)
	}
	clientOptions.SetMaxPoolSize(MAXPOOLSIZE)
	clientOptions.SetReadPreference(readpref.PrimaryPreferred())

	var err error
	m.client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	if err = m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to connect to MongoDB server: %w", err)
	}

	databaseName, err := m.getDBNameFromMongoDSN(dsn)
	if err != nil {
		return fmt.Errorf("failed to extract database name from dsn: %w", err)
	}

	m.db = m.client.Database(databaseName)
	m.logger.Info("Connected to MongoDB", "database", databaseName)
	return nil
}

// Disconnect closes the connection to the MongoDB database.
func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}

	return nil
}

// InsertOne inserts a document and returns its store-assigned ID. Map
// documents are sanitized field-by-field; struct documents are marshaled by
// the driver via their bson tags.
func (m *MongoDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	if !m.validCollections[collectionName] {
		return nil, fmt.Errorf("invalid collection name: %s", collectionName)
	}

	res, err := m.db.Collection(collectionName).InsertOne(ctx, m.sanitizeDocument(document))
	if err != nil {
		return nil, fmt.Errorf("failed to insert one into %s: %w", collectionName, err)
	}

	return res.InsertedID, nil
}

// FindOne retrieves a single document from the specified collection using a
// filter and decodes it into result. mongo.ErrNoDocuments surfaces unchanged
// so callers can distinguish "found nothing" from "query failed".
func (m *MongoDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	if !m.validCollections[collectionName] {
		return fmt.Errorf("invalid collection name: %s", collectionName)
	}

	err := m.db.Collection(collectionName).FindOne(ctx, m.sanitizeDocument(filter)).Decode(result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return err
		}
		return fmt.Errorf("failed to find one in %s: %w", collectionName, err)
	}

	return nil
}

// FindMany retrieves all documents matching the filter as generic maps.
func (m *MongoDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document) ([]interfaces.Document, error) {
	if !m.validCollections[collectionName] {
		return nil, fmt.Errorf("invalid collection name: %s", collectionName)
	}

	cursor, err := m.db.Collection(collectionName).Find(ctx, m.sanitizeDocument(filter))
	if err != nil {
		return nil, fmt.Errorf("finding many in %s failed: %w", collectionName, err)
	}

	defer func() {
		if err := cursor.Close(ctx); err != nil {
			m.logger.Warn("Failed to close cursor", "collection", collectionName, "error", err)
		}
	}()

	var results []interfaces.Document
	for cursor.Next(ctx) {
		var doc map[string]interface{}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode cursor: %w", err)
		}
		results = append(results, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error in %s: %w", collectionName, err)
	}

	return results, nil
}

// UpdateOne modifies a single document matching the filter. Returns the count
// of matched documents.
func (m *MongoDBClient) UpdateOne(ctx context.Context, collectionName string, filter interfaces.Document, update interfaces.Document) (int64, error) {
	if !m.validCollections[collectionName] {
		return 0, fmt.Errorf("invalid collection name: %s", collectionName)
	}

	res, err := m.db.Collection(collectionName).UpdateOne(ctx, m.sanitizeDocument(filter), m.sanitizeUpdate(update))
	if err != nil {
		return 0, fmt.Errorf("failed updating one in %s: %w", collectionName, err)
	}

	return res.MatchedCount, nil
}

// FindOneAndUpdate modifies a single document matching the filter and decodes
// the document as it is after the update into result. mongo.ErrNoDocuments
// surfaces unchanged when nothing matches.
func (m *MongoDBClient) FindOneAndUpdate(ctx context.Context, collectionName string, filter interfaces.Document, update interfaces.Document, result interfaces.Document) error {
	if !m.validCollections[collectionName] {
		return fmt.Errorf("invalid collection name: %s", collectionName)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := m.db.Collection(collectionName).
		FindOneAndUpdate(ctx, m.sanitizeDocument(filter), m.sanitizeUpdate(update), opts).
		Decode(result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return err
		}
		return fmt.Errorf("failed updating one in %s: %w", collectionName, err)
	}

	return nil
}

// DeleteOne removes a single document matching the filter. Returns the count
// of deleted documents.
func (m *MongoDBClient) DeleteOne(ctx context.Context, collectionName string, filter interfaces.Document) (int64, error) {
	if !m.validCollections[collectionName] {
		return 0, fmt.Errorf("invalid collection name: %s", collectionName)
	}

	res, err := m.db.Collection(collectionName).DeleteOne(ctx, m.sanitizeDocument(filter))
	if err != nil {
		return 0, fmt.Errorf("failed deleting one from %s: %w", collectionName, err)
	}

	return res.DeletedCount, nil
}

// Ping verifies the MongoDB connection health.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// EnsureSchema creates the required index on the specified collection using
// the provided mongo.IndexModel. The collection is created automatically if
// it does not exist.
func (m *MongoDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	if m.db == nil {
		return fmt.Errorf("client is not connected to a database")
	}

	model, ok := schema.(mongo.IndexModel)
	if !ok {
		return fmt.Errorf("EnsureSchema expects a mongo.IndexModel")
	}

	_, err := m.db.Collection(collectionName).Indexes().CreateOne(ctx, model)
	return err
}

// getDBNameFromMongoDSN extracts the database name from a MongoDB DSN.
func (m *MongoDBClient) getDBNameFromMongoDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MongoDB DSN: %w", err)
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("no database name found in MongoDB DSN path: %s", dsn)
	}

	// If the path contains additional segments, only the first is the
	// database name.
	if idx := strings.Index(dbName, "/"); idx != -1 {
		dbName = dbName[:idx]
	}

	return dbName, nil
}

// sanitizeDocument strips the ID field and any key that is not on the
// configured field allow-list or that carries Mongo operator characters,
// guarding the map-based filters against NoSQL injection. Struct documents
// pass through for the driver to marshal.
func (m *MongoDBClient) sanitizeDocument(document interfaces.Document) interfaces.Document {
	docMap, ok := document.(map[string]interface{})
	if !ok {
		if b, isBson := document.(bson.M); isBson {
			docMap = map[string]interface{}(b)
		} else {
			return document
		}
	}

	sanitized := bson.M{}
	for key, value := range docMap {
		if key == IDFIELD {
			// ObjectID filters are the one legitimate _id use.
			sanitized[key] = value
			continue
		}

		if !m.validFields[key] || strings.ContainsAny(key, "$.") {
			m.logger.Warn("Skipping invalid or unsafe field name", "field", key)
			continue
		}

		sanitized[key] = value
	}

	return sanitized
}

// sanitizeUpdate allows the supported top-level update operators and
// sanitizes each operand map with the regular field rules.
func (m *MongoDBClient) sanitizeUpdate(update interfaces.Document) interfaces.Document {
	docMap, ok := update.(map[string]interface{})
	if !ok {
		if b, isBson := update.(bson.M); isBson {
			docMap = map[string]interface{}(b)
		} else {
			return update
		}
	}

	sanitized := bson.M{}
	for op, operand := range docMap {
		if !updateOperators[op] {
			m.logger.Warn("Skipping unsupported update operator", "operator", op)
			continue
		}
		if inner, ok := operand.(bson.M); ok {
			sanitized[op] = m.sanitizeDocument(inner)
			continue
		}
		if inner, ok := operand.(map[string]interface{}); ok {
			sanitized[op] = m.sanitizeDocument(inner)
			continue
		}
		m.logger.Warn("Skipping non-map operand", "operator", op)
	}

	return sanitized
}
