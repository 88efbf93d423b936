package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. It could be a struct, a map[string]interface{},
// or any type that can be marshaled/unmarshaled by the specific database driver.
type Document interface{}

// DBClient defines the interface for a generic document database client.
// It abstracts the operations the repositories need from the store.
type DBClient interface {
	// Connect establishes a connection to the database.
	// The DSN (Data Source Name) identifies the server and database.
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single document into the named collection and
	// returns the store-assigned ID of the inserted document.
	InsertOne(ctx context.Context, collectionName string, document Document) (interface{}, error)

	// FindOne retrieves a single document matching the filter and decodes
	// it into result. The driver's no-documents error surfaces when nothing
	// matches.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) error

	// FindMany retrieves all documents matching the filter. An empty filter
	// matches the whole collection.
	FindMany(ctx context.Context, collectionName string, filter Document) ([]Document, error)

	// UpdateOne applies the update to a single document matching the filter
	// and returns the count of matched documents.
	UpdateOne(ctx context.Context, collectionName string, filter Document, update Document) (int64, error)

	// FindOneAndUpdate applies the update to a single document matching the
	// filter and decodes the document as it is after the update into result.
	// The driver's no-documents error surfaces when nothing matches.
	FindOneAndUpdate(ctx context.Context, collectionName string, filter Document, update Document, result Document) error

	// DeleteOne deletes a single document matching the filter and returns
	// the count of deleted documents.
	DeleteOne(ctx context.Context, collectionName string, filter Document) (int64, error)

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error

	// EnsureSchema applies collection-level schema requirements, such as a
	// unique index. The concrete schema type is driver-specific.
	EnsureSchema(ctx context.Context, collectionName string, schema Document) error
}
