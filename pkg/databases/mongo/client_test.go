package mongo

import (
	"reflect"
	"testing"

	"github.com/alionaterguta/cine-verse/config"
	"github.com/alionaterguta/cine-verse/pkg/zerolog"
	"go.mongodb.org/mongo-driver/bson"
)

func newTestClient(t *testing.T) *MongoDBClient {
	t.Helper()

	client, err := NewMongoDB(&config.MongoDBConfig{
		ValidCollections: []string{"users", "movies"},
		ValidFields:      []string{"username", "email", "favorite_movies"},
	}, zerolog.NewZerologLogger("mongo-test"))
	if err != nil {
		t.Fatalf("NewMongoDB() error = %v", err)
	}

	return client.(*MongoDBClient)
}

func TestMongoDBClient_SanitizeDocument(t *testing.T) {
	m := newTestClient(t)

	tests := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{
			name: "allowed fields pass",
			in:   bson.M{"username": "testuser", "email": "a@b.c"},
			want: bson.M{"username": "testuser", "email": "a@b.c"},
		},
		{
			name: "unknown field is dropped",
			in:   bson.M{"username": "testuser", "isAdmin": true},
			want: bson.M{"username": "testuser"},
		},
		{
			name: "operator key in a filter is dropped",
			in:   bson.M{"username": "testuser", "$where": "sleep(1000)"},
			want: bson.M{"username": "testuser"},
		},
		{
			name: "_id passes through",
			in:   bson.M{"_id": "abc123"},
			want: bson.M{"_id": "abc123"},
		},
		{
			name: "struct documents pass through untouched",
			in:   struct{ Username string }{"testuser"},
			want: struct{ Username string }{"testuser"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.sanitizeDocument(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sanitizeDocument() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMongoDBClient_SanitizeUpdate(t *testing.T) {
	m := newTestClient(t)

	tests := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{
			name: "$set operand is field-sanitized",
			in:   bson.M{"$set": bson.M{"email": "a@b.c", "isAdmin": true}},
			want: bson.M{"$set": bson.M{"email": "a@b.c"}},
		},
		{
			name: "$push survives",
			in:   bson.M{"$push": bson.M{"favorite_movies": "Inception"}},
			want: bson.M{"$push": bson.M{"favorite_movies": "Inception"}},
		},
		{
			name: "$pull survives",
			in:   bson.M{"$pull": bson.M{"favorite_movies": "Inception"}},
			want: bson.M{"$pull": bson.M{"favorite_movies": "Inception"}},
		},
		{
			name: "unsupported operator is dropped",
			in:   bson.M{"$rename": bson.M{"username": "owner"}},
			want: bson.M{},
		},
		{
			name: "non-map operand is dropped",
			in:   bson.M{"$set": "not-a-map"},
			want: bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.sanitizeUpdate(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sanitizeUpdate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMongoDBClient_GetDBNameFromDSN(t *testing.T) {
	m := newTestClient(t)

	tests := []struct {
		name    string
		dsn     string
		want    string
		wantErr bool
	}{
		{
			name: "plain DSN",
			dsn:  "mongodb://localhost:27017/cineverse",
			want: "cineverse",
		},
		{
			name: "DSN with trailing segment",
			dsn:  "mongodb://localhost:27017/cineverse/extra",
			want: "cineverse",
		},
		{
			name:    "DSN without a database",
			dsn:     "mongodb://localhost:27017",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.getDBNameFromMongoDSN(tt.dsn)
			if (err != nil) != tt.wantErr {
				t.Errorf("getDBNameFromMongoDSN() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("getDBNameFromMongoDSN() = %q, want %q", got, tt.want)
			}
		})
	}
}
