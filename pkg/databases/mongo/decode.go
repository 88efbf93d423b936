package mongo

import (
	"reflect"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/go-viper/mapstructure/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DecodeDocument decodes a generic document map, as returned by FindMany,
// into a typed model using its mapstructure tags.
func DecodeDocument(doc interfaces.Document, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(bsonPrimitiveHook),
		Result:     result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(doc)
}

// bsonPrimitiveHook converts the driver's BSON primitives into the plain Go
// types the models carry.
func bsonPrimitiveHook(_ reflect.Type, _ reflect.Type, data interface{}) (interface{}, error) {
	switch v := data.(type) {
	case primitive.ObjectID:
		return v.Hex(), nil
	case primitive.DateTime:
		return v.Time(), nil
	case primitive.A:
		return []interface{}(v), nil
	}
	return data, nil
}
