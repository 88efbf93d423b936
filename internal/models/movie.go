package models

import "time"

// Movie is a catalog entry. The catalog is read-only from the API's
// perspective; records are seeded out-of-band.
type Movie struct {
	ID          string   `json:"id" bson:"_id,omitempty" mapstructure:"_id"`
	Title       string   `json:"title" bson:"title" mapstructure:"title"`
	Description string   `json:"description" bson:"description" mapstructure:"description"`
	Genre       []string `json:"genre" bson:"genre" mapstructure:"genre"`
	Director    string   `json:"director" bson:"director" mapstructure:"director"`
	ImagePath   string   `json:"image_path,omitempty" bson:"image_path,omitempty" mapstructure:"image_path"`
	Featured    bool     `json:"featured" bson:"featured" mapstructure:"featured"`
}

// Director is a catalog entry, read-only like Movie.
type Director struct {
	ID    string     `json:"id" bson:"_id,omitempty" mapstructure:"_id"`
	Name  string     `json:"name" bson:"name" mapstructure:"name"`
	Bio   string     `json:"bio" bson:"bio" mapstructure:"bio"`
	Birth *time.Time `json:"birth,omitempty" bson:"birth,omitempty" mapstructure:"birth"`
	Death *time.Time `json:"death,omitempty" bson:"death,omitempty" mapstructure:"death"`
}
