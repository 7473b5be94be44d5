package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is the external project entity a recruitment form may reference.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        LocalizedText      `bson:"name" json:"name"`
	Description LocalizedText      `bson:"description" json:"description"`
	Link        string             `bson:"link,omitempty" json:"link,omitempty"`
	ImagePath   string             `bson:"imagePath,omitempty" json:"imagePath,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
