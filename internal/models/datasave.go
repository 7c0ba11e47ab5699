package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DataSave is a payload persisted verbatim. Data holds the decoded request
// body: bson.D for objects (client key order), bson.A for arrays, and
// string, float64, bool or nil leaves.
type DataSave struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Data      any                `json:"data" bson:"data" validate:"required"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
