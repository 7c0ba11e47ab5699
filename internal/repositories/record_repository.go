package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codersbay-nikhil/json-test/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStoreUnavailable is returned when no document store client exists
var ErrStoreUnavailable = errors.New("document store unavailable")

// RecordRepository defines the interface for record persistence
type RecordRepository interface {
	CreateRecord(ctx context.Context, record *models.DataSave) error
}

type mongoRecordRepository struct {
	collection *mongo.Collection
}

func NewMongoRecordRepository(collection *mongo.Collection) RecordRepository {
	return &mongoRecordRepository{collection: collection}
}

func (r *mongoRecordRepository) CreateRecord(ctx context.Context, record *models.DataSave) error {
	stampNew(record)
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert datasave: %w", err)
	}
	return nil
}

type unavailableRecordRepository struct {
	cause error
}

// NewUnavailableRecordRepository fails every write with ErrStoreUnavailable,
// wrapping cause when one is known
func NewUnavailableRecordRepository(cause error) RecordRepository {
	return &unavailableRecordRepository{cause: cause}
}

func (r *unavailableRecordRepository) CreateRecord(ctx context.Context, record *models.DataSave) error {
	if r.cause != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, r.cause)
	}
	return ErrStoreUnavailable
}

// stampNew assigns the id and creation timestamps. Dates are truncated to
// the store's millisecond precision so the response matches what is stored.
func stampNew(record *models.DataSave) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	record.ID = primitive.NewObjectID()
	record.Timestamp = now
	record.CreatedAt = now
	record.UpdatedAt = now
}
