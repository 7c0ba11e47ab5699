package repositories

import (
	"context"
	"sync"

	"github.com/codersbay-nikhil/json-test/internal/models"
)

// MemoryRecordRepository keeps records in process memory
type MemoryRecordRepository struct {
	mu      sync.RWMutex
	records map[string]models.DataSave
}

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{records: make(map[string]models.DataSave)}
}

func (r *MemoryRecordRepository) CreateRecord(ctx context.Context, record *models.DataSave) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stampNew(record)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID.Hex()] = *record
	return nil
}

// Get returns a stored record by its hex id
func (r *MemoryRecordRepository) Get(id string) (models.DataSave, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	return record, ok
}

// Len reports how many records are stored
func (r *MemoryRecordRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
