// Package repository persists planner state as a small set of named records
// in a local SQLite database. Each record is one serialized blob (the full
// category map, task list, habit list, or username), so a corrupt record can
// be discarded without touching the others and a backup is just the union of
// the raw blobs.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one named state blob.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// RecordRepository handles reads and writes of named records.
type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Get returns the record's value and whether it exists.
func (r *RecordRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec Record
	err := r.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	switch {
	case err == nil:
		return rec.Value, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("get record %q: %w", key, err)
	}
}

// Put inserts or overwrites a record.
func (r *RecordRepository) Put(ctx context.Context, key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error; err != nil {
		return fmt.Errorf("put record %q: %w", key, err)
	}
	return nil
}

// Delete removes the given records. Missing keys are not an error.
func (r *RecordRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Where("key IN ?", keys).
		Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}
